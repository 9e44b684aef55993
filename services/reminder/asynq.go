package reminder

import (
	"context"
	"fmt"
	"sync"

	"medtrack/config"
	"medtrack/models"
	"medtrack/services/tasks"
	"medtrack/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// AsynqTriggerBackend drives recurring triggers through an asynq Scheduler:
// each registration becomes a daily cron entry that enqueues a reminder task
// for the worker to deliver. Entries live with this process, which keeps the
// registration set a rebuildable projection of the course data.
type AsynqTriggerBackend struct {
	scheduler *asynq.Scheduler

	mu      sync.Mutex
	entries map[string]models.ReminderRegistration
}

// NewAsynqTriggerBackend creates the backend and starts the scheduler loop.
func NewAsynqTriggerBackend() (*AsynqTriggerBackend, error) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{})
	if err := scheduler.Start(); err != nil {
		return nil, fmt.Errorf("failed to start reminder scheduler: %w", err)
	}

	return &AsynqTriggerBackend{
		scheduler: scheduler,
		entries:   make(map[string]models.ReminderRegistration),
	}, nil
}

// Schedule registers a daily cron entry at the registration's fire time.
func (b *AsynqTriggerBackend) Schedule(ctx context.Context, reg models.ReminderRegistration) (string, error) {
	task, err := tasks.NewReminderTask(reg.Payload)
	if err != nil {
		return "", fmt.Errorf("failed to build reminder task: %w", err)
	}

	cronspec := fmt.Sprintf("%d %d * * *", reg.FireMinute, reg.FireHour)
	entryID, err := b.scheduler.Register(cronspec, task)
	if err != nil {
		return "", fmt.Errorf("failed to register reminder entry: %w", err)
	}

	reg.ID = entryID
	b.mu.Lock()
	b.entries[entryID] = reg
	b.mu.Unlock()

	utils.GetLogger().Info("reminder entry registered",
		zap.String("entryId", entryID),
		zap.String("cron", cronspec),
		zap.String("medicationId", reg.MedicationID),
	)
	return entryID, nil
}

// Cancel unregisters a cron entry.
func (b *AsynqTriggerBackend) Cancel(ctx context.Context, id string) error {
	if err := b.scheduler.Unregister(id); err != nil {
		return fmt.Errorf("failed to unregister reminder entry %s: %w", id, err)
	}
	b.mu.Lock()
	delete(b.entries, id)
	b.mu.Unlock()
	return nil
}

// List returns every live registration.
func (b *AsynqTriggerBackend) List(ctx context.Context) ([]models.ReminderRegistration, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	regs := make([]models.ReminderRegistration, 0, len(b.entries))
	for _, reg := range b.entries {
		regs = append(regs, reg)
	}
	return regs, nil
}

// Shutdown stops the scheduler loop.
func (b *AsynqTriggerBackend) Shutdown() {
	b.scheduler.Shutdown()
}
