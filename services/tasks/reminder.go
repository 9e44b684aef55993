package tasks

import (
	"encoding/json"

	"medtrack/models"

	"github.com/hibiken/asynq"
)

const TypeFireReminder = "reminder:fire"

// NewReminderTask wraps a reminder payload into an asynq task. Recurrence is
// owned by the scheduler entry, not the task itself.
func NewReminderTask(payload models.ReminderPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeFireReminder, b), nil
}
