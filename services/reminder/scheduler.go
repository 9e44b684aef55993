package reminder

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"medtrack/models"
	"medtrack/utils"

	"go.uber.org/zap"
)

// Canonical fire times for each frequency flag, device-local clock.
var fireTimes = map[models.ReminderPeriod]struct{ Hour, Minute int }{
	models.PeriodMorning:   {8, 30},
	models.PeriodAfternoon: {13, 30},
	models.PeriodNight:     {20, 0},
}

// DefaultReminderScheduler is the production implementation. The mutex
// sequences the cancel-then-register pair so concurrent calls cannot leave
// two live sets for one medication.
type DefaultReminderScheduler struct {
	Backend TriggerBackend
	mu      sync.Mutex
}

// NewDefaultReminderScheduler builds a scheduler over the given backend.
func NewDefaultReminderScheduler(backend TriggerBackend) *DefaultReminderScheduler {
	return &DefaultReminderScheduler{Backend: backend}
}

// ScheduleReminders replaces the medication's registration set with one
// trigger per true frequency flag.
//
// Every existing trigger tagged with the medication ID is cancelled first,
// unconditionally, so repeated calls never accumulate duplicates. The
// operation is best-effort: a failed period is reported but already-created
// registrations are not rolled back.
func (s *DefaultReminderScheduler) ScheduleReminders(ctx context.Context, course models.MedicalCourse, med models.Medication) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger := utils.GetLogger()

	existing, err := s.Backend.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to enumerate reminders: %w", err)
	}

	var errs []error
	for _, reg := range existing {
		if reg.MedicationID != med.ID {
			continue
		}
		if err := s.Backend.Cancel(ctx, reg.ID); err != nil {
			errs = append(errs, fmt.Errorf("cancel %s/%s: %w", med.ID, reg.Period, err))
		}
	}

	for _, period := range periodsFor(med.Frequency) {
		at := fireTimes[period]
		reg := models.ReminderRegistration{
			MedicationID: med.ID,
			Period:       period,
			FireHour:     at.Hour,
			FireMinute:   at.Minute,
			Payload: models.ReminderPayload{
				Email:             course.Email,
				CourseDescription: course.Description,
				MedicationID:      med.ID,
				MedicationName:    med.Name,
				MedicationDesc:    med.Description,
				Period:            string(period),
			},
		}

		id, err := s.Backend.Schedule(ctx, reg)
		if err != nil {
			errs = append(errs, fmt.Errorf("register %s/%s: %w", med.ID, period, err))
			continue
		}
		logger.Debug("registered reminder",
			zap.String("medicationId", med.ID),
			zap.String("period", string(period)),
			zap.String("registrationId", id),
		)
	}

	return errors.Join(errs...)
}

// periodsFor returns the enabled periods in canonical morning, afternoon,
// night order.
func periodsFor(f models.Frequency) []models.ReminderPeriod {
	var periods []models.ReminderPeriod
	if f.Morning {
		periods = append(periods, models.PeriodMorning)
	}
	if f.Afternoon {
		periods = append(periods, models.PeriodAfternoon)
	}
	if f.Night {
		periods = append(periods, models.PeriodNight)
	}
	return periods
}
