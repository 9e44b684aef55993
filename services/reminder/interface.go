package reminder

import (
	"context"

	"medtrack/models"
)

// TriggerBackend is the platform capability that owns recurring triggers.
// Implementations must treat Schedule and Cancel as independent operations;
// the scheduler above it sequences cancel-before-reschedule.
type TriggerBackend interface {
	// Schedule registers a recurring daily trigger and returns its ID.
	Schedule(ctx context.Context, reg models.ReminderRegistration) (string, error)
	// Cancel removes a trigger by ID. Cancelling an unknown ID is an error.
	Cancel(ctx context.Context, id string) error
	// List returns every live registration.
	List(ctx context.Context) ([]models.ReminderRegistration, error)
}

// ReminderScheduler maps medication frequency flags onto concrete recurring
// triggers, holding the invariant that at most one live registration set
// exists per medication at any instant.
type ReminderScheduler interface {
	ScheduleReminders(ctx context.Context, course models.MedicalCourse, med models.Medication) error
}
