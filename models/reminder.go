package models

// ReminderPeriod names one of the three daily reminder slots.
type ReminderPeriod string

const (
	PeriodMorning   ReminderPeriod = "morning"
	PeriodAfternoon ReminderPeriod = "afternoon"
	PeriodNight     ReminderPeriod = "night"
)

// ReminderRegistration is one live recurring trigger. Registrations are
// ephemeral scheduler state, never persisted with the course: the live set is
// a rebuildable projection of (course, medication) data.
type ReminderRegistration struct {
	ID           string         `json:"id"`
	MedicationID string         `json:"medicationId"`
	Period       ReminderPeriod `json:"period"`
	FireHour     int            `json:"fireHour"`
	FireMinute   int            `json:"fireMinute"`
	Payload      ReminderPayload
}

// ReminderPayload is what a fired trigger delivers to the push channel.
type ReminderPayload struct {
	Email             string `json:"email"`
	CourseDescription string `json:"courseDescription"`
	MedicationID      string `json:"medicationId"`
	MedicationName    string `json:"medicationName"`
	MedicationDesc    string `json:"medicationDescription"`
	Period            string `json:"period"`
}
