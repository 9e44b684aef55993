package models

import "time"

// CourseStatus is the derived temporal state of a course. It is computed on
// every read from the course's date window; course documents are never
// mutated to reflect elapsed time.
type CourseStatus string

const (
	CoursePending   CourseStatus = "Pending"
	CourseActive    CourseStatus = "Active"
	CourseCompleted CourseStatus = "Completed"
)

// Frequency holds the three independent daily-period flags for a medication.
type Frequency struct {
	Morning   bool `bson:"morning" json:"morning"`
	Afternoon bool `bson:"afternoon" json:"afternoon"`
	Night     bool `bson:"night" json:"night"`
}

// Medication is one entry of a course. A medication with all three flags
// false is stored but produces zero reminders.
type Medication struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	Frequency   Frequency `bson:"frequency" json:"frequency"`
}

// MedicalCourse is a bounded-duration plan of medications owned by a user.
// Courses are immutable after creation; there are no edit or delete
// operations.
type MedicalCourse struct {
	ID          string       `bson:"id" json:"id"`
	Email       string       `bson:"email" json:"email"`
	Description string       `bson:"description" json:"description"`
	StartDate   time.Time    `bson:"startDate" json:"startDate"`
	EndDate     time.Time    `bson:"endDate" json:"endDate"`
	Medications []Medication `bson:"medications" json:"medications"`
	CreatedAt   time.Time    `bson:"createdAt" json:"createdAt"`
}

// CourseView is a course annotated with its derived state for list responses.
type CourseView struct {
	MedicalCourse
	Status        CourseStatus `json:"status"`
	DaysRemaining int          `json:"daysRemaining"`
}
