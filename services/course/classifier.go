package course

import (
	"time"

	"medtrack/models"
)

// Classify derives the temporal state of a course from today's date. The
// comparison is date-only and inclusive on both ends: a course is Active on
// its start date and still Active on its end date. Pure function, evaluated
// on every read.
func Classify(c models.MedicalCourse, today time.Time) models.CourseStatus {
	day := truncateToDay(today)
	start := truncateToDay(c.StartDate)
	end := truncateToDay(c.EndDate)

	switch {
	case day.Before(start):
		return models.CoursePending
	case day.After(end):
		return models.CourseCompleted
	default:
		return models.CourseActive
	}
}

// DaysRemaining returns the number of whole days until the course's end
// date, never negative. Zero for completed courses and on the end date
// itself.
func DaysRemaining(c models.MedicalCourse, today time.Time) int {
	day := truncateToDay(today)
	end := truncateToDay(c.EndDate)

	remaining := int(end.Sub(day).Hours() / 24)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// truncateToDay drops the time-of-day component in the value's location.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
