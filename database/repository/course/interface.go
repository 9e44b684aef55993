package courseRepo

import "medtrack/models"

// CourseRepository defines data access for medical courses. Courses are
// insert-only; there are no update or delete operations.
type CourseRepository interface {
	// Create inserts a new course document.
	Create(course *models.MedicalCourse) error
	// GetByEmail retrieves all courses owned by the given email, newest first.
	GetByEmail(email string) ([]models.MedicalCourse, error)
	// GetByID retrieves a single course. Returns (nil, nil) when absent.
	GetByID(id string) (*models.MedicalCourse, error)
}
