package course

import (
	courseRepo "medtrack/database/repository/course"
	"medtrack/models"
)

// CourseService defines business logic for medical courses.
type CourseService interface {
	// CreateCourse validates and persists a new course.
	CreateCourse(req CreateCourseRequest) (*models.MedicalCourse, error)
	// ListCourses returns the owner's courses newest first, each annotated
	// with its derived status and days remaining.
	ListCourses(email string) ([]models.CourseView, error)
	// GetCourse returns one course by ID, or (nil, nil) when absent.
	GetCourse(id string) (*models.MedicalCourse, error)
}

// MedicationInput is one medication entry of a course submission.
type MedicationInput struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Frequency   models.Frequency `json:"frequency"`
}

// CreateCourseRequest is the course submission payload. Dates arrive as
// "2006-01-02" strings.
type CreateCourseRequest struct {
	Email       string            `json:"email"`
	Description string            `json:"description"`
	StartDate   string            `json:"startDate"`
	EndDate     string            `json:"endDate"`
	Medications []MedicationInput `json:"medications"`
}

// DefaultCourseService is the production implementation.
type DefaultCourseService struct {
	Repo courseRepo.CourseRepository
}
