package course

import (
	"fmt"
	"time"

	"medtrack/models"
	"medtrack/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// CreateCourse validates the submission and persists the course. Nothing is
// written when validation fails.
func (s *DefaultCourseService) CreateCourse(req CreateCourseRequest) (*models.MedicalCourse, error) {
	var fields []string
	if req.Email == "" {
		fields = append(fields, "email is required")
	}
	if req.Description == "" {
		fields = append(fields, "description is required")
	}
	if req.StartDate == "" {
		fields = append(fields, "startDate is required")
	}
	if req.EndDate == "" {
		fields = append(fields, "endDate is required")
	}
	if len(req.Medications) == 0 {
		fields = append(fields, "at least one medication is required")
	}

	var start, end time.Time
	var err error
	if req.StartDate != "" {
		if start, err = time.Parse(dateLayout, req.StartDate); err != nil {
			fields = append(fields, "startDate must be formatted as YYYY-MM-DD")
		}
	}
	if req.EndDate != "" {
		if end, err = time.Parse(dateLayout, req.EndDate); err != nil {
			fields = append(fields, "endDate must be formatted as YYYY-MM-DD")
		}
	}
	if !start.IsZero() && !end.IsZero() && start.After(end) {
		fields = append(fields, "startDate must not be after endDate")
	}

	medications := make([]models.Medication, 0, len(req.Medications))
	for i, m := range req.Medications {
		if m.Name == "" {
			fields = append(fields, fmt.Sprintf("medications[%d].name is required", i))
		}
		if m.Description == "" {
			fields = append(fields, fmt.Sprintf("medications[%d].description is required", i))
		}
		// All-false frequency flags are accepted; such a medication simply
		// produces zero reminders.
		medications = append(medications, models.Medication{
			ID:          uuid.New().String(),
			Name:        m.Name,
			Description: m.Description,
			Frequency:   m.Frequency,
		})
	}

	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	courseDoc := models.MedicalCourse{
		ID:          uuid.New().String(),
		Email:       req.Email,
		Description: req.Description,
		StartDate:   start,
		EndDate:     end,
		Medications: medications,
	}

	if err := s.Repo.Create(&courseDoc); err != nil {
		utils.GetLogger().Error("CreateCourse: failed to persist course", zap.Error(err))
		return nil, ErrStoreFailure
	}
	return &courseDoc, nil
}

// ListCourses returns the owner's courses newest first, annotated with their
// derived status. The classification runs against time.Now on every call.
func (s *DefaultCourseService) ListCourses(email string) ([]models.CourseView, error) {
	courses, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("ListCourses: failed to fetch courses", zap.Error(err))
		return nil, ErrStoreFailure
	}

	today := time.Now()
	views := make([]models.CourseView, 0, len(courses))
	for _, c := range courses {
		views = append(views, models.CourseView{
			MedicalCourse: c,
			Status:        Classify(c, today),
			DaysRemaining: DaysRemaining(c, today),
		})
	}
	return views, nil
}

// GetCourse returns one course by ID.
func (s *DefaultCourseService) GetCourse(id string) (*models.MedicalCourse, error) {
	courseDoc, err := s.Repo.GetByID(id)
	if err != nil {
		utils.GetLogger().Error("GetCourse: failed to fetch course", zap.Error(err))
		return nil, ErrStoreFailure
	}
	return courseDoc, nil
}
