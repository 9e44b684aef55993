package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"medtrack/models"
	"medtrack/services/auth"
	"medtrack/services/course"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------- test fakes --------

type fakeAuthService struct {
	signupProfile *models.UserProfile
	signupErr     error
	loginErr      error
	verifyErr     error
	profile       *models.UserProfile
	profileErr    error
	tokenErr      error
}

func (f *fakeAuthService) Signup(req auth.SignupRequest) (*models.UserProfile, error) {
	return f.signupProfile, f.signupErr
}
func (f *fakeAuthService) RequestLogin(email, password string) error { return f.loginErr }
func (f *fakeAuthService) VerifyOTP(email, code string) error        { return f.verifyErr }
func (f *fakeAuthService) FetchProfile(email string) (*models.UserProfile, error) {
	return f.profile, f.profileErr
}
func (f *fakeAuthService) SetFCMToken(email, token string) error { return f.tokenErr }

type fakeCourseService struct {
	created   *models.MedicalCourse
	createErr error
	views     []models.CourseView
	listErr   error
	byID      *models.MedicalCourse
	getErr    error
}

func (f *fakeCourseService) CreateCourse(req course.CreateCourseRequest) (*models.MedicalCourse, error) {
	return f.created, f.createErr
}
func (f *fakeCourseService) ListCourses(email string) ([]models.CourseView, error) {
	return f.views, f.listErr
}
func (f *fakeCourseService) GetCourse(id string) (*models.MedicalCourse, error) {
	return f.byID, f.getErr
}

type fakeScheduler struct {
	calls  int
	schErr error
}

func (f *fakeScheduler) ScheduleReminders(ctx context.Context, c models.MedicalCourse, m models.Medication) error {
	f.calls++
	return f.schErr
}

func postJSON(t *testing.T, handler gin.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST(path, handler)

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// -------- auth handlers --------

func TestLoginHandlerStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		loginErr   error
		wantStatus int
	}{
		{"success", nil, http.StatusOK},
		{"unknown user", auth.ErrNotFound, http.StatusBadRequest},
		{"wrong password", auth.ErrInvalidCredential, http.StatusBadRequest},
		{"delivery failure", auth.ErrDeliveryFailed, http.StatusInternalServerError},
		{"store failure", auth.ErrStoreFailure, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuthHandler(&fakeAuthService{loginErr: tt.loginErr})
			w := postJSON(t, h.LoginHandler, "/login", gin.H{
				"email":    "jane@example.com",
				"password": "hunter22",
			})
			assert.Equal(t, tt.wantStatus, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp["message"])
		})
	}
}

func TestVerifyOTPHandlerStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		verifyErr  error
		wantStatus int
	}{
		{"success", nil, http.StatusOK},
		{"unknown user", auth.ErrNotFound, http.StatusBadRequest},
		{"wrong code", auth.ErrInvalidCode, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuthHandler(&fakeAuthService{verifyErr: tt.verifyErr})
			w := postJSON(t, h.VerifyOTPHandler, "/verify-otp", gin.H{
				"email": "jane@example.com",
				"otp":   "123456",
			})
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestSignupHandlerDuplicateEmail(t *testing.T) {
	h := NewAuthHandler(&fakeAuthService{signupErr: auth.ErrEmailExists})
	w := postJSON(t, h.SignupHandler, "/signup", gin.H{
		"email": "jane@example.com", "fname": "Jane", "lname": "Doe", "password": "x",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignupHandlerMissingFields(t *testing.T) {
	h := NewAuthHandler(&fakeAuthService{})
	w := postJSON(t, h.SignupHandler, "/signup", gin.H{"email": "jane@example.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// -------- course handlers --------

func TestCreateCourseHandlerValidationError(t *testing.T) {
	h := NewCourseHandler(&fakeCourseService{
		createErr: &course.ValidationError{Fields: []string{"at least one medication is required"}},
	})
	w := postJSON(t, h.CreateCourseHandler, "/medical-course", gin.H{
		"email":       "jane@example.com",
		"description": "Antibiotics",
		"startDate":   "2024-01-01",
		"endDate":     "2024-01-10",
		"medications": []gin.H{},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Message string   `json:"message"`
		Errors  []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Validation error", resp.Message)
	assert.Contains(t, resp.Errors, "at least one medication is required")
}

func TestListCoursesHandlerEmpty(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewCourseHandler(&fakeCourseService{})

	r := gin.New()
	r.GET("/medical-courses/:email", h.ListCoursesHandler)

	req := httptest.NewRequest(http.MethodGet, "/medical-courses/jane@example.com", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetUserByEmailHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewUserHandler(&fakeAuthService{
		profile: &models.UserProfile{Email: "jane@example.com", FirstName: "Jane"},
	})

	r := gin.New()
	r.GET("/user/:email", h.GetUserByEmailHandler)

	req := httptest.NewRequest(http.MethodGet, "/user/jane@example.com", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var profile models.UserProfile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, "Jane", profile.FirstName)
}

// -------- reminder handler --------

func TestScheduleRemindersHandler(t *testing.T) {
	courseDoc := &models.MedicalCourse{
		ID:          "course-1",
		Email:       "jane@example.com",
		Description: "Antibiotics",
		Medications: []models.Medication{
			{ID: "med-1", Name: "Amoxicillin", Description: "500mg"},
		},
	}

	tests := []struct {
		name       string
		byID       *models.MedicalCourse
		medID      string
		schErr     error
		wantStatus int
		wantCalls  int
	}{
		{"success", courseDoc, "med-1", nil, http.StatusAccepted, 1},
		{"unknown course", nil, "med-1", nil, http.StatusNotFound, 0},
		{"unknown medication", courseDoc, "med-x", nil, http.StatusNotFound, 0},
		{"backend failure", courseDoc, "med-1", errors.New("permission not granted"), http.StatusBadGateway, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sched := &fakeScheduler{schErr: tt.schErr}
			h := NewReminderHandler(&fakeCourseService{byID: tt.byID}, sched)

			w := postJSON(t, h.ScheduleRemindersHandler, "/reminders", gin.H{
				"email":        "jane@example.com",
				"courseId":     "course-1",
				"medicationId": tt.medID,
			})
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCalls, sched.calls)
		})
	}
}

func TestScheduleRemindersHandlerWrongOwner(t *testing.T) {
	sched := &fakeScheduler{}
	h := NewReminderHandler(&fakeCourseService{
		byID: &models.MedicalCourse{ID: "course-1", Email: "someone-else@example.com"},
	}, sched)

	w := postJSON(t, h.ScheduleRemindersHandler, "/reminders", gin.H{
		"email":        "jane@example.com",
		"courseId":     "course-1",
		"medicationId": "med-1",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Zero(t, sched.calls)
}

func TestGetUserByEmailHandlerNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewUserHandler(&fakeAuthService{profileErr: auth.ErrNotFound})

	r := gin.New()
	r.GET("/user/:email", h.GetUserByEmailHandler)

	req := httptest.NewRequest(http.MethodGet, "/user/nobody@example.com", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
