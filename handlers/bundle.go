package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups every route handler for registration.
type HandlerBundle struct {
	// Auth endpoints.
	SignupHandler    gin.HandlerFunc
	LoginHandler     gin.HandlerFunc
	VerifyOTPHandler gin.HandlerFunc

	// Profile endpoints.
	GetUserByEmailHandler gin.HandlerFunc
	UpdateFCMTokenHandler gin.HandlerFunc

	// Course endpoints.
	CreateCourseHandler gin.HandlerFunc
	ListCoursesHandler  gin.HandlerFunc

	// Reminder endpoints.
	ScheduleRemindersHandler gin.HandlerFunc
}
