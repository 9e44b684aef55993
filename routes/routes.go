package routes

import (
	"net/http"
	"time"

	"medtrack/handlers"
	"medtrack/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers signup, login and OTP verification.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/signup", hb.SignupHandler)
	r.POST("/login", hb.LoginHandler)
	r.POST("/verify-otp", hb.VerifyOTPHandler)
}

// RegisterUserRoutes registers profile endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/user/:email", hb.GetUserByEmailHandler)
	r.PUT("/user/:email/fcm-token", hb.UpdateFCMTokenHandler)
}

// RegisterCourseRoutes registers the medical course endpoints.
func RegisterCourseRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/medical-course", hb.CreateCourseHandler)
	r.GET("/medical-courses/:email", hb.ListCoursesHandler)
}

// RegisterReminderRoutes registers the reminder scheduling endpoint.
func RegisterReminderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/reminders", hb.ScheduleRemindersHandler)
}

// RegisterHealthRoute registers liveness endpoints.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello World!")
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "checks": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterCourseRoutes(r, hb)
	RegisterReminderRoutes(r, hb)
	RegisterHealthRoute(r)
}
