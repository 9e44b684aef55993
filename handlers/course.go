package handlers

import (
	"net/http"

	"medtrack/services/course"
	"medtrack/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CourseHandler exposes the medical course endpoints.
type CourseHandler struct {
	Service course.CourseService
}

// NewCourseHandler creates a CourseHandler.
func NewCourseHandler(svc course.CourseService) *CourseHandler {
	return &CourseHandler{Service: svc}
}

// CreateCourseHandler handles POST /medical-course.
func (h *CourseHandler) CreateCourseHandler(c *gin.Context) {
	logger := getLogger(c)

	var req course.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid course request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	created, err := h.Service.CreateCourse(req)
	if err != nil {
		if ve, ok := course.AsValidationError(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Validation error",
				"errors":  ve.Fields,
			})
			return
		}
		logger.Error("Failed to create course", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Error creating medical course", "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Medical course created successfully",
		"data":    created,
	})
}

// ListCoursesHandler handles GET /medical-courses/:email. Courses come back
// newest first, each annotated with status and days remaining.
func (h *CourseHandler) ListCoursesHandler(c *gin.Context) {
	logger := getLogger(c)
	email := c.Param("email")

	views, err := h.Service.ListCourses(email)
	if err != nil {
		logger.Error("Failed to list courses", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Error fetching medical courses", "")
		return
	}
	if len(views) == 0 {
		utils.JSONError(c, http.StatusNotFound, "No medical courses found for this email", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Medical courses retrieved successfully",
		"data":    views,
	})
}
