package handlers

import (
	"net/http"

	"medtrack/services/course"
	"medtrack/services/reminder"
	"medtrack/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReminderHandler exposes the explicit "set reminder" endpoint.
type ReminderHandler struct {
	Courses   course.CourseService
	Scheduler reminder.ReminderScheduler
}

// NewReminderHandler creates a ReminderHandler.
func NewReminderHandler(courses course.CourseService, scheduler reminder.ReminderScheduler) *ReminderHandler {
	return &ReminderHandler{Courses: courses, Scheduler: scheduler}
}

// ScheduleRemindersHandler handles POST /reminders. It replaces the live
// trigger set for one medication of a course. Partial registration failures
// surface as one aggregate error; successful registrations stay in place.
func (h *ReminderHandler) ScheduleRemindersHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Email        string `json:"email" binding:"required"`
		CourseID     string `json:"courseId" binding:"required"`
		MedicationID string `json:"medicationId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid reminder request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	courseDoc, err := h.Courses.GetCourse(req.CourseID)
	if err != nil {
		logger.Error("Failed to fetch course", zap.String("courseId", req.CourseID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Error fetching medical course", "")
		return
	}
	if courseDoc == nil || courseDoc.Email != req.Email {
		utils.JSONError(c, http.StatusNotFound, "No such medical course", "")
		return
	}

	for _, med := range courseDoc.Medications {
		if med.ID != req.MedicationID {
			continue
		}
		if err := h.Scheduler.ScheduleReminders(c.Request.Context(), *courseDoc, med); err != nil {
			logger.Error("Reminder scheduling failed",
				zap.String("medicationId", med.ID), zap.Error(err))
			utils.JSONError(c, http.StatusBadGateway, "Failed to schedule some reminders", err.Error())
			return
		}
		c.JSON(http.StatusAccepted, gin.H{"message": "Reminders scheduled"})
		return
	}

	utils.JSONError(c, http.StatusNotFound, "No such medication in this course", "")
}
