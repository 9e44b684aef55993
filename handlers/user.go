package handlers

import (
	"errors"
	"net/http"

	"medtrack/services/auth"
	"medtrack/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes profile endpoints.
type UserHandler struct {
	Service auth.AuthService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc auth.AuthService) *UserHandler {
	return &UserHandler{Service: svc}
}

// GetUserByEmailHandler handles GET /user/:email. The returned profile is
// what the client caches locally as its session marker.
func (h *UserHandler) GetUserByEmailHandler(c *gin.Context) {
	logger := getLogger(c)
	email := c.Param("email")

	profile, err := h.Service.FetchProfile(email)
	if err != nil {
		if errors.Is(err, auth.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "User not found", "")
			return
		}
		logger.Error("Failed to fetch profile", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Error fetching user", "")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateFCMTokenHandler handles PUT /user/:email/fcm-token.
func (h *UserHandler) UpdateFCMTokenHandler(c *gin.Context) {
	logger := getLogger(c)
	email := c.Param("email")

	var req struct {
		FCMToken string `json:"fcmToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid FCM token request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	if err := h.Service.SetFCMToken(email, req.FCMToken); err != nil {
		if errors.Is(err, auth.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "User not found", "")
			return
		}
		logger.Error("Failed to store FCM token", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "FCM token updated"})
}
