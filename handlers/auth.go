package handlers

import (
	"errors"
	"net/http"

	"medtrack/services/auth"
	"medtrack/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes the signup, login and OTP verification endpoints.
type AuthHandler struct {
	Service auth.AuthService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc auth.AuthService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

// SignupHandler handles POST /signup.
func (h *AuthHandler) SignupHandler(c *gin.Context) {
	logger := getLogger(c)

	var req auth.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid signup request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	profile, err := h.Service.Signup(req)
	if err != nil {
		if errors.Is(err, auth.ErrEmailExists) {
			utils.JSONError(c, http.StatusBadRequest, "User already exists, try logging in!!", "")
			return
		}
		logger.Error("Signup failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    profile,
	})
}

// LoginHandler handles POST /login: password check plus OTP issue.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid login request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	if err := h.Service.RequestLogin(req.Email, req.Password); err != nil {
		switch {
		case errors.Is(err, auth.ErrNotFound):
			utils.JSONError(c, http.StatusBadRequest, "user not found", "")
		case errors.Is(err, auth.ErrInvalidCredential):
			utils.JSONError(c, http.StatusBadRequest, "Incorrect password", "")
		case errors.Is(err, auth.ErrDeliveryFailed):
			utils.JSONError(c, http.StatusInternalServerError, "Failed to send OTP, please try again.", "")
		default:
			logger.Error("Login failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP sent, please verify your email"})
}

// VerifyOTPHandler handles POST /verify-otp.
func (h *AuthHandler) VerifyOTPHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Email string `json:"email" binding:"required"`
		OTP   string `json:"otp" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid verify request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	if err := h.Service.VerifyOTP(req.Email, req.OTP); err != nil {
		switch {
		case errors.Is(err, auth.ErrNotFound):
			utils.JSONError(c, http.StatusBadRequest, "no such user", "")
		case errors.Is(err, auth.ErrInvalidCode):
			utils.JSONError(c, http.StatusBadRequest, "Invalid OTP", "")
		default:
			logger.Error("OTP verification failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email verified successfully"})
}
