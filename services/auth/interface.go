package auth

import (
	credentialRepo "medtrack/database/repository/credential"
	"medtrack/models"
	"medtrack/services/mailer"

	"github.com/go-redis/redis/v8"
)

// AuthService defines the OTP lifecycle and session bootstrap operations.
//
// Per-user challenge state machine: NoChallenge -> ChallengeIssued on a
// successful RequestLogin; back to NoChallenge when VerifyOTP consumes the
// code. A failed verification leaves the challenge outstanding, and a
// repeated RequestLogin overwrites it. No expiry and no attempt bound.
type AuthService interface {
	// Signup creates a credential record with no outstanding challenge.
	Signup(req SignupRequest) (*models.UserProfile, error)
	// RequestLogin checks the password, issues a fresh 6-digit code, stores
	// it on the record and hands it to the delivery channel.
	RequestLogin(email, password string) error
	// VerifyOTP validates the submitted code against the stored one and
	// consumes it on match.
	VerifyOTP(email, code string) error
	// FetchProfile returns the non-secret fields for the client to cache as
	// its session marker.
	FetchProfile(email string) (*models.UserProfile, error)
	// SetFCMToken stores a push token to target reminders at.
	SetFCMToken(email, token string) error
}

// SignupRequest carries the registration payload.
type SignupRequest struct {
	Email     string `json:"email" binding:"required"`
	FirstName string `json:"fname" binding:"required"`
	LastName  string `json:"lname" binding:"required"`
	DOB       string `json:"dob"`
	MobileNo  string `json:"mob"`
	Password  string `json:"password" binding:"required"`
}

// DefaultAuthService is the production implementation. Cache is optional;
// when nil every profile read goes straight to the repository.
type DefaultAuthService struct {
	Repo   credentialRepo.CredentialRepository
	Mailer mailer.Mailer
	Cache  *redis.Client
}
