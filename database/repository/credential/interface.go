package credentialRepo

import "medtrack/models"

// CredentialRepository defines data access for user credential records.
// The record is the only shared mutable auth state: SetOTP overwrites any
// outstanding code (last writer wins), ClearOTP consumes it.
type CredentialRepository interface {
	// GetByEmail retrieves a credential record by email. Returns (nil, nil)
	// when no such user exists.
	GetByEmail(email string) (*models.UserCredential, error)
	// Create inserts a new credential record.
	Create(cred *models.UserCredential) error
	// SetOTP stores the given code as the user's outstanding OTP.
	SetOTP(email, otp string) error
	// ClearOTP nulls the outstanding OTP and marks the user verified.
	ClearOTP(email string) error
	// SetFCMToken stores the push token for the user.
	SetFCMToken(email, token string) error
}
