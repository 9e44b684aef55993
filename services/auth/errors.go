package auth

import "errors"

// Error taxonomy for the authentication flow. Handlers map these onto HTTP
// statuses; everything else surfaces as a generic store failure.
var (
	// ErrNotFound means no credential record exists for the email.
	ErrNotFound = errors.New("user not found")
	// ErrInvalidCredential means the password hash comparison failed.
	ErrInvalidCredential = errors.New("incorrect password")
	// ErrInvalidCode means the submitted OTP does not match the stored one.
	ErrInvalidCode = errors.New("invalid OTP")
	// ErrEmailExists means signup hit an already-registered email.
	ErrEmailExists = errors.New("user already exists, try logging in")
	// ErrDeliveryFailed means the OTP mail could not be sent. The stored OTP
	// is left in place so a retried login re-sends without a fresh mismatch.
	ErrDeliveryFailed = errors.New("failed to send OTP, please try again")
	// ErrStoreFailure is a fatal persistence fault, surfaced as a 500.
	ErrStoreFailure = errors.New("internal store failure")
)
