package auth

import (
	"medtrack/utils"

	"go.uber.org/zap"
)

// VerifyOTP validates the submitted code against the stored challenge.
//
// Exact string comparison, no normalization. On match the stored code is
// cleared, which makes it single-use: a replay after success compares a
// non-null submission against null and fails. Failed attempts leave the
// challenge outstanding; attempts are unbounded.
func (s *DefaultAuthService) VerifyOTP(email, code string) error {
	cred, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("VerifyOTP: failed to fetch user", zap.Error(err))
		return ErrStoreFailure
	}
	if cred == nil {
		return ErrNotFound
	}

	if cred.OTP == nil || *cred.OTP != code {
		return ErrInvalidCode
	}

	if err := s.Repo.ClearOTP(email); err != nil {
		utils.GetLogger().Error("VerifyOTP: failed to clear OTP", zap.Error(err))
		return ErrStoreFailure
	}
	return nil
}
