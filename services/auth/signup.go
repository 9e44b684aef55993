package auth

import (
	"medtrack/models"
	"medtrack/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Signup validates the registration payload, hashes the password and creates
// the credential record with otp=null and verified=false.
func (s *DefaultAuthService) Signup(req SignupRequest) (*models.UserProfile, error) {
	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		utils.GetLogger().Error("Signup: failed to check for existing user", zap.Error(err))
		return nil, ErrStoreFailure
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Signup: failed to hash password", zap.Error(err))
		return nil, ErrStoreFailure
	}

	cred := models.UserCredential{
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		DOB:          req.DOB,
		MobileNo:     req.MobileNo,
		PasswordHash: string(hashed),
		OTP:          nil,
		Verified:     false,
	}

	if err := s.Repo.Create(&cred); err != nil {
		utils.GetLogger().Error("Signup: failed to create user", zap.Error(err))
		return nil, ErrStoreFailure
	}

	profile := cred.Profile()
	return &profile, nil
}
