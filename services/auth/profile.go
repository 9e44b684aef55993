package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"medtrack/models"
	"medtrack/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const profileCacheTTL = 15 * time.Minute

// FetchProfile returns the client-safe view of the credential record. The
// client persists it locally as the active-session marker; there is no
// server-issued token and no expiry.
//
// A Redis cache fronts the Mongo read. Profiles are immutable in this flow,
// so a short TTL is the only invalidation needed.
func (s *DefaultAuthService) FetchProfile(email string) (*models.UserProfile, error) {
	if cached := s.cachedProfile(email); cached != nil {
		return cached, nil
	}

	cred, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("FetchProfile: failed to fetch user", zap.Error(err))
		return nil, ErrStoreFailure
	}
	if cred == nil {
		return nil, ErrNotFound
	}

	profile := cred.Profile()
	s.cacheProfile(&profile)
	return &profile, nil
}

// SetFCMToken stores the device push token used to target reminder pushes.
func (s *DefaultAuthService) SetFCMToken(email, token string) error {
	cred, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("SetFCMToken: failed to fetch user", zap.Error(err))
		return ErrStoreFailure
	}
	if cred == nil {
		return ErrNotFound
	}
	if err := s.Repo.SetFCMToken(email, token); err != nil {
		utils.GetLogger().Error("SetFCMToken: failed to store token", zap.Error(err))
		return ErrStoreFailure
	}
	return nil
}

func profileCacheKey(email string) string {
	return fmt.Sprintf("profile:%s", email)
}

func (s *DefaultAuthService) cachedProfile(email string) *models.UserProfile {
	if s.Cache == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	raw, err := s.Cache.Get(ctx, profileCacheKey(email)).Result()
	if err != nil {
		if err != redis.Nil {
			utils.GetLogger().Warn("FetchProfile: cache read failed", zap.Error(err))
		}
		return nil
	}
	var profile models.UserProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return nil
	}
	return &profile
}

func (s *DefaultAuthService) cacheProfile(profile *models.UserProfile) {
	if s.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	raw, err := json.Marshal(profile)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, profileCacheKey(profile.Email), raw, profileCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("FetchProfile: cache write failed", zap.Error(err))
	}
}
