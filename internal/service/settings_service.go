package service

import (
	"context"
	"time"

	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/cache"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/domain"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/repository"
	"github.com/sirupsen/logrus"
)

const (
	settingsCacheKey = "motico:settings"
	settingsCacheTTL = 5 * time.Minute
)

type SettingsService struct {
	settingsRepo repository.SettingsRepository
	cache        cache.Cache
	log          *logrus.Logger
}

func NewSettingsService(settingsRepo repository.SettingsRepository, c cache.Cache, log *logrus.Logger) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo, cache: c, log: log}
}

// Get is read-through cached. Any cache error counts as a miss; the store
// is the source of truth.
func (s *SettingsService) Get(ctx context.Context) (*domain.SiteSettings, error) {
	var cached domain.SiteSettings
	if err := s.cache.GetJSON(ctx, settingsCacheKey, &cached); err == nil {
		return &cached, nil
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetJSON(ctx, settingsCacheKey, settings, settingsCacheTTL); err != nil {
		s.log.WithError(err).Debug("failed to cache settings")
	}
	return settings, nil
}

func (s *SettingsService) Update(ctx context.Context, settings *domain.SiteSettings) (*domain.SiteSettings, error) {
	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}
	if err := s.cache.Delete(ctx, settingsCacheKey); err != nil {
		s.log.WithError(err).Debug("failed to invalidate settings cache")
	}
	return settings, nil
}
