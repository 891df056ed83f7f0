package postgres

import (
	"context"
	"errors"

	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/domain"
	"gorm.io/gorm"
)

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *settingsRepository {
	return &settingsRepository{db: db}
}

// Get returns the singleton settings row, creating it with defaults on
// first access.
func (r *settingsRepository) Get(ctx context.Context) (*domain.SiteSettings, error) {
	var settings domain.SiteSettings
	err := r.db.WithContext(ctx).First(&settings, "id = ?", domain.SiteSettingsID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		defaults := domain.DefaultSiteSettings()
		if err := r.db.WithContext(ctx).Create(defaults).Error; err != nil {
			return nil, err
		}
		return defaults, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) Update(ctx context.Context, settings *domain.SiteSettings) error {
	settings.ID = domain.SiteSettingsID
	return r.db.WithContext(ctx).Save(settings).Error
}
