package postgres

import (
	"context"

	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type brandRepository struct {
	db *gorm.DB
}

func NewBrandRepository(db *gorm.DB) *brandRepository {
	return &brandRepository{db: db}
}

func (r *brandRepository) Create(ctx context.Context, brand *domain.Brand) error {
	return r.db.WithContext(ctx).Create(brand).Error
}

func (r *brandRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Brand, error) {
	var brand domain.Brand
	err := r.db.WithContext(ctx).First(&brand, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *brandRepository) GetBySlug(ctx context.Context, slug string) (*domain.Brand, error) {
	var brand domain.Brand
	err := r.db.WithContext(ctx).First(&brand, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *brandRepository) List(ctx context.Context, activeOnly bool) ([]*domain.Brand, error) {
	q := r.db.WithContext(ctx).Order("sort_order ASC, name ASC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var brands []*domain.Brand
	if err := q.Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

func (r *brandRepository) Update(ctx context.Context, brand *domain.Brand) error {
	return r.db.WithContext(ctx).Save(brand).Error
}

func (r *brandRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Brand{}, "id = ?", id).Error
}
