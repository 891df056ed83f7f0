package service

import (
	"context"
	"errors"

	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/domain"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BrandService struct {
	brandRepo repository.BrandRepository
}

func NewBrandService(brandRepo repository.BrandRepository) *BrandService {
	return &BrandService{brandRepo: brandRepo}
}

type BrandInput struct {
	Name            string
	Slug            string
	Logo            *string
	Description     *string
	Website         *string
	CountryOfOrigin *string
	IsActive        *bool
	SortOrder       *int
}

func (s *BrandService) Create(ctx context.Context, input BrandInput) (*domain.Brand, error) {
	slug := input.Slug
	if slug == "" {
		slug = domain.Slugify(input.Name)
	}

	if _, err := s.brandRepo.GetBySlug(ctx, slug); err == nil {
		return nil, domain.ErrSlugExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	brand := &domain.Brand{
		ID:              uuid.New(),
		Name:            input.Name,
		Slug:            slug,
		Logo:            input.Logo,
		Description:     input.Description,
		Website:         input.Website,
		CountryOfOrigin: input.CountryOfOrigin,
		IsActive:        true,
	}
	if input.IsActive != nil {
		brand.IsActive = *input.IsActive
	}
	if input.SortOrder != nil {
		brand.SortOrder = *input.SortOrder
	}

	if err := s.brandRepo.Create(ctx, brand); err != nil {
		return nil, err
	}
	return brand, nil
}

func (s *BrandService) Get(ctx context.Context, id uuid.UUID) (*domain.Brand, error) {
	brand, err := s.brandRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBrandNotFound
		}
		return nil, err
	}
	return brand, nil
}

// List returns active brands only when publicOnly is set; the admin view
// sees everything.
func (s *BrandService) List(ctx context.Context, publicOnly bool) ([]*domain.Brand, error) {
	return s.brandRepo.List(ctx, publicOnly)
}

func (s *BrandService) Update(ctx context.Context, id uuid.UUID, input BrandInput) (*domain.Brand, error) {
	brand, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		brand.Name = input.Name
	}
	if input.Slug != "" && input.Slug != brand.Slug {
		if _, err := s.brandRepo.GetBySlug(ctx, input.Slug); err == nil {
			return nil, domain.ErrSlugExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		brand.Slug = input.Slug
	}
	if input.Logo != nil {
		brand.Logo = input.Logo
	}
	if input.Description != nil {
		brand.Description = input.Description
	}
	if input.Website != nil {
		brand.Website = input.Website
	}
	if input.CountryOfOrigin != nil {
		brand.CountryOfOrigin = input.CountryOfOrigin
	}
	if input.IsActive != nil {
		brand.IsActive = *input.IsActive
	}
	if input.SortOrder != nil {
		brand.SortOrder = *input.SortOrder
	}

	if err := s.brandRepo.Update(ctx, brand); err != nil {
		return nil, err
	}
	return brand, nil
}

func (s *BrandService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.brandRepo.Delete(ctx, id)
}
