package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/domain"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/repository"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

type ProductService struct {
	productRepo repository.ProductRepository
	categorySvc *CategoryService
}

func NewProductService(productRepo repository.ProductRepository, categorySvc *CategoryService) *ProductService {
	return &ProductService{productRepo: productRepo, categorySvc: categorySvc}
}

type ProductInput struct {
	SKU               string
	Name              string
	Slug              string
	Description       *string
	ShortDescription  *string
	BrandID           *uuid.UUID
	CategoryID        *uuid.UUID
	Price             *float64
	CompareAtPrice    *float64
	Currency          *domain.Currency
	StockQuantity     *int
	LowStockThreshold *int
	Images            []domain.ProductImage
	Specifications    []domain.ProductSpecification
	Tags              []string
	IsActive          *bool
	IsFeatured        *bool
}

type ListProductsInput struct {
	Search      string
	BrandID     *uuid.UUID
	CategoryID  *uuid.UUID
	StockStatus *domain.StockStatus
	Featured    *bool
	PublicOnly  bool
	Page        int
	PerPage     int
}

func (s *ProductService) Create(ctx context.Context, input ProductInput) (*domain.Product, error) {
	if _, err := s.productRepo.GetBySKU(ctx, input.SKU); err == nil {
		return nil, domain.ErrSKUExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	slug := input.Slug
	if slug == "" {
		slug = domain.Slugify(input.Name)
	}
	if _, err := s.productRepo.GetBySlug(ctx, slug); err == nil {
		return nil, domain.ErrSlugExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	product := &domain.Product{
		ID:                uuid.New(),
		SKU:               input.SKU,
		Name:              input.Name,
		Slug:              slug,
		Description:       input.Description,
		ShortDescription:  input.ShortDescription,
		BrandID:           input.BrandID,
		CategoryID:        input.CategoryID,
		Currency:          domain.CurrencyUSD,
		LowStockThreshold: 5,
		IsActive:          true,
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	product.CompareAtPrice = input.CompareAtPrice
	if input.Currency != nil {
		product.Currency = *input.Currency
	}
	if input.StockQuantity != nil {
		product.StockQuantity = *input.StockQuantity
	}
	if input.LowStockThreshold != nil {
		product.LowStockThreshold = *input.LowStockThreshold
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if input.IsFeatured != nil {
		product.IsFeatured = *input.IsFeatured
	}
	product.StockStatus = domain.CalculateStockStatus(product.StockQuantity, product.LowStockThreshold)

	var err error
	if product.Images, err = toJSON(input.Images, "[]"); err != nil {
		return nil, err
	}
	if product.Specifications, err = toJSON(input.Specifications, "[]"); err != nil {
		return nil, err
	}
	if product.Tags, err = toJSON(input.Tags, "[]"); err != nil {
		return nil, err
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

// GetByIDOrSlug resolves a path segment that may be either a product UUID
// or a slug.
func (s *ProductService) GetByIDOrSlug(ctx context.Context, idOrSlug string) (*domain.Product, error) {
	if id, err := uuid.Parse(idOrSlug); err == nil {
		return s.Get(ctx, id)
	}
	product, err := s.productRepo.GetBySlug(ctx, idOrSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *ProductService) List(ctx context.Context, input ListProductsInput) (*domain.PaginatedProducts, error) {
	filter := domain.ProductFilter{
		Search:      input.Search,
		BrandID:     input.BrandID,
		StockStatus: input.StockStatus,
		Featured:    input.Featured,
		ActiveOnly:  input.PublicOnly,
	}

	if input.CategoryID != nil {
		ids, err := s.categorySvc.CategoryAndChildIDs(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		filter.CategoryIDs = ids
	}

	page := domain.Pagination{Page: input.Page, PerPage: input.PerPage}
	if page.Page < 1 {
		page.Page = 1
	}
	if page.PerPage < 1 {
		page.PerPage = defaultPerPage
	}
	if page.PerPage > maxPerPage {
		page.PerPage = maxPerPage
	}

	return s.productRepo.List(ctx, filter, page)
}

func (s *ProductService) Update(ctx context.Context, id uuid.UUID, input ProductInput) (*domain.Product, error) {
	product, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.SKU != "" && input.SKU != product.SKU {
		if _, err := s.productRepo.GetBySKU(ctx, input.SKU); err == nil {
			return nil, domain.ErrSKUExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		product.SKU = input.SKU
	}
	if input.Name != "" {
		product.Name = input.Name
	}
	if input.Slug != "" && input.Slug != product.Slug {
		if _, err := s.productRepo.GetBySlug(ctx, input.Slug); err == nil {
			return nil, domain.ErrSlugExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		product.Slug = input.Slug
	}
	if input.Description != nil {
		product.Description = input.Description
	}
	if input.ShortDescription != nil {
		product.ShortDescription = input.ShortDescription
	}
	if input.BrandID != nil {
		product.BrandID = input.BrandID
	}
	if input.CategoryID != nil {
		product.CategoryID = input.CategoryID
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.CompareAtPrice != nil {
		product.CompareAtPrice = input.CompareAtPrice
	}
	if input.Currency != nil {
		product.Currency = *input.Currency
	}
	if input.StockQuantity != nil {
		product.StockQuantity = *input.StockQuantity
	}
	if input.LowStockThreshold != nil {
		product.LowStockThreshold = *input.LowStockThreshold
	}
	if input.Images != nil {
		if product.Images, err = toJSON(input.Images, "[]"); err != nil {
			return nil, err
		}
	}
	if input.Specifications != nil {
		if product.Specifications, err = toJSON(input.Specifications, "[]"); err != nil {
			return nil, err
		}
	}
	if input.Tags != nil {
		if product.Tags, err = toJSON(input.Tags, "[]"); err != nil {
			return nil, err
		}
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if input.IsFeatured != nil {
		product.IsFeatured = *input.IsFeatured
	}
	product.StockStatus = domain.CalculateStockStatus(product.StockQuantity, product.LowStockThreshold)

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// AdjustStock applies a signed delta to the stock quantity and re-derives
// the stock status. Quantity never goes below zero.
func (s *ProductService) AdjustStock(ctx context.Context, id uuid.UUID, delta int) (*domain.Product, error) {
	product, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	product.StockQuantity += delta
	if product.StockQuantity < 0 {
		product.StockQuantity = 0
	}
	product.StockStatus = domain.CalculateStockStatus(product.StockQuantity, product.LowStockThreshold)

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, id)
}

func toJSON(v any, empty string) (datatypes.JSON, error) {
	if v == nil {
		return datatypes.JSON([]byte(empty)), nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}
