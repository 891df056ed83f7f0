package postgres

import (
	"context"

	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *productRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	var product domain.Product
	err := r.db.WithContext(ctx).
		Preload("Brand").Preload("Category").
		First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	var product domain.Product
	err := r.db.WithContext(ctx).
		Preload("Brand").Preload("Category").
		First(&product, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	var product domain.Product
	err := r.db.WithContext(ctx).First(&product, "sku = ?", sku).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) List(ctx context.Context, filter domain.ProductFilter, page domain.Pagination) (*domain.PaginatedProducts, error) {
	q := r.db.WithContext(ctx).Model(&domain.Product{})

	if filter.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("name ILIKE ? OR sku ILIKE ? OR description ILIKE ?", like, like, like)
	}
	if filter.BrandID != nil {
		q = q.Where("brand_id = ?", *filter.BrandID)
	}
	if len(filter.CategoryIDs) > 0 {
		q = q.Where("category_id IN ?", filter.CategoryIDs)
	}
	if filter.StockStatus != nil {
		q = q.Where("stock_status = ?", *filter.StockStatus)
	}
	if filter.Featured != nil {
		q = q.Where("is_featured = ?", *filter.Featured)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}

	var products []*domain.Product
	err := q.Preload("Brand").Preload("Category").
		Order("created_at DESC").
		Limit(page.PerPage).
		Offset(page.Offset()).
		Find(&products).Error
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(page.PerPage) - 1) / int64(page.PerPage))
	return &domain.PaginatedProducts{
		Items:      products,
		Total:      total,
		Page:       page.Page,
		PerPage:    page.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Product{}, "id = ?", id).Error
}

func (r *productRepository) CountByCategory(ctx context.Context, categoryIDs []uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Product{}).
		Where("category_id IN ? AND is_active = ?", categoryIDs, true).
		Count(&count).Error
	return count, err
}

func (r *productRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Product{}).
		Where("is_active = ?", true).
		Count(&count).Error
	return count, err
}

func (r *productRepository) CountLowStock(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Product{}).
		Where("is_active = ? AND stock_status IN ?", true,
			[]domain.StockStatus{domain.StockLowStock, domain.StockOutOfStock}).
		Count(&count).Error
	return count, err
}
