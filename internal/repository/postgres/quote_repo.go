package postgres

import (
	"context"
	"fmt"

	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type quoteRepository struct {
	db *gorm.DB
}

func NewQuoteRepository(db *gorm.DB) *quoteRepository {
	return &quoteRepository{db: db}
}

func (r *quoteRepository) Create(ctx context.Context, quote *domain.Quote) error {
	return r.db.WithContext(ctx).Create(quote).Error
}

func (r *quoteRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Quote, error) {
	var quote domain.Quote
	err := r.db.WithContext(ctx).First(&quote, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

func (r *quoteRepository) List(ctx context.Context, filter domain.QuoteFilter) ([]*domain.Quote, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("quote_number ILIKE ? OR customer_name ILIKE ? OR customer_email ILIKE ?", like, like, like)
	}
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	if filter.CustomerID != nil {
		q = q.Where("customer_id = ?", *filter.CustomerID)
	}

	var quotes []*domain.Quote
	if err := q.Find(&quotes).Error; err != nil {
		return nil, err
	}
	return quotes, nil
}

func (r *quoteRepository) Update(ctx context.Context, quote *domain.Quote) error {
	return r.db.WithContext(ctx).Save(quote).Error
}

func (r *quoteRepository) CountForYear(ctx context.Context, year int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Quote{}).
		Where("quote_number LIKE ?", fmt.Sprintf("QTE-%d-%%", year)).
		Count(&count).Error
	return count, err
}

func (r *quoteRepository) CountByStatus(ctx context.Context, status domain.QuoteStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Quote{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
