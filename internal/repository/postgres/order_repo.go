package postgres

import (
	"context"
	"fmt"

	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *orderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	var order domain.Order
	err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) List(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("order_number ILIKE ? OR customer_name ILIKE ? OR customer_email ILIKE ?", like, like, like)
	}
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	if filter.PaymentStatus != nil {
		q = q.Where("payment_status = ?", *filter.PaymentStatus)
	}
	if filter.CustomerID != nil {
		q = q.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.DateFrom != nil {
		q = q.Where("created_at >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		q = q.Where("created_at <= ?", *filter.DateTo)
	}

	var orders []*domain.Order
	if err := q.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) Update(ctx context.Context, order *domain.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *orderRepository) CountForYear(ctx context.Context, year int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Order{}).
		Where("order_number LIKE ?", fmt.Sprintf("ORD-%d-%%", year)).
		Count(&count).Error
	return count, err
}

func (r *orderRepository) CountByStatus(ctx context.Context, status domain.OrderStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Order{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *orderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Order{}).Count(&count).Error
	return count, err
}

// SumRevenue totals paid orders only.
func (r *orderRepository) SumRevenue(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&domain.Order{}).
		Where("payment_status = ?", domain.PaymentPaid).
		Select("COALESCE(SUM(total), 0)").
		Scan(&total).Error
	return total, err
}
