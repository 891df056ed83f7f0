package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/domain"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/mailer"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/repository"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type OrderService struct {
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	userRepo     repository.UserRepository
	settingsRepo repository.SettingsRepository
	mail         mailer.Mailer
	log          *logrus.Logger
}

func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, userRepo repository.UserRepository, settingsRepo repository.SettingsRepository, mail mailer.Mailer, log *logrus.Logger) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		userRepo:     userRepo,
		settingsRepo: settingsRepo,
		mail:         mail,
		log:          log,
	}
}

type OrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

type CreateOrderInput struct {
	CustomerID      uuid.UUID
	Items           []OrderItemInput
	ShippingAddress domain.ShippingAddress
	CustomerNote    *string
	Discount        float64
}

// Create prices the order server-side from current product data, applies
// the configured shipping fee and tax rate, decrements stock and emails a
// confirmation. Email failure is logged, never surfaced.
func (s *OrderService) Create(ctx context.Context, input CreateOrderInput) (*domain.Order, error) {
	if len(input.Items) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	customer, err := s.userRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	var (
		items     []domain.OrderItem
		subtotal  float64
		itemCount int
	)
	for _, in := range input.Items {
		if in.Quantity < 1 {
			continue
		}
		product, err := s.productRepo.GetByID(ctx, in.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrProductNotFound
			}
			return nil, err
		}

		total := product.Price * float64(in.Quantity)
		items = append(items, domain.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			ProductSKU:  product.SKU,
			Quantity:    in.Quantity,
			UnitPrice:   product.Price,
			TotalPrice:  total,
		})
		subtotal += total
		itemCount += in.Quantity
	}
	if len(items) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	shipping := settings.ShippingFee
	if settings.FreeShippingThreshold != nil && subtotal >= *settings.FreeShippingThreshold {
		shipping = 0
	}
	tax := subtotal * settings.TaxRate
	total := subtotal + shipping + tax - input.Discount

	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	addrJSON, err := json.Marshal(input.ShippingAddress)
	if err != nil {
		return nil, err
	}

	number, err := s.nextOrderNumber(ctx)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		ID:            uuid.New(),
		OrderNumber:   number,
		CustomerID:    customer.ID,
		CustomerName:  customer.Name,
		CustomerEmail: customer.Email,
		CustomerPhone: customer.Phone,
		Items:         itemsJSON,
		ItemCount:     itemCount,
		Subtotal:      subtotal,
		ShippingCost:  shipping,
		Tax:           tax,
		Discount:      input.Discount,
		Total:         total,
		Currency:      settings.Currency,
		Status:        domain.OrderPending,
		PaymentStatus: domain.PaymentPending,
		ShippingAddr:  addrJSON,
		CustomerNote:  input.CustomerNote,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	for _, item := range items {
		if _, err := s.adjustProductStock(ctx, item.ProductID, -item.Quantity); err != nil {
			s.log.WithError(err).WithField("productId", item.ProductID).Warn("failed to decrement stock")
		}
	}

	if settings.EnableEmailNotifs {
		subject := mailer.OrderConfirmationSubject(order.OrderNumber)
		body := mailer.OrderConfirmationBody(order, items)
		if err := s.mail.Send(ctx, order.CustomerEmail, subject, body); err != nil {
			s.log.WithError(err).WithField("orderNumber", order.OrderNumber).Error("failed to send order confirmation")
		}
	}

	return order, nil
}

func (s *OrderService) Get(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

// GetForUser returns the order only if it belongs to the user or the user
// is an admin.
func (s *OrderService) GetForUser(ctx context.Context, id uuid.UUID, user *domain.PublicUser) (*domain.Order, error) {
	order, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.CustomerID != user.ID && user.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

func (s *OrderService) List(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, error) {
	return s.orderRepo.List(ctx, filter)
}

// UpdateStatus moves an order through its lifecycle, stamping the
// transition timestamps. The confirmed transition re-sends a confirmation
// email.
func (s *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus) (*domain.Order, error) {
	order, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransition(status) {
		return nil, domain.ErrInvalidTransition
	}

	now := time.Now()
	order.Status = status
	switch status {
	case domain.OrderShipped:
		order.ShippedAt = &now
	case domain.OrderDelivered:
		order.DeliveredAt = &now
	case domain.OrderRefunded:
		order.PaymentStatus = domain.PaymentRefunded
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	if status == domain.OrderConfirmed {
		var items []domain.OrderItem
		if err := json.Unmarshal(order.Items, &items); err == nil {
			subject := mailer.OrderConfirmationSubject(order.OrderNumber)
			if err := s.mail.Send(ctx, order.CustomerEmail, subject, mailer.OrderConfirmationBody(order, items)); err != nil {
				s.log.WithError(err).WithField("orderNumber", order.OrderNumber).Error("failed to send order confirmation")
			}
		}
	}

	return order, nil
}

func (s *OrderService) MarkPaid(ctx context.Context, id uuid.UUID, method string) (*domain.Order, error) {
	order, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if order.Status == domain.OrderCancelled || order.Status == domain.OrderRefunded {
		return nil, domain.ErrInvalidTransition
	}

	now := time.Now()
	order.PaymentStatus = domain.PaymentPaid
	order.PaymentMethod = &method
	order.PaidAt = &now

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// nextOrderNumber is ORD-<year>-<seq>, zero-padded to three digits.
func (s *OrderService) nextOrderNumber(ctx context.Context) (string, error) {
	year := time.Now().Year()
	count, err := s.orderRepo.CountForYear(ctx, year)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("ORD-%d-%03d", year, count+1), nil
}

func (s *OrderService) adjustProductStock(ctx context.Context, productID uuid.UUID, delta int) (*domain.Product, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
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
