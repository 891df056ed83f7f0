package repository

import (
	"context"
	"time"

	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/domain"
	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	List(ctx context.Context, role *domain.Role) ([]*domain.User, error)
	CountCustomers(ctx context.Context) (int64, error)
}

type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	GetByToken(ctx context.Context, token string) (*domain.Session, error)
	DeleteByToken(ctx context.Context, token string) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type BrandRepository interface {
	Create(ctx context.Context, brand *domain.Brand) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Brand, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Brand, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.Brand, error)
	Update(ctx context.Context, brand *domain.Brand) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.Category, error)
	ChildIDs(ctx context.Context, parentID uuid.UUID) ([]uuid.UUID, error)
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)
	GetBySKU(ctx context.Context, sku string) (*domain.Product, error)
	List(ctx context.Context, filter domain.ProductFilter, page domain.Pagination) (*domain.PaginatedProducts, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByCategory(ctx context.Context, categoryIDs []uuid.UUID) (int64, error)
	CountActive(ctx context.Context) (int64, error)
	CountLowStock(ctx context.Context) (int64, error)
}

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	List(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, error)
	Update(ctx context.Context, order *domain.Order) error
	CountForYear(ctx context.Context, year int) (int64, error)
	CountByStatus(ctx context.Context, status domain.OrderStatus) (int64, error)
	Count(ctx context.Context) (int64, error)
	SumRevenue(ctx context.Context) (float64, error)
}

type QuoteRepository interface {
	Create(ctx context.Context, quote *domain.Quote) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Quote, error)
	List(ctx context.Context, filter domain.QuoteFilter) ([]*domain.Quote, error)
	Update(ctx context.Context, quote *domain.Quote) error
	CountForYear(ctx context.Context, year int) (int64, error)
	CountByStatus(ctx context.Context, status domain.QuoteStatus) (int64, error)
}

type MessageRepository interface {
	Create(ctx context.Context, msg *domain.ContactMessage) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ContactMessage, error)
	List(ctx context.Context, filter domain.MessageFilter) ([]*domain.ContactMessage, error)
	Update(ctx context.Context, msg *domain.ContactMessage) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByStatus(ctx context.Context, status domain.MessageStatus) (int64, error)
}

type SettingsRepository interface {
	Get(ctx context.Context) (*domain.SiteSettings, error)
	Update(ctx context.Context, settings *domain.SiteSettings) error
}

type Repositories struct {
	User     UserRepository
	Session  SessionRepository
	Brand    BrandRepository
	Category CategoryRepository
	Product  ProductRepository
	Order    OrderRepository
	Quote    QuoteRepository
	Message  MessageRepository
	Settings SettingsRepository
}
