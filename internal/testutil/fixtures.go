package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	email    string
	password string
	name     string
	role     domain.Role
	active   bool
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		email:    fmt.Sprintf("user_%s@example.com", uuid.New().String()[:8]),
		password: "testpassword123",
		name:     "Test User",
		role:     domain.RoleCustomer,
		active:   true,
	}
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// WithRole sets the role
func (b *UserBuilder) WithRole(role domain.Role) *UserBuilder {
	b.role = role
	return b
}

// Inactive marks the account deactivated
func (b *UserBuilder) Inactive() *UserBuilder {
	b.active = false
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        b.email,
		PasswordHash: string(hashedPassword),
		Name:         b.name,
		Role:         b.role,
		IsActive:     b.active,
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// SessionBuilder creates session rows directly, bypassing the login flow,
// so tests can control tokens and expiry.
type SessionBuilder struct {
	userID    uuid.UUID
	token     string
	expiresAt time.Time
}

func NewSessionBuilder(userID uuid.UUID) *SessionBuilder {
	return &SessionBuilder{
		userID:    userID,
		token:     randomToken(),
		expiresAt: time.Now().Add(time.Hour),
	}
}

func randomToken() string {
	buf := make([]byte, 32)
	rand.Read(buf)
	return hex.EncodeToString(buf)
}

// WithToken sets the token
func (b *SessionBuilder) WithToken(token string) *SessionBuilder {
	b.token = token
	return b
}

// ExpiredAt sets the expiry timestamp
func (b *SessionBuilder) ExpiredAt(at time.Time) *SessionBuilder {
	b.expiresAt = at
	return b
}

// Build creates the session in the database
func (b *SessionBuilder) Build(t *testing.T, db *gorm.DB) *domain.Session {
	t.Helper()

	session := &domain.Session{
		ID:        uuid.New(),
		UserID:    b.userID,
		Token:     b.token,
		ExpiresAt: b.expiresAt,
	}

	if err := db.Create(session).Error; err != nil {
		t.Fatalf("failed to create session: %v", err)
	}

	return session
}

// ProductBuilder creates test products with a builder pattern
type ProductBuilder struct {
	sku      string
	name     string
	price    float64
	stock    int
	active   bool
	featured bool
}

func NewProductBuilder() *ProductBuilder {
	suffix := uuid.New().String()[:8]
	return &ProductBuilder{
		sku:    fmt.Sprintf("SKU-%s", suffix),
		name:   fmt.Sprintf("Test Product %s", suffix),
		price:  19.99,
		stock:  10,
		active: true,
	}
}

// WithSKU sets the SKU
func (b *ProductBuilder) WithSKU(sku string) *ProductBuilder {
	b.sku = sku
	return b
}

// WithName sets the name
func (b *ProductBuilder) WithName(name string) *ProductBuilder {
	b.name = name
	return b
}

// WithPrice sets the unit price
func (b *ProductBuilder) WithPrice(price float64) *ProductBuilder {
	b.price = price
	return b
}

// WithStock sets the stock quantity
func (b *ProductBuilder) WithStock(stock int) *ProductBuilder {
	b.stock = stock
	return b
}

// Featured marks the product featured
func (b *ProductBuilder) Featured() *ProductBuilder {
	b.featured = true
	return b
}

// Inactive marks the product inactive
func (b *ProductBuilder) Inactive() *ProductBuilder {
	b.active = false
	return b
}

// Build creates the product in the database
func (b *ProductBuilder) Build(t *testing.T, db *gorm.DB) *domain.Product {
	t.Helper()

	product := &domain.Product{
		ID:                uuid.New(),
		SKU:               b.sku,
		Name:              b.name,
		Slug:              domain.Slugify(b.name),
		Price:             b.price,
		Currency:          domain.CurrencyUSD,
		StockQuantity:     b.stock,
		LowStockThreshold: 5,
		Images:            datatypes.JSON([]byte(`[]`)),
		Specifications:    datatypes.JSON([]byte(`[]`)),
		Tags:              datatypes.JSON([]byte(`[]`)),
		IsActive:          b.active,
		IsFeatured:        b.featured,
	}
	product.StockStatus = domain.CalculateStockStatus(product.StockQuantity, product.LowStockThreshold)

	if err := db.Create(product).Error; err != nil {
		t.Fatalf("failed to create product: %v", err)
	}

	return product
}
