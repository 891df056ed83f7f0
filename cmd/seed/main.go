package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/config"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/domain"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/logger"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/repository/postgres"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Seeds an admin account, a demo customer and a small starter catalog.
// Safe to re-run: existing rows are left alone.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.Environment)

	db, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}

	repos := postgres.NewRepositories(db)
	ctx := context.Background()

	users := []struct {
		email    string
		password string
		name     string
		role     domain.Role
	}{
		{"admin@moticosolutions.com", "admin123", "Admin", domain.RoleAdmin},
		{"customer@example.com", "customer123", "Demo Customer", domain.RoleCustomer},
	}
	for _, u := range users {
		if _, err := repos.User.GetByEmail(ctx, u.email); err == nil {
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.WithError(err).Fatal("failed to look up user")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			log.WithError(err).Fatal("failed to hash password")
		}
		user := &domain.User{
			ID:           uuid.New(),
			Email:        u.email,
			PasswordHash: string(hash),
			Name:         u.name,
			Role:         u.role,
			IsActive:     true,
		}
		if err := repos.User.Create(ctx, user); err != nil {
			log.WithError(err).Fatal("failed to create user")
		}
		log.WithField("email", u.email).Info("created user")
	}

	brands := []string{"Bosch", "Makita", "Stanley"}
	brandIDs := make(map[string]uuid.UUID, len(brands))
	for _, name := range brands {
		slug := domain.Slugify(name)
		if existing, err := repos.Brand.GetBySlug(ctx, slug); err == nil {
			brandIDs[name] = existing.ID
			continue
		}
		brand := &domain.Brand{ID: uuid.New(), Name: name, Slug: slug, IsActive: true}
		if err := repos.Brand.Create(ctx, brand); err != nil {
			log.WithError(err).Fatal("failed to create brand")
		}
		brandIDs[name] = brand.ID
	}

	categories := []string{"Power Tools", "Hand Tools", "Safety Equipment"}
	categoryIDs := make(map[string]uuid.UUID, len(categories))
	for _, name := range categories {
		slug := domain.Slugify(name)
		if existing, err := repos.Category.GetBySlug(ctx, slug); err == nil {
			categoryIDs[name] = existing.ID
			continue
		}
		category := &domain.Category{ID: uuid.New(), Name: name, Slug: slug, IsActive: true}
		if err := repos.Category.Create(ctx, category); err != nil {
			log.WithError(err).Fatal("failed to create category")
		}
		categoryIDs[name] = category.ID
	}

	products := []struct {
		sku      string
		name     string
		brand    string
		category string
		price    float64
		stock    int
	}{
		{"BSH-GSB-180", "Bosch GSB 180-LI Impact Drill", "Bosch", "Power Tools", 129.99, 25},
		{"MKT-DGA-452", "Makita DGA452Z Angle Grinder", "Makita", "Power Tools", 94.50, 12},
		{"STN-STHT-150", "Stanley 150mm Adjustable Wrench", "Stanley", "Hand Tools", 14.25, 80},
		{"GEN-HLM-001", "Industrial Safety Helmet", "Bosch", "Safety Equipment", 22.00, 3},
	}
	for i, p := range products {
		if _, err := repos.Product.GetBySKU(ctx, p.sku); err == nil {
			continue
		}
		brandID := brandIDs[p.brand]
		categoryID := categoryIDs[p.category]
		product := &domain.Product{
			ID:                uuid.New(),
			SKU:               p.sku,
			Name:              p.name,
			Slug:              domain.Slugify(p.name),
			BrandID:           &brandID,
			CategoryID:        &categoryID,
			Price:             p.price,
			Currency:          domain.CurrencyUSD,
			StockQuantity:     p.stock,
			LowStockThreshold: 5,
			Images:            datatypes.JSON([]byte(`[]`)),
			Specifications:    datatypes.JSON([]byte(`[]`)),
			Tags:              datatypes.JSON([]byte(`[]`)),
			IsActive:          true,
			IsFeatured:        i == 0,
		}
		product.StockStatus = domain.CalculateStockStatus(product.StockQuantity, product.LowStockThreshold)
		if err := repos.Product.Create(ctx, product); err != nil {
			log.WithError(err).Fatal("failed to create product")
		}
	}

	fmt.Println("seed complete")
}
