package postgres

import (
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/domain"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate auto-migrates all tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Session{},
		&domain.Brand{},
		&domain.Category{},
		&domain.Product{},
		&domain.Order{},
		&domain.Quote{},
		&domain.ContactMessage{},
		&domain.SiteSettings{},
	)
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		User:     NewUserRepository(db),
		Session:  NewSessionRepository(db),
		Brand:    NewBrandRepository(db),
		Category: NewCategoryRepository(db),
		Product:  NewProductRepository(db),
		Order:    NewOrderRepository(db),
		Quote:    NewQuoteRepository(db),
		Message:  NewMessageRepository(db),
		Settings: NewSettingsRepository(db),
	}
}
