package service

import (
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/cache"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/config"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/mailer"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/repository"
	"github.com/sirupsen/logrus"
)

type Services struct {
	Auth      *AuthService
	User      *UserService
	Brand     *BrandService
	Category  *CategoryService
	Product   *ProductService
	Order     *OrderService
	Quote     *QuoteService
	Message   *MessageService
	Settings  *SettingsService
	Dashboard *DashboardService
}

func NewServices(repos *repository.Repositories, mail mailer.Mailer, c cache.Cache, cfg *config.Config, log *logrus.Logger) *Services {
	auth := NewAuthService(repos.User, repos.Session, mail, cfg, log)
	category := NewCategoryService(repos.Category, repos.Product)
	order := NewOrderService(repos.Order, repos.Product, repos.User, repos.Settings, mail, log)

	return &Services{
		Auth:      auth,
		User:      NewUserService(repos.User, auth, log),
		Brand:     NewBrandService(repos.Brand),
		Category:  category,
		Product:   NewProductService(repos.Product, category),
		Order:     order,
		Quote:     NewQuoteService(repos.Quote, order, mail, log),
		Message:   NewMessageService(repos.Message, mail, log),
		Settings:  NewSettingsService(repos.Settings, c, log),
		Dashboard: NewDashboardService(repos.Order, repos.Quote, repos.Message, repos.Product, repos.User, c, log),
	}
}
