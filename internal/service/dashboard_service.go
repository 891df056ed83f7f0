package service

import (
	"context"
	"time"

	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/cache"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/domain"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/repository"
	"github.com/sirupsen/logrus"
)

const (
	statsCacheKey = "motico:dashboard:stats"
	statsCacheTTL = time.Minute
)

type DashboardService struct {
	orderRepo   repository.OrderRepository
	quoteRepo   repository.QuoteRepository
	messageRepo repository.MessageRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	cache       cache.Cache
	log         *logrus.Logger
}

func NewDashboardService(orderRepo repository.OrderRepository, quoteRepo repository.QuoteRepository, messageRepo repository.MessageRepository, productRepo repository.ProductRepository, userRepo repository.UserRepository, c cache.Cache, log *logrus.Logger) *DashboardService {
	return &DashboardService{
		orderRepo:   orderRepo,
		quoteRepo:   quoteRepo,
		messageRepo: messageRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		cache:       c,
		log:         log,
	}
}

// Stats aggregates the admin dashboard numbers, cached for a minute.
func (s *DashboardService) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	var cached domain.DashboardStats
	if err := s.cache.GetJSON(ctx, statsCacheKey, &cached); err == nil {
		return &cached, nil
	}

	stats := &domain.DashboardStats{}

	var err error
	if stats.TotalOrders, err = s.orderRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.PendingOrders, err = s.orderRepo.CountByStatus(ctx, domain.OrderPending); err != nil {
		return nil, err
	}
	if stats.TotalRevenue, err = s.orderRepo.SumRevenue(ctx); err != nil {
		return nil, err
	}
	if stats.PendingQuotes, err = s.quoteRepo.CountByStatus(ctx, domain.QuotePending); err != nil {
		return nil, err
	}
	if stats.UnreadMessages, err = s.messageRepo.CountByStatus(ctx, domain.MessageUnread); err != nil {
		return nil, err
	}
	if stats.TotalCustomers, err = s.userRepo.CountCustomers(ctx); err != nil {
		return nil, err
	}
	if stats.ActiveProducts, err = s.productRepo.CountActive(ctx); err != nil {
		return nil, err
	}
	if stats.LowStockProducts, err = s.productRepo.CountLowStock(ctx); err != nil {
		return nil, err
	}

	if err := s.cache.SetJSON(ctx, statsCacheKey, stats, statsCacheTTL); err != nil {
		s.log.WithError(err).Debug("failed to cache dashboard stats")
	}
	return stats, nil
}
