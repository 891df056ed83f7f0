package api

import (
	"net/http"

	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/api/handlers"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/api/middleware"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/config"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(services *service.Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)
	r.Use(middleware.Guard)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth, cfg)
	brandHandler := handlers.NewBrandHandler(services.Brand)
	categoryHandler := handlers.NewCategoryHandler(services.Category)
	productHandler := handlers.NewProductHandler(services.Product)
	orderHandler := handlers.NewOrderHandler(services.Order)
	quoteHandler := handlers.NewQuoteHandler(services.Quote)
	messageHandler := handlers.NewMessageHandler(services.Message)
	settingsHandler := handlers.NewSettingsHandler(services.Settings)
	userHandler := handlers.NewUserHandler(services.User)
	dashboardHandler := handlers.NewDashboardHandler(services.Dashboard, services.Auth)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public auth routes
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
			r.Post("/forgot-password", authHandler.ForgotPassword)
			r.Post("/reset-password", authHandler.ResetPassword)

			// Protected auth routes
			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services.Auth))
				r.Get("/me", authHandler.Me)
			})
		})

		// Public catalog routes
		r.Route("/brands", func(r chi.Router) {
			r.Get("/", brandHandler.ListPublic)
		})
		r.Route("/categories", func(r chi.Router) {
			r.Get("/", categoryHandler.Tree)
			r.Get("/slug/{slug}", categoryHandler.GetBySlug)
		})
		r.Route("/products", func(r chi.Router) {
			r.Get("/", productHandler.ListPublic)
			r.Get("/{idOrSlug}", productHandler.GetByIDOrSlug)
		})

		// Public storefront submissions
		r.Group(func(r chi.Router) {
			r.Use(middleware.OptionalAuth(services.Auth))
			r.Post("/quotes", quoteHandler.Submit)
		})
		r.Post("/messages", messageHandler.Submit)

		// Public site settings
		r.Get("/settings", settingsHandler.GetPublic)

		// Customer routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))

			r.Route("/orders", func(r chi.Router) {
				r.Post("/", orderHandler.Create)
				r.Get("/", orderHandler.ListMine)
				r.Get("/{id}", orderHandler.Get)
			})
			r.Get("/quotes/mine", quoteHandler.ListMine)
		})

		// Admin routes
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))
			r.Use(middleware.RequireAdmin)

			r.Get("/dashboard/stats", dashboardHandler.Stats)
			r.Post("/maintenance/sweep-sessions", dashboardHandler.SweepSessions)

			r.Route("/brands", func(r chi.Router) {
				r.Get("/", brandHandler.ListAdmin)
				r.Post("/", brandHandler.Create)
				r.Get("/{id}", brandHandler.Get)
				r.Put("/{id}", brandHandler.Update)
				r.Delete("/{id}", brandHandler.Delete)
			})

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", categoryHandler.ListAdmin)
				r.Post("/", categoryHandler.Create)
				r.Get("/{id}", categoryHandler.Get)
				r.Put("/{id}", categoryHandler.Update)
				r.Delete("/{id}", categoryHandler.Delete)
			})

			r.Route("/products", func(r chi.Router) {
				r.Get("/", productHandler.ListAdmin)
				r.Post("/", productHandler.Create)
				r.Get("/{id}", productHandler.Get)
				r.Put("/{id}", productHandler.Update)
				r.Post("/{id}/stock", productHandler.AdjustStock)
				r.Delete("/{id}", productHandler.Delete)
			})

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", orderHandler.ListAdmin)
				r.Get("/{id}", orderHandler.Get)
				r.Put("/{id}/status", orderHandler.UpdateStatus)
				r.Post("/{id}/mark-paid", orderHandler.MarkPaid)
			})

			r.Route("/quotes", func(r chi.Router) {
				r.Get("/", quoteHandler.ListAdmin)
				r.Get("/{id}", quoteHandler.Get)
				r.Post("/{id}/review", quoteHandler.MarkReviewed)
				r.Post("/{id}/respond", quoteHandler.Respond)
				r.Put("/{id}/status", quoteHandler.UpdateStatus)
				r.Post("/{id}/convert", quoteHandler.Convert)
			})

			r.Route("/messages", func(r chi.Router) {
				r.Get("/", messageHandler.List)
				r.Get("/{id}", messageHandler.Get)
				r.Put("/{id}/star", messageHandler.SetStarred)
				r.Post("/{id}/reply", messageHandler.Reply)
				r.Post("/{id}/archive", messageHandler.Archive)
				r.Delete("/{id}", messageHandler.Delete)
			})

			r.Route("/users", func(r chi.Router) {
				r.Get("/", userHandler.List)
				r.Get("/{id}", userHandler.Get)
				r.Put("/{id}", userHandler.Update)
				r.Post("/{id}/deactivate", userHandler.Deactivate)
				r.Post("/{id}/reactivate", userHandler.Reactivate)
			})

			r.Get("/settings", settingsHandler.Get)
			r.Put("/settings", settingsHandler.Update)
		})
	})

	return r
}
