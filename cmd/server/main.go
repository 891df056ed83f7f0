package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/api"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/cache"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/config"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/logger"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/mailer"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/repository/postgres"
	"github.com/bashirfakih/MoticoSolutionsWebsite-sub003/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.Environment)

	// Initialize database
	db, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}

	// Initialize repositories
	repos := postgres.NewRepositories(db)

	// Optional Redis cache
	var c cache.Cache = cache.Noop{}
	if cfg.RedisAddr != "" {
		c = cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		log.WithField("addr", cfg.RedisAddr).Info("redis cache enabled")
	}

	// Optional Mailgun mailer
	var mail mailer.Mailer = mailer.Noop{}
	if cfg.MailgunDomain != "" && cfg.MailgunAPIKey != "" {
		mail = mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender)
		log.WithField("domain", cfg.MailgunDomain).Info("mailgun mailer enabled")
	}

	// Initialize services
	services := service.NewServices(repos, mail, c, cfg, log)

	// Initialize router
	router := api.NewRouter(services, cfg)

	// Create server
	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Hourly expired-session sweep. Validation lazily deletes dead
	// sessions on use; the sweeper reclaims the rows nobody touches.
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				removed, err := services.Auth.SweepExpired(sweepCtx)
				if err != nil {
					log.WithError(err).Error("session sweep failed")
					continue
				}
				if removed > 0 {
					log.WithField("removed", removed).Info("swept expired sessions")
				}
			case <-sweepCtx.Done():
				return
			}
		}
	}()

	// Start server in goroutine
	go func() {
		log.WithField("port", cfg.Port).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")
	stopSweep()

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Fatal("server forced to shutdown")
	}

	log.Info("server stopped")
}
