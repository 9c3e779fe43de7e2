// File: app/app.go
package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"product-insights-api/config"
	"product-insights-api/db"
	"product-insights-api/handler"
	"product-insights-api/logger"
	"product-insights-api/repository"
	"product-insights-api/router"
	"product-insights-api/service"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// App is the wired application: its router plus the connections it owns.
type App struct {
	Router http.Handler
	DB     *sql.DB
	Redis  *redis.Client
}

// New wires repositories, services and handlers according to cfg.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	a := &App{}

	repo, err := a.productRepository(cfg)
	if err != nil {
		a.Close()
		return nil, err
	}

	repo, err = a.withCache(ctx, cfg, repo)
	if err != nil {
		a.Close()
		return nil, err
	}

	productService := service.NewProductService(repo, service.Pagination{
		DefaultPerPage: cfg.Pagination.DefaultPerPage,
		MaxPerPage:     cfg.Pagination.MaxPerPage,
	})
	productHandler := handler.NewProductHandler(productService, cfg.Source.FailOnError)

	a.Router = router.NewRouter(productHandler)
	return a, nil
}

func (a *App) productRepository(cfg config.Config) (repository.IProductRepository, error) {
	switch cfg.Source.Backend {
	case config.SourcePostgres:
		database, err := db.Connect()
		if err != nil {
			return nil, err
		}
		a.DB = database
		if err := db.RunMigrations(database); err != nil {
			return nil, err
		}
		return repository.NewPGProductRepository(database), nil
	default:
		client := &http.Client{Timeout: cfg.Source.Timeout}
		return repository.NewHTTPProductRepository(client, cfg.Source.URL, cfg.Source.Timeout), nil
	}
}

// withCache decorates repo with the configured read-through cache, if any.
func (a *App) withCache(ctx context.Context, cfg config.Config, repo repository.IProductRepository) (repository.IProductRepository, error) {
	if !cfg.CacheEnabled() {
		return repo, nil
	}

	log := logger.Log.WithFields(logrus.Fields{
		"backend": cfg.Cache.Backend,
		"ttl":     cfg.Cache.TTL.String(),
	})

	switch cfg.Cache.Backend {
	case config.CacheRedis:
		rdb, err := db.ConnectRedis(ctx)
		if err != nil {
			return nil, fmt.Errorf("cache: %w", err)
		}
		a.Redis = rdb
		log.Info("Product data cache enabled")
		return repository.NewRedisCachedRepository(repo, rdb, cfg.Cache.TTL), nil
	default:
		log.Info("Product data cache enabled")
		return repository.NewMemoryCachedRepository(repo, cfg.Cache.TTL), nil
	}
}

// Close releases the connections opened by New.
func (a *App) Close() {
	if a.DB != nil {
		a.DB.Close()
	}
	if a.Redis != nil {
		a.Redis.Close()
	}
}

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.SetLevel(config.AppConfig.Log.Level)
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	application, err := New(context.Background(), config.AppConfig)
	if err != nil {
		logger.Log.Fatalf("Error initializing application: %v", err)
	}
	defer application.Close()

	// --- Start the Server with Graceful Shutdown ---
	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      application.Router,
		ReadTimeout:  config.AppConfig.Server.ReadTimeout,
		WriteTimeout: config.AppConfig.Server.WriteTimeout,
	}

	go func() {
		logger.Log.WithFields(logrus.Fields{
			"source": config.AppConfig.Source.Backend,
			"cache":  config.AppConfig.Cache.Backend,
		}).Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}
