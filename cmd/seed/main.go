// cmd/seed/main.go
package main

import (
	"context"
	"net/http"
	"product-insights-api/config"
	"product-insights-api/db"
	"product-insights-api/logger"
	"product-insights-api/repository"
	"time"

	"github.com/sirupsen/logrus"
)

// seed copies the remote dataset into the product_transactions table so the
// API can run with source.backend=postgres.
func main() {
	config.LoadConfig(".")
	logger.Init()
	logger.SetLevel(config.AppConfig.Log.Level)

	cfg := config.AppConfig
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Source.Timeout+time.Minute)
	defer cancel()

	remote := repository.NewHTTPProductRepository(&http.Client{Timeout: cfg.Source.Timeout}, cfg.Source.URL, cfg.Source.Timeout)
	txs, err := remote.FetchAll(ctx)
	if err != nil {
		logger.Log.Fatalf("Error fetching remote dataset: %v", err)
	}

	database, err := db.Connect()
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	if err := db.RunMigrations(database); err != nil {
		logger.Log.Fatalf("Error running migrations: %v", err)
	}

	stored, err := repository.NewPGProductRepository(database).ImportTransactions(ctx, txs)
	if err != nil {
		logger.Log.Fatalf("Error importing transactions: %v", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"fetched": len(txs),
		"stored":  stored,
	}).Info("Seed completed")
}
