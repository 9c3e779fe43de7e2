package db

import (
	"database/sql"
	"fmt"
	"product-insights-api/config"
	"product-insights-api/logger"

	_ "github.com/lib/pq"
)

// ConnString builds the lib/pq connection string for the configured database.
func ConnString(includePassword bool) string {
	cfg := config.AppConfig.Database
	connStr := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Name, cfg.SSLMode)
	if includePassword && cfg.Password != "" {
		connStr += fmt.Sprintf(" password=%s", cfg.Password)
	}
	return connStr
}

func Connect() (*sql.DB, error) {
	logger.Log.WithField("connection", ConnString(false)).Info("Attempting to connect to the database")

	db, err := sql.Open("postgres", ConnString(true))
	if err != nil {
		logger.Log.WithError(err).Error("Failed to open database connection")
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err = db.Ping(); err != nil {
		logger.Log.WithError(err).Error("Failed to ping database")
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Log.Info("Database connection established successfully")
	return db, nil
}
