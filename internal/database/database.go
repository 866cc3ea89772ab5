package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"
	"github.com/recipehub/backend/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// New opens a gorm connection to postgres and configures the pool.
func New(cfg *config.Config) (*gorm.DB, error) {
	connStr := cfg.DSN()

	// Log connection target (without password)
	log.Printf("Connecting to database at %s:%s as user %s", cfg.DBHost, cfg.DBPort, cfg.DBUser)

	if err := waitForDatabase(connStr, 10, time.Second); err != nil {
		return nil, err
	}

	db, err := gorm.Open(postgres.Open(connStr), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	log.Printf("Successfully connected to database")
	return db, nil
}

// waitForDatabase pings postgres over database/sql until it answers or the
// attempts run out. The api container often starts before postgres does.
func waitForDatabase(connStr string, attempts int, delay time.Duration) error {
	sqlDB, err := sql.Open("postgres", connStr)
	if err != nil {
		return fmt.Errorf("error opening database: %w", err)
	}
	defer func() { _ = sqlDB.Close() }()

	var pingErr error
	for i := 0; i < attempts; i++ {
		if pingErr = sqlDB.Ping(); pingErr == nil {
			return nil
		}
		time.Sleep(delay)
	}
	return fmt.Errorf("error connecting to the database: %w", pingErr)
}

// HealthCheck checks if the database is accessible
func HealthCheck(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
