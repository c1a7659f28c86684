package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	pingTimeout     = 5 * time.Second
	defaultMaxConns = 10
)

// Connect opens a PostgreSQL connection via GORM, applies pool limits, and
// verifies connectivity with a bounded ping.
func Connect(ctx context.Context, dsn string) (*gorm.DB, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(maxConnsFromEnv())
	sqlDB.SetConnMaxIdleTime(time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// ConnectFromEnv dials PostgreSQL using POSTGRES_DSN and returns the DB plus
// a cleanup function. A missing DSN or failed connection yields nil with a
// no-op cleanup so callers can fall back to the in-memory stores.
func ConnectFromEnv(ctx context.Context, logger *slog.Logger) (*gorm.DB, func()) {
	dsn := strings.TrimSpace(os.Getenv("POSTGRES_DSN"))
	if dsn == "" {
		return fallback(logger, "POSTGRES_DSN not set, using in-memory repositories", nil)
	}
	db, err := Connect(ctx, dsn)
	if err != nil {
		return fallback(logger, "postgres connection failed, using in-memory repositories", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fallback(logger, "postgres handle unwrap failed, using in-memory repositories", err)
	}
	if logger != nil {
		logger.Info("postgres connection established")
	}
	return db, func() { _ = sqlDB.Close() }
}

func fallback(logger *slog.Logger, msg string, err error) (*gorm.DB, func()) {
	if logger != nil {
		if err != nil {
			logger.Warn(msg, slog.String("error", err.Error()))
		} else {
			logger.Warn(msg)
		}
	}
	return nil, func() {}
}

func maxConnsFromEnv() int {
	raw := strings.TrimSpace(os.Getenv("POSTGRES_MAX_CONNS"))
	if raw == "" {
		return defaultMaxConns
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return defaultMaxConns
	}
	return value
}
