package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	identitypostgres "github.com/oficinapp/repairshop-api/internal/domains/identity/adapters/persistence/postgres"
	identitytoken "github.com/oficinapp/repairshop-api/internal/domains/identity/adapters/token"
	identityapp "github.com/oficinapp/repairshop-api/internal/domains/identity/application"
	identitytypes "github.com/oficinapp/repairshop-api/internal/domains/identity/application/types"
	platformpostgres "github.com/oficinapp/repairshop-api/internal/platform/postgres"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	db, cleanup := platformpostgres.ConnectFromEnv(ctx, logger)
	defer cleanup()
	if db == nil {
		log.Fatal("POSTGRES_DSN not set or connection failed; cannot bootstrap admin")
	}

	email := strings.TrimSpace(os.Getenv("ADMIN_EMAIL"))
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	tokens := identitytoken.NewJWTService([]byte(envDefault("JWT_SECRET", "dev-secret-change-me")), tokenTTLFromEnv())
	service := identityapp.NewService(identitypostgres.NewRepository(db), tokens)
	identity, err := service.EnsureAdmin(ctx, identitytypes.EnsureAdminInput{Email: email, Password: password})
	if err != nil {
		log.Fatalf("failed to bootstrap admin: %v", err)
	}
	log.Printf("admin account ensured for %s", identity.Email)
}

func tokenTTLFromEnv() time.Duration {
	raw := strings.TrimSpace(os.Getenv("TOKEN_TTL_HOURS"))
	if raw == "" {
		return 24 * time.Hour
	}
	hours, err := strconv.Atoi(raw)
	if err != nil || hours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(hours) * time.Hour
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}
