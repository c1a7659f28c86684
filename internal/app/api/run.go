package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"gorm.io/gorm"

	"github.com/oficinapp/repairshop-api/internal/access"
	catalogmemory "github.com/oficinapp/repairshop-api/internal/domains/catalog/adapters/memory"
	catalogpostgres "github.com/oficinapp/repairshop-api/internal/domains/catalog/adapters/persistence/postgres"
	catalogapp "github.com/oficinapp/repairshop-api/internal/domains/catalog/application"
	catalogports "github.com/oficinapp/repairshop-api/internal/domains/catalog/ports"
	clientsmemory "github.com/oficinapp/repairshop-api/internal/domains/clients/adapters/memory"
	clientspostgres "github.com/oficinapp/repairshop-api/internal/domains/clients/adapters/persistence/postgres"
	clientsapp "github.com/oficinapp/repairshop-api/internal/domains/clients/application"
	clientports "github.com/oficinapp/repairshop-api/internal/domains/clients/ports"
	identitymemory "github.com/oficinapp/repairshop-api/internal/domains/identity/adapters/memory"
	identitypostgres "github.com/oficinapp/repairshop-api/internal/domains/identity/adapters/persistence/postgres"
	identitytoken "github.com/oficinapp/repairshop-api/internal/domains/identity/adapters/token"
	identityapp "github.com/oficinapp/repairshop-api/internal/domains/identity/application"
	identitytypes "github.com/oficinapp/repairshop-api/internal/domains/identity/application/types"
	identityports "github.com/oficinapp/repairshop-api/internal/domains/identity/ports"
	orderslookup "github.com/oficinapp/repairshop-api/internal/domains/orders/adapters/lookup"
	ordersmemory "github.com/oficinapp/repairshop-api/internal/domains/orders/adapters/memory"
	ordersobs "github.com/oficinapp/repairshop-api/internal/domains/orders/adapters/observability"
	orderspostgres "github.com/oficinapp/repairshop-api/internal/domains/orders/adapters/persistence/postgres"
	ordersworkflows "github.com/oficinapp/repairshop-api/internal/domains/orders/adapters/workflows"
	ordersapp "github.com/oficinapp/repairshop-api/internal/domains/orders/application"
	ordersports "github.com/oficinapp/repairshop-api/internal/domains/orders/ports"
	"github.com/oficinapp/repairshop-api/internal/platform/migrations"
	platformobservability "github.com/oficinapp/repairshop-api/internal/platform/observability"
	platformpostgres "github.com/oficinapp/repairshop-api/internal/platform/postgres"
	repairshopserver "github.com/oficinapp/repairshop-api/server"
)

// Run boots the repair shop HTTP API with observability, repositories, and workflows wired.
func Run(ctx context.Context) error {
	const serviceName = "repairshop-api"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	db, cleanupDB := connectDatabase(ctx, cfg, logger)
	defer cleanupDB()

	repos := buildRepositories(db, logger)

	tokenService := identitytoken.NewJWTService([]byte(cfg.JWTSecret), cfg.TokenTTL)
	identityService := identityapp.NewService(repos.users, tokenService)
	bootstrapAdmin(ctx, cfg, identityService, logger)

	partService := catalogapp.NewService(repos.parts)
	clientService := clientsapp.NewService(repos.clients)
	coreOrderService := ordersapp.NewService(
		repos.orders,
		orderslookup.NewClientDirectory(clientService),
		orderslookup.NewPartCatalog(partService),
	)
	orderService := ordersobs.New(
		coreOrderService,
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
	)

	var orderPlacer ordersports.WorkflowOrchestrator = ordersworkflows.NewInlineOrderWorkflows(orderService)
	if temporalClient, err := connectTemporalClient(cfg, instruments); err != nil {
		logger.Warn("Temporal workflows unavailable, placing orders inline", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		orderPlacer = ordersworkflows.NewTemporalOrderWorkflows(temporalClient)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	}

	facade := access.New(partService, clientService, orderService, orderPlacer)
	handlers := repairshopserver.ApiHandleFunctions{
		AuthAPI:    repairshopserver.NewAuthAPI(identityService),
		PartsAPI:   repairshopserver.NewPartsAPI(facade),
		ClientsAPI: repairshopserver.NewClientsAPI(facade),
		OrdersAPI:  repairshopserver.NewOrdersAPI(facade),
	}

	router := repairshopserver.NewRouter(handlers, identityService, otelgin.Middleware(serviceName))
	addr := ":" + cfg.Port
	logger.Info("repair shop API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("repair shop API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

type repositories struct {
	parts   catalogports.Repository
	clients clientports.Repository
	orders  ordersports.Repository
	users   identityports.Repository
}

func connectDatabase(ctx context.Context, cfg Config, logger *slog.Logger) (*gorm.DB, func()) {
	if cfg.PostgresDSN == "" {
		logger.Warn("POSTGRES_DSN not set, falling back to in-memory repositories")
		return nil, func() {}
	}
	db, err := platformpostgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		logger.Warn("failed to connect to postgres, falling back to in-memory repositories", slog.String("error", err.Error()))
		return nil, func() {}
	}
	if err := migrations.Run(db); err != nil {
		logger.Warn("failed to run migrations, falling back to in-memory repositories", slog.String("error", err.Error()))
		return nil, func() {}
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Warn("failed to unwrap postgres connection, falling back to in-memory repositories", slog.String("error", err.Error()))
		return nil, func() {}
	}
	logger.Info("postgres connection established")
	return db, func() { _ = sqlDB.Close() }
}

func buildRepositories(db *gorm.DB, logger *slog.Logger) repositories {
	if db == nil {
		return repositories{
			parts:   catalogmemory.NewRepository(),
			clients: clientsmemory.NewRepository(),
			orders:  ordersmemory.NewRepository(),
			users:   identitymemory.NewRepository(),
		}
	}
	logger.Info("repositories configured with postgres")
	return repositories{
		parts:   catalogpostgres.NewRepository(db),
		clients: clientspostgres.NewRepository(db),
		orders:  orderspostgres.NewRepository(db),
		users:   identitypostgres.NewRepository(db),
	}
}

func bootstrapAdmin(ctx context.Context, cfg Config, identityService identityports.Service, logger *slog.Logger) {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		logger.Warn("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin bootstrap")
		return
	}
	identity, err := identityService.EnsureAdmin(ctx, identitytypes.EnsureAdminInput{
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
	})
	if err != nil {
		logger.Error("admin bootstrap failed", slog.String("error", err.Error()))
		return
	}
	logger.Info("admin account ensured", slog.String("email", identity.Email))
}

func connectTemporalClient(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracerOptions := temporalotel.TracerOptions{}
	if instruments != nil {
		tracerOptions.Tracer = instruments.Tracer("temporal-client")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		return nil, err
	}
	logger := workerlog.NewStructuredLogger(effectiveLogger(instruments))
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    logger,
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}

func effectiveLogger(instruments *platformobservability.Instruments) *slog.Logger {
	if instruments != nil && instruments.Logger != nil {
		return instruments.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
