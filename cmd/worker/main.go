package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	catalogmemory "github.com/oficinapp/repairshop-api/internal/domains/catalog/adapters/memory"
	catalogpostgres "github.com/oficinapp/repairshop-api/internal/domains/catalog/adapters/persistence/postgres"
	catalogapp "github.com/oficinapp/repairshop-api/internal/domains/catalog/application"
	clientsmemory "github.com/oficinapp/repairshop-api/internal/domains/clients/adapters/memory"
	clientspostgres "github.com/oficinapp/repairshop-api/internal/domains/clients/adapters/persistence/postgres"
	clientsapp "github.com/oficinapp/repairshop-api/internal/domains/clients/application"
	orderslookup "github.com/oficinapp/repairshop-api/internal/domains/orders/adapters/lookup"
	ordersmemory "github.com/oficinapp/repairshop-api/internal/domains/orders/adapters/memory"
	ordersobs "github.com/oficinapp/repairshop-api/internal/domains/orders/adapters/observability"
	orderspostgres "github.com/oficinapp/repairshop-api/internal/domains/orders/adapters/persistence/postgres"
	ordersapp "github.com/oficinapp/repairshop-api/internal/domains/orders/application"
	ordersports "github.com/oficinapp/repairshop-api/internal/domains/orders/ports"
	orderactivities "github.com/oficinapp/repairshop-api/internal/durable/temporal/activities/orders"
	orderworkflows "github.com/oficinapp/repairshop-api/internal/durable/temporal/workflows/orders"
	platformobservability "github.com/oficinapp/repairshop-api/internal/platform/observability"
	platformpostgres "github.com/oficinapp/repairshop-api/internal/platform/postgres"
)

func main() {
	ctx := context.Background()
	const serviceName = "repairshop-worker"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	orderService, cleanupRepos := buildOrderService(ctx, instruments, logger)
	defer cleanupRepos()
	activities := orderactivities.NewActivities(orderService)

	tracerOptions := temporalotel.TracerOptions{Tracer: instruments.Tracer("temporal-worker")}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		logger.Error("failed to configure Temporal tracing interceptor", slog.String("error", err.Error()))
		os.Exit(1)
	}
	clientOptions := client.Options{
		HostPort:  envOrDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		Namespace: envOrDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		Logger:    workerlog.NewStructuredLogger(logger),
	}
	clientOptions.Interceptors = append(clientOptions.Interceptors, tracingInterceptor)
	temporalClient, err := client.Dial(clientOptions)
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, orderworkflows.OrderPlacementTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(orderworkflows.OrderPlacementWorkflow, workflow.RegisterOptions{Name: orderworkflows.OrderPlacementWorkflowName})
	w.RegisterActivityWithOptions(activities.PersistOrder, activity.RegisterOptions{Name: orderactivities.PersistOrderActivityName})

	logger.Info("worker listening", slog.String("taskQueue", orderworkflows.OrderPlacementTaskQueue), slog.String("namespace", clientOptions.Namespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}

func buildOrderService(ctx context.Context, instruments *platformobservability.Instruments, logger *slog.Logger) (ordersports.Service, func()) {
	dsn := strings.TrimSpace(os.Getenv("POSTGRES_DSN"))
	cleanup := func() {}

	var core *ordersapp.Service
	if dsn == "" {
		logger.Warn("POSTGRES_DSN not set, worker falling back to in-memory repositories")
		core = newOrderServiceMemory()
	} else if db, err := platformpostgres.Connect(ctx, dsn); err != nil {
		logger.Warn("worker failed to connect to postgres, falling back to memory", slog.String("error", err.Error()))
		core = newOrderServiceMemory()
	} else {
		sqlDB, err := db.DB()
		if err != nil {
			logger.Warn("worker failed to unwrap postgres connection, falling back to memory", slog.String("error", err.Error()))
			core = newOrderServiceMemory()
		} else {
			cleanup = func() { _ = sqlDB.Close() }
			logger.Info("worker repositories configured with postgres")
			partService := catalogapp.NewService(catalogpostgres.NewRepository(db))
			clientService := clientsapp.NewService(clientspostgres.NewRepository(db))
			core = ordersapp.NewService(
				orderspostgres.NewRepository(db),
				orderslookup.NewClientDirectory(clientService),
				orderslookup.NewPartCatalog(partService),
			)
		}
	}

	decorated := ordersobs.New(
		core,
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
	)
	return decorated, cleanup
}

func newOrderServiceMemory() *ordersapp.Service {
	partService := catalogapp.NewService(catalogmemory.NewRepository())
	clientService := clientsapp.NewService(clientsmemory.NewRepository())
	return ordersapp.NewService(
		ordersmemory.NewRepository(),
		orderslookup.NewClientDirectory(clientService),
		orderslookup.NewPartCatalog(partService),
	)
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
