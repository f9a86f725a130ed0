package app

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/corray333/order-ledger/internal/dal/postgres"
	"github.com/corray333/order-ledger/internal/jaeger"
	"github.com/corray333/order-ledger/internal/service/services/catalogsvc"
	"github.com/corray333/order-ledger/internal/service/services/dashboardsvc"
	"github.com/corray333/order-ledger/internal/service/services/ordersvc"
	httptransport "github.com/corray333/order-ledger/internal/transport/http"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
)

// App represents the application.
type App struct {
	orderSvc       *ordersvc.OrderService
	catalogSvc     *catalogsvc.CatalogService
	dashboardSvc   *dashboardsvc.DashboardService
	transport      *httptransport.HTTPTransport
	postgresClient *postgres.Client
	tracerProvider *tracesdk.TracerProvider
}

// MustNewApp creates a new application.
func MustNewApp() *App {
	tracerProvider := jaeger.MustNewTracerProvider()

	postgresClient := postgres.MustNewClient()

	orderSvc := ordersvc.MustNewOrderService(
		ordersvc.WithPostgresClient(postgresClient),
	)
	catalogSvc := catalogsvc.MustNewCatalogService(
		catalogsvc.WithPostgresClient(postgresClient),
	)
	dashboardSvc := dashboardsvc.MustNewDashboardService(
		dashboardsvc.WithPostgresClient(postgresClient),
	)

	transport := httptransport.NewHTTPTransport(orderSvc, catalogSvc, dashboardSvc)
	transport.RegisterRoutes()

	return &App{
		orderSvc:       orderSvc,
		catalogSvc:     catalogSvc,
		dashboardSvc:   dashboardSvc,
		transport:      transport,
		postgresClient: postgresClient,
		tracerProvider: tracerProvider,
	}
}

// Run starts the application.
// Tracks interrupt signal to gracefully shut down the application.
func (a *App) Run() {
	// Create a channel to receive OS signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("Starting HTTP server")
		if err := a.transport.Run(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	<-stop
	slog.Info("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.transport.Shutdown(ctx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped gracefully")
	}

	if err := a.tracerProvider.Shutdown(ctx); err != nil {
		slog.Error("Tracer provider shutdown error", "error", err)
	}

	a.postgresClient.Close()
	slog.Info("Database connection closed gracefully")

	slog.Info("Application shutdown complete")
}
