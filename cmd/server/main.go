// Package main implements the entry point for the stockroom API
// server, a role-gated inventory and commerce backend.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/stockroomhq/stockroom-api/internal/config"
	"github.com/stockroomhq/stockroom-api/internal/platform/logger"
	"github.com/stockroomhq/stockroom-api/internal/platform/postgres"
	platformredis "github.com/stockroomhq/stockroom-api/internal/platform/redis"
	"github.com/stockroomhq/stockroom-api/internal/service"
	"github.com/stockroomhq/stockroom-api/internal/service/auth"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	log.Info("configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel))

	db, err := postgres.Open(ctx, cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := runMigrations(db, log); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// The revocation list is optional. Without redis, issued tokens stay
	// valid until they expire.
	var revocations auth.RevocationList
	if cfg.Redis.Enabled {
		client, err := platformredis.Open(ctx, cfg.Redis.URL)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		defer func() { _ = client.Close() }()
		revocations = platformredis.NewRevocationList(client)
		log.Info("token revocation list enabled")
	}

	jwtService, err := auth.NewJWTService(cfg.Auth, revocations)
	if err != nil {
		return fmt.Errorf("failed to create JWT service: %w", err)
	}
	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	userStore := postgres.NewUserStore(db)
	productStore := postgres.NewProductStore(db)
	categoryStore := postgres.NewCategoryStore(db)
	supplierStore := postgres.NewSupplierStore(db)
	orderStore := postgres.NewOrderStore(db)
	wishlistStore := postgres.NewWishlistStore(db)

	productService, err := service.NewProductService(productStore, log)
	if err != nil {
		return fmt.Errorf("failed to create product service: %w", err)
	}
	categoryService, err := service.NewCategoryService(categoryStore, log)
	if err != nil {
		return fmt.Errorf("failed to create category service: %w", err)
	}
	supplierService, err := service.NewSupplierService(supplierStore, log)
	if err != nil {
		return fmt.Errorf("failed to create supplier service: %w", err)
	}
	userService, err := service.NewUserService(userStore, hasher, log)
	if err != nil {
		return fmt.Errorf("failed to create user service: %w", err)
	}
	orderService, err := service.NewOrderService(orderStore, productStore, log)
	if err != nil {
		return fmt.Errorf("failed to create order service: %w", err)
	}
	wishlistService, err := service.NewWishlistService(wishlistStore, productStore, log)
	if err != nil {
		return fmt.Errorf("failed to create wishlist service: %w", err)
	}

	var overviewSource service.OverviewSource = postgres.NewOverviewStore(db)
	if cfg.Dashboard.Source == "mock" {
		overviewSource = service.MockOverviewSource{}
	}
	overviewService, err := service.NewOverviewService(overviewSource, log)
	if err != nil {
		return fmt.Errorf("failed to create overview service: %w", err)
	}

	router := newRouter(routerDeps{
		cfg:             cfg,
		logger:          log,
		jwtService:      jwtService,
		hasher:          hasher,
		userStore:       userStore,
		productService:  productService,
		categoryService: categoryService,
		supplierService: supplierService,
		userService:     userService,
		orderService:    orderService,
		wishlistService: wishlistService,
		overviewService: overviewService,
	})

	return serve(ctx, cfg.Server.Port, router, log)
}

// serve runs the HTTP server until the context is cancelled, then
// drains in-flight requests before returning.
func serve(ctx context.Context, port int, handler http.Handler, log *slog.Logger) error {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", slog.Int("port", port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		log.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	log.Info("server stopped")
	return nil
}
