package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/stockroomhq/stockroom-api/internal/api"
	apimiddleware "github.com/stockroomhq/stockroom-api/internal/api/middleware"
	"github.com/stockroomhq/stockroom-api/internal/config"
	"github.com/stockroomhq/stockroom-api/internal/domain"
	"github.com/stockroomhq/stockroom-api/internal/service"
	"github.com/stockroomhq/stockroom-api/internal/service/auth"
	"github.com/stockroomhq/stockroom-api/internal/store"
)

type routerDeps struct {
	cfg             *config.Config
	logger          *slog.Logger
	jwtService      auth.JWTService
	hasher          *auth.BcryptHasher
	userStore       store.UserStore
	productService  *service.ProductService
	categoryService *service.CategoryService
	supplierService *service.SupplierService
	userService     *service.UserService
	orderService    *service.OrderService
	wishlistService *service.WishlistService
	overviewService *service.OverviewService
}

// newRouter builds the full route tree. Catalog reads are open to any
// authenticated user; writes are gated by role. The auth endpoints sit
// behind the rate limiter.
func newRouter(deps routerDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.TraceMiddleware)
	r.Use(apimiddleware.NewCORSMiddleware(deps.cfg.CORS.AllowedOrigins).Handler)

	pagination := deps.cfg.Pagination
	tokenLifetime := time.Duration(deps.cfg.Auth.TokenLifetimeMinutes) * time.Minute

	authHandler := api.NewAuthHandler(
		deps.userStore, deps.jwtService, deps.hasher, deps.hasher, tokenLifetime, deps.logger)
	productHandler := api.NewProductHandler(deps.productService, pagination)
	categoryHandler := api.NewCategoryHandler(deps.categoryService, pagination)
	supplierHandler := api.NewSupplierHandler(deps.supplierService, pagination)
	userHandler := api.NewUserHandler(deps.userService, pagination)
	orderHandler := api.NewOrderHandler(deps.orderService, pagination)
	wishlistHandler := api.NewWishlistHandler(deps.wishlistService, pagination)
	overviewHandler := api.NewOverviewHandler(deps.overviewService)

	authMiddleware := apimiddleware.NewAuthMiddleware(deps.jwtService)
	rateLimiter := apimiddleware.NewRateLimiter(
		deps.cfg.RateLimit.RequestsPerSecond, deps.cfg.RateLimit.Burst)

	r.Route("/api", func(r chi.Router) {
		// Public auth endpoints, rate limited.
		r.Group(func(r chi.Router) {
			r.Use(rateLimiter.Handler)
			r.Post("/auth/register", authHandler.Register)
			r.Post("/auth/login", authHandler.Login)
			r.Post("/auth/refresh", authHandler.Refresh)
		})

		// Everything else requires a valid access token.
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Post("/auth/logout", authHandler.Logout)
			r.Get("/auth/me", authHandler.Me)

			r.Get("/products", productHandler.List)
			r.Get("/products/{id}", productHandler.Get)
			r.Get("/categories", categoryHandler.List)
			r.Get("/categories/{id}", categoryHandler.Get)
			r.Get("/suppliers", supplierHandler.List)
			r.Get("/suppliers/{id}", supplierHandler.Get)

			r.Get("/orders", orderHandler.List)
			r.Get("/orders/{id}", orderHandler.Get)
			r.Post("/orders", orderHandler.Create)

			r.Get("/wishlist", wishlistHandler.List)
			r.Post("/wishlist/{productId}", wishlistHandler.Add)
			r.Delete("/wishlist/{productId}", wishlistHandler.Remove)

			// Catalog writes and order fulfilment require staff.
			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.RequireRole(domain.RoleStaff, domain.RoleAdmin))

				r.Post("/products", productHandler.Create)
				r.Put("/products/{id}", productHandler.Update)
				r.Delete("/products/{id}", productHandler.Delete)

				r.Post("/categories", categoryHandler.Create)
				r.Put("/categories/{id}", categoryHandler.Update)
				r.Delete("/categories/{id}", categoryHandler.Delete)

				r.Patch("/orders/{id}/status", orderHandler.UpdateStatus)

				r.Get("/dashboard/overview", overviewHandler.Get)
			})

			// User and supplier management is admin only.
			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.RequireRole(domain.RoleAdmin))

				r.Post("/suppliers", supplierHandler.Create)
				r.Put("/suppliers/{id}", supplierHandler.Update)
				r.Delete("/suppliers/{id}", supplierHandler.Delete)

				r.Get("/users", userHandler.List)
				r.Get("/users/{id}", userHandler.Get)
				r.Post("/users", userHandler.Create)
				r.Put("/users/{id}", userHandler.Update)
				r.Delete("/users/{id}", userHandler.Delete)
			})
		})
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return r
}
