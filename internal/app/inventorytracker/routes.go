// Package inventorytracker предоставляет маршруты для основного приложения.
package inventorytracker

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/inventory-tracker/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/inventory-tracker/internal/http/handlers/auth/otpconfirm"
	"github.com/magabrotheeeer/inventory-tracker/internal/http/handlers/auth/otprequest"
	"github.com/magabrotheeeer/inventory-tracker/internal/http/handlers/auth/register"
	categorycreate "github.com/magabrotheeeer/inventory-tracker/internal/http/handlers/category/create"
	categorylist "github.com/magabrotheeeer/inventory-tracker/internal/http/handlers/category/list"
	categoryremove "github.com/magabrotheeeer/inventory-tracker/internal/http/handlers/category/remove"
	"github.com/magabrotheeeer/inventory-tracker/internal/http/handlers/health"
	productcreate "github.com/magabrotheeeer/inventory-tracker/internal/http/handlers/product/create"
	productlist "github.com/magabrotheeeer/inventory-tracker/internal/http/handlers/product/list"
	productread "github.com/magabrotheeeer/inventory-tracker/internal/http/handlers/product/read"
	"github.com/magabrotheeeer/inventory-tracker/internal/http/handlers/product/readbarcode"
	productremove "github.com/magabrotheeeer/inventory-tracker/internal/http/handlers/product/remove"
	"github.com/magabrotheeeer/inventory-tracker/internal/http/handlers/product/stats"
	productupdate "github.com/magabrotheeeer/inventory-tracker/internal/http/handlers/product/update"
	"github.com/magabrotheeeer/inventory-tracker/internal/http/middlewarectx"
	authservice "github.com/magabrotheeeer/inventory-tracker/internal/services/auth"
	catalogservice "github.com/magabrotheeeer/inventory-tracker/internal/services/catalog"
	"github.com/magabrotheeeer/inventory-tracker/internal/storage/repository"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, auth *authservice.AuthService, catalog *catalogservice.CatalogService, storage *repository.Storage, limiter *rate.Limiter) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		middlewarectx.MetricsMiddleware,
	)

	r.Route("/api", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/auth/register", register.New(logger, auth).ServeHTTP)
		r.Post("/auth/login", login.New(logger, auth).ServeHTTP)
		r.Get("/health", health.New(logger, storage).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(auth, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger, limiter))

			r.Post("/auth/otp/request", otprequest.New(logger, auth).ServeHTTP)
			r.Post("/auth/otp/verify", otpconfirm.New(logger, auth).ServeHTTP)

			r.Post("/categories", categorycreate.New(logger, catalog).ServeHTTP)
			r.Get("/categories", categorylist.New(logger, catalog).ServeHTTP)
			r.Delete("/categories/{name}", categoryremove.New(logger, catalog).ServeHTTP)

			r.Post("/products", productcreate.New(logger, catalog).ServeHTTP)
			r.Get("/products", productlist.New(logger, catalog).ServeHTTP)
			r.Get("/products/stats/analytics", stats.New(logger, catalog).ServeHTTP)
			r.Get("/products/barcode/{barcode}", readbarcode.New(logger, catalog).ServeHTTP)
			r.Get("/products/{id}", productread.New(logger, catalog).ServeHTTP)
			r.Put("/products/{id}", productupdate.New(logger, catalog).ServeHTTP)
			r.Delete("/products/{id}", productremove.New(logger, catalog).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
