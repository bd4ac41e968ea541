package inventorytracker

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/inventory-tracker/internal/cache"
	"github.com/magabrotheeeer/inventory-tracker/internal/config"
	"github.com/magabrotheeeer/inventory-tracker/internal/lib/jwt"
	"github.com/magabrotheeeer/inventory-tracker/internal/lib/smtp"
	"github.com/magabrotheeeer/inventory-tracker/internal/migrations"
	authservice "github.com/magabrotheeeer/inventory-tracker/internal/services/auth"
	catalogservice "github.com/magabrotheeeer/inventory-tracker/internal/services/catalog"
	senderservice "github.com/magabrotheeeer/inventory-tracker/internal/services/sender"
	"github.com/magabrotheeeer/inventory-tracker/internal/storage/repository"
)

// App собирает все зависимости приложения и управляет жизненным циклом HTTP сервера.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
}

// New инициализирует хранилище, применяет миграции, поднимает кеш
// и собирает сервисы с маршрутами.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, "./migrations"); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	mailer := senderservice.NewSenderService(logger, smtp.NewTransport(cfg, logger))

	auth := authservice.NewAuthService(db, jwtMaker, mailer)
	catalog := catalogservice.NewCatalogService(db, cacheRedis, logger)

	limiter := rate.NewLimiter(rate.Limit(10), 20)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, auth, catalog, db, limiter)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}, nil
}

// Run запускает HTTP сервер и блокируется до остановки контекста
// или ошибки сервера. При остановке контекста сервер завершается
// корректно с таймаутом.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if closeErr := a.db.DB.Close(); closeErr != nil {
			a.logger.Error("failed to close database", slog.Any("err", closeErr))
		}
		return err
	}
}
