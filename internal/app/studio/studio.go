package studio

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/dreambody-studio/internal/ai/gemini"
	"github.com/magabrotheeeer/dreambody-studio/internal/cache"
	"github.com/magabrotheeeer/dreambody-studio/internal/config"
	"github.com/magabrotheeeer/dreambody-studio/internal/http/handlers/health"
	"github.com/magabrotheeeer/dreambody-studio/internal/http/middlewarectx"
	"github.com/magabrotheeeer/dreambody-studio/internal/lib/sl"
	"github.com/magabrotheeeer/dreambody-studio/internal/migrations"
	"github.com/magabrotheeeer/dreambody-studio/internal/services/admin"
	"github.com/magabrotheeeer/dreambody-studio/internal/services/chat"
	"github.com/magabrotheeeer/dreambody-studio/internal/services/offers"
	"github.com/magabrotheeeer/dreambody-studio/internal/services/packages"
	"github.com/magabrotheeeer/dreambody-studio/internal/services/promos"
	"github.com/magabrotheeeer/dreambody-studio/internal/services/users"
	"github.com/magabrotheeeer/dreambody-studio/internal/storage/memory"
	"github.com/magabrotheeeer/dreambody-studio/internal/storage/repository"
)

// Store объединяет всё, что сервисам нужно от хранилища.
// Реализуется repository.Storage и memory.Storage.
type Store interface {
	users.Repository
	packages.Repository
	promos.Repository
	offers.Repository
	admin.Repository
	health.Pinger
}

// Services обслуживают маршруты.
type Services struct {
	Users       *users.Service
	Packages    *packages.Service
	Promos      *promos.Service
	Offers      *offers.Service
	Admin       *admin.Service
	Chat        *chat.Service
	ChatLimiter *middlewarectx.RateLimiter
	Pinger      health.Pinger
}

// NewServices собирает сервисы поверх хранилища, кэша и ассистента.
// advisor может быть nil.
func NewServices(cfg *config.Config, store Store, c packages.Cache, advisor chat.Advisor, logger *slog.Logger) *Services {
	chatService := chat.New(store, advisor, chat.Config{
		ExcerptLen:   cfg.ContextExcerptLen,
		Goal:         cfg.Goal,
		ReplyTimeout: cfg.Gemini.Timeout,
		IdleTTL:      cfg.SessionIdleTTL,
	}, logger)

	return &Services{
		Users:    users.New(store, store, logger),
		Packages: packages.New(store, c, logger),
		Promos:   promos.New(store, logger),
		Offers:   offers.New(store, c, logger),
		Admin:    admin.New(store, logger),
		Chat:     chatService,
		ChatLimiter: middlewarectx.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, "id",
			middlewarectx.WithKnownKeys(chatService.Exists),
			middlewarectx.WithIdleTTL(cfg.SessionIdleTTL),
		),
		Pinger: store,
	}
}

// App запускает HTTP-сервер студии.
type App struct {
	server  *http.Server
	logger  *slog.Logger
	cfg     *config.Config
	closers []func() error
}

// New поднимает зависимости по конфигу и собирает роутер.
// Без строки подключения данные хранятся в памяти, без адреса Redis кэш
// отключён, без ключа Gemini ассистент отвечает заглушкой.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	a := &App{logger: logger, cfg: cfg}

	store, err := a.openStore()
	if err != nil {
		a.close()
		return nil, err
	}

	var c packages.Cache = cache.Noop{}
	if cfg.AddressRedis != "" {
		redisCache, err := cache.InitServer(ctx, cfg.RedisConnection)
		if err != nil {
			a.close()
			return nil, err
		}
		a.closers = append(a.closers, redisCache.Close)
		c = redisCache
	} else {
		logger.Info("redis address is empty, catalog cache disabled")
	}

	var advisor chat.Advisor
	if cfg.APIKey != "" {
		client, err := gemini.New(ctx, cfg.Gemini)
		if err != nil {
			a.close()
			return nil, err
		}
		a.closers = append(a.closers, client.Close)
		advisor = client
	} else {
		logger.Warn("gemini api key is empty, chat replies will use the fallback message")
	}

	router := chi.NewRouter()
	RegisterRoutes(router, logger, NewServices(cfg, store, c, advisor, logger))

	a.server = &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP + cfg.Gemini.Timeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return a, nil
}

func (a *App) openStore() (Store, error) {
	if a.cfg.StorageConnectionString == "" {
		a.logger.Warn("storage connection string is empty, data is kept in memory")
		return memory.New(), nil
	}

	db, err := repository.New(a.cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, db.Close)

	if err = migrations.Run(db.DB, a.cfg.MigrationsPath); err != nil {
		return nil, err
	}
	if err = repository.CheckDatabaseReady(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Handler отдаёт роутер приложения.
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// Run запускает HTTP-сервер и останавливает его по отмене ctx.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

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
		timeoutCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		return a.server.Shutdown(timeoutCtx)
	}
}

func (a *App) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Error("failed to release resource", sl.Err(err))
		}
	}
	a.closers = nil
}
