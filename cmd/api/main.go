package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rubhub/catalog/app"
	"github.com/rubhub/catalog/app/api"
	"github.com/rubhub/catalog/app/auth"
	"github.com/rubhub/catalog/app/database"
	apiDoc "github.com/rubhub/catalog/app/doc"
	"github.com/rubhub/catalog/app/servicetypes"
	_ "github.com/rubhub/catalog/docs"
	"github.com/rubhub/catalog/internal/cache"
	"github.com/rubhub/catalog/internal/deps"
	"github.com/rubhub/catalog/internal/events"
	"github.com/rubhub/catalog/internal/logger"
	"github.com/rubhub/catalog/internal/router"
	"github.com/rubhub/catalog/internal/sanitizer"
	"github.com/rubhub/catalog/internal/security"
)

const version = "1.0.0"

// @title RubHub Catalog API
// @version 1.0
// @description Massage service type catalog for the RubHub booking platform.
// @termsOfService https://rubhub.app/terms

// @contact.name API Support Team
// @contact.url https://rubhub.app/support
// @contact.email support@rubhub.app

// @license.name MIT License
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and a PASETO token.
func main() {
	log := logger.NewZeroLogger(os.Stdout, logger.LevelInfo, logger.Fields{"service": "catalog"})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, log)
	stop()
	if err != nil {
		log.Fatal(err, nil)
	}
}

// run wires the API and serves until ctx is cancelled. Every failure is
// returned so the deferred cleanups run before main exits.
func run(ctx context.Context, log logger.Logger) error {
	cfg, err := app.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log.SetLevel(logger.ParseLevel(cfg.LogLevel))

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.New(ctx, &cfg.DB)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer sqlDB.Close()

	if cfg.DB.AutoMigrate {
		schemaVersion, err := database.Migrate(cfg.DB.MigrationsPath, cfg.DB.URL())
		if err != nil {
			return fmt.Errorf("migrate %s: %w", cfg.DB.MigrationsPath, err)
		}
		log.Info("database migrations applied", map[string]interface{}{"version": schemaVersion})
	}

	cacheService, err := cache.New[string](cfg.Cache)
	if err != nil {
		return fmt.Errorf("cache: %w", err)
	}
	defer cacheService.Close()
	if err := cacheService.Ping(ctx); err != nil {
		return fmt.Errorf("cache %s: %w", cfg.Cache.Backend, err)
	}

	tokenMaker, err := security.NewPasetoMaker(cfg.Auth.SymmetricKey)
	if err != nil {
		return fmt.Errorf("token maker: %w", err)
	}

	publisher, err := events.New(cfg.Events)
	if err != nil {
		return fmt.Errorf("events: %w", err)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Error(err, map[string]interface{}{"stage": "events shutdown"})
		}
	}()

	container := deps.New(
		deps.WithDB(db),
		deps.WithTokenMaker(tokenMaker),
		deps.WithSanitizer(sanitizer.NewHTMLStripper()),
		deps.WithLogger(log),
		deps.WithCache(cacheService),
		deps.WithPublisher(publisher),
	)
	auth.InitServices(container)
	servicetypes.InitRepositories(container, &cfg.ServiceTypes)

	engine := gin.New()
	engine.Use(gin.Recovery(),
		api.RequestLogger(log),
		api.Cors(cfg.AllowedOrigins),
		api.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

	engine.GET(router.APIPrefix+"/healthz", api.HealthCheck(cfg.Env, version,
		api.Check{Name: "database", Probe: sqlDB.PingContext},
		api.Check{Name: "cache", Probe: cacheService.Ping},
	))

	mounter := router.NewMounter(container)
	mounter.Public(engine).
		Mount(servicetypes.MountPublic)
	mounter.Authenticated(engine, auth.ContainerMiddleware(container)).
		Mount(servicetypes.MountAuthenticated, auth.MountAuthenticated)

	apiDoc.Init(engine, cfg.Env)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("starting catalog API server", map[string]interface{}{"addr": srv.Addr, "env": cfg.Env})
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen %s: %w", srv.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}
	log.Info("shutting down", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
