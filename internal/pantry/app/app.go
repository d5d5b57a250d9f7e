package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/pantry/internal/pantry/http"
	"github.com/aussiebroadwan/pantry/internal/pantry/service"
	"github.com/aussiebroadwan/pantry/internal/pantry/store/drivers/sqlite"
	"github.com/aussiebroadwan/pantry/pkg/cryptox"
	"github.com/aussiebroadwan/pantry/pkg/httpx"
	"github.com/aussiebroadwan/pantry/pkg/jwtx"
	"github.com/aussiebroadwan/pantry/pkg/slogx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// BuildVersion is overridden at build time via -ldflags.
var BuildVersion = "v0.1.0"

const (
	pepperSize     = 32
	signingKeySize = 64
)

// Application wires the pantry service together.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db       *sqlite.Store
	tokens   *jwtx.HS256
	hasher   *cryptox.PasswordHasher
	registry *prometheus.Registry

	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// NewLogger builds the process logger from cfg.
func NewLogger(cfg Config) *slog.Logger {
	return slogx.New(slogx.Config{
		Service: "pantry",
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})
}

// New creates a new Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg:      cfg,
		logger:   NewLogger(cfg),
		registry: prometheus.NewRegistry(),
	}
	app.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	if err := app.initSecrets(); err != nil {
		return nil, err
	}
	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("pantry service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.housekeepingService.Stop()
			_ = app.db.Close()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown drains the HTTP server, stops background work and closes the
// database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down pantry service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("pantry service stopped")
	return nil
}

// Handler exposes the routed HTTP handler.
func (app *Application) Handler() http.Handler { return app.router }

func (app *Application) initSecrets() error {
	pepper, err := cryptox.LoadOrCreateSecret(app.cfg.PepperFile, pepperSize)
	if err != nil {
		return fmt.Errorf("failed to load pepper: %w", err)
	}
	app.hasher = cryptox.NewPasswordHasher(string(pepper))

	key, err := cryptox.LoadOrCreateSecret(app.cfg.SigningKeyFile, signingKeySize)
	if err != nil {
		return fmt.Errorf("failed to load signing key: %w", err)
	}
	tokens, err := jwtx.NewHS256(key, app.cfg.Issuer)
	if err != nil {
		return fmt.Errorf("failed to initialise token signer: %w", err)
	}
	app.tokens = tokens
	return nil
}

func (app *Application) initDatabase() error {
	db, err := OpenStore(app.cfg)
	if err != nil {
		return err
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// OpenStore opens the configured database without migrating it.
func OpenStore(cfg Config) (*sqlite.Store, error) {
	db, err := sqlite.NewStore(cfg.DatabaseFile)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return db, nil
}

func (app *Application) initHTTP() {
	metrics := service.NewMetrics(app.registry)

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
	app.housekeepingService.Metrics = metrics

	router := httpapi.NewRouter(app.tokens, BuildVersion, app.db, app.logger)
	router.Metrics = httpx.NewMetrics(app.registry, "pantry")
	router.Gatherer = app.registry

	router.SignupService = &service.SignupService{
		Store:    app.db,
		Hasher:   app.hasher,
		Verifier: app.tokens,
		Metrics:  metrics,
	}
	router.SessionService = &service.SessionService{
		Store:  app.db,
		Hasher: app.hasher,
		Signer: app.tokens,
		Issuer: app.cfg.Issuer,
		TTL:    app.cfg.AccessTokenTTL,
	}
	router.InviteService = &service.InviteService{
		Store:    app.db,
		Signer:   app.tokens,
		Verifier: app.tokens,
		Issuer:   app.cfg.Issuer,
		Metrics:  metrics,
	}
	router.MembershipService = &service.MembershipService{Store: app.db, Metrics: metrics}
	router.LocationService = &service.LocationService{Store: app.db}
	router.StoreService = &service.StoreService{Store: app.db}
	router.AisleService = &service.AisleService{Store: app.db}
	router.ItemService = &service.ItemService{Store: app.db}
	router.InventoryService = &service.InventoryService{Store: app.db}
	router.ShoppingListService = &service.ShoppingListService{Store: app.db}
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
