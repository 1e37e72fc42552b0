package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/application/commerce"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/infrastructure/auth"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/infrastructure/cache"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/infrastructure/config"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/infrastructure/event"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/infrastructure/logger"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/infrastructure/migration"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/infrastructure/persistence"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/infrastructure/telemetry"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/interfaces/http/middleware"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		fmt.Fprintln(os.Stderr, "server error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	bootLog := logger.New(cfg.Log)

	// Telemetry providers are created before the final logger so the OTLP
	// log bridge can be teed into it.
	logProvider, err := telemetry.NewLoggerProvider(ctx, cfg.Telemetry, bootLog)
	if err != nil {
		return err
	}
	var extra []zapcore.Core
	if core := logProvider.Core(); core != nil {
		extra = append(extra, core)
	}
	log := logger.New(cfg.Log, extra...).With(zap.String("service", cfg.App.Name))
	defer func() { _ = log.Sync() }()

	log.Info("starting commerce backend",
		zap.String("version", version),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	tracerProvider, err := telemetry.NewTracerProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		return err
	}
	meterProvider, err := telemetry.NewMeterProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		return err
	}
	profiler, err := telemetry.NewProfiler(cfg.Profiling, cfg.Telemetry.ServiceName, log)
	if err != nil {
		return err
	}
	if profiler.IsEnabled() {
		tracerProvider.EnableSpanProfiles()
	}
	defer func() {
		shutdownCtx := context.WithoutCancel(ctx)
		if err := errors.Join(
			tracerProvider.Shutdown(shutdownCtx),
			meterProvider.Shutdown(shutdownCtx),
			logProvider.Shutdown(shutdownCtx),
			profiler.Stop(),
		); err != nil {
			log.Error("telemetry shutdown failed", zap.Error(err))
		}
	}()

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level), cfg.Telemetry.DBSlowQueryThresh)
	db, err := persistence.NewDatabase(cfg.Database, gormLog)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("error closing database", zap.Error(err))
		}
	}()
	if err := telemetry.RegisterDBTracing(db.DB, cfg.Telemetry, log); err != nil {
		return err
	}
	log.Info("database connected", zap.String("host", cfg.Database.Host), zap.String("db", cfg.Database.DBName))

	if cfg.Migration.AutoMigrate {
		if err := migrate(db, log); err != nil {
			return err
		}
	}

	bus := event.NewInMemoryEventBus(log)
	bus.Subscribe(event.NewActivityLog(log))
	if meterProvider.IsEnabled() {
		commerceMetrics, err := telemetry.NewCommerceMetrics(meterProvider.Meter("commerce"))
		if err != nil {
			return err
		}
		bus.Subscribe(commerceMetrics)
	}
	if err := bus.Start(ctx); err != nil {
		return fmt.Errorf("failed to start event bus: %w", err)
	}
	defer func() { _ = bus.Stop(context.WithoutCancel(ctx)) }()

	services := commerce.NewServices(
		persistence.NewGormTransactionScope(db.DB),
		persistence.NewGormRepositories(db.DB),
		bus,
		log,
	)

	idem := middleware.IdempotencyConfig{TTL: cfg.Idempotency.TTL, Logger: log}
	if cfg.Idempotency.Enabled {
		store, err := cache.NewIdempotencyStore(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer store.Close()
		idem.Store = store
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	opts := router.Options{
		Logger: log,
		HTTP:   cfg.HTTP,
		Auth: middleware.AuthConfig{
			Verifier: auth.NewTokenVerifier(cfg.JWT),
			Required: cfg.JWT.Required,
			Logger:   log,
		},
		Idempotency: idem,
		Tracing:     middleware.TracingConfig{ServiceName: cfg.Telemetry.ServiceName, Enabled: tracerProvider.IsEnabled()},
		Profiling:   middleware.ProfilingConfig{Enabled: profiler.IsEnabled()},
	}
	if meterProvider.IsEnabled() {
		opts.Meter = meterProvider.Meter("http")
	}
	engine := router.New(router.NewHandlers(services, db, version), opts)

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down server", zap.Duration("timeout", cfg.HTTP.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	log.Info("server exited gracefully")
	return nil
}

func migrate(db *persistence.Database, log *zap.Logger) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	m, err := migration.New(sqlDB, log)
	if err != nil {
		return err
	}
	// closing the migrator would close the shared pool
	return m.Up()
}
