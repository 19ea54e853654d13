package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/portfolio-assistant/internal/data/db"
	"github.com/yungbote/portfolio-assistant/internal/data/seed"
	"github.com/yungbote/portfolio-assistant/internal/http"
	httpH "github.com/yungbote/portfolio-assistant/internal/http/handlers"
	"github.com/yungbote/portfolio-assistant/internal/observability"
	"github.com/yungbote/portfolio-assistant/internal/pkg/logger"
)

const serviceName = "portfolio-assistant"

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Cfg      Config
	Repos    Repos
	Services Services
	Clients  Clients
	Metrics  *observability.Metrics
	Server   *http.Server

	dbService    *db.Service
	otelShutdown func(context.Context) error
	cancel       context.CancelFunc
}

// New connects to every backing store, migrates and optionally seeds the
// database, and wires the HTTP server.
func New(ctx context.Context, log *logger.Logger) (*App, error) {
	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)

	otelShutdown := observability.InitOTel(ctx, log, observability.OtelConfig{
		ServiceName: serviceName,
		Environment: cfg.Environment,
		Version:     cfg.Version,
	})
	metrics := observability.Init(log)

	dbService, err := db.Open(cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}
	theDB := dbService.DB()
	if err := db.AutoMigrateAll(theDB); err != nil {
		_ = dbService.Close()
		return nil, fmt.Errorf("db automigrate: %w", err)
	}

	seedFile, err := seed.Load()
	if err != nil {
		_ = dbService.Close()
		return nil, fmt.Errorf("load seed: %w", err)
	}
	if cfg.SeedOnStart {
		stats, err := seed.Apply(ctx, theDB, log, seedFile)
		if err != nil {
			_ = dbService.Close()
			return nil, fmt.Errorf("seed: %w", err)
		}
		log.Info("Seed applied", "intents", stats.Intents, "responses", stats.Responses, "follow_ups", stats.FollowUps, "portfolio_rows", stats.Portfolio)
	}

	clients, err := wireClients(ctx, log, cfg)
	if err != nil {
		_ = dbService.Close()
		return nil, err
	}

	reposet := wireRepos(theDB, log)
	serviceset, err := wireServices(log, cfg, reposet, clients, metrics, seedFile)
	if err != nil {
		clients.Close()
		_ = dbService.Close()
		return nil, err
	}

	var pinger httpH.Pinger
	if sqlDB, err := theDB.DB(); err == nil {
		pinger = sqlDB
	}
	handlerset := wireHandlers(log, reposet, serviceset, metrics, pinger)
	middleware := wireMiddleware(log, cfg)
	server := wireServer(log, cfg, serviceset, handlerset, middleware, metrics)

	return &App{
		Log:          log,
		DB:           theDB,
		Cfg:          cfg,
		Repos:        reposet,
		Services:     serviceset,
		Clients:      clients,
		Metrics:      metrics,
		Server:       server,
		dbService:    dbService,
		otelShutdown: otelShutdown,
	}, nil
}

// Start launches background work: the cache warm-up and the Redis probe.
func (a *App) Start(ctx context.Context) {
	if a == nil || a.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	a.cancel = cancel

	go func() {
		warmCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
		if err := a.Services.Cache.Warm(warmCtx); err != nil {
			a.Log.Warn("portfolio cache warm-up incomplete", "error", err)
			return
		}
		a.Log.Info("portfolio cache warmed")
	}()

	if a.Clients.Redis != nil {
		a.Metrics.StartRedisCollector(ctx, a.Log, a.Clients.Redis, 15*time.Second)
	}
}

// Run serves HTTP until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Server == nil {
		return errors.New("app not initialized")
	}
	return a.Server.Run(ctx, net.JoinHostPort("", a.Cfg.Port), a.Cfg.ShutdownTimeout)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	a.Services.QueryLog.Wait()
	a.Clients.Close()
	if a.dbService != nil {
		if err := a.dbService.Close(); err != nil {
			a.Log.Warn("db close failed", "error", err)
		}
	}
	if a.otelShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.otelShutdown(ctx); err != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
	}
	a.Log.Sync()
}
