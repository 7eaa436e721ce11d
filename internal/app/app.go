package app

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/torvund/wildskills-backend/internal/data/db"
	"github.com/torvund/wildskills-backend/internal/observability"
	"github.com/torvund/wildskills-backend/internal/pkg/logger"
)

type App struct {
	Log      *logger.Logger
	Cfg      Config
	Router   *gin.Engine
	Repos    Repos
	Services Services
	Handlers Handlers

	pg           *db.PostgresService
	otelShutdown func(context.Context) error
}

func New(ctx context.Context) (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = os.Getenv("APP_ENV")
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, err
	}

	cfg := LoadConfig(log)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	otelShutdown := observability.InitOTel(ctx, log, observability.OtelConfig{
		ServiceName: "wildskills-backend",
		Environment: cfg.Environment,
	})

	pg, err := db.NewPostgresService(log)
	if err != nil {
		return nil, err
	}
	if err := pg.AutoMigrateAll(); err != nil {
		pg.Close()
		return nil, err
	}

	repos := wireRepos(pg.DB(), log)
	svcs := wireServices(pg.DB(), log, cfg, repos)
	handlers := wireHandlers(log, svcs)
	router := wireRouter(log, cfg, svcs, handlers)

	return &App{
		Log:          log,
		Cfg:          cfg,
		Router:       router,
		Repos:        repos,
		Services:     svcs,
		Handlers:     handlers,
		pg:           pg,
		otelShutdown: otelShutdown,
	}, nil
}

func (a *App) Close(ctx context.Context) {
	if a.otelShutdown != nil {
		if err := a.otelShutdown(ctx); err != nil {
			a.Log.Warn("Failed to shut down tracing", "error", err)
		}
	}
	if a.pg != nil {
		if err := a.pg.Close(); err != nil {
			a.Log.Warn("Failed to close database pool", "error", err)
		}
	}
	a.Log.Sync()
}
