package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/VictorHugo-7/S3-Site-MauaEsports/internal/clients"
	"github.com/VictorHugo-7/S3-Site-MauaEsports/internal/config"
	httpserver "github.com/VictorHugo-7/S3-Site-MauaEsports/internal/http"
	"github.com/VictorHugo-7/S3-Site-MauaEsports/internal/http/handlers"
	"github.com/VictorHugo-7/S3-Site-MauaEsports/internal/http/middleware"
	"github.com/VictorHugo-7/S3-Site-MauaEsports/internal/service"
)

// App wires report-service dependencies.
type App struct {
	server *httpserver.Server
	logger *zap.Logger
}

// New constructs the application graph.
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	httpClient := clients.NewDefaultHTTPClient(cfg.UpstreamTimeout())
	esports := clients.NewEsportsClient(cfg.Upstream.BaseURL, cfg.Upstream.Token, httpClient, logger)

	reportService := service.NewReportService(esports, cfg.Report.IncludeRankColumn, logger)

	deps := httpserver.RouterDeps{
		ReportHandlers: handlers.NewReportHandlers(reportService, logger),
		HealthHandler:  handlers.NewHealthHandler(),
	}

	router := httpserver.NewRouter(deps, middleware.BearerAuth(cfg.Auth.Token))
	server := httpserver.NewServer(cfg.HTTPAddress(), router, logger)

	return &App{server: server, logger: logger}, nil
}

// Run starts HTTP server.
func (a *App) Run(ctx context.Context) error {
	return a.server.Run(ctx)
}
