package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/foomo/notion-jarkup/config"
	"github.com/foomo/notion-jarkup/converter"
	"github.com/foomo/notion-jarkup/enrich"
	"github.com/foomo/notion-jarkup/metrics"
	"github.com/foomo/notion-jarkup/notion"
	"github.com/foomo/notion-jarkup/scrape"
	"github.com/foomo/notion-jarkup/service"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app holds the wired components shared by the commands.
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	registry *prometheus.Registry
	service  service.Service
}

func newApp(cfg *config.Config, source notion.BlockSource) (*app, error) {
	logger, err := newLogger(cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	fetcher := scrape.NewHTTPFetcher(&http.Client{Timeout: cfg.Fetch.Timeout}, cfg.Fetch.UserAgent, cfg.Fetch.MaxContentSize)
	enricher := enrich.New(logger.Named("enrich"), fetcher, m)
	blockConverter := converter.New(logger.Named("converter"), source, enricher, m, cfg.Converter)

	return &app{
		cfg:      cfg,
		logger:   logger,
		registry: registry,
		service:  service.NewService(logger.Named("service"), blockConverter, enricher),
	}, nil
}

func (a *app) close() {
	_ = a.logger.Sync()
}

// blockSource reads blocks from the fixture when one is given and from the
// Notion API otherwise.
func blockSource(cfg *config.Config, fixture string) (notion.BlockSource, error) {
	if fixture != "" {
		return notion.LoadMapSource(fixture)
	}
	if cfg.Notion.Token == "" {
		return nil, errors.New(config.EnvNotionToken + " is not set")
	}
	return notion.NewClient(notion.ClientSettings{
		Token:    cfg.Notion.Token,
		BaseURL:  cfg.Notion.BaseURL,
		Version:  cfg.Notion.Version,
		PageSize: cfg.Notion.PageSize,
	}, nil), nil
}

// newLogger logs JSON to stderr so stdout stays free for output and the
// stdio transport.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(lvl)
	zapConfig.OutputPaths = []string{"stderr"}
	zapConfig.ErrorOutputPaths = []string{"stderr"}
	return zapConfig.Build()
}
