package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-pecusnet/components/dashboard"
	"github.com/goliatone/go-pecusnet/internal/config"
	"github.com/goliatone/go-pecusnet/internal/logging"
)

// app holds the wired dashboard for one CLI invocation.
type app struct {
	cfg        *config.Config
	logger     *zap.Logger
	service    *dashboard.Service
	controller *dashboard.Controller
	telemetry  dashboard.Telemetry
}

// loadConfig reads the environment and applies the global flags.
func loadConfig(root *cli) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if root.Profile != "" {
		cfg.ProfilePath = root.Profile
	}
	if root.Seed != 0 {
		cfg.Seed = root.Seed
	}
	return cfg, nil
}

func newApp(root *cli) (*app, error) {
	cfg, err := loadConfig(root)
	if err != nil {
		return nil, err
	}
	return buildApp(cfg)
}

func buildApp(cfg *config.Config) (*app, error) {
	logger, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	profile := dashboard.DefaultHerdProfile()
	if cfg.ProfilePath != "" {
		profile, err = dashboard.LoadHerdProfile(cfg.ProfilePath)
		if err != nil {
			return nil, fmt.Errorf("pecusnet: load profile: %w", err)
		}
		logger.Info("herd profile loaded", zap.String("path", cfg.ProfilePath), zap.Int("heads", profile.Herd.Heads))
	}
	renderer, err := dashboard.NewTemplateRenderer()
	if err != nil {
		return nil, fmt.Errorf("pecusnet: template renderer: %w", err)
	}
	telemetry := dashboard.NewLoggerTelemetry(logger)
	service := dashboard.NewService(dashboard.Options{
		Profile: &profile,
		Points:  dashboard.NewRandomPointSource(cfg.Seed),
		Charts: dashboard.NewChartBuilder(
			dashboard.WithChartCache(dashboard.NewChartCache(cfg.ChartCacheTTL)),
			dashboard.WithChartAssetsHost(cfg.AssetsHost),
		),
		Telemetry: telemetry,
		Logger:    logger.Named("dashboard"),
	})
	controller := dashboard.NewController(dashboard.ControllerOptions{
		Service:  service,
		Renderer: renderer,
	})
	return &app{
		cfg:        cfg,
		logger:     logger,
		service:    service,
		controller: controller,
		telemetry:  telemetry,
	}, nil
}

func (a *app) close() {
	_ = a.logger.Sync()
}
