package main

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	router "github.com/goliatone/go-router"
	"go.uber.org/zap"

	"github.com/goliatone/go-pecusnet/components/dashboard"
	"github.com/goliatone/go-pecusnet/components/dashboard/commands"
	"github.com/goliatone/go-pecusnet/components/dashboard/gorouter"
	"github.com/goliatone/go-pecusnet/components/dashboard/httpapi"
)

type serveCmd struct {
	Addr       string `help:"Listen address (overrides PECUSNET_ADDR)."`
	BasePath   string `name:"base-path" help:"Route prefix (overrides PECUSNET_BASE_PATH)."`
	AssetsHost string `name:"assets-host" help:"Base URL serving echarts.min.js (overrides PECUSNET_ASSETS_HOST)."`
}

func (cmd *serveCmd) Run(ctx context.Context, root *cli) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	if cmd.Addr != "" {
		cfg.Addr = cmd.Addr
	}
	if cmd.BasePath != "" {
		cfg.BasePath = cmd.BasePath
	}
	if cmd.AssetsHost != "" {
		cfg.AssetsHost = cmd.AssetsHost
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a, err := buildApp(cfg)
	if err != nil {
		return err
	}
	defer a.close()

	server := router.NewFiberAdapter()
	viewer := dashboard.ViewerContext{UserID: cfg.DefaultViewer, Roles: []string{"producer"}, Locale: "pt-br"}
	if err := gorouter.Register(gorouter.Config[*fiber.App]{
		Router:     server.Router(),
		Controller: a.controller,
		API: &httpapi.Handlers{
			Toggle: commands.NewToggleThemeCommand(a.service, a.telemetry),
			Set:    commands.NewSetThemeCommand(a.service, a.telemetry),
		},
		ViewerResolver: func(router.Context) dashboard.ViewerContext { return viewer },
		Logger:         a.logger,
		BasePath:       cfg.BasePath,
	}); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(cfg.Addr)
	}()
	a.logger.Info("dashboard ready", zap.String("addr", cfg.Addr), zap.String("base_path", cfg.BasePath))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	a.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
