package gorouter

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	gocommand "github.com/goliatone/go-command"
	router "github.com/goliatone/go-router"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goliatone/go-pecusnet/components/dashboard"
	"github.com/goliatone/go-pecusnet/components/dashboard/httpapi"
	"github.com/goliatone/go-pecusnet/components/dashboard/queries"
)

// ViewerResolver converts a router.Context into a dashboard.ViewerContext.
type ViewerResolver func(router.Context) dashboard.ViewerContext

// PageController is the controller surface the routes depend on.
type PageController interface {
	RenderTemplate(ctx context.Context, viewer dashboard.ViewerContext, requested string, out io.Writer) error
	Page(ctx context.Context, viewer dashboard.ViewerContext, requested string) (dashboard.Page, error)
}

// Config wires go-router with the dashboard controller and theme API.
type Config[T any] struct {
	Router     router.Router[T]
	Controller PageController
	// Pages serves the JSON route. Defaults to a PageQuery over Controller.
	Pages          gocommand.Querier[queries.PageInput, dashboard.Page]
	API            httpapi.Executor
	ViewerResolver ViewerResolver
	Logger         *zap.Logger
	BasePath       string
	Routes         RouteConfig
}

// RouteConfig customizes the relative paths used for dashboard endpoints.
type RouteConfig struct {
	HTML  string
	Data  string
	Theme string
}

// Register mounts the dashboard HTML, JSON and theme routes on a go-router router.
func Register[T any](cfg Config[T]) error {
	if cfg.Router == nil {
		return errors.New("gorouter: router is required")
	}
	if cfg.Controller == nil {
		return errors.New("gorouter: controller is required")
	}
	routes := defaultRouteConfig(cfg.Routes)
	base := cfg.BasePath
	if base == "" {
		base = "/"
	}
	viewerResolver := cfg.ViewerResolver
	if viewerResolver == nil {
		viewerResolver = defaultViewerResolver
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("http")
	pages := cfg.Pages
	if pages == nil {
		pages = queries.NewPageQuery(cfg.Controller)
	}

	group := cfg.Router.Group(base)

	group.Get(routes.HTML, router.WrapHandler(logged(logger, "dashboard.html", func(ctx router.Context) (int, error) {
		status, body, errPayload := renderHTML(ctx.Context(), cfg.Controller, viewerResolver(ctx), ctx.Query("theme"))
		if errPayload != nil {
			return status, ctx.JSON(status, errPayload)
		}
		ctx.SetHeader("Content-Type", "text/html; charset=utf-8")
		return status, ctx.Send(body)
	})))

	group.Get(routes.Data, router.WrapHandler(logged(logger, "dashboard.data", func(ctx router.Context) (int, error) {
		status, payload := renderData(ctx.Context(), pages, viewerResolver(ctx), ctx.Query("theme"))
		return status, ctx.JSON(status, payload)
	})))

	if cfg.API != nil {
		group.Post(routes.Theme, router.WrapHandler(logged(logger, "dashboard.theme", func(ctx router.Context) (int, error) {
			status, payload := changeTheme(ctx.Context(), cfg.API, viewerResolver(ctx), ctx.Body())
			return status, ctx.JSON(status, payload)
		})))
	}

	return nil
}

func renderHTML(ctx context.Context, controller PageController, viewer dashboard.ViewerContext, theme string) (int, []byte, map[string]string) {
	var buf bytes.Buffer
	if err := controller.RenderTemplate(ctx, viewer, theme, &buf); err != nil {
		return httpapi.StatusFor(err), nil, errorPayload(err)
	}
	return http.StatusOK, buf.Bytes(), nil
}

func renderData(ctx context.Context, pages gocommand.Querier[queries.PageInput, dashboard.Page], viewer dashboard.ViewerContext, theme string) (int, any) {
	page, err := pages.Query(ctx, queries.PageInput{Viewer: viewer, Theme: theme})
	if err != nil {
		return httpapi.StatusFor(err), errorPayload(err)
	}
	return http.StatusOK, page.Payload()
}

func changeTheme(ctx context.Context, api httpapi.Executor, viewer dashboard.ViewerContext, body []byte) (int, any) {
	theme, err := api.Theme(ctx, viewer, body)
	if err != nil {
		return httpapi.StatusFor(err), errorPayload(err)
	}
	return http.StatusOK, httpapi.ThemeResponse{Theme: theme.String()}
}

// logged tags each request with an id and logs its outcome.
func logged(logger *zap.Logger, route string, handler func(router.Context) (int, error)) func(router.Context) error {
	return func(ctx router.Context) error {
		requestID := uuid.NewString()
		ctx.SetHeader("X-Request-ID", requestID)
		start := time.Now()
		status, err := handler(ctx)
		fields := []zap.Field{
			zap.String("route", route),
			zap.String("request_id", requestID),
			zap.Int("status", status),
			zap.Duration("duration", time.Since(start)),
		}
		switch {
		case err != nil:
			logger.Error("request failed", append(fields, zap.Error(err))...)
		case status >= http.StatusInternalServerError:
			logger.Error("request errored", fields...)
		case status >= http.StatusBadRequest:
			logger.Warn("request rejected", fields...)
		default:
			logger.Info("request served", fields...)
		}
		return err
	}
}

func errorPayload(err error) map[string]string {
	return map[string]string{"error": err.Error()}
}

func defaultViewerResolver(ctx router.Context) dashboard.ViewerContext {
	var viewer dashboard.ViewerContext
	if v, ok := ctx.Locals("user_id").(string); ok {
		viewer.UserID = v
	}
	if roles, ok := ctx.Locals("roles").([]string); ok {
		viewer.Roles = roles
	}
	viewer.Locale = inferLocale(ctx)
	return viewer
}

func inferLocale(ctx router.Context) string {
	if locale, ok := ctx.Locals("locale").(string); ok && locale != "" {
		return locale
	}
	if locale := strings.TrimSpace(ctx.Query("locale")); locale != "" {
		return strings.ToLower(locale)
	}
	return parseAcceptLanguage(ctx.Header("Accept-Language"))
}

func parseAcceptLanguage(header string) string {
	for _, token := range strings.Split(header, ",") {
		token = strings.TrimSpace(token)
		if idx := strings.Index(token, ";"); idx >= 0 {
			token = token[:idx]
		}
		if token != "" {
			return strings.ToLower(token)
		}
	}
	return ""
}

func defaultRouteConfig(routes RouteConfig) RouteConfig {
	if routes.HTML == "" {
		routes.HTML = "/dashboard"
	}
	if routes.Data == "" {
		routes.Data = "/dashboard/_data"
	}
	if routes.Theme == "" {
		routes.Theme = "/dashboard/theme"
	}
	return routes
}
