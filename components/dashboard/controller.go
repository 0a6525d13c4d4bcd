package dashboard

import (
	"context"
	"errors"
	"io"
)

var (
	errMissingService  = errors.New("dashboard: controller missing service")
	errMissingRenderer = errors.New("dashboard: controller missing renderer")
)

// PageBuilder is the subset of Service the controller depends on.
type PageBuilder interface {
	ResolveTheme(ctx context.Context, viewer ViewerContext, requested string) (Theme, error)
	BuildPage(ctx context.Context, theme Theme) (Page, error)
	Icons() IconRenderer
}

// ControllerOptions wires dependencies for the dashboard controller.
type ControllerOptions struct {
	Service  PageBuilder
	Renderer Renderer
	Template string
}

// Controller orchestrates page rendering for the dashboard routes.
type Controller struct {
	opts ControllerOptions
}

// NewController wires the service into a controller.
func NewController(opts ControllerOptions) *Controller {
	if opts.Template == "" {
		opts.Template = "dashboard.html"
	}
	return &Controller{opts: opts}
}

// Page resolves the theme for the viewer and builds the page model.
func (c *Controller) Page(ctx context.Context, viewer ViewerContext, requested string) (Page, error) {
	if c.opts.Service == nil {
		return Page{}, errMissingService
	}
	theme, err := c.opts.Service.ResolveTheme(ctx, viewer, requested)
	if err != nil {
		return Page{}, err
	}
	return c.opts.Service.BuildPage(ctx, theme)
}

// RenderTemplate renders the dashboard HTML into out.
func (c *Controller) RenderTemplate(ctx context.Context, viewer ViewerContext, requested string, out io.Writer) error {
	if c.opts.Renderer == nil {
		return errMissingRenderer
	}
	page, err := c.Page(ctx, viewer, requested)
	if err != nil {
		return err
	}
	_, err = c.opts.Renderer.Render(c.opts.Template, page.TemplateData(c.icons()), out)
	return err
}

func (c *Controller) icons() IconRenderer {
	if c.opts.Service == nil || c.opts.Service.Icons() == nil {
		return SVGIcons
	}
	return c.opts.Service.Icons()
}
