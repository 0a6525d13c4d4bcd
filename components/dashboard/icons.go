package dashboard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ettle/strcase"
)

// IconKind names a glyph from the dashboard icon set.
type IconKind string

const (
	IconBeef       IconKind = "Beef"
	IconScale      IconKind = "Scale"
	IconDollarSign IconKind = "DollarSign"
	IconActivity   IconKind = "Activity"
	IconMoon       IconKind = "Moon"
	IconSun        IconKind = "Sun"
	IconTrendingUp IconKind = "TrendingUp"
)

// ErrUnknownIcon is returned for icon kinds outside the set.
var ErrUnknownIcon = errors.New("dashboard: unknown icon")

// IconStyle is everything a consumer may say about how an icon looks.
type IconStyle struct {
	Color string
	Size  int
}

// IconRenderer draws an icon kind with a style. Consumers never mutate a pre-built element.
type IconRenderer interface {
	RenderIcon(kind IconKind, style IconStyle) (string, error)
}

// IconRendererFunc adapts a function to IconRenderer.
type IconRendererFunc func(kind IconKind, style IconStyle) (string, error)

// RenderIcon satisfies IconRenderer.
func (f IconRendererFunc) RenderIcon(kind IconKind, style IconStyle) (string, error) {
	return f(kind, style)
}

// SVGIcons renders the built-in stroke icons as inline SVG.
var SVGIcons IconRenderer = IconRendererFunc(RenderIcon)

// lucide-style stroke paths on a 24x24 grid
var iconPaths = map[IconKind]string{
	IconBeef: `<circle cx="12.5" cy="8.5" r="2.5"/>` +
		`<path d="M12.5 2a6.5 6.5 0 0 0-6.22 4.6c-1.1 3.13-.78 3.9-3.18 6.08A3 3 0 0 0 5 18c4 0 8.4-1.8 11.4-4.3A6.5 6.5 0 0 0 12.5 2Z"/>` +
		`<path d="m18.5 6 2.19 4.5a6.48 6.48 0 0 1 .31 2 6.49 6.49 0 0 1-2.6 5.2C15.4 20.2 11 22 7 22a3 3 0 0 1-2.68-1.66L2.4 16.5"/>`,
	IconScale: `<path d="m16 16 3-8 3 8c-.87.65-1.92 1-3 1s-2.13-.35-3-1Z"/>` +
		`<path d="m2 16 3-8 3 8c-.87.65-1.92 1-3 1s-2.13-.35-3-1Z"/>` +
		`<path d="M7 21h10"/><path d="M12 3v18"/>` +
		`<path d="M3 7h2c2 0 5-1 7-2 2 1 5 2 7 2h2"/>`,
	IconDollarSign: `<line x1="12" x2="12" y1="2" y2="22"/>` +
		`<path d="M17 5H9.5a3.5 3.5 0 0 0 0 7h5a3.5 3.5 0 0 1 0 7H6"/>`,
	IconActivity: `<path d="M22 12h-4l-3 9L9 3l-3 9H2"/>`,
	IconMoon:     `<path d="M12 3a6 6 0 0 0 9 9 9 9 0 1 1-9-9Z"/>`,
	IconSun: `<circle cx="12" cy="12" r="4"/>` +
		`<path d="M12 2v2"/><path d="M12 20v2"/><path d="m4.93 4.93 1.41 1.41"/><path d="m17.66 17.66 1.41 1.41"/>` +
		`<path d="M2 12h2"/><path d="M20 12h2"/><path d="m6.34 17.66-1.41 1.41"/><path d="m19.07 4.93-1.41 1.41"/>`,
	IconTrendingUp: `<polyline points="22 7 13.5 15.5 8.5 10.5 2 17"/><polyline points="16 7 22 7 22 13"/>`,
}

// RenderIcon returns inline SVG markup for the icon kind.
func RenderIcon(kind IconKind, style IconStyle) (string, error) {
	paths, ok := iconPaths[kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownIcon, kind)
	}
	size := style.Size
	if size <= 0 {
		size = 24
	}
	color := strings.TrimSpace(style.Color)
	if color == "" {
		color = "currentColor"
	}
	return fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" class="icon icon-%s" width="%d" height="%d" viewBox="0 0 24 24" fill="none" stroke="%s" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true">%s</svg>`,
		kind.Slug(), size, size, color, paths,
	), nil
}

// Slug returns the kebab-case CSS name for the icon.
func (k IconKind) Slug() string {
	return strcase.ToKebab(string(k))
}
