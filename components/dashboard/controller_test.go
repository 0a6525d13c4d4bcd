package dashboard

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

type stubRenderer struct {
	lastTemplate string
	lastPayload  map[string]any
	err          error
}

func (r *stubRenderer) Render(name string, data any, out ...io.Writer) (string, error) {
	r.lastTemplate = name
	if payload, ok := data.(map[string]any); ok {
		r.lastPayload = payload
	}
	if len(out) > 0 && out[0] != nil {
		out[0].Write([]byte("<html></html>"))
	}
	return "<html></html>", r.err
}

type stubPageBuilder struct {
	page Page
	err  error
}

func (s *stubPageBuilder) ResolveTheme(_ context.Context, _ ViewerContext, requested string) (Theme, error) {
	if requested == "" {
		return ThemeLight, nil
	}
	return ParseTheme(requested)
}

func (s *stubPageBuilder) BuildPage(_ context.Context, theme Theme) (Page, error) {
	page := s.page
	page.Theme = theme
	return page, s.err
}

func (s *stubPageBuilder) Icons() IconRenderer { return SVGIcons }

func TestControllerRenderTemplate(t *testing.T) {
	renderer := &stubRenderer{}
	controller := NewController(ControllerOptions{
		Service:  NewService(Options{Points: NewRandomPointSource(5)}),
		Renderer: renderer,
	})

	var buf bytes.Buffer
	if err := controller.RenderTemplate(context.Background(), ViewerContext{UserID: "user"}, "dark", &buf); err != nil {
		t.Fatalf("RenderTemplate returned error: %v", err)
	}
	if renderer.lastTemplate != "dashboard.html" {
		t.Fatalf("expected dashboard template to render, got %s", renderer.lastTemplate)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected rendered output")
	}
	if renderer.lastPayload["theme"] != "dark" {
		t.Fatalf("expected dark theme in template data, got %v", renderer.lastPayload["theme"])
	}
	css, _ := renderer.lastPayload["theme_css"].(string)
	if !strings.Contains(css, "--pecus-bg: "+PaletteFor(ThemeDark).Background) {
		t.Fatalf("expected dark css variables, got %q", css)
	}
	cards, _ := renderer.lastPayload["cards"].([]map[string]any)
	if len(cards) != 4 {
		t.Fatalf("expected four cards, got %d", len(cards))
	}
	nav, _ := renderer.lastPayload["nav"].(map[string]any)
	if nav["toggle_target"] != "light" {
		t.Fatalf("expected toggle to target light, got %v", nav["toggle_target"])
	}
	if !strings.Contains(nav["toggle_icon"].(string), "icon-sun") {
		t.Fatalf("expected sun icon in dark mode, got %v", nav["toggle_icon"])
	}
}

func TestControllerRenderTemplatePropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	controller := NewController(ControllerOptions{
		Service:  &stubPageBuilder{err: boom},
		Renderer: &stubRenderer{},
	})
	if err := controller.RenderTemplate(context.Background(), ViewerContext{}, "", io.Discard); !errors.Is(err, boom) {
		t.Fatalf("expected service error, got %v", err)
	}

	controller = NewController(ControllerOptions{
		Service:  &stubPageBuilder{},
		Renderer: &stubRenderer{},
	})
	if err := controller.RenderTemplate(context.Background(), ViewerContext{}, "sepia", io.Discard); !errors.Is(err, ErrInvalidTheme) {
		t.Fatalf("expected invalid theme error, got %v", err)
	}
}

func TestControllerRequiresRenderer(t *testing.T) {
	controller := NewController(ControllerOptions{Service: &stubPageBuilder{}})
	if err := controller.RenderTemplate(context.Background(), ViewerContext{}, "", io.Discard); err == nil {
		t.Fatalf("expected error without renderer")
	}
}

func TestControllerPayload(t *testing.T) {
	controller := NewController(ControllerOptions{
		Service: NewService(Options{Points: FixedPointSource{{X: 150, Y: 400}}}),
	})
	page, err := controller.Page(context.Background(), ViewerContext{}, "")
	if err != nil {
		t.Fatalf("Page returned error: %v", err)
	}
	payload := page.Payload()
	if payload["theme"] != "light" {
		t.Fatalf("expected light theme, got %v", payload["theme"])
	}
	kpis, ok := payload["kpis"].(KPISet)
	if !ok || kpis.Heads != 82 {
		t.Fatalf("expected kpis in payload, got %#v", payload["kpis"])
	}
	points, _ := payload["points"].([]ScatterPoint)
	if len(points) != 60 || points[0] != (ScatterPoint{X: 150, Y: 400}) {
		t.Fatalf("expected 60 fixed points, got %d", len(points))
	}
	warnings, _ := payload["warnings"].([]string)
	if warnings == nil || len(warnings) != 0 {
		t.Fatalf("expected empty warnings list, got %#v", payload["warnings"])
	}
}

func TestEmbeddedTemplateRenders(t *testing.T) {
	renderer, err := NewTemplateRenderer()
	if err != nil {
		t.Fatalf("NewTemplateRenderer returned error: %v", err)
	}
	controller := NewController(ControllerOptions{
		Service:  NewService(Options{Points: NewRandomPointSource(11)}),
		Renderer: renderer,
	})
	var buf bytes.Buffer
	if err := controller.RenderTemplate(context.Background(), ViewerContext{}, "dark", &buf); err != nil {
		t.Fatalf("RenderTemplate returned error: %v", err)
	}
	html := buf.String()
	for _, want := range []string{
		"PecusNet",
		"--pecus-bg: #0F172A;",
		"?theme=light",
		"22 animais atingiram o ponto ideal",
		"Baixar Relatório Zootécnico",
		"echarts.min.js",
		"pecus_development",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected rendered page to contain %q", want)
		}
	}
}

func TestEmbeddedTemplateRendersOutsidePackageDir(t *testing.T) {
	t.Chdir(t.TempDir())

	renderer, err := NewTemplateRenderer()
	if err != nil {
		t.Fatalf("NewTemplateRenderer returned error: %v", err)
	}
	controller := NewController(ControllerOptions{
		Service:  NewService(Options{Points: NewRandomPointSource(13)}),
		Renderer: renderer,
	})
	var buf bytes.Buffer
	if err := controller.RenderTemplate(context.Background(), ViewerContext{}, "light", &buf); err != nil {
		t.Fatalf("RenderTemplate returned error from a foreign working directory: %v", err)
	}
	if !strings.Contains(buf.String(), "PecusNet") {
		t.Fatalf("expected rendered page to contain the brand")
	}
}

func TestCalloutsUseBrandGreen(t *testing.T) {
	for _, theme := range []string{"light", "dark"} {
		renderer := &stubRenderer{}
		controller := NewController(ControllerOptions{
			Service:  NewService(Options{Points: NewRandomPointSource(5)}),
			Renderer: renderer,
		})
		if err := controller.RenderTemplate(context.Background(), ViewerContext{}, theme, io.Discard); err != nil {
			t.Fatalf("RenderTemplate returned error: %v", err)
		}
		for _, key := range []string{"opportunity", "strength"} {
			callout, _ := renderer.lastPayload[key].(map[string]any)
			if callout["label_color"] != BrandGreen {
				t.Fatalf("%s %s label color = %v, want %s", theme, key, callout["label_color"], BrandGreen)
			}
		}
		opportunity, _ := renderer.lastPayload["opportunity"].(map[string]any)
		icon, _ := opportunity["icon_svg"].(string)
		if !strings.Contains(icon, BrandGreen) {
			t.Fatalf("%s opportunity icon should be drawn in %s, got %q", theme, BrandGreen, icon)
		}
	}
}

func TestEmbeddedTemplateStylesCalloutsAndSubtitles(t *testing.T) {
	renderer, err := NewTemplateRenderer()
	if err != nil {
		t.Fatalf("NewTemplateRenderer returned error: %v", err)
	}
	controller := NewController(ControllerOptions{
		Service:  NewService(Options{Points: NewRandomPointSource(17)}),
		Renderer: renderer,
	})
	var buf bytes.Buffer
	if err := controller.RenderTemplate(context.Background(), ViewerContext{}, "light", &buf); err != nil {
		t.Fatalf("RenderTemplate returned error: %v", err)
	}
	html := buf.String()
	if got := strings.Count(html, `<strong style="color: `+BrandGreen+`">`); got != 2 {
		t.Fatalf("expected both callout labels in brand green, found %d", got)
	}
	if !strings.Contains(html, `<span class="pecus-card-subtitle">`) {
		t.Fatalf("expected card subtitle without an inline accent color")
	}
	if !strings.Contains(html, "color: var(--pecus-text-secondary)") {
		t.Fatalf("expected card subtitle to use the secondary text color")
	}
}
