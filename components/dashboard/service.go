package dashboard

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var errMissingViewer = errors.New("dashboard: viewer context missing user id")

// Options configures the dashboard Service. Every collaborator is optional and
// falls back to an in-process default.
type Options struct {
	Profile    *HerdProfile
	Points     PointSource
	Charts     *ChartBuilder
	ThemeStore ThemeStore
	Icons      IconRenderer
	Telemetry  Telemetry
	Logger     *zap.Logger
}

// Service builds dashboard pages and tracks per-viewer theme choices.
type Service struct {
	opts    Options
	profile HerdProfile
}

// NewService builds a Service instance with safe defaults.
func NewService(opts Options) *Service {
	profile := DefaultHerdProfile()
	if opts.Profile != nil {
		profile = *opts.Profile
	}
	if opts.Points == nil {
		opts.Points = NewRandomPointSource(0)
	}
	if opts.Charts == nil {
		opts.Charts = NewChartBuilder()
	}
	if opts.ThemeStore == nil {
		opts.ThemeStore = NewInMemoryThemeStore()
	}
	if opts.Icons == nil {
		opts.Icons = SVGIcons
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	opts.Telemetry = normalizeTelemetry(opts.Telemetry)
	return &Service{opts: opts, profile: profile}
}

// Profile returns the herd profile the service renders.
func (s *Service) Profile() HerdProfile {
	return s.profile
}

// Icons returns the icon renderer used for cards and callouts.
func (s *Service) Icons() IconRenderer {
	return s.opts.Icons
}

// ResolveTheme picks the theme for a render. A requested theme wins and is
// remembered for the viewer; otherwise the stored choice; otherwise light.
func (s *Service) ResolveTheme(ctx context.Context, viewer ViewerContext, requested string) (Theme, error) {
	if requested != "" {
		theme, err := ParseTheme(requested)
		if err != nil {
			return "", err
		}
		if viewer.UserID != "" {
			if err := s.opts.ThemeStore.SaveTheme(ctx, viewer, theme); err != nil {
				return "", err
			}
		}
		return theme, nil
	}
	return s.CurrentTheme(ctx, viewer)
}

// CurrentTheme returns the viewer's stored theme or light.
func (s *Service) CurrentTheme(ctx context.Context, viewer ViewerContext) (Theme, error) {
	theme, ok, err := s.opts.ThemeStore.Theme(ctx, viewer)
	if err != nil {
		return "", err
	}
	if !ok {
		return ThemeLight, nil
	}
	return theme, nil
}

// ToggleTheme flips the viewer's stored theme and returns the new value.
func (s *Service) ToggleTheme(ctx context.Context, viewer ViewerContext) (Theme, error) {
	if viewer.UserID == "" {
		return "", errMissingViewer
	}
	current, err := s.CurrentTheme(ctx, viewer)
	if err != nil {
		return "", err
	}
	next := current.Toggle()
	if err := s.opts.ThemeStore.SaveTheme(ctx, viewer, next); err != nil {
		return "", err
	}
	s.recordTelemetry(ctx, "dashboard.theme.toggle", map[string]any{
		"viewer": viewer.UserID,
		"from":   current.String(),
		"to":     next.String(),
	})
	return next, nil
}

// BuildPage derives every KPI, card, and chart for one render in the given theme.
func (s *Service) BuildPage(ctx context.Context, theme Theme) (Page, error) {
	if theme == "" {
		theme = ThemeLight
	}
	if _, err := ParseTheme(string(theme)); err != nil {
		return Page{}, err
	}
	profile := s.profile
	palette := PaletteFor(theme)
	kpis := ComputeKPIs(profile.Herd)

	points := s.opts.Points.Points(profile.Scatter.Count, profile.Scatter.Bounds)
	scatter, err := s.opts.Charts.Scatter(points, profile.Scatter.Bounds, palette)
	if err != nil {
		return Page{}, fmt.Errorf("dashboard: build development chart: %w", err)
	}
	bar, err := s.opts.Charts.Bar(profile.Classification, palette)
	if err != nil {
		return Page{}, fmt.Errorf("dashboard: build slaughter chart: %w", err)
	}
	radar, err := s.opts.Charts.Radar(profile.Morphology, palette)
	if err != nil {
		return Page{}, fmt.Errorf("dashboard: build morphology chart: %w", err)
	}

	page := Page{
		Brand:          profile.Brand,
		Theme:          theme,
		Palette:        palette,
		Selection:      palette.Selection(),
		Nav:            buildNavBar(profile.Brand, palette),
		KPIs:           kpis,
		Cards:          buildMetricCards(kpis, profile.Herd, palette),
		AssetsHost:     s.opts.Charts.AssetsHost(),
		Points:         points,
		Classification: profile.Classification,
		Morphology:     profile.Morphology,
		Panels: ChartPanels{
			Development: ChartPanel{
				Title:       "Monitoramento de Desenvolvimento Corporal",
				Description: "Visualização do padrão de crescimento do rebanho, indicando a eficiência da conversão alimentar com base na estrutura física.",
				Badge:       "Padrão Saudável",
				Chart:       scatter,
			},
			Slaughter: ChartPanel{
				Title:       "Previsão de Abate",
				Description: "Classificação automática por maturidade.",
				Chart:       bar,
			},
			Morphology: ChartPanel{
				Title: "Avaliação Morfológica do Rebanho",
				Chart: radar,
			},
		},
		Opportunity: Callout{
			Label: "Oportunidade de Venda",
			Body:  fmt.Sprintf("%d animais atingiram o ponto ideal de cobertura de gordura e peso.", profile.FinishingCount()),
			Icon:  IconTrendingUp,
		},
		Strength: Callout{
			Label: "Ponto Forte",
			Body:  "O sistema identificou excelente desenvolvimento no Comprimento e na Largura do quadril, indicando boa estrutura.",
		},
		Actions: []ActionButton{
			{Label: "Baixar Relatório Zootécnico", Primary: true},
			{Label: "Configurar Parâmetros"},
		},
	}

	if err := CheckHerdConsistency(profile); err != nil {
		s.opts.Logger.Warn("herd classification mismatch",
			zap.Int("classification_total", ClassificationTotal(profile.Classification)),
			zap.Int("herd_heads", profile.Herd.Heads),
		)
		s.recordTelemetry(ctx, "dashboard.herd.mismatch", map[string]any{
			"classification_total": ClassificationTotal(profile.Classification),
			"herd_heads":           profile.Herd.Heads,
		})
		page.Warnings = append(page.Warnings, fmt.Sprintf(
			"O total da classificação (%d) difere do rebanho monitorado (%d).",
			ClassificationTotal(profile.Classification), profile.Herd.Heads,
		))
	}

	s.recordTelemetry(ctx, "dashboard.page.build", map[string]any{
		"theme":  theme.String(),
		"points": len(points),
	})
	return page, nil
}

func buildNavBar(brand string, palette Palette) NavBar {
	nav := NavBar{
		Brand:        brand,
		ToggleTarget: palette.Theme.Toggle(),
		ToggleIcon:   IconMoon,
		ToggleColor:  palette.ToggleIcon,
		ToggleLabel:  "Alternar Tema",
	}
	if palette.Theme.IsDark() {
		nav.ToggleIcon = IconSun
	}
	return nav
}

func (s *Service) recordTelemetry(ctx context.Context, event string, payload map[string]any) {
	s.opts.Telemetry.Record(ctx, event, payload)
}
