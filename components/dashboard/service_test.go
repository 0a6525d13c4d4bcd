package dashboard

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type recordingTelemetry struct {
	mu     sync.Mutex
	events []string
}

func (r *recordingTelemetry) Record(_ context.Context, event string, _ map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingTelemetry) has(event string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.events {
		if e == event {
			return true
		}
	}
	return false
}

func TestBuildPageAppliesOneThemeEverywhere(t *testing.T) {
	service := NewService(Options{Points: NewRandomPointSource(7)})

	page, err := service.BuildPage(context.Background(), ThemeDark)
	require.NoError(t, err)

	dark := PaletteFor(ThemeDark)
	assert.Equal(t, ThemeDark, page.Theme)
	assert.Equal(t, dark, page.Palette)
	assert.Equal(t, ThemeDark, page.Selection.Name)
	assert.Equal(t, dark.Background, page.Selection.Tokens["pecus-bg"])
	assert.Equal(t, IconSun, page.Nav.ToggleIcon)
	assert.Equal(t, ThemeLight, page.Nav.ToggleTarget)
	assert.Equal(t, dark.ToggleIcon, page.Nav.ToggleColor)
	for _, chart := range []ChartSnippet{page.Panels.Development.Chart, page.Panels.Slaughter.Chart, page.Panels.Morphology.Chart} {
		assert.Contains(t, chart.Script, dark.TextSecondary, "chart %s should use dark text color", chart.Kind)
		assert.NotContains(t, chart.Script, PaletteFor(ThemeLight).TextSecondary)
	}
}

func TestBuildPageDefaultsToLight(t *testing.T) {
	service := NewService(Options{})
	page, err := service.BuildPage(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, page.Theme)
	assert.Equal(t, IconMoon, page.Nav.ToggleIcon)
	assert.Equal(t, ThemeDark, page.Nav.ToggleTarget)
}

func TestBuildPageRejectsUnknownTheme(t *testing.T) {
	service := NewService(Options{})
	_, err := service.BuildPage(context.Background(), Theme("sepia"))
	assert.ErrorIs(t, err, ErrInvalidTheme)
}

func TestBuildPageDerivesContentFromProfile(t *testing.T) {
	service := NewService(Options{Points: NewRandomPointSource(1)})
	page, err := service.BuildPage(context.Background(), ThemeLight)
	require.NoError(t, err)

	require.Len(t, page.Cards, 4)
	assert.Equal(t, "82", page.Cards[0].Value)
	assert.Equal(t, "485.5 kg", page.Cards[1].Value)
	assert.Equal(t, "R$ 849.3k", page.Cards[2].Value)
	assert.Equal(t, "95.8%", page.Cards[3].Value)
	assert.Equal(t, "22 animais atingiram o ponto ideal de cobertura de gordura e peso.", page.Opportunity.Body)
	assert.Empty(t, page.Warnings)

	require.Len(t, page.Actions, 2)
	assert.Equal(t, "Baixar Relatório Zootécnico", page.Actions[0].Label)
	assert.True(t, page.Actions[0].Primary)
	assert.Equal(t, "Configurar Parâmetros", page.Actions[1].Label)

	require.Len(t, page.Points, 60)
	bounds := DefaultBounds()
	for _, p := range page.Points {
		assert.True(t, bounds.Contains(p), "point %+v outside bounds", p)
	}
	assert.Equal(t, DefaultEChartsAssetsHost, page.AssetsHost)
}

func TestBuildPageRegeneratesPointsEachRender(t *testing.T) {
	service := NewService(Options{Points: NewRandomPointSource(3)})
	first, err := service.BuildPage(context.Background(), ThemeLight)
	require.NoError(t, err)
	second, err := service.BuildPage(context.Background(), ThemeLight)
	require.NoError(t, err)
	assert.NotEqual(t, first.Points, second.Points)
}

func TestBuildPageFlagsClassificationMismatch(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	telemetry := &recordingTelemetry{}
	profile := DefaultHerdProfile()
	profile.Herd.Heads = 90

	service := NewService(Options{
		Profile:   &profile,
		Logger:    zap.New(core),
		Telemetry: telemetry,
	})
	page, err := service.BuildPage(context.Background(), ThemeLight)
	require.NoError(t, err)

	require.Len(t, page.Warnings, 1)
	assert.True(t, strings.Contains(page.Warnings[0], "(82)"))
	assert.True(t, strings.Contains(page.Warnings[0], "(90)"))
	require.Equal(t, 1, logs.FilterMessage("herd classification mismatch").Len())
	fields := logs.All()[0].ContextMap()
	assert.EqualValues(t, 82, fields["classification_total"])
	assert.EqualValues(t, 90, fields["herd_heads"])
	assert.True(t, telemetry.has("dashboard.herd.mismatch"))
	assert.Equal(t, "90", page.Cards[0].Value)
}

func TestResolveThemeRemembersRequestedTheme(t *testing.T) {
	service := NewService(Options{})
	viewer := ViewerContext{UserID: "user-1"}

	theme, err := service.ResolveTheme(context.Background(), viewer, "")
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, theme)

	theme, err = service.ResolveTheme(context.Background(), viewer, "dark")
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, theme)

	theme, err = service.ResolveTheme(context.Background(), viewer, "")
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, theme)
}

func TestResolveThemeAnonymousViewerIsNotStored(t *testing.T) {
	service := NewService(Options{})
	theme, err := service.ResolveTheme(context.Background(), ViewerContext{}, "dark")
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, theme)

	theme, err = service.ResolveTheme(context.Background(), ViewerContext{}, "")
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, theme)
}

func TestResolveThemeRejectsUnknownTheme(t *testing.T) {
	service := NewService(Options{})
	_, err := service.ResolveTheme(context.Background(), ViewerContext{UserID: "u"}, "sepia")
	assert.True(t, errors.Is(err, ErrInvalidTheme))
}

func TestToggleThemeTwiceRestoresOriginal(t *testing.T) {
	telemetry := &recordingTelemetry{}
	service := NewService(Options{Telemetry: telemetry})
	viewer := ViewerContext{UserID: "user-2"}

	first, err := service.ToggleTheme(context.Background(), viewer)
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, first)

	second, err := service.ToggleTheme(context.Background(), viewer)
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, second)
	assert.True(t, telemetry.has("dashboard.theme.toggle"))
}

func TestToggleThemeRequiresViewer(t *testing.T) {
	service := NewService(Options{})
	_, err := service.ToggleTheme(context.Background(), ViewerContext{})
	assert.Error(t, err)
}
