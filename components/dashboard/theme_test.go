package dashboard

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTheme(t *testing.T) {
	t.Parallel()
	theme, err := ParseTheme(" Dark ")
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, theme)

	theme, err = ParseTheme("light")
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, theme)

	_, err = ParseTheme("sepia")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTheme))
}

func TestThemeToggleRoundTrip(t *testing.T) {
	t.Parallel()
	for _, start := range []Theme{ThemeLight, ThemeDark} {
		assert.NotEqual(t, start, start.Toggle())
		assert.Equal(t, start, start.Toggle().Toggle())
		assert.Equal(t, PaletteFor(start), PaletteFor(start.Toggle().Toggle()))
	}
	assert.Equal(t, ThemeDark, Theme("").Toggle())
}

func TestPaletteForThemes(t *testing.T) {
	t.Parallel()
	light := PaletteFor(ThemeLight)
	dark := PaletteFor(ThemeDark)

	assert.Equal(t, "#F0F4F8", light.Background)
	assert.Equal(t, "#0F172A", dark.Background)
	assert.Equal(t, "#E5E7EB", light.Grid)
	assert.Equal(t, "#334155", dark.Grid)
	assert.Equal(t, BrandBlue, light.PrimaryAccent)
	assert.Equal(t, BrandGreen, dark.PrimaryAccent)
	assert.Equal(t, light, PaletteFor(Theme("unknown")))
}

func TestPaletteScatterColor(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "rgba(0, 168, 150, 0.6)", PaletteFor(ThemeLight).ScatterColor())
	assert.Equal(t, "rgba(80, 200, 120, 0.8)", PaletteFor(ThemeDark).ScatterColor())
}

func TestThemeSelectionCSSVariablesInline(t *testing.T) {
	t.Parallel()
	selection := PaletteFor(ThemeDark).Selection()
	inline := selection.CSSVariablesInline()

	assert.Contains(t, inline, "--pecus-bg: #0F172A;")
	assert.Contains(t, inline, "--pecus-grid: #334155;")
	assert.True(t, strings.Index(inline, "--pecus-bg") < strings.Index(inline, "--pecus-text"), "variables should be sorted")

	var empty *ThemeSelection
	assert.Empty(t, empty.CSSVariablesInline())
}

func TestWithAlpha(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "rgba(0, 105, 148, 0.1)", withAlpha(BrandBlue, 0.1))
	assert.Equal(t, "#abc", withAlpha("abc", 0.5))
}
