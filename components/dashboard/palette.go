package dashboard

import (
	"fmt"
	"strconv"
	"strings"
)

// Brand colors shared by both themes.
const (
	BrandBlue  = "#006994"
	BrandTeal  = "#00A896"
	BrandGreen = "#50C878"
)

// Palette is the full set of colors a single render draws with.
type Palette struct {
	Theme Theme

	Background    string
	Surface       string
	SurfaceMuted  string
	Border        string
	TextPrimary   string
	TextSecondary string
	Grid          string

	// BrandText colors the product name in the nav bar.
	BrandText string
	// ToggleIcon colors the sun/moon glyph on the theme toggle.
	ToggleIcon string
	// PrimaryAccent alternates with BrandTeal across the KPI cards.
	PrimaryAccent string
}

var (
	lightPalette = Palette{
		Theme:         ThemeLight,
		Background:    "#F0F4F8",
		Surface:       "#FFFFFF",
		SurfaceMuted:  "#F9FAFB",
		Border:        "#E5E7EB",
		TextPrimary:   "#1F2937",
		TextSecondary: "#6B7280",
		Grid:          "#E5E7EB",
		BrandText:     BrandBlue,
		ToggleIcon:    BrandBlue,
		PrimaryAccent: BrandBlue,
	}
	darkPalette = Palette{
		Theme:         ThemeDark,
		Background:    "#0F172A",
		Surface:       "#1E293B",
		SurfaceMuted:  "rgba(51, 65, 85, 0.5)",
		Border:        "#334155",
		TextPrimary:   "#F9FAFB",
		TextSecondary: "#9CA3AF",
		Grid:          "#334155",
		BrandText:     "#F9FAFB",
		ToggleIcon:    "#FACC15",
		PrimaryAccent: BrandGreen,
	}
)

// PaletteFor returns the palette for the theme; unknown values fall back to light.
func PaletteFor(theme Theme) Palette {
	if theme.IsDark() {
		return darkPalette
	}
	return lightPalette
}

// ScatterColor is the fill used for monitored-animal points.
func (p Palette) ScatterColor() string {
	if p.Theme.IsDark() {
		return withAlpha(BrandGreen, 0.8)
	}
	return withAlpha(BrandTeal, 0.6)
}

// BadgeBackground tints the "healthy pattern" badge on the development panel.
func (p Palette) BadgeBackground() string {
	if p.Theme.IsDark() {
		return withAlpha(BrandTeal, 0.2)
	}
	return withAlpha(BrandTeal, 0.1)
}

// BadgeText colors the "healthy pattern" badge label.
func (p Palette) BadgeText() string {
	if p.Theme.IsDark() {
		return BrandGreen
	}
	return BrandTeal
}

// Selection exposes the palette as CSS tokens for the page root.
func (p Palette) Selection() *ThemeSelection {
	return &ThemeSelection{
		Name:       p.Theme,
		ChartTheme: "white",
		Tokens: map[string]string{
			"pecus-blue":           BrandBlue,
			"pecus-teal":           BrandTeal,
			"pecus-green":          BrandGreen,
			"pecus-bg":             p.Background,
			"pecus-surface":        p.Surface,
			"pecus-surface-muted":  p.SurfaceMuted,
			"pecus-border":         p.Border,
			"pecus-text":           p.TextPrimary,
			"pecus-text-secondary": p.TextSecondary,
			"pecus-grid":           p.Grid,
			"pecus-brand-text":     p.BrandText,
		},
	}
}

// withAlpha converts a #RRGGBB color into an rgba() string.
func withAlpha(hex string, alpha float64) string {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) != 6 {
		return "#" + hex
	}
	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return "#" + hex
	}
	r := (value >> 16) & 0xFF
	g := (value >> 8) & 0xFF
	b := value & 0xFF
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, strconv.FormatFloat(alpha, 'f', -1, 64))
}
