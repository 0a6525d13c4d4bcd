package dashboard

// MetricCard is a labeled KPI value with an icon and an accent color.
type MetricCard struct {
	Title    string
	Value    string
	Subtitle string
	Icon     IconKind
	Accent   string
}

// View flattens the card into template data. It never fails: an icon that
// cannot be drawn is left out and an empty subtitle omits the subtitle line.
func (c MetricCard) View(icons IconRenderer) map[string]any {
	view := map[string]any{
		"title":           c.Title,
		"value":           c.Value,
		"accent":          c.Accent,
		"icon_background": withAlpha(c.Accent, 0.2),
		"has_subtitle":    c.Subtitle != "",
		"has_icon":        false,
	}
	if c.Subtitle != "" {
		view["subtitle"] = c.Subtitle
	}
	if icons == nil || c.Icon == "" {
		return view
	}
	if svg, err := icons.RenderIcon(c.Icon, IconStyle{Color: c.Accent, Size: 24}); err == nil {
		view["icon_svg"] = svg
		view["has_icon"] = true
	}
	return view
}

// buildMetricCards lays out the four KPI cards for the palette.
func buildMetricCards(kpis KPISet, herd HerdFigures, palette Palette) []MetricCard {
	return []MetricCard{
		{
			Title:    "Rebanho Monitorado",
			Value:    formatInt(kpis.Heads),
			Subtitle: growthLabel(herd.HerdGrowthPct),
			Icon:     IconBeef,
			Accent:   palette.PrimaryAccent,
		},
		{
			Title:    "Peso Médio Projetado",
			Value:    kpis.WeightLabel(),
			Subtitle: dailyGainLabel(herd.DailyGainKg),
			Icon:     IconScale,
			Accent:   BrandTeal,
		},
		{
			Title:    "Receita Estimada",
			Value:    kpis.RevenueLabel(),
			Subtitle: kpis.PriceLabel(),
			Icon:     IconDollarSign,
			Accent:   palette.PrimaryAccent,
		},
		{
			Title:    "Precisão do Sistema",
			Value:    kpis.AccuracyLabel(),
			Subtitle: "Margem de segurança alta",
			Icon:     IconActivity,
			Accent:   BrandTeal,
		},
	}
}
