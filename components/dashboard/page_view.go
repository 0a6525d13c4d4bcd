package dashboard

// TemplateData flattens the page into the map the dashboard template expects.
func (p Page) TemplateData(icons IconRenderer) map[string]any {
	if icons == nil {
		icons = SVGIcons
	}
	cards := make([]map[string]any, 0, len(p.Cards))
	for _, card := range p.Cards {
		cards = append(cards, card.View(icons))
	}
	actions := make([]map[string]any, 0, len(p.Actions))
	for _, action := range p.Actions {
		actions = append(actions, map[string]any{
			"label":   action.Label,
			"primary": action.Primary,
		})
	}
	css := ""
	if p.Selection != nil {
		css = p.Selection.CSSVariablesInline()
	}
	return map[string]any{
		"brand":       p.Brand,
		"theme":       p.Theme.String(),
		"is_dark":     p.Theme.IsDark(),
		"theme_css":   css,
		"assets_host": p.AssetsHost,
		"palette":     paletteView(p.Palette),
		"nav": map[string]any{
			"brand":         p.Nav.Brand,
			"toggle_target": p.Nav.ToggleTarget.String(),
			"toggle_label":  p.Nav.ToggleLabel,
			"toggle_icon":   iconSVG(icons, p.Nav.ToggleIcon, p.Nav.ToggleColor, 20),
			"brand_icon":    iconSVG(icons, IconBeef, BrandBlue, 28),
		},
		"cards": cards,
		"panels": map[string]any{
			"development": panelView(p.Panels.Development),
			"slaughter":   panelView(p.Panels.Slaughter),
			"morphology":  panelView(p.Panels.Morphology),
		},
		"opportunity": calloutView(icons, p.Opportunity, BrandGreen),
		"strength":    calloutView(icons, p.Strength, BrandGreen),
		"actions":     actions,
		"warnings":    p.Warnings,
	}
}

// Payload is the JSON shape served to API clients. Chart markup is omitted.
func (p Page) Payload() map[string]any {
	cards := make([]map[string]any, 0, len(p.Cards))
	for _, card := range p.Cards {
		entry := map[string]any{
			"title":  card.Title,
			"value":  card.Value,
			"icon":   string(card.Icon),
			"accent": card.Accent,
		}
		if card.Subtitle != "" {
			entry["subtitle"] = card.Subtitle
		}
		cards = append(cards, entry)
	}
	warnings := p.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	return map[string]any{
		"brand":          p.Brand,
		"theme":          p.Theme.String(),
		"css_variables":  p.Selection.CSSVariables(),
		"kpis":           p.KPIs,
		"cards":          cards,
		"points":         p.Points,
		"classification": p.Classification,
		"morphology":     p.Morphology,
		"charts": []ChartSnippet{
			p.Panels.Development.Chart,
			p.Panels.Slaughter.Chart,
			p.Panels.Morphology.Chart,
		},
		"opportunity": p.Opportunity.Body,
		"warnings":    warnings,
	}
}

func paletteView(p Palette) map[string]any {
	return map[string]any{
		"background":       p.Background,
		"surface":          p.Surface,
		"surface_muted":    p.SurfaceMuted,
		"border":           p.Border,
		"text":             p.TextPrimary,
		"text_secondary":   p.TextSecondary,
		"brand_text":       p.BrandText,
		"accent":           p.PrimaryAccent,
		"badge_background": p.BadgeBackground(),
		"badge_text":       p.BadgeText(),
	}
}

func panelView(panel ChartPanel) map[string]any {
	return map[string]any{
		"title":       panel.Title,
		"description": panel.Description,
		"badge":       panel.Badge,
		"chart_id":    panel.Chart.ID,
		"element":     panel.Chart.Element,
		"script":      panel.Chart.Script,
	}
}

func calloutView(icons IconRenderer, callout Callout, color string) map[string]any {
	return map[string]any{
		"label":       callout.Label,
		"label_color": color,
		"body":        callout.Body,
		"icon_svg":    iconSVG(icons, callout.Icon, color, 18),
	}
}

// iconSVG returns an empty string when the icon is unset or cannot be drawn.
func iconSVG(icons IconRenderer, kind IconKind, color string, size int) string {
	if kind == "" {
		return ""
	}
	svg, err := icons.RenderIcon(kind, IconStyle{Color: color, Size: size})
	if err != nil {
		return ""
	}
	return svg
}
