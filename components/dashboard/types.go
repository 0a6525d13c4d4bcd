package dashboard

// ViewerContext captures who is looking at the dashboard.
type ViewerContext struct {
	UserID string
	Roles  []string
	Locale string
}

// Page is everything one render of the dashboard shows. Every themed field
// is derived from the same Theme value.
type Page struct {
	Brand          string
	Theme          Theme
	Palette        Palette
	Selection      *ThemeSelection
	Nav            NavBar
	KPIs           KPISet
	Cards          []MetricCard
	Panels         ChartPanels
	Opportunity    Callout
	Strength       Callout
	Actions        []ActionButton
	Warnings       []string
	AssetsHost     string
	Points         []ScatterPoint
	Classification []ClassBucket
	Morphology     MorphologySpec
}

// NavBar is the sticky top bar with the brand and theme toggle.
type NavBar struct {
	Brand        string
	ToggleTarget Theme
	ToggleIcon   IconKind
	ToggleColor  string
	ToggleLabel  string
}

// ChartPanels groups the three chart cards.
type ChartPanels struct {
	Development ChartPanel
	Slaughter   ChartPanel
	Morphology  ChartPanel
}

// ChartPanel is a titled card around one chart.
type ChartPanel struct {
	Title       string
	Description string
	Badge       string
	Chart       ChartSnippet
}

// Callout is a short highlighted note next to a chart.
type Callout struct {
	Label string
	Body  string
	Icon  IconKind
}

// ActionButton is a call-to-action placeholder without behavior.
type ActionButton struct {
	Label   string
	Primary bool
}
