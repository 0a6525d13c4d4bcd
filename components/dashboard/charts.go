package dashboard

import (
	"fmt"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

const (
	defaultChartHeight = "320px"
	// DefaultEChartsAssetsHost serves the ECharts runtime when no host is configured.
	DefaultEChartsAssetsHost = "https://go-echarts.github.io/go-echarts-assets/assets/"
)

// ChartKind identifies one of the dashboard visualizations.
type ChartKind string

const (
	ChartDevelopment ChartKind = "development"
	ChartSlaughter   ChartKind = "slaughter"
	ChartMorphology  ChartKind = "morphology"
)

// ChartSnippet is a chart ready to embed: a container element and its init script.
type ChartSnippet struct {
	ID      string `json:"id"`
	Kind    string `json:"kind"`
	Element string `json:"-"`
	Script  string `json:"-"`
}

// ChartBuilder turns datasets plus a palette into go-echarts snippets.
type ChartBuilder struct {
	cache      RenderCache
	assetsHost string
	height     string
}

// ChartBuilderOption customizes builder behavior.
type ChartBuilderOption func(*ChartBuilder)

// WithChartCache injects a render cache for the static charts.
func WithChartCache(cache RenderCache) ChartBuilderOption {
	return func(b *ChartBuilder) {
		b.cache = cache
	}
}

// WithChartAssetsHost rewrites the assets host so ECharts JS loads from a CDN or local path.
func WithChartAssetsHost(host string) ChartBuilderOption {
	return func(b *ChartBuilder) {
		if host != "" {
			b.assetsHost = ensureTrailingSlash(host)
		}
	}
}

// WithChartHeight overrides the chart container height.
func WithChartHeight(height string) ChartBuilderOption {
	return func(b *ChartBuilder) {
		if height != "" {
			b.height = height
		}
	}
}

// NewChartBuilder builds a chart builder with a five minute snippet cache.
func NewChartBuilder(options ...ChartBuilderOption) *ChartBuilder {
	b := &ChartBuilder{
		cache:      NewChartCache(5 * time.Minute),
		assetsHost: DefaultEChartsAssetsHost,
		height:     defaultChartHeight,
	}
	for _, opt := range options {
		opt(b)
	}
	return b
}

// AssetsHost is where the page loads echarts.min.js from.
func (b *ChartBuilder) AssetsHost() string {
	return b.assetsHost
}

// Scatter plots body weight against dorsal development. Never cached: points change every render.
func (b *ChartBuilder) Scatter(points []ScatterPoint, bounds Bounds, palette Palette) (ChartSnippet, error) {
	scatter := charts.NewScatter()
	global := b.globalOptions(ChartDevelopment, palette)
	global = append(global,
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "Desenvolvimento Dorsal (cm)",
			Type:      "value",
			Min:       bounds.XMin,
			Max:       bounds.XMax,
			AxisLabel: axisLabel(palette),
			SplitLine: splitLine(palette),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "Peso Corporal (kg)",
			Type:      "value",
			Min:       bounds.YMin,
			Max:       bounds.YMax,
			AxisLabel: axisLabel(palette),
			SplitLine: splitLine(palette),
		}),
	)
	scatter.SetGlobalOptions(global...)
	scatter.AddSeries("Animais Monitorados", toScatterData(points),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: palette.ScatterColor()}),
	)
	snippet := scatter.RenderSnippet()
	return ChartSnippet{
		ID:      chartID(ChartDevelopment),
		Kind:    string(ChartDevelopment),
		Element: snippet.Element,
		Script:  snippet.Script,
	}, nil
}

// Bar shows the herd split by slaughter readiness, one brand color per bucket.
func (b *ChartBuilder) Bar(buckets []ClassBucket, palette Palette) (ChartSnippet, error) {
	if len(buckets) == 0 {
		return ChartSnippet{}, fmt.Errorf("dashboard: bar chart requires at least one bucket")
	}
	return b.cached(ChartSlaughter, palette, buckets, func() (ChartSnippet, error) {
		bar := charts.NewBar()
		global := b.globalOptions(ChartSlaughter, palette)
		global = append(global,
			charts.WithXAxisOpts(opts.XAxis{AxisLabel: axisLabel(palette), SplitLine: splitLine(palette)}),
			charts.WithYAxisOpts(opts.YAxis{AxisLabel: axisLabel(palette), SplitLine: splitLine(palette)}),
		)
		bar.SetGlobalOptions(global...)
		labels := make([]string, len(buckets))
		for i, bucket := range buckets {
			labels[i] = bucket.Label
		}
		bar.SetXAxis(labels)
		bar.AddSeries("Volume de Animais", toBarData(buckets))
		snippet := bar.RenderSnippet()
		return ChartSnippet{
			ID:      chartID(ChartSlaughter),
			Kind:    string(ChartSlaughter),
			Element: snippet.Element,
			Script:  snippet.Script,
		}, nil
	})
}

// Radar compares the herd's morphology against the breed standard.
func (b *ChartBuilder) Radar(spec MorphologySpec, palette Palette) (ChartSnippet, error) {
	if len(spec.Axes) == 0 {
		return ChartSnippet{}, fmt.Errorf("dashboard: radar chart requires axes")
	}
	return b.cached(ChartMorphology, palette, spec, func() (ChartSnippet, error) {
		radar := charts.NewRadar()
		global := b.globalOptions(ChartMorphology, palette)
		global = append(global, charts.WithRadarComponentOpts(opts.RadarComponent{
			Indicator: radarIndicators(spec, palette),
			Shape:     "polygon",
			SplitLine: splitLine(palette),
		}))
		radar.SetGlobalOptions(global...)
		radar.AddSeries("Média Atual", []opts.RadarData{{Name: "Média Atual", Value: spec.Current}},
			charts.WithItemStyleOpts(opts.ItemStyle{Color: BrandGreen}),
			charts.WithLineStyleOpts(opts.LineStyle{Color: BrandGreen, Width: 2}),
			charts.WithAreaStyleOpts(opts.AreaStyle{Color: withAlpha(BrandGreen, 0.2)}),
		)
		radar.AddSeries("Padrão da Raça", []opts.RadarData{{Name: "Padrão da Raça", Value: spec.Standard}},
			charts.WithItemStyleOpts(opts.ItemStyle{Color: palette.TextSecondary}),
			charts.WithLineStyleOpts(opts.LineStyle{Color: palette.TextSecondary, Width: 1, Type: "dashed"}),
		)
		snippet := radar.RenderSnippet()
		return ChartSnippet{
			ID:      chartID(ChartMorphology),
			Kind:    string(ChartMorphology),
			Element: snippet.Element,
			Script:  snippet.Script,
		}, nil
	})
}

func (b *ChartBuilder) cached(kind ChartKind, palette Palette, dataset any, render func() (ChartSnippet, error)) (ChartSnippet, error) {
	if b.cache == nil {
		return render()
	}
	key := fmt.Sprintf("%s:%s:%s:%s", kind, palette.Theme, b.height, datasetHash(dataset))
	return b.cache.GetOrRender(key, render)
}

func (b *ChartBuilder) globalOptions(kind ChartKind, palette Palette) []charts.GlobalOpts {
	initOpts := opts.Initialization{
		ChartID: chartID(kind),
		Theme:   palette.Selection().ChartTheme,
		Width:   "100%",
		Height:  b.height,
	}
	if b.assetsHost != "" {
		initOpts.AssetsHost = b.assetsHost
	}
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(initOpts),
		charts.WithLegendOpts(opts.Legend{
			Show:      opts.Bool(true),
			TextStyle: &opts.TextStyle{Color: palette.TextSecondary},
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:            opts.Bool(true),
			BackgroundColor: palette.Surface,
			BorderColor:     palette.Grid,
		}),
		tooltipText(palette),
	}
}

// tooltipText themes the tooltip body, which opts.Tooltip has no field for.
func tooltipText(palette Palette) charts.GlobalOpts {
	return func(bc *charts.BaseConfiguration) {
		bc.AddJSFuncStrs(types.FuncStr(fmt.Sprintf(
			"%%MY_ECHARTS%%.setOption({tooltip: {borderWidth: 1, padding: 10, textStyle: {color: %q}}});",
			palette.TextPrimary,
		)))
	}
}

func axisLabel(palette Palette) *opts.AxisLabel {
	return &opts.AxisLabel{Color: palette.TextSecondary}
}

func splitLine(palette Palette) *opts.SplitLine {
	return &opts.SplitLine{
		Show:      opts.Bool(true),
		LineStyle: &opts.LineStyle{Color: palette.Grid},
	}
}

func radarIndicators(spec MorphologySpec, palette Palette) []*opts.Indicator {
	limit := spec.Max
	if limit <= 0 {
		limit = 100
	}
	indicators := make([]*opts.Indicator, len(spec.Axes))
	for i, axis := range spec.Axes {
		indicators[i] = &opts.Indicator{
			Name:  axis,
			Max:   float32(limit),
			Color: palette.TextSecondary,
		}
	}
	return indicators
}

func toScatterData(points []ScatterPoint) []opts.ScatterData {
	data := make([]opts.ScatterData, len(points))
	for i, point := range points {
		data[i] = opts.ScatterData{
			Value:      []float64{roundTo(point.X, 1), roundTo(point.Y, 1)},
			SymbolSize: 8,
		}
	}
	return data
}

var barPalette = []string{BrandBlue, BrandTeal, BrandGreen}

func toBarData(buckets []ClassBucket) []opts.BarData {
	data := make([]opts.BarData, len(buckets))
	for i, bucket := range buckets {
		data[i] = opts.BarData{
			Name:      bucket.Label,
			Value:     bucket.Count,
			ItemStyle: &opts.ItemStyle{Color: barPalette[i%len(barPalette)]},
		}
	}
	return data
}

func chartID(kind ChartKind) string {
	return "pecus_" + string(kind)
}

func ensureTrailingSlash(value string) string {
	if value == "" {
		return ""
	}
	if value[len(value)-1] == '/' {
		return value
	}
	return value + "/"
}
