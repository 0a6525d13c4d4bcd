package dashboard

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// HerdProfile holds every constant the dashboard derives its figures from.
type HerdProfile struct {
	Brand          string         `json:"brand" yaml:"brand"`
	Herd           HerdFigures    `json:"herd" yaml:"herd"`
	Classification []ClassBucket  `json:"classification" yaml:"classification"`
	Morphology     MorphologySpec `json:"morphology" yaml:"morphology"`
	Scatter        ScatterSpec    `json:"scatter" yaml:"scatter"`
	Source         string         `json:"-" yaml:"-"`
}

// HerdFigures are the raw herd constants behind the KPI cards.
type HerdFigures struct {
	Heads           int     `json:"heads" yaml:"heads"`
	AverageWeightKg float64 `json:"average_weight_kg" yaml:"average_weight_kg"`
	PricePerArroba  float64 `json:"price_per_arroba" yaml:"price_per_arroba"`
	WeightRMSEKg    float64 `json:"weight_rmse_kg" yaml:"weight_rmse_kg"`
	DailyGainKg     float64 `json:"daily_gain_kg" yaml:"daily_gain_kg"`
	HerdGrowthPct   float64 `json:"herd_growth_pct" yaml:"herd_growth_pct"`
}

// ClassBucket is one slaughter-readiness category.
type ClassBucket struct {
	Label     string `json:"label" yaml:"label"`
	Count     int    `json:"count" yaml:"count"`
	Finishing bool   `json:"finishing,omitempty" yaml:"finishing,omitempty"`
}

// MorphologySpec describes the radar axes and the two compared series.
type MorphologySpec struct {
	Axes     []string  `json:"axes" yaml:"axes"`
	Current  []float64 `json:"current" yaml:"current"`
	Standard []float64 `json:"standard" yaml:"standard"`
	Max      float64   `json:"max" yaml:"max"`
}

// ScatterSpec configures random point generation for the development chart.
type ScatterSpec struct {
	Count  int    `json:"count" yaml:"count"`
	Bounds Bounds `json:"bounds" yaml:"bounds"`
}

// DefaultHerdProfile returns the built-in demo herd.
func DefaultHerdProfile() HerdProfile {
	return HerdProfile{
		Brand: "PecusNet",
		Herd: HerdFigures{
			Heads:           82,
			AverageWeightKg: 485.5,
			PricePerArroba:  320.00,
			WeightRMSEKg:    20.5,
			DailyGainKg:     1.2,
			HerdGrowthPct:   12,
		},
		Classification: []ClassBucket{
			{Label: "Recria", Count: 15},
			{Label: "Engorda", Count: 45},
			{Label: "Terminação (Abate)", Count: 22, Finishing: true},
		},
		Morphology: MorphologySpec{
			Axes:     []string{"Tórax", "Comprimento", "Altura", "Garupa", "Canela"},
			Current:  []float64{85, 70, 75, 60, 90},
			Standard: []float64{90, 85, 80, 85, 95},
			Max:      100,
		},
		Scatter: ScatterSpec{
			Count:  60,
			Bounds: DefaultBounds(),
		},
	}
}

// LoadHerdProfile reads, schema-validates, and checks a YAML profile from disk.
func LoadHerdProfile(path string) (HerdProfile, error) {
	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return HerdProfile{}, fmt.Errorf("dashboard: open profile %s: %w", path, err)
	}
	defer f.Close()
	profile, err := DecodeHerdProfile(f)
	if err != nil {
		return HerdProfile{}, fmt.Errorf("dashboard: profile %s: %w", path, err)
	}
	profile.Source = path
	return profile, nil
}

// DecodeHerdProfile parses a YAML profile. Omitted sections keep their defaults.
func DecodeHerdProfile(r io.Reader) (HerdProfile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return HerdProfile{}, fmt.Errorf("read profile: %w", err)
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return HerdProfile{}, fmt.Errorf("decode profile: %w", err)
	}
	if err := validateProfileDocument(raw); err != nil {
		return HerdProfile{}, err
	}
	profile := DefaultHerdProfile()
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return HerdProfile{}, fmt.Errorf("decode profile: %w", err)
	}
	if err := profile.Validate(); err != nil {
		return HerdProfile{}, err
	}
	return profile, nil
}

// Validate checks the semantic rules the schema cannot express.
func (p HerdProfile) Validate() error {
	var errs error
	if p.Herd.AverageWeightKg <= 0 {
		errs = errors.Join(errs, errors.New("herd.average_weight_kg must be positive"))
	}
	if len(p.Classification) == 0 {
		errs = errors.Join(errs, errors.New("classification requires at least one bucket"))
	}
	axes := len(p.Morphology.Axes)
	if len(p.Morphology.Current) != axes || len(p.Morphology.Standard) != axes {
		errs = errors.Join(errs, fmt.Errorf("morphology series must have %d values", axes))
	}
	if err := p.Scatter.Bounds.Validate(); err != nil {
		errs = errors.Join(errs, err)
	}
	if errs != nil {
		return fmt.Errorf("dashboard: invalid herd profile: %w", errs)
	}
	return nil
}

// FinishingCount sums the buckets marked as ready for slaughter.
func (p HerdProfile) FinishingCount() int {
	total := 0
	for _, bucket := range p.Classification {
		if bucket.Finishing {
			total += bucket.Count
		}
	}
	return total
}
