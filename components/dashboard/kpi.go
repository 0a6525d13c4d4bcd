package dashboard

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// kgPerArroba converts live weight into arrobas.
const kgPerArroba = 15.0

// ErrHerdMismatch flags a classification total that disagrees with the herd count.
var ErrHerdMismatch = errors.New("dashboard: classification total does not match herd count")

// KPISet is the derived value set shown on the metric cards.
type KPISet struct {
	Heads            int     `json:"heads" yaml:"heads"`
	AverageWeightKg  float64 `json:"average_weight_kg" yaml:"average_weight_kg"`
	PricePerArroba   float64 `json:"price_per_arroba" yaml:"price_per_arroba"`
	EstimatedRevenue float64 `json:"estimated_revenue" yaml:"estimated_revenue"`
	AccuracyPct      float64 `json:"accuracy_pct" yaml:"accuracy_pct"`
}

// ComputeKPIs derives revenue and accuracy from the herd figures.
func ComputeKPIs(herd HerdFigures) KPISet {
	return KPISet{
		Heads:            herd.Heads,
		AverageWeightKg:  herd.AverageWeightKg,
		PricePerArroba:   herd.PricePerArroba,
		EstimatedRevenue: EstimatedRevenue(herd.Heads, herd.AverageWeightKg, herd.PricePerArroba),
		AccuracyPct:      AccuracyPct(herd.WeightRMSEKg, herd.AverageWeightKg),
	}
}

// EstimatedRevenue is heads × arrobas per head × price per arroba.
func EstimatedRevenue(heads int, avgWeightKg, pricePerArroba float64) float64 {
	return float64(heads) * (avgWeightKg / kgPerArroba) * pricePerArroba
}

// AccuracyPct is 100 minus the weight error relative to the mean, rounded to one decimal.
func AccuracyPct(rmseKg, avgWeightKg float64) float64 {
	if avgWeightKg <= 0 {
		return 0
	}
	return roundTo(100-(rmseKg/avgWeightKg*100), 1)
}

// RevenueLabel formats revenue in thousands of reais, e.g. "R$ 849.3k".
func (k KPISet) RevenueLabel() string {
	return "R$ " + strconv.FormatFloat(k.EstimatedRevenue/1000, 'f', 1, 64) + "k"
}

// AccuracyLabel formats accuracy with one decimal, e.g. "95.8%".
func (k KPISet) AccuracyLabel() string {
	return strconv.FormatFloat(k.AccuracyPct, 'f', 1, 64) + "%"
}

// WeightLabel formats the projected average weight, e.g. "485.5 kg".
func (k KPISet) WeightLabel() string {
	return strconv.FormatFloat(k.AverageWeightKg, 'f', -1, 64) + " kg"
}

// PriceLabel formats the reference arroba price, e.g. "Base: @ R$ 320".
func (k KPISet) PriceLabel() string {
	return "Base: @ R$ " + strconv.FormatFloat(k.PricePerArroba, 'f', -1, 64)
}

// ClassificationTotal sums every slaughter-readiness bucket.
func ClassificationTotal(buckets []ClassBucket) int {
	total := 0
	for _, bucket := range buckets {
		total += bucket.Count
	}
	return total
}

// CheckHerdConsistency reports ErrHerdMismatch when the bar chart and the herd card disagree.
func CheckHerdConsistency(profile HerdProfile) error {
	total := ClassificationTotal(profile.Classification)
	if total != profile.Herd.Heads {
		return fmt.Errorf("%w: classification=%d herd=%d", ErrHerdMismatch, total, profile.Herd.Heads)
	}
	return nil
}

func roundTo(value float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(value*factor) / factor
}
