package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	dashboard "github.com/goliatone/go-pecusnet/components/dashboard"
)

// KPIReport is the KPI set plus the consistency verdict for a profile.
type KPIReport struct {
	KPIs      dashboard.KPISet `json:"kpis" yaml:"kpis"`
	Finishing int              `json:"finishing" yaml:"finishing"`
	Warning   string           `json:"warning,omitempty" yaml:"warning,omitempty"`
}

// KPIQuery derives the metric card values from a herd profile.
type KPIQuery struct{}

// NewKPIQuery builds the query.
func NewKPIQuery() *KPIQuery {
	return &KPIQuery{}
}

var _ gocommand.Querier[dashboard.HerdProfile, KPIReport] = (*KPIQuery)(nil)

// Query computes the KPIs for the profile.
func (q *KPIQuery) Query(_ context.Context, profile dashboard.HerdProfile) (KPIReport, error) {
	report := KPIReport{
		KPIs:      dashboard.ComputeKPIs(profile.Herd),
		Finishing: profile.FinishingCount(),
	}
	if err := dashboard.CheckHerdConsistency(profile); err != nil {
		report.Warning = err.Error()
	}
	return report, nil
}
