package queries

import (
	"context"
	"testing"

	dashboard "github.com/goliatone/go-pecusnet/components/dashboard"
)

type stubPageService struct {
	calls int
	theme string
}

func (s *stubPageService) Page(_ context.Context, _ dashboard.ViewerContext, requested string) (dashboard.Page, error) {
	s.calls++
	s.theme = requested
	return dashboard.Page{Theme: dashboard.ThemeDark}, nil
}

func TestPageQuery(t *testing.T) {
	service := &stubPageService{}
	query := NewPageQuery(service)
	page, err := query.Query(context.Background(), PageInput{Theme: "dark"})
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if service.calls != 1 || service.theme != "dark" {
		t.Fatalf("expected 1 call with dark theme, got %d %q", service.calls, service.theme)
	}
	if page.Theme != dashboard.ThemeDark {
		t.Fatalf("expected page passthrough, got %q", page.Theme)
	}
}

func TestKPIQuery(t *testing.T) {
	report, err := NewKPIQuery().Query(context.Background(), dashboard.DefaultHerdProfile())
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if report.KPIs.Heads != 82 || report.KPIs.AccuracyPct != 95.8 {
		t.Fatalf("unexpected kpis %+v", report.KPIs)
	}
	if report.Finishing != 22 {
		t.Fatalf("expected 22 finishing animals, got %d", report.Finishing)
	}
	if report.Warning != "" {
		t.Fatalf("expected no warning for default profile, got %q", report.Warning)
	}
}

func TestKPIQueryReportsMismatch(t *testing.T) {
	profile := dashboard.DefaultHerdProfile()
	profile.Herd.Heads = 100
	report, err := NewKPIQuery().Query(context.Background(), profile)
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if report.Warning == "" {
		t.Fatalf("expected mismatch warning")
	}
}
