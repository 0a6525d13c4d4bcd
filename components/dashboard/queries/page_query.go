package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	dashboard "github.com/goliatone/go-pecusnet/components/dashboard"
)

// PageInput identifies a page request for a viewer.
type PageInput struct {
	Viewer dashboard.ViewerContext
	Theme  string
}

type pageService interface {
	Page(ctx context.Context, viewer dashboard.ViewerContext, requested string) (dashboard.Page, error)
}

// PageQuery executes read-only page resolution.
type PageQuery struct {
	service pageService
}

// NewPageQuery builds the query.
func NewPageQuery(service pageService) *PageQuery {
	return &PageQuery{service: service}
}

var _ gocommand.Querier[PageInput, dashboard.Page] = (*PageQuery)(nil)

// Query resolves the page for the viewer.
func (q *PageQuery) Query(ctx context.Context, input PageInput) (dashboard.Page, error) {
	return q.service.Page(ctx, input.Viewer, input.Theme)
}
