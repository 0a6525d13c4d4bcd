package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	gocommand "github.com/goliatone/go-command"
	"github.com/goliatone/go-pecusnet/components/dashboard"
	"github.com/goliatone/go-pecusnet/components/dashboard/commands"
)

var (
	// ErrViewerRequired is returned when a theme change has no viewer to attach to.
	ErrViewerRequired = errors.New("httpapi: viewer user id is required")
	// ErrBadPayload wraps request bodies that cannot be decoded.
	ErrBadPayload = errors.New("httpapi: invalid payload")
)

// Executor applies theme changes for a viewer.
type Executor interface {
	Theme(ctx context.Context, viewer dashboard.ViewerContext, body []byte) (dashboard.Theme, error)
}

// ThemeRequest is the optional body of a theme change. An empty theme toggles.
type ThemeRequest struct {
	Theme string `json:"theme"`
}

// ThemeResponse reports the viewer's theme after the change.
type ThemeResponse struct {
	Theme string `json:"theme"`
}

// Handlers exposes HTTP endpoints backed by shared commands.
type Handlers struct {
	Toggle gocommand.Commander[commands.ToggleThemeInput]
	Set    gocommand.Commander[commands.SetThemeInput]
}

var _ Executor = (*Handlers)(nil)

// Theme sets the theme named in body, or toggles when none is given.
func (h *Handlers) Theme(ctx context.Context, viewer dashboard.ViewerContext, body []byte) (dashboard.Theme, error) {
	if viewer.UserID == "" {
		return "", ErrViewerRequired
	}
	var payload ThemeRequest
	if len(strings.TrimSpace(string(body))) > 0 {
		if err := json.Unmarshal(body, &payload); err != nil {
			return "", fmt.Errorf("%w: %v", ErrBadPayload, err)
		}
	}
	result := &commands.ThemeResult{}
	if payload.Theme == "" {
		if h.Toggle == nil {
			return "", errors.New("httpapi: toggle command not configured")
		}
		err := h.Toggle.Execute(ctx, commands.ToggleThemeInput{Viewer: viewer, Result: result})
		return result.Theme, err
	}
	if h.Set == nil {
		return "", errors.New("httpapi: set command not configured")
	}
	err := h.Set.Execute(ctx, commands.SetThemeInput{Viewer: viewer, Theme: payload.Theme, Result: result})
	return result.Theme, err
}

// HandleTheme serves the theme endpoint for net/http muxes.
func (h *Handlers) HandleTheme(w http.ResponseWriter, r *http.Request, viewer dashboard.ViewerContext) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	theme, err := h.Theme(r.Context(), viewer, body)
	if err != nil {
		writeJSON(w, StatusFor(err), map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, ThemeResponse{Theme: theme.String()})
}

// StatusFor maps dashboard errors onto HTTP status codes.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, dashboard.ErrInvalidTheme),
		errors.Is(err, ErrBadPayload),
		errors.Is(err, ErrViewerRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
