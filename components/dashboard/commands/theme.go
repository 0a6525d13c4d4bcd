package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	dashboard "github.com/goliatone/go-pecusnet/components/dashboard"
)

type themeService interface {
	ToggleTheme(ctx context.Context, viewer dashboard.ViewerContext) (dashboard.Theme, error)
	ResolveTheme(ctx context.Context, viewer dashboard.ViewerContext, requested string) (dashboard.Theme, error)
}

// ThemeResult receives the theme a command settled on.
type ThemeResult struct {
	Theme dashboard.Theme
}

// ToggleThemeInput flips the viewer's theme between light and dark.
type ToggleThemeInput struct {
	Viewer dashboard.ViewerContext `json:"viewer"`
	Result *ThemeResult            `json:"-"`
}

// ToggleThemeCommand persists the flipped theme for a viewer.
type ToggleThemeCommand struct {
	service   themeService
	telemetry dashboard.Telemetry
}

// NewToggleThemeCommand creates the command.
func NewToggleThemeCommand(service themeService, telemetry dashboard.Telemetry) *ToggleThemeCommand {
	return &ToggleThemeCommand{service: service, telemetry: telemetry}
}

var _ gocommand.Commander[ToggleThemeInput] = (*ToggleThemeCommand)(nil)

// Execute toggles the theme and reports it through msg.Result when set.
func (c *ToggleThemeCommand) Execute(ctx context.Context, msg ToggleThemeInput) error {
	if c.service == nil {
		return errors.New("toggle theme command requires service")
	}
	if msg.Viewer.UserID == "" {
		return errors.New("toggle theme command requires viewer user id")
	}
	theme, err := c.service.ToggleTheme(ctx, msg.Viewer)
	if err != nil {
		return err
	}
	if msg.Result != nil {
		msg.Result.Theme = theme
	}
	record(ctx, c.telemetry, "dashboard.command.toggle_theme", map[string]any{
		"user_id": msg.Viewer.UserID,
		"theme":   theme.String(),
	})
	return nil
}

// SetThemeInput stores an explicit theme choice for the viewer.
type SetThemeInput struct {
	Viewer dashboard.ViewerContext `json:"viewer"`
	Theme  string                  `json:"theme"`
	Result *ThemeResult            `json:"-"`
}

// SetThemeCommand validates and persists an explicit theme.
type SetThemeCommand struct {
	service   themeService
	telemetry dashboard.Telemetry
}

// NewSetThemeCommand creates the command.
func NewSetThemeCommand(service themeService, telemetry dashboard.Telemetry) *SetThemeCommand {
	return &SetThemeCommand{service: service, telemetry: telemetry}
}

var _ gocommand.Commander[SetThemeInput] = (*SetThemeCommand)(nil)

// Execute validates msg.Theme and stores it for the viewer.
func (c *SetThemeCommand) Execute(ctx context.Context, msg SetThemeInput) error {
	if c.service == nil {
		return errors.New("set theme command requires service")
	}
	if msg.Viewer.UserID == "" {
		return errors.New("set theme command requires viewer user id")
	}
	if msg.Theme == "" {
		return dashboard.ErrInvalidTheme
	}
	theme, err := c.service.ResolveTheme(ctx, msg.Viewer, msg.Theme)
	if err != nil {
		return err
	}
	if msg.Result != nil {
		msg.Result.Theme = theme
	}
	record(ctx, c.telemetry, "dashboard.command.set_theme", map[string]any{
		"user_id": msg.Viewer.UserID,
		"theme":   theme.String(),
	})
	return nil
}
