package commands

import (
	"context"
	"errors"
	"io"

	gocommand "github.com/goliatone/go-command"
	dashboard "github.com/goliatone/go-pecusnet/components/dashboard"
)

type pageRenderer interface {
	RenderTemplate(ctx context.Context, viewer dashboard.ViewerContext, requested string, out io.Writer) error
}

// ExportPageInput renders one dashboard page into Output.
type ExportPageInput struct {
	Viewer dashboard.ViewerContext
	Theme  string
	Output io.Writer
}

// ExportPageCommand writes a full HTML render, e.g. for static snapshots.
type ExportPageCommand struct {
	controller pageRenderer
	telemetry  dashboard.Telemetry
}

// NewExportPageCommand creates the command.
func NewExportPageCommand(controller pageRenderer, telemetry dashboard.Telemetry) *ExportPageCommand {
	return &ExportPageCommand{controller: controller, telemetry: telemetry}
}

var _ gocommand.Commander[ExportPageInput] = (*ExportPageCommand)(nil)

// Execute renders the page in the requested theme.
func (c *ExportPageCommand) Execute(ctx context.Context, msg ExportPageInput) error {
	if c.controller == nil {
		return errors.New("export command requires controller")
	}
	if msg.Output == nil {
		return errors.New("export command requires output writer")
	}
	if err := c.controller.RenderTemplate(ctx, msg.Viewer, msg.Theme, msg.Output); err != nil {
		return err
	}
	record(ctx, c.telemetry, "dashboard.command.export", map[string]any{
		"theme": msg.Theme,
	})
	return nil
}
