package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/goliatone/go-pecusnet/components/dashboard"
	"github.com/goliatone/go-pecusnet/components/dashboard/commands"
)

type renderCmd struct {
	Theme string `default:"light" enum:"light,dark" help:"Theme to render (light or dark)."`
	Out   string `short:"o" default:"-" help:"Output file, or - for stdout."`
}

func (cmd *renderCmd) Run(ctx context.Context, root *cli) error {
	a, err := newApp(root)
	if err != nil {
		return err
	}
	defer a.close()

	var out io.Writer = os.Stdout
	if cmd.Out != "-" {
		file, err := os.Create(cmd.Out)
		if err != nil {
			return fmt.Errorf("pecusnet: create output: %w", err)
		}
		defer file.Close()
		out = file
	}
	export := commands.NewExportPageCommand(a.controller, a.telemetry)
	if err := export.Execute(ctx, commands.ExportPageInput{
		Viewer: dashboard.ViewerContext{Locale: "pt-br"},
		Theme:  cmd.Theme,
		Output: out,
	}); err != nil {
		return err
	}
	a.logger.Debug("page rendered", zap.String("theme", cmd.Theme), zap.String("out", cmd.Out))
	return nil
}
