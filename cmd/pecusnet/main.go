package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
)

type cli struct {
	Profile string `type:"path" help:"Herd profile YAML (defaults to the built-in herd)."`
	Seed    int64  `help:"Seed for the scatter point source (0 uses the clock)."`

	Serve  serveCmd  `cmd:"" help:"Serve the dashboard over HTTP."`
	Render renderCmd `cmd:"" help:"Render one dashboard page to HTML."`
	KPIs   kpisCmd   `cmd:"" name:"kpis" help:"Print the herd KPIs as YAML."`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var root cli
	kctx := kong.Parse(&root,
		kong.Name("pecusnet"),
		kong.Description("PecusNet livestock monitoring dashboard."),
		kong.UsageOnError(),
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.Bind(&root),
	)
	err := kctx.Run()
	kctx.FatalIfErrorf(err)
}
