package commands

import (
	"context"

	dashboard "github.com/goliatone/go-pecusnet/components/dashboard"
)

func record(ctx context.Context, telemetry dashboard.Telemetry, event string, payload map[string]any) {
	if telemetry == nil {
		return
	}
	telemetry.Record(ctx, event, payload)
}
