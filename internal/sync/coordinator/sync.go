package coordinator

import (
	"context"
	"log/slog"
)

// runRound syncs every source once. Failures are already recorded by the engine.
func (c *defaultCoordinator) runRound(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	if result, err := c.engine.SyncInventory(ctx); err != nil {
		slog.WarnContext(ctx, "Background inventory sync failed", "error", err)
	} else {
		slog.DebugContext(ctx, "Background inventory sync done", "lists", result.Lists, "items", result.Items)
	}

	if ctx.Err() != nil {
		return
	}

	if result, err := c.engine.SyncAppointments(ctx); err != nil {
		slog.WarnContext(ctx, "Background appointments sync failed", "error", err)
	} else {
		slog.DebugContext(ctx, "Background appointments sync done", "citas", result.Appointments)
	}
}
