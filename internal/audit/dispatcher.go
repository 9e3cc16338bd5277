package audit

import (
	"context"

	"github.com/BruksfildServices01/barbershop-api/internal/observability"
)

type Event struct {
	Action   string
	Entity   string
	EntityID string
	Metadata map[string]any
}

// Dispatcher writes audit entries inline; a failed write is logged and
// never reaches the caller.
type Dispatcher struct {
	logger *Logger
}

func NewDispatcher(logger *Logger) *Dispatcher {
	return &Dispatcher{logger: logger}
}

func (d *Dispatcher) Dispatch(ctx context.Context, ev Event) {
	if d == nil || d.logger == nil {
		return
	}

	if err := d.logger.Log(ctx, ev); err != nil {
		observability.LoggerFromContext(ctx).Warn().
			Err(err).
			Str("action", ev.Action).
			Str("entity", ev.Entity).
			Msg("audit write failed")
	}
}
