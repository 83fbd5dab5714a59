package audit

import (
	"context"
	"log/slog"
)

// Sink is an optional secondary destination for audit events (Kafka in live
// profiles).
type Sink interface {
	Publish(ctx context.Context, event Event) error
}

// Worker consumes audit events from a channel and persists them, optionally
// forwarding each to a sink. Persistence failures are logged and skipped so
// one bad event cannot wedge the trail.
type Worker struct {
	store  Store
	sink   Sink
	inbox  <-chan Event
	logger *slog.Logger
}

// NewWorker builds the worker. sink may be nil.
func NewWorker(store Store, sink Sink, inbox <-chan Event, logger *slog.Logger) *Worker {
	return &Worker{store: store, sink: sink, inbox: inbox, logger: logger}
}

// Run processes events until the context is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			if err := w.store.Append(ctx, event); err != nil {
				w.logger.ErrorContext(ctx, "failed to persist audit event",
					"run_id", event.RunID,
					"action", event.Action,
					"error", err,
				)
				continue
			}
			if w.sink != nil {
				if err := w.sink.Publish(ctx, event); err != nil {
					w.logger.ErrorContext(ctx, "failed to publish audit event",
						"run_id", event.RunID,
						"action", event.Action,
						"error", err,
					)
				}
			}
		}
	}
}
