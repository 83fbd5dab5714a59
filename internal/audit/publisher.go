package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Publisher hands audit events to the worker through a buffered channel.
// Emit never blocks the caller: when the buffer is full the event is dropped
// and the drop is logged, because an onboarding run must not stall on its
// audit trail.
type Publisher struct {
	inbox  chan<- Event
	logger *slog.Logger
}

// NewPublisher creates a publisher feeding the given inbox.
func NewPublisher(inbox chan<- Event, logger *slog.Logger) *Publisher {
	return &Publisher{inbox: inbox, logger: logger}
}

// Emit enqueues an event, filling in ID and timestamp if unset.
func (p *Publisher) Emit(ctx context.Context, event Event) {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	select {
	case p.inbox <- event:
	default:
		p.logger.WarnContext(ctx, "audit inbox full, dropping event",
			"run_id", event.RunID,
			"action", event.Action,
		)
	}
}
