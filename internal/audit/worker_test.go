package audit

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitForEvents(t *testing.T, store *InMemoryStore, runID string, want int) []Event {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		events, err := store.ListByRun(context.Background(), runID)
		require.NoError(t, err)
		if len(events) >= want {
			return events
		}
		select {
		case <-deadline:
			t.Fatalf("expected %d events for run %s, have %d", want, runID, len(events))
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestWorkerPersistsEvents(t *testing.T) {
	store := NewInMemoryStore()
	inbox := make(chan Event, 8)
	publisher := NewPublisher(inbox, slog.Default())
	worker := NewWorker(store, nil, inbox, slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = worker.Run(ctx) }()

	publisher.Emit(ctx, Event{RunID: "run-1", Action: ActionRunStarted, ProjectID: "PROJ-ALPHA"})
	publisher.Emit(ctx, Event{RunID: "run-1", Action: ActionProtocolChecked, Status: 200})

	events := waitForEvents(t, store, "run-1", 2)
	assert.Equal(t, ActionRunStarted, events[0].Action)
	assert.NotEqual(t, uuid.Nil, events[0].ID)
	assert.False(t, events[0].Timestamp.IsZero())
}

type flakySink struct {
	mu        sync.Mutex
	published []Event
	fail      bool
}

func (s *flakySink) Publish(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errors.New("broker down")
	}
	s.published = append(s.published, event)
	return nil
}

func TestWorkerForwardsToSink(t *testing.T) {
	store := NewInMemoryStore()
	sink := &flakySink{}
	inbox := make(chan Event, 8)
	worker := NewWorker(store, sink, inbox, slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = worker.Run(ctx) }()

	NewPublisher(inbox, slog.Default()).Emit(ctx, Event{RunID: "run-2", Action: ActionRunFinished})

	waitForEvents(t, store, "run-2", 1)
	assert.Eventually(t, func() bool {
		sink.mu.Lock()
		defer sink.mu.Unlock()
		return len(sink.published) == 1
	}, 2*time.Second, 5*time.Millisecond)
}

func TestWorkerSurvivesSinkFailure(t *testing.T) {
	store := NewInMemoryStore()
	sink := &flakySink{fail: true}
	inbox := make(chan Event, 8)
	worker := NewWorker(store, sink, inbox, slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = worker.Run(ctx) }()

	publisher := NewPublisher(inbox, slog.Default())
	publisher.Emit(ctx, Event{RunID: "run-3", Action: ActionRunStarted})
	publisher.Emit(ctx, Event{RunID: "run-3", Action: ActionRunFinished})

	// Both events reach the store even though the sink keeps failing.
	waitForEvents(t, store, "run-3", 2)
}

func TestPublisherDropsWhenInboxFull(t *testing.T) {
	inbox := make(chan Event, 1)
	publisher := NewPublisher(inbox, slog.Default())
	ctx := context.Background()

	publisher.Emit(ctx, Event{RunID: "run-4", Action: ActionRunStarted})
	// No worker is draining; this must not block.
	publisher.Emit(ctx, Event{RunID: "run-4", Action: ActionRunFinished})

	assert.Len(t, inbox, 1)
}
