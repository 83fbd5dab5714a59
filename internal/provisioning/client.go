package provisioning

import (
	"context"
	"log/slog"
	"time"

	"gangway/pkg/platform/retry"
)

// Client drives per-space provisioning with the retry policy. The loop stops
// immediately once attempts are exhausted, a non-retryable status is
// observed, or the error type is terminal; 403/404 classes never wait out a
// delay no matter how many attempts remain.
type Client struct {
	connector Connector
	policy    retry.Policy
	logger    *slog.Logger

	// sleep is swappable so unit tests don't wait out real backoff delays.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewClient builds the retrying provisioning client.
func NewClient(connector Connector, policy retry.Policy, logger *slog.Logger) *Client {
	return &Client{
		connector: connector,
		policy:    policy,
		logger:    logger,
		sleep:     sleepContext,
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Provision adds the employee to one space, retrying transient failures per
// policy. The returned outcome is the final connector outcome annotated with
// the attempt count; exhaustion is marked rather than swallowed.
func (c *Client) Provision(ctx context.Context, space, email, serviceAccountID string) Outcome {
	var outcome Outcome
	for attempt := 1; attempt <= c.policy.MaxAttempts; attempt++ {
		if attempt > 1 {
			delay := c.policy.Delay(attempt)
			c.logger.InfoContext(ctx, "retrying provisioning call",
				"space", space,
				"attempt", attempt,
				"delay", delay.String(),
			)
			if err := c.sleep(ctx, delay); err != nil {
				outcome.Attempts = attempt - 1
				outcome.Message = "Provisioning cancelled while waiting to retry."
				return outcome
			}
		}

		outcome = c.connector.AddMember(ctx, space, email, serviceAccountID)
		outcome.Attempts = attempt

		if !outcome.IsError {
			return outcome
		}
		if outcome.Terminal() || !c.policy.Retryable(outcome.Status) {
			c.logger.WarnContext(ctx, "provisioning failed permanently",
				"space", space,
				"status", outcome.Status,
				"error_type", outcome.ErrorType,
			)
			return outcome
		}
	}

	// Retry budget spent on consecutive transient failures: surface it, never
	// swallow it.
	outcome.Exhausted = true
	c.logger.ErrorContext(ctx, "provisioning retries exhausted",
		"space", space,
		"status", outcome.Status,
		"attempts", outcome.Attempts,
	)
	return outcome
}
