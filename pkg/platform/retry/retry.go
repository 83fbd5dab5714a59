// Package retry defines the backoff policy applied to transient provisioning
// failures. The policy is pure configuration: the caller owns the loop, the
// policy only answers "is this status retryable" and "how long to wait".
package retry

import (
	"math"
	"time"
)

// Policy is an immutable retry policy. Construct with New or Default and
// share freely; it carries no mutable state.
type Policy struct {
	MaxAttempts     int
	InitialDelay    time.Duration
	ExponentialBase float64

	retryable map[int]struct{}
}

// New builds a policy from explicit settings.
func New(maxAttempts int, initialDelay time.Duration, exponentialBase float64, retryableStatusCodes []int) Policy {
	retryable := make(map[int]struct{}, len(retryableStatusCodes))
	for _, code := range retryableStatusCodes {
		retryable[code] = struct{}{}
	}
	return Policy{
		MaxAttempts:     maxAttempts,
		InitialDelay:    initialDelay,
		ExponentialBase: exponentialBase,
		retryable:       retryable,
	}
}

// Default returns the provisioning retry policy: 5 attempts, 1s initial
// delay, base-7 exponential growth, retrying on 429/500/503/504.
func Default() Policy {
	return New(5, time.Second, 7, []int{429, 500, 503, 504})
}

// Retryable reports whether a status code is eligible for retry.
// Permanent classes (401/403/404) are never in the retryable set.
func (p Policy) Retryable(status int) bool {
	_, ok := p.retryable[status]
	return ok
}

// Delay returns the wait before the given attempt (1-indexed). The first
// attempt is immediate; attempt n (n >= 2) waits
// InitialDelay * ExponentialBase^(n-2). No jitter, no cap beyond MaxAttempts.
func (p Policy) Delay(attempt int) time.Duration {
	if attempt <= 1 {
		return 0
	}
	factor := math.Pow(p.ExponentialBase, float64(attempt-2))
	return time.Duration(float64(p.InitialDelay) * factor)
}
