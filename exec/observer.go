package exec

import (
	"time"

	"github.com/1B05H1N/resilient-go/classify"
)

// Observer receives exactly one event per dispatch attempt. The sink's
// format and transport are the caller's concern: log it, count it, or
// drop it. ObserveAttempt is called from the invocation's own goroutine
// and should not block.
type Observer interface {
	ObserveAttempt(ev AttemptEvent)
}

type AttemptEvent struct {
	// RequestId correlates all attempts of one logical request.
	RequestId string
	Method    string
	Endpoint  string

	// Attempt is 1-based; MaxAttempts is the configured budget.
	Attempt     int
	MaxAttempts int

	Class classify.Class

	// StatusCode is zero when the attempt never produced a response.
	StatusCode int
	Err        error
	Elapsed    time.Duration
}

type NoopObserver struct {
}

var _ Observer = &NoopObserver{}

func (n NoopObserver) ObserveAttempt(_ AttemptEvent) {
}
