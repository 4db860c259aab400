package retry

import (
	"context"
	"time"

	"github.com/1B05H1N/resilient-go/logger"
)

// Retry provides a standardized interface for implementing retry logic
// with different strategies. It allows operations to be retried with
// configurable retry policies such as fixed delays, exponential backoff
// and maximum attempts.
//
// The interface is used throughout resilient-go for handling transient
// failures in request dispatch and batch processing.
//
// Usage Example:
//
//	r := retry.NewFixed(
//	    retry.WithDelay(100*time.Millisecond),
//	    retry.WithLogger(myLogger),
//	)
//
//	err := r.Do(ctx, 3, "api-call", func(attempt int) (error, retry.ExitStrategy) {
//	    result, err := client.MakeRequest()
//	    if err != nil {
//	        if isRetriableError(err) {
//	            return err, retry.Continue  // Retry this error
//	        }
//	        return err, retry.StopNow     // Don't retry this error
//	    }
//	    return nil, retry.StopNow         // Success, stop retrying
//	})
//
// The RetriableFn function receives the current attempt number (0-based)
// and returns an error and an ExitStrategy. The ExitStrategy determines
// whether to continue retrying (Continue) or stop immediately (StopNow),
// regardless of remaining attempts.
//
// The inter-attempt delay is the only suspension point. It is local to
// one Do call and honors ctx: cancellation is observed during the delay
// and before each dispatch, never mid-attempt. A cancelled Do returns
// ctx.Err().
//
// NOTE: if attempts is 0, the fn is never called.
type Retry interface {
	Do(ctx context.Context, attempts int, fnName string, fn RetriableFn) error
}

type RetriableFn func(attempt int) (error, ExitStrategy)

type ExitStrategy bool

var StopNow ExitStrategy = true
var Continue ExitStrategy = false

type config struct {
	delay  time.Duration
	logger logger.Logger
}

func defaultConfig() config {
	return config{
		delay:  1000 * time.Millisecond,
		logger: &logger.Noop{},
	}
}

type ConfigOption func(c *config)

func WithLogger(log logger.Logger) ConfigOption {
	return func(c *config) {
		c.logger = log
	}
}

// WithDelay sets the inter-attempt delay: the constant pause for the
// fixed strategy, the initial pause for the exponential one.
func WithDelay(d time.Duration) ConfigOption {
	return func(c *config) {
		c.delay = d
	}
}

// sleep waits for d or until ctx is done, whichever comes first.
func sleep(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
