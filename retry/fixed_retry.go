package retry

import (
	"context"
	"fmt"
)

type fixedRetry struct {
	config config
}

var _ Retry = &fixedRetry{}

// NewFixed returns a Retry that pauses for the same configured delay
// between every pair of attempts.
// default delay: 1 second
func NewFixed(opts ...ConfigOption) Retry {
	var config = defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}

	return &fixedRetry{config}
}

// Do runs provided function repeatedly until:
// * the RetriableFn returns no error
// * or attempts is reached
// * or RetriableFn returns StopNow
// * or ctx is cancelled (checked before each run and during each delay)
//
// The delay only happens when the failure continues AND attempts remain;
// a retry is a replacement for the prior attempt, never an addition, so
// runs are strictly sequential.
func (r *fixedRetry) Do(
	ctx context.Context,
	attempts int,
	fnName string,
	fn RetriableFn,
) error {
	if attempts < 1 {
		return fmt.Errorf("attempts must be > 0")
	}

	var err error
	var i int

	for i < attempts {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		var exitNow ExitStrategy
		if err, exitNow = fn(i); err == nil {
			return nil
		}
		if exitNow {
			return err
		}

		i++
		if i == attempts {
			break
		}

		r.config.logger.Warnf(
			"Error during retry %s; retrying. attempt=%d, maxAttempt=%d, delay=%v, error=%v",
			fnName, i-1, attempts, r.config.delay, err,
		)

		if ctxErr := sleep(ctx, r.config.delay); ctxErr != nil {
			return ctxErr
		}
	}

	r.config.logger.Warnf(
		"Exhausted all retry attempts for %s; giving up. attempt=%d, maxAttempt=%d, error=%v",
		fnName, i, attempts, err,
	)

	return err
}
