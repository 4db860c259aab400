package retry

import (
	"context"
	"fmt"
)

type expoRetry struct {
	config config
}

var _ Retry = &expoRetry{}

// NewExponentialRetry returns a Retry that doubles the delay after each
// failed attempt, starting from the configured delay.
// default initial delay: 1 second
func NewExponentialRetry(opts ...ConfigOption) Retry {
	var config = defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}

	return &expoRetry{config}
}

// Do runs provided function repeatedly until:
// * the RetriableFn returns no error
// * or attempts is reached
// * or RetriableFn returns StopNow
// * or ctx is cancelled (checked before each run and during each delay)
// Examples:
// Do(ctx, 3, "my-func", func(attempt int) (error, retry.ExitStrategy) {})
// ^ will run the function up to 3 times, sleeping delay, delay*2 between runs.
//
// Do(ctx, 0, "my-func", func(attempt int) (error, retry.ExitStrategy) {})
// ^ will NOT run
func (r *expoRetry) Do(
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

	delay := r.config.delay
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
			"Error during retry %s; retrying. attempt=%d, maxAttempt=%d, backoff=%v, error=%v",
			fnName, i-1, attempts, delay, err,
		)

		if ctxErr := sleep(ctx, delay); ctxErr != nil {
			return ctxErr
		}

		delay = delay * 2
	}

	r.config.logger.Warnf(
		"Exhausted all retry attempts for %s; giving up. attempt=%d, maxAttempt=%d, error=%v",
		fnName, i, attempts, err,
	)

	return err
}
