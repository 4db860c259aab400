package exec

import (
	"github.com/1B05H1N/resilient-go/classify"
	"github.com/1B05H1N/resilient-go/logger"
	"github.com/1B05H1N/resilient-go/retry"
)

type config struct {
	// policy bounds attempts and spaces them out
	// default: DefaultPolicy (3 attempts, 1s delay)
	policy Policy

	// classifier decides which outcomes are worth retrying
	// default: classify.NewHTTP
	classifier classify.Classifier

	// retry overrides the attempt-loop strategy. When unset, a fixed
	// strategy derived from the policy is used; set it to change delay
	// shape (e.g. retry.NewExponentialRetry), not the budget.
	// default: retry.NewFixed with the policy delay
	retry retry.Retry

	// logger provides logging for attempt tracking
	// default: logger.Noop
	logger logger.Logger

	// observer receives one event per dispatch attempt
	// default: NoopObserver
	observer Observer
}

func defaultConfig() *config {
	return &config{
		policy:     DefaultPolicy(),
		classifier: classify.NewHTTP(),
		logger:     logger.Noop{},
		observer:   NoopObserver{},
	}
}

type ConfigOption func(c *config)

func WithPolicy(p Policy) ConfigOption {
	return func(c *config) {
		c.policy = applyPolicy(p)
	}
}

func WithClassifier(cl classify.Classifier) ConfigOption {
	return func(c *config) {
		if cl != nil {
			c.classifier = cl
		}
	}
}

func WithRetry(r retry.Retry) ConfigOption {
	return func(c *config) {
		c.retry = r
	}
}

func WithLogger(log logger.Logger) ConfigOption {
	return func(c *config) {
		if log != nil {
			c.logger = log
		}
	}
}

func WithObserver(o Observer) ConfigOption {
	return func(c *config) {
		if o != nil {
			c.observer = o
		}
	}
}
