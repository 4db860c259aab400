package resilient_go

import (
	"net/http"
	"time"

	"github.com/1B05H1N/resilient-go/classify"
	"github.com/1B05H1N/resilient-go/exec"
	"github.com/1B05H1N/resilient-go/logger"
	"github.com/1B05H1N/resilient-go/rate"
)

type config struct {
	// roundTripper specifies the HTTP transport mechanism
	// for making requests.
	// It's useful for mocking or if callers
	// want to add extra logging, headers, etc.
	// default: http.DefaultTransport
	roundTripper http.RoundTripper

	// timeout sets the maximum duration for HTTP requests
	// before they are cancelled
	// default: 10 seconds
	timeout time.Duration

	// headers are attached to every outgoing request
	// default: empty
	headers map[string]string

	// policy bounds retry attempts and spaces them out
	// default: exec.DefaultPolicy (3 attempts, 1s delay)
	policy exec.Policy

	// classifier decides which failures are worth retrying
	// default: classify.NewHTTP
	classifier classify.Classifier

	// limiter throttles requests before dispatch
	// default: rate.NoopLimiter
	limiter rate.Limiter

	// observer receives one event per dispatch attempt
	// default: exec.NoopObserver
	observer exec.Observer

	// logger provides logging functionality for all internal
	// client operations
	// default: logger.Noop
	logger logger.Logger
}

func defaultConfig() *config {
	return &config{
		roundTripper: http.DefaultTransport,
		timeout:      10 * time.Second,
		policy:       exec.DefaultPolicy(),
		classifier:   classify.NewHTTP(),
		limiter:      &rate.NoopLimiter{},
		observer:     exec.NoopObserver{},
		logger:       logger.Noop{},
	}
}

type ConfigOption func(c *config)

func WithTransport(rt http.RoundTripper) ConfigOption {
	return func(c *config) {
		c.roundTripper = rt
	}
}

func WithTimeout(timeout time.Duration) ConfigOption {
	return func(c *config) {
		c.timeout = timeout
	}
}

// WithApiKey attaches the key to every request in an Api-Key header.
func WithApiKey(apiKey string) ConfigOption {
	return WithHeader("Api-Key", apiKey)
}

func WithHeader(key, value string) ConfigOption {
	return func(c *config) {
		if c.headers == nil {
			c.headers = map[string]string{}
		}
		c.headers[key] = value
	}
}

func WithPolicy(p exec.Policy) ConfigOption {
	return func(c *config) {
		c.policy = p
	}
}

func WithClassifier(cl classify.Classifier) ConfigOption {
	return func(c *config) {
		c.classifier = cl
	}
}

func WithRateLimiter(limiter rate.Limiter) ConfigOption {
	return func(c *config) {
		c.limiter = limiter
	}
}

func WithObserver(o exec.Observer) ConfigOption {
	return func(c *config) {
		c.observer = o
	}
}

func WithLogger(logger logger.Logger) ConfigOption {
	return func(c *config) {
		c.logger = logger
	}
}
