package transport

import (
	"net/http"
	"time"

	"github.com/1B05H1N/resilient-go/logger"
	"github.com/1B05H1N/resilient-go/rate"
)

type httpConfig struct {
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

	// headers are applied to every outgoing request; per-request
	// headers win on key collision
	// default: empty
	headers map[string]string

	// limiter throttles requests before dispatch
	// default: rate.NoopLimiter
	limiter rate.Limiter

	// logger provides logging for dispatch debugging
	// default: logger.Noop
	logger logger.Logger
}

func defaultHttpConfig() httpConfig {
	return httpConfig{
		roundTripper: http.DefaultTransport,
		timeout:      10 * time.Second,
		limiter:      &rate.NoopLimiter{},
		logger:       logger.Noop{},
	}
}

type HttpOption func(c *httpConfig)

func WithRoundTripper(rt http.RoundTripper) HttpOption {
	return func(c *httpConfig) {
		if rt != nil {
			c.roundTripper = rt
		}
	}
}

func WithTimeout(timeout time.Duration) HttpOption {
	return func(c *httpConfig) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

func WithHeader(key, value string) HttpOption {
	return func(c *httpConfig) {
		if c.headers == nil {
			c.headers = map[string]string{}
		}
		c.headers[key] = value
	}
}

func WithHeaders(headers map[string]string) HttpOption {
	return func(c *httpConfig) {
		for k, v := range headers {
			WithHeader(k, v)(c)
		}
	}
}

func WithRateLimiter(limiter rate.Limiter) HttpOption {
	return func(c *httpConfig) {
		if limiter != nil {
			c.limiter = limiter
		}
	}
}

func WithLogger(log logger.Logger) HttpOption {
	return func(c *httpConfig) {
		if log != nil {
			c.logger = log
		}
	}
}
