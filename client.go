package resilient_go

import (
	"context"
	"encoding/json"
	"net/http"

	resilient_errors "github.com/1B05H1N/resilient-go/errors"
	"github.com/1B05H1N/resilient-go/exec"
	"github.com/1B05H1N/resilient-go/transport"
	"github.com/1B05H1N/resilient-go/types"
)

// Client wraps a bounded-retry executor behind JSON verb helpers. All
// calls share one executor and one transport; the Client is safe for
// concurrent use.
type Client struct {
	executor *exec.Executor
}

func NewClient(baseUrl string, opts ...ConfigOption) *Client {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	t := transport.NewHTTP(
		baseUrl,
		transport.WithRoundTripper(cfg.roundTripper),
		transport.WithTimeout(cfg.timeout),
		transport.WithHeaders(cfg.headers),
		transport.WithRateLimiter(cfg.limiter),
		transport.WithLogger(cfg.logger),
	)

	return &Client{
		executor: exec.NewExecutor(
			t,
			exec.WithPolicy(cfg.policy),
			exec.WithClassifier(cfg.classifier),
			exec.WithLogger(cfg.logger),
			exec.WithObserver(cfg.observer),
		),
	}
}

// Executor exposes the underlying executor for callers that build raw
// descriptors or feed a batch processor.
func (c *Client) Executor() *exec.Executor {
	return c.executor
}

// Do executes one raw request descriptor.
func (c *Client) Do(ctx context.Context, req *types.Request) (*types.Response, error) {
	return c.executor.Execute(ctx, req)
}

func (c *Client) Get(ctx context.Context, path string, resData any) error {
	return c.sendJson(ctx, http.MethodGet, path, nil, resData)
}

func (c *Client) Post(ctx context.Context, path string, reqData, resData any) error {
	return c.sendJson(ctx, http.MethodPost, path, reqData, resData)
}

func (c *Client) Put(ctx context.Context, path string, reqData, resData any) error {
	return c.sendJson(ctx, http.MethodPut, path, reqData, resData)
}

func (c *Client) Delete(ctx context.Context, path string, reqData, resData any) error {
	return c.sendJson(ctx, http.MethodDelete, path, reqData, resData)
}

func (c *Client) sendJson(
	ctx context.Context,
	httpMethod string,
	path string,
	reqData any,
	resData any,
) error {
	res, err := c.executor.Execute(ctx, types.NewRequest(httpMethod, path, reqData))
	if err != nil {
		if reqErr, ok := resilient_errors.As(err); ok && len(reqErr.Body) > 0 && resData != nil {
			// Best effort to return some data
			_ = json.Unmarshal(reqErr.Body, resData)
		}
		return err
	}

	if resData == nil || len(res.Body) == 0 {
		return nil
	}
	if jsonErr := json.Unmarshal(res.Body, resData); jsonErr != nil {
		return &resilient_errors.RequestError{
			Kind:           resilient_errors.KIND_PERMANENT,
			Stage:          resilient_errors.STAGE_AFTER_REQUEST,
			SourceErr:      jsonErr,
			Body:           res.Body,
			HttpStatusCode: res.StatusCode,
		}
	}
	return nil
}
