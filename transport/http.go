package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	resilient_errors "github.com/1B05H1N/resilient-go/errors"
	"github.com/1B05H1N/resilient-go/types"
)

type httpTransport struct {
	baseUrl    string
	httpClient *http.Client
	config     httpConfig
}

var _ Transport = &httpTransport{}

// NewHTTP returns a Transport that dispatches requests over HTTP with
// JSON bodies. Request endpoints are resolved against baseUrl unless
// they are already absolute.
func NewHTTP(baseUrl string, opts ...HttpOption) Transport {
	cfg := defaultHttpConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	httpClient := &http.Client{}
	httpClient.Transport = cfg.roundTripper
	httpClient.Timeout = cfg.timeout

	return &httpTransport{
		baseUrl:    strings.TrimSuffix(baseUrl, "/"),
		httpClient: httpClient,
		config:     cfg,
	}
}

func (t *httpTransport) Send(
	ctx context.Context,
	req *types.Request,
) (*types.Response, error) {
	endpoint := t.endpoint(req.Endpoint)

	var err error
	var httpReq *http.Request

	if req.Payload != nil {
		data, jsonErr := json.Marshal(req.Payload)
		if jsonErr != nil {
			return nil, &resilient_errors.RequestError{
				Kind:      resilient_errors.KIND_INVALID_REQUEST,
				Stage:     resilient_errors.STAGE_BEFORE_REQUEST,
				SourceErr: jsonErr,
			}
		}
		httpReq, err = http.NewRequestWithContext(
			ctx, req.Method, endpoint, bytes.NewBuffer(data),
		)
	} else {
		httpReq, err = http.NewRequestWithContext(
			ctx, req.Method, endpoint, nil,
		)
	}

	if err != nil {
		return nil, &resilient_errors.RequestError{
			Kind:      resilient_errors.KIND_INVALID_REQUEST,
			Stage:     resilient_errors.STAGE_BEFORE_REQUEST,
			SourceErr: err,
		}
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	for k, v := range t.config.headers {
		httpReq.Header.Set(k, v)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	t.config.limiter.Limit(httpReq)

	t.config.logger.Debugf(
		"transport.http: sending %s %s", req.Method, endpoint,
	)

	res, err := t.httpClient.Do(httpReq)
	if err != nil {
		// raw transport fault; the classifier decides what it means
		return nil, err
	}

	var body []byte
	if res.Body != nil {
		body, err = io.ReadAll(res.Body)
		defer func() { _ = res.Body.Close() }()
		if err != nil {
			return nil, err
		}
	}

	return &types.Response{
		StatusCode: res.StatusCode,
		Body:       body,
		Headers:    res.Header,
	}, nil
}

func (t *httpTransport) endpoint(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return t.baseUrl + "/" + strings.TrimPrefix(path, "/")
}
