package resilient_go

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/1B05H1N/resilient-go/classify"
	resilient_errors "github.com/1B05H1N/resilient-go/errors"
	"github.com/1B05H1N/resilient-go/exec"
	"github.com/1B05H1N/resilient-go/types"
)

type scriptedRoundTripper struct {
	mu       sync.Mutex
	statuses []int
	bodies   []string
	requests []*http.Request
}

func (s *scriptedRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, req)

	i := len(s.requests) - 1
	status := s.statuses[len(s.statuses)-1]
	if i < len(s.statuses) {
		status = s.statuses[i]
	}
	body := ""
	if i < len(s.bodies) {
		body = s.bodies[i]
	}
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     http.Header{},
	}, nil
}

func (s *scriptedRoundTripper) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

func Test_Client_Get(t *testing.T) {
	rt := &scriptedRoundTripper{
		statuses: []int{200},
		bodies:   []string{`{"userId":"user-1","email":"a@b.c"}`},
	}
	client := NewClient("https://api.example.com", WithTransport(rt))

	var res struct {
		UserId string `json:"userId"`
		Email  string `json:"email"`
	}
	err := client.Get(context.Background(), "users/user-1", &res)

	assert.NoError(t, err)
	assert.Equal(t, "user-1", res.UserId)
	assert.Equal(t, "a@b.c", res.Email)
	assert.Equal(t, 1, rt.count())
	assert.Equal(t, "https://api.example.com/users/user-1", rt.requests[0].URL.String())
}

func Test_Client_Post_RetriesThenSucceeds(t *testing.T) {
	rt := &scriptedRoundTripper{
		statuses: []int{503, 503, 201},
		bodies:   []string{"", "", `{"id":"order-9"}`},
	}
	client := NewClient(
		"https://api.example.com",
		WithTransport(rt),
		WithPolicy(exec.Policy{MaxAttempts: 3, Delay: time.Millisecond}),
	)

	var res struct {
		Id string `json:"id"`
	}
	err := client.Post(context.Background(), "orders", map[string]any{"sku": "abc"}, &res)

	assert.NoError(t, err)
	assert.Equal(t, "order-9", res.Id)
	assert.Equal(t, 3, rt.count())
}

func Test_Client_PermanentFailureStopsEarly(t *testing.T) {
	rt := &scriptedRoundTripper{
		statuses: []int{404},
		bodies:   []string{`{"message":"no such user"}`},
	}
	client := NewClient(
		"https://api.example.com",
		WithTransport(rt),
		WithPolicy(exec.Policy{MaxAttempts: 5, Delay: time.Millisecond}),
	)

	var res struct {
		Message string `json:"message"`
	}
	err := client.Get(context.Background(), "users/missing", &res)

	assert.Error(t, err)
	reqErr, ok := resilient_errors.As(err)
	assert.True(t, ok)
	assert.Equal(t, resilient_errors.KIND_PERMANENT, reqErr.Kind)
	assert.Equal(t, 404, reqErr.HttpStatusCode)
	assert.Equal(t, 1, rt.count())
	// error bodies are still decoded best effort
	assert.Equal(t, "no such user", res.Message)
}

func Test_Client_ExhaustedBudget(t *testing.T) {
	rt := &scriptedRoundTripper{
		statuses: []int{500},
	}
	client := NewClient(
		"https://api.example.com",
		WithTransport(rt),
		WithPolicy(exec.Policy{MaxAttempts: 2, Delay: time.Millisecond}),
	)

	err := client.Delete(context.Background(), "users/user-1", nil, nil)

	assert.Error(t, err)
	reqErr, ok := resilient_errors.As(err)
	assert.True(t, ok)
	assert.Equal(t, resilient_errors.KIND_EXHAUSTED, reqErr.Kind)
	assert.Equal(t, 2, reqErr.Attempts)
	assert.Equal(t, 2, rt.count())
}

func Test_Client_ApiKeyHeader(t *testing.T) {
	rt := &scriptedRoundTripper{statuses: []int{200}}
	client := NewClient(
		"https://api.example.com",
		WithTransport(rt),
		WithApiKey("secret-key"),
	)

	err := client.Get(context.Background(), "ping", nil)

	assert.NoError(t, err)
	assert.Equal(t, "secret-key", rt.requests[0].Header.Get("Api-Key"))
}

func Test_Client_CustomClassifier(t *testing.T) {
	// teapot is transient for this caller
	rt := &scriptedRoundTripper{statuses: []int{418, 418, 200}}
	client := NewClient(
		"https://api.example.com",
		WithTransport(rt),
		WithPolicy(exec.Policy{MaxAttempts: 3, Delay: time.Millisecond}),
		WithClassifier(&classify.Table{
			Success:   []int{200},
			Transient: []int{418},
			Fault:     classify.Transient,
			Default:   classify.Permanent,
		}),
	)

	err := client.Get(context.Background(), "brew", nil)

	assert.NoError(t, err)
	assert.Equal(t, 3, rt.count())
}

func Test_Client_Do(t *testing.T) {
	rt := &scriptedRoundTripper{
		statuses: []int{200},
		bodies:   []string{`{"ok":true}`},
	}
	client := NewClient("https://api.example.com", WithTransport(rt))

	res, err := client.Do(context.Background(), types.NewRequest(http.MethodGet, "health", nil))

	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode)
	assert.Equal(t, `{"ok":true}`, string(res.Body))
}
