package types

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	resilient_errors "github.com/1B05H1N/resilient-go/errors"
)

// methods is the fixed verb set a Request may carry.
var methods = map[string]bool{
	http.MethodGet:    true,
	http.MethodPost:   true,
	http.MethodPut:    true,
	http.MethodPatch:  true,
	http.MethodDelete: true,
}

// Request describes one logical call to a remote endpoint. It is owned by
// the caller and must not be mutated after construction; the executor
// only reads it, on every attempt.
type Request struct {
	// Id correlates attempt logs, observer events and batch responses.
	// NewRequest assigns a random uuid; when the caller builds a Request
	// by hand and leaves Id empty, the executor generates one per call.
	Id string

	// Method is one of GET, POST, PUT, PATCH, DELETE.
	Method string

	// Endpoint is the target path or URL. Must be non-empty.
	Endpoint string

	// Payload is an optional JSON-serializable request body.
	Payload any

	// Headers are added to the dispatched request, overriding
	// transport-level defaults on key collision.
	Headers map[string]string
}

func NewRequest(method string, endpoint string, payload any) *Request {
	return &Request{
		Id:       uuid.NewString(),
		Method:   method,
		Endpoint: endpoint,
		Payload:  payload,
	}
}

// Validate fails fast on descriptors that must never reach the transport.
func (r *Request) Validate() *resilient_errors.RequestError {
	if r == nil {
		return invalid(fmt.Errorf("request is nil"))
	}
	if r.Endpoint == "" {
		return invalid(fmt.Errorf("request endpoint is empty"))
	}
	if !methods[r.Method] {
		return invalid(fmt.Errorf("unsupported request method %q", r.Method))
	}
	return nil
}

func invalid(err error) *resilient_errors.RequestError {
	return &resilient_errors.RequestError{
		Kind:      resilient_errors.KIND_INVALID_REQUEST,
		Stage:     resilient_errors.STAGE_BEFORE_REQUEST,
		SourceErr: err,
	}
}
