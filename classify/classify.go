package classify

import (
	"context"
	"errors"
	"net/http"

	resilient_errors "github.com/1B05H1N/resilient-go/errors"
	"github.com/1B05H1N/resilient-go/types"
)

// Class is the executor's decision about one attempt outcome.
type Class int

const (
	// Unknown indicates a missing classification and is never returned
	// by the built-in classifiers.
	Unknown Class = iota
	Success
	Transient
	Permanent
)

func (c Class) String() string {
	switch c {
	case Success:
		return "success"
	case Transient:
		return "transient"
	case Permanent:
		return "permanent"
	default:
		return "unknown"
	}
}

// Classifier decides whether an attempt outcome is terminal or worth
// retrying. Exactly one of res and err is meaningful: err is set for
// transport-level faults, res for completed exchanges.
//
// Transports that do not follow HTTP status semantics need their own
// classifier; see Table for an explicit per-transport mapping.
type Classifier interface {
	Classify(res *types.Response, err error) Class
}

// NewHTTP returns the default classifier for HTTP transports:
//   - 2xx -> Success
//   - >= 500 -> Transient
//   - [400, 500) -> Permanent
//   - transport faults (connection refused, timeout, DNS) -> Transient
//   - faults caused by context cancellation, or raised before dispatch
//     on a malformed descriptor -> Permanent
func NewHTTP() Classifier {
	return &httpClassifier{}
}

type httpClassifier struct{}

var _ Classifier = &httpClassifier{}

func (h *httpClassifier) Classify(res *types.Response, err error) Class {
	if err != nil {
		return classifyFault(err)
	}
	if res == nil {
		return Permanent
	}
	switch {
	case res.StatusCode >= http.StatusInternalServerError:
		return Transient
	case res.StatusCode >= http.StatusBadRequest:
		return Permanent
	case res.StatusCode >= http.StatusOK && res.StatusCode < http.StatusMultipleChoices:
		return Success
	}
	// 1xx and un-followed 3xx: not a success, and retrying unchanged
	// won't produce one
	return Permanent
}

func classifyFault(err error) Class {
	if reqErr, ok := resilient_errors.As(err); ok {
		// raised by the transport before dispatch
		if reqErr.Kind == resilient_errors.KIND_INVALID_REQUEST ||
			reqErr.Kind == resilient_errors.KIND_PERMANENT {
			return Permanent
		}
		return Transient
	}
	if errors.Is(err, context.Canceled) {
		// the caller gave up; the retry loop will see it at its
		// next checkpoint
		return Permanent
	}
	return Transient
}

// Table is an explicit status-code classification for transports with
// non-HTTP semantics. Every implementer defines its own transient and
// permanent code sets instead of assuming HTTP thresholds.
type Table struct {
	Success   []int
	Transient []int
	Permanent []int

	// Fault classifies transport-level errors.
	// default: Transient
	Fault Class

	// Default classifies status codes absent from all three lists.
	// default: Permanent
	Default Class
}

var _ Classifier = Table{}

func (t Table) Classify(res *types.Response, err error) Class {
	if err != nil {
		if t.Fault != Unknown {
			return t.Fault
		}
		return Transient
	}
	if res == nil {
		return Permanent
	}
	switch {
	case contains(t.Success, res.StatusCode):
		return Success
	case contains(t.Transient, res.StatusCode):
		return Transient
	case contains(t.Permanent, res.StatusCode):
		return Permanent
	}
	if t.Default != Unknown {
		return t.Default
	}
	return Permanent
}

func contains(codes []int, code int) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}
