package errors

import (
	"errors"
	"fmt"
)

const (
	STAGE_BEFORE_REQUEST = "before-request"
	STAGE_REQUEST        = "request"
	STAGE_AFTER_REQUEST  = "after-request"

	// KIND_INVALID_REQUEST marks a malformed descriptor that was rejected
	// before any dispatch. Never retried.
	KIND_INVALID_REQUEST = "invalid-request"

	// KIND_TRANSIENT marks a retryable fault: a 5xx response or a
	// transport-level failure. Callers normally only see it wrapped inside
	// KIND_EXHAUSTED; it escapes on its own when a custom retry strategy
	// stops early.
	KIND_TRANSIENT = "transient"

	// KIND_PERMANENT marks a fault that retrying unchanged will not fix:
	// a 4xx response, or a transport fault the classifier ruled out.
	KIND_PERMANENT = "permanent"

	// KIND_EXHAUSTED marks a request whose entire attempt budget was
	// consumed by transient faults. SourceErr holds the last one.
	KIND_EXHAUSTED = "exhausted"
)

type RequestError struct {
	Kind           string
	Stage          string
	SourceErr      error
	Body           []byte
	HttpStatusCode int

	// Attempts is the total number of dispatch attempts made before this
	// error was returned. Zero when nothing was dispatched.
	Attempts int
}

var _ error = &RequestError{}

func (e *RequestError) Error() string {
	var err string
	if e.SourceErr != nil {
		err = e.SourceErr.Error()
	} else {
		err = string(e.Body)
	}
	return fmt.Sprintf(
		"request failed during '%s' stage with kind '%s', httpStatus: '%d', attempts: %d; original err: %v",
		e.Stage, e.Kind, e.HttpStatusCode, e.Attempts, err,
	)
}

func (e *RequestError) Unwrap() error {
	return e.SourceErr
}

// Is method is required by errors.Is() to properly distinguish between
// different types -vs- same pointer to the same type.
// Without it, errors.Is(err, &resilient_errors.RequestError{}) returns false:
// ok := errors.Is(errors.Join(&resilient_errors.RequestError{}), &resilient_errors.RequestError{})
// ^ would be false
func (e *RequestError) Is(other error) bool {
	var err *RequestError
	return errors.As(other, &err) && err != nil
}

// As unwraps err into a *RequestError if one is anywhere in its chain.
func As(err error) (*RequestError, bool) {
	var reqErr *RequestError
	ok := errors.As(err, &reqErr)
	return reqErr, ok
}

// IsRetryable reports whether re-running the whole request with a fresh
// attempt budget could plausibly succeed. Exhausted counts: the budget
// was spent on transient faults only.
func IsRetryable(err error) bool {
	reqErr, ok := As(err)
	if !ok {
		return false
	}
	return reqErr.Kind == KIND_TRANSIENT || reqErr.Kind == KIND_EXHAUSTED
}
