package exec

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/1B05H1N/resilient-go/classify"
	resilient_errors "github.com/1B05H1N/resilient-go/errors"
	"github.com/1B05H1N/resilient-go/logger"
	"github.com/1B05H1N/resilient-go/retry"
	"github.com/1B05H1N/resilient-go/transport"
	"github.com/1B05H1N/resilient-go/types"
)

// Executor issues a request against a transport, classifies failures,
// and retries transient ones up to a fixed attempt budget with a fixed
// inter-attempt delay.
//
// An Executor holds no mutable state across invocations: every Execute
// call owns its own attempt counter and outcome, so one instance is safe
// for concurrent use without cross-call synchronization.
type Executor struct {
	transport  transport.Transport
	policy     Policy
	classifier classify.Classifier
	retry      retry.Retry
	logger     logger.Logger
	observer   Observer
}

func NewExecutor(t transport.Transport, opts ...ConfigOption) *Executor {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	r := cfg.retry
	if r == nil {
		r = retry.NewFixed(
			retry.WithDelay(cfg.policy.Delay),
			retry.WithLogger(cfg.logger),
		)
	}

	return &Executor{
		transport:  t,
		policy:     cfg.policy,
		classifier: cfg.classifier,
		retry:      r,
		logger:     cfg.logger,
		observer:   cfg.observer,
	}
}

func (e *Executor) Policy() Policy {
	return e.policy
}

// Execute runs one logical request through the attempt loop:
//
//	Idle -> Attempting -> {Succeeded, Exhausted, Rejected}
//
// A descriptor that fails validation is Rejected before anything is
// dispatched. A Permanent classification ends the loop immediately
// without consuming the remaining budget. Transient classifications
// retry after the policy delay while attempts remain; when the budget
// runs out, the returned error has kind KIND_EXHAUSTED and wraps the
// last observed fault.
//
// Cancellation is honored at the next safe checkpoint only (start of an
// attempt or during the delay), never mid-attempt; a cancelled Execute
// returns the context's error, so callers can errors.Is against
// context.Canceled.
func (e *Executor) Execute(
	ctx context.Context,
	req *types.Request,
) (*types.Response, error) {
	if valErr := req.Validate(); valErr != nil {
		e.logger.Debugf("exec.Executor: rejected request: %v", valErr)
		return nil, valErr
	}

	id := req.Id
	if id == "" {
		id = uuid.NewString()
	}

	var res *types.Response
	var lastErr *resilient_errors.RequestError
	attempts := 0

	doErr := e.retry.Do(
		ctx,
		e.policy.MaxAttempts,
		req.Method+" "+req.Endpoint,
		func(attempt int) (error, retry.ExitStrategy) {
			attempts++
			start := time.Now()

			r, sendErr := e.transport.Send(ctx, req)
			class := e.classifier.Classify(r, sendErr)

			e.observer.ObserveAttempt(AttemptEvent{
				RequestId:   id,
				Method:      req.Method,
				Endpoint:    req.Endpoint,
				Attempt:     attempts,
				MaxAttempts: e.policy.MaxAttempts,
				Class:       class,
				StatusCode:  statusOf(r),
				Err:         sendErr,
				Elapsed:     time.Since(start),
			})

			switch class {
			case classify.Success:
				res = r
				return nil, retry.StopNow
			case classify.Permanent:
				lastErr = toRequestError(resilient_errors.KIND_PERMANENT, r, sendErr)
				return lastErr, retry.StopNow
			default:
				lastErr = toRequestError(resilient_errors.KIND_TRANSIENT, r, sendErr)
				return lastErr, retry.Continue
			}
		},
	)

	if doErr == nil {
		return res, nil
	}

	var reqErr *resilient_errors.RequestError
	if errors.As(doErr, &reqErr) && reqErr == lastErr {
		if reqErr.Kind == resilient_errors.KIND_TRANSIENT {
			// budget consumed; the caller decides whether this is fatal
			return nil, &resilient_errors.RequestError{
				Kind:           resilient_errors.KIND_EXHAUSTED,
				Stage:          reqErr.Stage,
				SourceErr:      reqErr,
				Body:           reqErr.Body,
				HttpStatusCode: reqErr.HttpStatusCode,
				Attempts:       attempts,
			}
		}
		reqErr.Attempts = attempts
		return nil, reqErr
	}

	// cancelled at a checkpoint; no further dispatch happened
	return nil, doErr
}

func statusOf(res *types.Response) int {
	if res == nil {
		return 0
	}
	return res.StatusCode
}

// toRequestError shapes an attempt failure into the error taxonomy. A
// *RequestError raised by the transport itself (e.g. an unserializable
// payload) already carries its stage and kind and passes through.
func toRequestError(
	kind string,
	res *types.Response,
	err error,
) *resilient_errors.RequestError {
	var reqErr *resilient_errors.RequestError
	if errors.As(err, &reqErr) {
		return reqErr
	}
	if err != nil {
		return &resilient_errors.RequestError{
			Kind:      kind,
			Stage:     resilient_errors.STAGE_REQUEST,
			SourceErr: err,
		}
	}
	return &resilient_errors.RequestError{
		Kind:           kind,
		Stage:          resilient_errors.STAGE_AFTER_REQUEST,
		Body:           res.Body,
		HttpStatusCode: res.StatusCode,
	}
}
