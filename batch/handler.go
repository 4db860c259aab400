package batch

import (
	"context"

	"golang.org/x/sync/errgroup"

	resilient_errors "github.com/1B05H1N/resilient-go/errors"
	"github.com/1B05H1N/resilient-go/exec"
	"github.com/1B05H1N/resilient-go/logger"
)

type executorHandler struct {
	executor      *exec.Executor
	maxConcurrent int
	logger        logger.Logger
}

var _ Handler = &executorHandler{}

// NewExecutorHandler returns a Handler that runs every queued message
// through the executor, up to maxConcurrent messages of one batch in
// flight at a time. Retry budgets live in the executor; the handler
// never re-runs a message on its own, so a message's attempt count
// stays bounded by the executor policy no matter how it was queued.
func NewExecutorHandler(
	executor *exec.Executor,
	maxConcurrent int,
	log logger.Logger,
) Handler {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	if log == nil {
		log = logger.Noop{}
	}
	return &executorHandler{
		executor:      executor,
		maxConcurrent: maxConcurrent,
		logger:        log,
	}
}

func (h *executorHandler) ProcessBatch(batch []Message) []Response {
	responses := make([]Response, len(batch))

	g := errgroup.Group{}
	g.SetLimit(h.maxConcurrent)
	for i, msg := range batch {
		i, msg := i, msg
		g.Go(func() error {
			responses[i] = h.ProcessOne(msg)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		h.logger.Errorf("batch.Handler: failed to wait for batch: %v", err)
	}

	return responses
}

func (h *executorHandler) ProcessOne(msg Message) Response {
	ctx := msg.Ctx
	if ctx == nil {
		ctx = context.Background()
	}

	res, err := h.executor.Execute(ctx, msg.Request)
	return Response{
		Data:        res,
		OriginalReq: msg,
		Error:       err,
		Retry:       resilient_errors.IsRetryable(err),
	}
}
