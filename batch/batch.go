package batch

import (
	"context"

	"github.com/1B05H1N/resilient-go/types"
)

// Message wraps a request descriptor queued for batch execution, plus
// optional metadata for response correlation.
//
// Usage Example:
//
//	message := batch.Message{
//	    Request:  types.NewRequest(http.MethodPost, "users", userData),
//	    MetaData: "user-123",        // Optional tracking identifier
//	}
//	processor.Add(message)
type Message struct {
	// Request is the descriptor to execute. It goes through the same
	// validation, classification and attempt budget as a direct call.
	Request *types.Request

	// Ctx, when set, scopes this message's execution: cancelling it
	// abandons the message at the executor's next safe checkpoint.
	// default: context.Background
	Ctx context.Context

	// MetaData holds optional contextual information that
	// can be used for tracking, correlation, or response handling
	MetaData any
}

// Response represents the result of executing one queued message. It
// keeps a reference to the original message for correlation.
type Response struct {
	// Data contains the successful response
	// or nil if an error occurred
	Data *types.Response

	// OriginalReq holds a reference to the original Message that was processed
	OriginalReq Message

	// Error contains any error that occurred during processing
	// or nil if successful
	Error error

	// Retry indicates whether re-queueing this message with a fresh
	// attempt budget could plausibly succeed (the executor's budget for
	// it is already spent)
	Retry bool
}

// Handler executes accumulated messages. The built-in implementation
// runs each message through an exec.Executor; batching is a throughput
// device, every message stays one logical request with its own budget.
type Handler interface {
	// ProcessBatch executes all messages of one flushed batch and
	// returns one Response per message, in no particular order.
	ProcessBatch(batch []Message) []Response

	// ProcessOne executes a single message.
	ProcessOne(msg Message) Response
}
