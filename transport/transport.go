package transport

import (
	"context"

	"github.com/1B05H1N/resilient-go/types"
)

// Transport is the collaborator that actually performs a call. The
// executor consumes exactly this capability and contains no I/O of its
// own; everything network-shaped lives behind this interface.
//
// Send returns an error only for transport-level faults (connection
// refused, timeout, DNS failure) or for a descriptor the transport
// cannot encode. A completed exchange is a *types.Response whatever its
// status code; interpreting the status is the caller's job.
//
// Implementations must be safe for concurrent use: one Transport is
// shared read-only across all invocations of an executor.
type Transport interface {
	Send(ctx context.Context, req *types.Request) (*types.Response, error)
}
