package rate

import "net/http"

// Limiter throttles outgoing requests before the transport dispatches
// them, so a client stays inside a remote API's rate limits instead of
// burning its retry budget on 429s and 503s.
//
// Implementations can use different strategies:
//   - Token bucket algorithm
//   - Fixed window counting
//   - Sliding window counting
//   - Leaky bucket algorithm
//
// The Limit method is called once per dispatch attempt, before the
// request goes out. Retries of the same logical request pass through the
// limiter again; a retry has no priority over fresh requests.
type Limiter interface {
	// Limit applies rate limiting to the given request. This method
	// should block if necessary to maintain the desired request rate.
	// The implementation can use the request information (method, path,
	// context) to apply different rate limits for different endpoints.
	Limit(req *http.Request)
}
