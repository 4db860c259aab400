package types

import "net/http"

// Response is the opaque payload a completed exchange produced. Any
// status code is a Response; deciding what the status means is the
// classifier's job, not the transport's.
type Response struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
}
