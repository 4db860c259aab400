package classify

import (
	"context"
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"

	resilient_errors "github.com/1B05H1N/resilient-go/errors"
	"github.com/1B05H1N/resilient-go/types"
)

func Test_HTTP_Classify_status_codes(t *testing.T) {
	testCases := []struct {
		status int
		expect Class
	}{
		{200, Success},
		{201, Success},
		{204, Success},
		{301, Permanent},
		{400, Permanent},
		{401, Permanent},
		{404, Permanent},
		{429, Permanent},
		{499, Permanent},
		{500, Transient},
		{502, Transient},
		{503, Transient},
		{599, Transient},
		{100, Permanent},
	}

	c := NewHTTP()
	for _, tt := range testCases {
		t.Run(fmt.Sprintf("%d", tt.status), func(t *testing.T) {
			class := c.Classify(&types.Response{StatusCode: tt.status}, nil)
			assert.Equal(t, tt.expect, class)
		})
	}
}

func Test_HTTP_Classify_faults(t *testing.T) {
	testCases := []struct {
		name   string
		err    error
		expect Class
	}{
		{
			name:   "plain transport error",
			err:    fmt.Errorf("connection refused"),
			expect: Transient,
		},
		{
			name:   "dns failure",
			err:    &net.DNSError{Err: "no such host", Name: "api.example.com"},
			expect: Transient,
		},
		{
			name:   "deadline exceeded",
			err:    fmt.Errorf("request: %w", context.DeadlineExceeded),
			expect: Transient,
		},
		{
			name:   "caller cancelled",
			err:    fmt.Errorf("request: %w", context.Canceled),
			expect: Permanent,
		},
		{
			name: "invalid descriptor raised before dispatch",
			err: &resilient_errors.RequestError{
				Kind:  resilient_errors.KIND_INVALID_REQUEST,
				Stage: resilient_errors.STAGE_BEFORE_REQUEST,
			},
			expect: Permanent,
		},
		{
			name: "transient request error passes through",
			err: &resilient_errors.RequestError{
				Kind: resilient_errors.KIND_TRANSIENT,
			},
			expect: Transient,
		},
	}

	c := NewHTTP()
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, c.Classify(nil, tt.err))
		})
	}
}

func Test_Table_Classify(t *testing.T) {
	table := Table{
		Success:   []int{0},
		Transient: []int{14, 4}, // e.g. grpc UNAVAILABLE, DEADLINE_EXCEEDED
		Permanent: []int{3, 16},
	}

	assert.Equal(t, Success, table.Classify(&types.Response{StatusCode: 0}, nil))
	assert.Equal(t, Transient, table.Classify(&types.Response{StatusCode: 14}, nil))
	assert.Equal(t, Permanent, table.Classify(&types.Response{StatusCode: 3}, nil))

	// unlisted code falls back to Default
	assert.Equal(t, Permanent, table.Classify(&types.Response{StatusCode: 99}, nil))
	table.Default = Transient
	assert.Equal(t, Transient, table.Classify(&types.Response{StatusCode: 99}, nil))

	// transport faults
	assert.Equal(t, Transient, table.Classify(nil, fmt.Errorf("socket closed")))
	table.Fault = Permanent
	assert.Equal(t, Permanent, table.Classify(nil, fmt.Errorf("socket closed")))
}
