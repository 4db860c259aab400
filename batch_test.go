package resilient_go

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/1B05H1N/resilient-go/batch"
	"github.com/1B05H1N/resilient-go/logger"
	"github.com/1B05H1N/resilient-go/types"
)

func Test_newBatch(t *testing.T) {
	rt := &scriptedRoundTripper{statuses: []int{200}}
	c := NewClient("https://api.example.com", WithTransport(rt))
	b := NewBatch(c)
	assert.NotNil(t, b)
	assert.NotNil(t, b.Requests())

	b.Start()
	b.Requests().Add(batch.Message{
		Request: types.NewRequest(http.MethodGet, "ping", nil),
	})
	b.Stop()
}

func Test_newBatch_opts(t *testing.T) {
	rt := &scriptedRoundTripper{statuses: []int{200}}
	c := NewClient("https://api.example.com", WithTransport(rt))
	l := &logger.Noop{}
	resChan := make(chan batch.Response)
	b := NewBatch(c,
		WithBatchFlushQueueSize(101),
		WithBatchFlushInterval(102*time.Millisecond),
		WithBatchBufferSize(103),
		WithBatchSendAsync(true),
		WithBatchMaxAsyncRequests(104),
		WithBatchMaxConcurrent(105),
		WithBatchLogger(l),
		WithBatchResponseListener(resChan),
	)
	assert.NotNil(t, b)
	assert.EqualValues(t,
		batchConfig{
			flushQueueSize:   101,
			flushInterval:    102 * time.Millisecond,
			bufferSize:       103,
			sendAsync:        true,
			maxAsyncRequests: 104,
			maxConcurrent:    105,
			logger:           l,
			responseChan:     resChan,
		},
		b.config,
	)
}

func Test_Batch_EndToEnd(t *testing.T) {
	rt := &scriptedRoundTripper{statuses: []int{200, 200, 200}}
	c := NewClient("https://api.example.com", WithTransport(rt))

	resChan := make(chan batch.Response, 3)
	b := NewBatch(c,
		WithBatchFlushQueueSize(3),
		WithBatchFlushInterval(time.Minute),
		WithBatchSendAsync(false),
		WithBatchResponseListener(resChan),
	)

	b.Start()
	for _, path := range []string{"users/1", "users/2", "users/3"} {
		b.Requests().Add(batch.Message{
			Request:  types.NewRequest(http.MethodGet, path, nil),
			MetaData: path,
		})
	}
	b.Stop()

	close(resChan)
	var got []batch.Response
	for res := range resChan {
		got = append(got, res)
	}
	assert.Len(t, got, 3)
	for _, res := range got {
		assert.NoError(t, res.Error)
		assert.Equal(t, 200, res.Data.StatusCode)
	}
	assert.Equal(t, 3, rt.count())
}
