package resilient_go

import (
	"time"

	"github.com/1B05H1N/resilient-go/batch"
	"github.com/1B05H1N/resilient-go/logger"
)

type batchConfig struct {
	// flushQueueSize sets the maximum number of messages
	// to accumulate before triggering a batch flush
	// (maps to ProcessorConfig.FlushQueueSize)
	// default: 100
	flushQueueSize int

	// flushInterval specifies the maximum time to wait
	// before flushing a batch, even if flushQueueSize hasn't been reached
	// (maps to ProcessorConfig.FlushInterval)
	// default: 5 seconds
	flushInterval time.Duration

	// bufferSize determines the buffer size of the internal request channel
	// to prevent blocking on Add() calls
	// (maps to ProcessorConfig.MaxBufferSize)
	// default: 500
	bufferSize int

	// sendAsync determines whether batch processing
	// should run asynchronously or synchronously
	// (maps to ProcessorConfig.Async function)
	// default: true
	sendAsync bool

	// maxAsyncRequests limits the number of concurrently
	// processed batches in async mode
	// (maps to ProcessorConfig.MaxAsyncRequests)
	// default: 50
	maxAsyncRequests int

	// maxConcurrent limits how many requests within one batch
	// are executed at the same time
	// default: 10
	maxConcurrent int

	// logger provides logging functionality for debugging
	// and monitoring batch processing operations
	// (maps to ProcessorConfig.Logger)
	// default: logger.Noop
	logger logger.Logger

	// responseChan is an optional channel for receiving
	// batch processing responses and errors
	// (passed to the processor for response handling).
	// If nil - the caller won't get any responses
	// from the batch client.
	// default: nil
	responseChan chan<- batch.Response
}

func defaultBatchConfig() batchConfig {
	return batchConfig{
		flushQueueSize:   100,
		flushInterval:    5 * time.Second,
		bufferSize:       500,
		sendAsync:        true,
		maxAsyncRequests: 50,
		maxConcurrent:    10,
		logger:           logger.Noop{},
		responseChan:     nil,
	}
}

type BatchConfigOption func(c *batchConfig)

func WithBatchFlushQueueSize(size int) BatchConfigOption {
	return func(c *batchConfig) {
		c.flushQueueSize = size
	}
}

func WithBatchFlushInterval(interval time.Duration) BatchConfigOption {
	return func(c *batchConfig) {
		c.flushInterval = interval
	}
}

func WithBatchBufferSize(bufferSize int) BatchConfigOption {
	return func(c *batchConfig) {
		c.bufferSize = bufferSize
	}
}

func WithBatchSendAsync(sendAsync bool) BatchConfigOption {
	return func(c *batchConfig) {
		c.sendAsync = sendAsync
	}
}

func WithBatchMaxAsyncRequests(max int) BatchConfigOption {
	return func(c *batchConfig) {
		c.maxAsyncRequests = max
	}
}

func WithBatchMaxConcurrent(max int) BatchConfigOption {
	return func(c *batchConfig) {
		c.maxConcurrent = max
	}
}

func WithBatchLogger(logger logger.Logger) BatchConfigOption {
	return func(c *batchConfig) {
		c.logger = logger
	}
}

func WithBatchResponseListener(res chan batch.Response) BatchConfigOption {
	return func(c *batchConfig) {
		c.responseChan = res
	}
}
