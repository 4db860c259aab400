package resilient_go

import (
	"github.com/1B05H1N/resilient-go/batch"
)

// Batch accumulates request descriptors and hands them to the client's
// executor in flushes. Each message still gets its own retry budget;
// batching only changes when requests are dispatched, not how failures
// are handled.
type Batch struct {
	config    batchConfig
	client    *Client
	processor batch.Processor
}

func NewBatch(client *Client, opts ...BatchConfigOption) *Batch {
	bConfig := defaultBatchConfig()
	for _, o := range opts {
		o(&bConfig)
	}

	pConfig := batch.ProcessorConfig{
		FlushQueueSize:   bConfig.flushQueueSize,
		FlushInterval:    bConfig.flushInterval,
		MaxBufferSize:    bConfig.bufferSize,
		Async:            func() bool { return bConfig.sendAsync },
		MaxAsyncRequests: bConfig.maxAsyncRequests,
		Logger:           bConfig.logger,
	}

	return &Batch{
		config: bConfig,
		client: client,
		processor: batch.NewProcessor(
			batch.NewExecutorHandler(client.Executor(), bConfig.maxConcurrent, bConfig.logger),
			bConfig.responseChan,
			pConfig,
		),
	}
}

// Requests returns the processor that queues request descriptors.
func (b *Batch) Requests() batch.Processor {
	return b.processor
}

func (b *Batch) Start() {
	b.processor.Start()
}

func (b *Batch) Stop() {
	b.processor.Stop()
}
