package shapemesh

import (
	"github.com/gogpu/shapemesh/internal/parallel"
)

// ErrBatchClosed is returned by Batch.Rebuild after Close.
var ErrBatchClosed = parallel.ErrClosed

// Batch rebuilds many meshes concurrently on a fixed set of workers. Every
// worker owns one Builder, so jobs never share scratch buffers.
//
// Each job must own the mesh it rebuilds exclusively; two jobs touching the
// same Mesh is a data race.
//
// Thread safety: Batch is safe for concurrent use.
type Batch struct {
	pool     *parallel.WorkerPool
	builders []*Builder
}

// NewBatch starts a batch with the given number of workers. If workers is
// 0 or negative, GOMAXPROCS is used. Call Close when done.
func NewBatch(workers int) *Batch {
	pool := parallel.NewWorkerPool(workers)
	builders := make([]*Builder, pool.Workers())
	for i := range builders {
		builders[i] = NewBuilder()
	}
	return &Batch{pool: pool, builders: builders}
}

// Rebuild runs every job with its worker's Builder and waits for all of
// them. Nil jobs are skipped.
func (b *Batch) Rebuild(jobs []func(*Builder)) error {
	wrapped := make([]parallel.Job, len(jobs))
	for i, job := range jobs {
		if job == nil {
			continue
		}
		wrapped[i] = func(worker int) {
			job(b.builders[worker])
		}
	}
	return b.pool.Run(wrapped)
}

// Workers returns the number of workers.
func (b *Batch) Workers() int {
	return b.pool.Workers()
}

// Close stops the workers after queued jobs finish. Close is safe to call
// multiple times.
func (b *Batch) Close() {
	b.pool.Close()
}
