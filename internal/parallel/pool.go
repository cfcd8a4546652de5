// Package parallel runs mesh rebuild jobs on a fixed set of goroutines.
package parallel

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
)

// ErrClosed is returned by Run after Close.
var ErrClosed = errors.New("parallel: pool is closed")

// Job is one unit of work. worker is the index of the goroutine running it,
// in [0, Workers()), so jobs can pick per-worker scratch state without
// locking.
type Job func(worker int)

// WorkerPool distributes jobs over per-worker queues. Idle workers steal
// from the other queues, which keeps the load balanced when some shapes are
// much more expensive to rebuild than others.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int
	queues  []chan Job
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewWorkerPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := workers * 4
	if queueSize < 8 {
		queueSize = 8
	}

	p := &WorkerPool{
		workers: workers,
		queues:  make([]chan Job, workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan Job, queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	own := p.queues[id]
	for {
		select {
		case <-p.done:
			p.drain(id)
			return
		case job := <-own:
			job(id)
		default:
			if job := p.steal(id); job != nil {
				job(id)
				continue
			}
			select {
			case <-p.done:
				p.drain(id)
				return
			case job := <-own:
				job(id)
			}
		}
	}
}

func (p *WorkerPool) drain(id int) {
	for {
		select {
		case job := <-p.queues[id]:
			job(id)
		default:
			return
		}
	}
}

func (p *WorkerPool) steal(id int) Job {
	for i := range p.workers {
		if i == id {
			continue
		}
		select {
		case job := <-p.queues[i]:
			return job
		default:
		}
	}
	return nil
}

// Run distributes jobs round-robin and waits until all of them finished.
// Nil jobs are skipped.
func (p *WorkerPool) Run(jobs []Job) error {
	if !p.running.Load() {
		return ErrClosed
	}

	var pending sync.WaitGroup
	for i, job := range jobs {
		if job == nil {
			continue
		}
		pending.Add(1)
		wrapped := func(worker int) {
			defer pending.Done()
			job(worker)
		}
		select {
		case p.queues[i%p.workers] <- wrapped:
		case <-p.done:
			pending.Done()
		}
	}
	pending.Wait()
	return nil
}

// Close stops accepting work, lets queued jobs finish and stops the
// workers. Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still accepts work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
