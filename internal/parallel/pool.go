// Package parallel runs independent render jobs on a fixed set of
// work-stealing goroutines.
package parallel

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a fixed set of goroutines that execute submitted jobs.
//
// Every worker owns a buffered queue. Jobs are dealt round-robin across the
// queues; a worker whose queue is empty steals from its neighbours, so one
// slow job (a large SVG, a share card) does not leave the others idle.
//
// WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers    int
	workQueues []chan func()
	done       chan struct{}
	wg         sync.WaitGroup
	running    atomic.Bool
}

// NewWorkerPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	queueSize := max(workers*4, 8)

	p := &WorkerPool{
		workers:    workers,
		workQueues: make([]chan func(), workers),
		done:       make(chan struct{}),
	}
	for i := range workers {
		p.workQueues[i] = make(chan func(), queueSize)
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

	own := p.workQueues[id]
	for {
		select {
		case <-p.done:
			p.drainQueue(own)
			return
		case job := <-own:
			run(job)
			continue
		default:
		}

		if job := p.steal(id); job != nil {
			job()
			continue
		}

		select {
		case <-p.done:
			p.drainQueue(own)
			return
		case job := <-own:
			run(job)
		}
	}
}

func run(job func()) {
	if job != nil {
		job()
	}
}

// drainQueue runs whatever is left in queue without blocking.
func (p *WorkerPool) drainQueue(queue chan func()) {
	for {
		select {
		case job := <-queue:
			run(job)
		default:
			return
		}
	}
}

// steal takes one job from any other worker's queue, or returns nil.
func (p *WorkerPool) steal(self int) func() {
	for i := range p.workers {
		if i == self {
			continue
		}
		select {
		case job := <-p.workQueues[i]:
			return job
		default:
		}
	}
	return nil
}

// Execute runs every job and waits for all of them to finish. Jobs that
// have not started when ctx is done are skipped; jobs already running are
// allowed to finish. It returns ctx.Err() if any job was skipped. On a
// closed pool it does nothing.
func (p *WorkerPool) Execute(ctx context.Context, jobs []func()) error {
	if len(jobs) == 0 || !p.running.Load() {
		return nil
	}

	var (
		pending sync.WaitGroup
		skipped atomic.Bool
	)
	pending.Add(len(jobs))

	for i, job := range jobs {
		wrapped := func() {
			defer pending.Done()
			if ctx.Err() != nil {
				skipped.Store(true)
				return
			}
			job()
		}

		select {
		case p.workQueues[i%p.workers] <- wrapped:
		case <-p.done:
			skipped.Store(true)
			pending.Done()
		case <-ctx.Done():
			skipped.Store(true)
			pending.Done()
		}
	}

	pending.Wait()
	if skipped.Load() {
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return nil
}

// Close stops accepting work, lets queued jobs finish and stops the
// workers. It is safe to call more than once.
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

// Map applies fn to every element of in on the pool and returns the
// results in input order. Each result slot is written by exactly one job.
func Map[T, R any](ctx context.Context, p *WorkerPool, in []T, fn func(i int, v T) R) ([]R, error) {
	out := make([]R, len(in))
	jobs := make([]func(), len(in))
	for i, v := range in {
		jobs[i] = func() { out[i] = fn(i, v) }
	}
	if err := p.Execute(ctx, jobs); err != nil {
		return out, err
	}
	return out, nil
}
