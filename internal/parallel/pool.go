package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// job is one indexed work item queued on a worker.
type job struct {
	index int
	fn    func(worker, index int)
	wg    *sync.WaitGroup
}

// WorkerPool is a pool of goroutines for parallel tile rendering.
//
// The pool distributes work items across multiple workers, each with their own
// queue. Workers can steal work from other workers when their own queue is empty.
// This helps balance load when some tiles are much busier than others.
//
// Every work function receives the id of the worker executing it, in
// [0, Workers()). At most one work item runs per worker id at any time, so
// callers may keep per-worker state indexed by that id without locking.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	// workers is the number of worker goroutines.
	workers int

	// workQueues holds per-worker work queues.
	// Each worker primarily pulls from its own queue but can steal from others.
	workQueues []chan job

	// done signals workers to stop.
	done chan struct{}

	// wg waits for all workers to finish.
	wg sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool
}

// NewWorkerPool creates a new worker pool with the specified number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// The pool starts immediately and workers begin waiting for work.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := max(workers*4, 8)

	p := &WorkerPool{
		workers:    workers,
		workQueues: make([]chan job, workers),
		done:       make(chan struct{}),
	}
	for i := range workers {
		p.workQueues[i] = make(chan job, queueSize)
	}

	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}

	return p
}

// worker is the main loop for each worker goroutine.
func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	myQueue := p.workQueues[id]

	for {
		select {
		case <-p.done:
			p.drainQueue(id, myQueue)
			return

		case j := <-myQueue:
			p.run(id, j)

		default:
			if stolen, ok := p.steal(id); ok {
				p.run(id, stolen)
				continue
			}
			// No work available anywhere, block on own queue
			select {
			case <-p.done:
				p.drainQueue(id, myQueue)
				return
			case j := <-myQueue:
				p.run(id, j)
			}
		}
	}
}

// run executes one job on behalf of worker id.
func (p *WorkerPool) run(id int, j job) {
	defer j.wg.Done()
	j.fn(id, j.index)
}

// drainQueue executes all remaining work in a queue.
func (p *WorkerPool) drainQueue(id int, queue chan job) {
	for {
		select {
		case j := <-queue:
			p.run(id, j)
		default:
			return
		}
	}
}

// steal attempts to take work from another worker's queue.
func (p *WorkerPool) steal(myID int) (job, bool) {
	for i := range p.workers {
		if i == myID {
			continue
		}
		select {
		case j := <-p.workQueues[i]:
			return j, true
		default:
		}
	}
	return job{}, false
}

// ExecuteAll calls fn(worker, i) for every i in [0, n) across the workers
// and waits for all calls to complete. Completion of ExecuteAll
// happens-after every call, so results written by fn are visible to the
// caller without further synchronization.
// If the pool is closed, this is a no-op.
func (p *WorkerPool) ExecuteAll(n int, fn func(worker, index int)) {
	if n <= 0 || fn == nil || !p.running.Load() {
		return
	}

	var completion sync.WaitGroup
	completion.Add(n)

	for i := range n {
		j := job{index: i, fn: fn, wg: &completion}
		select {
		case p.workQueues[i%p.workers] <- j:
		case <-p.done:
			// Pool is closing, the item is dropped
			completion.Done()
		}
	}

	completion.Wait()
}

// Close gracefully shuts down the pool.
// It stops accepting new work, waits for all queued work to complete,
// and then stops all workers.
// Close is safe to call multiple times.
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

// IsRunning returns true if the pool is still accepting work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
