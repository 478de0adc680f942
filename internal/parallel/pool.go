// Package parallel runs row-band jobs of a frame on a fixed set of
// goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Band is the half-open row range [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// Rows returns the number of rows in b.
func (b Band) Rows() int { return b.Y1 - b.Y0 }

// Split divides rows [0, height) into at most n bands of nearly equal
// size, in order. It returns nil when height or n is not positive.
func Split(height, n int) []Band {
	if height <= 0 || n <= 0 {
		return nil
	}
	n = min(n, height)
	bands := make([]Band, n)
	y := 0
	for i := range n {
		rows := height / n
		if i < height%n {
			rows++
		}
		bands[i] = Band{Y0: y, Y1: y + rows}
		y += rows
	}
	return bands
}

type job struct {
	band Band
	fn   func(Band)
	wg   *sync.WaitGroup
}

func (j job) run() {
	defer j.wg.Done()
	j.fn(j.band)
}

// Pool is a fixed set of worker goroutines for band jobs.
//
// Each worker owns a queue and steals from the others when its own is
// empty, so a band that takes longer does not stall the rest.
//
// Pool is safe for concurrent use.
type Pool struct {
	workers int
	queues  []chan job
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool

	// mu keeps Close from stopping workers under an in-flight ForEachBand.
	mu sync.RWMutex
}

// NewPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	queueSize := max(workers*4, 8)

	p := &Pool{
		workers: workers,
		queues:  make([]chan job, workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan job, queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()
	own := p.queues[id]
	for {
		select {
		case <-p.done:
			p.drain(own)
			return
		case j := <-own:
			j.run()
		default:
			if j, ok := p.steal(id); ok {
				j.run()
				continue
			}
			select {
			case <-p.done:
				p.drain(own)
				return
			case j := <-own:
				j.run()
			}
		}
	}
}

func (p *Pool) drain(q chan job) {
	for {
		select {
		case j := <-q:
			j.run()
		default:
			return
		}
	}
}

func (p *Pool) steal(id int) (job, bool) {
	for i := range p.workers {
		if i == id {
			continue
		}
		select {
		case j := <-p.queues[i]:
			return j, true
		default:
		}
	}
	return job{}, false
}

// ForEachBand splits [0, height) into bands, calls fn once per band and
// waits for all calls to return. Bands are disjoint, so fn may write its
// rows without locking. A closed pool runs fn on the caller's goroutine.
func (p *Pool) ForEachBand(height int, fn func(Band)) {
	bands := Split(height, 2*p.workers)
	if len(bands) == 0 {
		return
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	if !p.running.Load() || len(bands) == 1 {
		for _, b := range bands {
			fn(b)
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(bands))
	for i, b := range bands {
		p.queues[i%p.workers] <- job{band: b, fn: fn, wg: &wg}
	}
	wg.Wait()
}

// Close waits for in-flight bands and stops the workers.
// Close is safe to call multiple times.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still dispatches to its workers.
func (p *Pool) IsRunning() bool {
	return p.running.Load()
}
