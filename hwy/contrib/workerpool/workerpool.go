// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for the
// chunk folds of a reduction. A Pool is created once and reused across many
// reductions, so each reduction only pays for queueing its chunks.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	partials := make([]int64, len(chunks))
//	pool.Each(len(chunks), func(i int) {
//	    partials[i] = foldChunk(chunks[i])
//	})
//
// Work is handed out with an atomic counter, so chunks are claimed in index
// order but may finish in any order. Callers that need ordered results write
// into index-addressed slots, as above.
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool that can be reused across many parallel
// operations. Workers are spawned once at creation and reused.
//
// Close may be called while Each calls are in flight: calls that already
// queued their work finish on the workers, later calls run sequentially.
type Pool struct {
	numWorkers int
	workC      chan workItem

	// mu guards closed and the close of workC against in-flight sends.
	mu     sync.RWMutex
	closed bool
}

// workItem represents one worker's share of a single Each call.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work
		workC: make(chan workItem, numWorkers*2),
	}

	for range numWorkers {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. Work already queued completes.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.workC)
	}
}

// Closed reports whether Close has been called.
func (p *Pool) Closed() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.closed
}

// Each calls fn(i) exactly once for every i in [0, n) and blocks until all
// calls return. Indices are distributed by atomic work stealing, which
// balances chunks of uneven cost.
//
// A closed pool runs the calls sequentially on the caller's goroutine.
//
// If fn panics, workers stop claiming new indices and the first panic is
// re-raised on the caller's goroutine once every worker has stopped.
func (p *Pool) Each(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 {
		p.sequential(n, fn)
		return
	}

	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		p.sequential(n, fn)
		return
	}

	var (
		nextIdx   atomic.Int64
		stop      atomic.Bool
		panicOnce sync.Once
		panicVal  any
		wg        sync.WaitGroup
	)
	wg.Add(workers)

	for range workers {
		p.workC <- workItem{
			fn: func() {
				defer func() {
					if r := recover(); r != nil {
						panicOnce.Do(func() { panicVal = r })
						stop.Store(true)
					}
				}()
				for !stop.Load() {
					idx := int(nextIdx.Add(1)) - 1
					if idx >= n {
						return
					}
					fn(idx)
				}
			},
			barrier: &wg,
		}
	}
	p.mu.RUnlock()

	wg.Wait()

	if panicVal != nil {
		panic(panicVal)
	}
}

func (p *Pool) sequential(n int, fn func(i int)) {
	for i := range n {
		fn(i)
	}
}
