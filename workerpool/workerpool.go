// Copyright 2025 The go-sortbench Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for running
// independent benchmark jobs side by side. A Pool is created once per run and
// reused for every trial, so per-trial goroutine spawning does not show up
// in the measurements.
//
// Usage:
//
//	pool := workerpool.New(len(algorithms))
//	defer pool.Close()
//
//	for trial := range trials {
//	    err := pool.ForEach(len(algorithms), func(i int) error {
//	        return runOne(trial, algorithms[i])
//	    })
//	}
package workerpool

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
)

// ErrClosed is returned by ForEach after Close.
var ErrClosed = errors.New("workerpool: pool is closed")

// Pool is a persistent worker pool. Workers are spawned once at creation and
// live until Close.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
	// mu keeps Close from racing a ForEach that is still submitting.
	mu sync.RWMutex
}

type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers workers. If numWorkers <= 0, uses
// GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers),
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

// Close shuts down the pool after pending work completes. Calling Close
// multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.closed.Store(true)
		close(p.workC)
	})
}

// ForEach calls fn for every index in [0, n), spreading indices over the
// workers with atomic work stealing. Each index runs exactly once and on a
// single goroutine. ForEach blocks until all calls return and reports the
// error of the lowest index that failed; a failure does not stop the other
// indices.
func (p *Pool) ForEach(n int, fn func(i int) error) error {
	if n <= 0 {
		return nil
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed.Load() {
		return ErrClosed
	}

	errs := make([]error, n)
	workers := min(p.numWorkers, n)

	var next atomic.Int32
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.workC <- workItem{
			fn: func() {
				for {
					i := int(next.Add(1)) - 1
					if i >= n {
						return
					}
					errs[i] = fn(i)
				}
			},
			barrier: &wg,
		}
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
