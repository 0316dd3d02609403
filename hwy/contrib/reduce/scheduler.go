// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package reduce

import (
	"fmt"
	"math/rand/v2"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-reduce/hwy/contrib/workerpool"
)

// Scheduler runs the chunk tasks of a reduction.
//
// Execute must call fn exactly once for every task in [0, tasks) and return
// only after all calls have returned. Calls may run concurrently and in any
// order. Workers is the parallelism the engine should partition for.
// A task that panics is reported as a non-nil error, never as a panic on
// the caller.
type Scheduler interface {
	Workers() int
	Execute(tasks int, fn func(task int)) error
}

// Sequential returns a scheduler that runs every task on the calling
// goroutine in index order.
func Sequential() Scheduler {
	return sequential{}
}

type sequential struct{}

func (sequential) Workers() int { return 1 }

func (sequential) Execute(tasks int, fn func(task int)) error {
	return runTasks(tasks, func(i int) int { return i }, fn)
}

// runTasks calls fn(order(k)) for k in [0, n) on the calling goroutine and
// turns a panic into an error naming the task.
func runTasks(n int, order func(k int) int, fn func(task int)) (err error) {
	task := -1
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task %d panicked: %v", task, r)
		}
	}()
	for k := range n {
		task = order(k)
		fn(task)
	}
	return nil
}

// Goroutines returns a scheduler that spawns up to n goroutines per Execute
// call, each running a contiguous block of tasks. If n <= 0, uses NumCPU.
func Goroutines(n int) Scheduler {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	return goroutines{n: n}
}

type goroutines struct{ n int }

func (g goroutines) Workers() int { return g.n }

func (g goroutines) Execute(tasks int, fn func(task int)) error {
	numWorkers := min(g.n, tasks)
	if numWorkers <= 1 {
		return sequential{}.Execute(tasks, fn)
	}

	tasksPerWorker := (tasks + numWorkers - 1) / numWorkers

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	for w := range numWorkers {
		start := w * tasksPerWorker
		end := min(start+tasksPerWorker, tasks)
		if start >= end {
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := runTasks(end-start, func(k int) int { return start + k }, fn)
			if err != nil {
				errOnce.Do(func() { firstErr = err })
			}
		}()
	}
	wg.Wait()
	return firstErr
}

// Pool returns a scheduler backed by a persistent worker pool. The pool is
// borrowed, not owned: closing it is up to the caller. A closed pool keeps
// working sequentially.
func Pool(p *workerpool.Pool) Scheduler {
	return poolScheduler{p: p}
}

type poolScheduler struct{ p *workerpool.Pool }

func (s poolScheduler) Workers() int { return s.p.NumWorkers() }

func (s poolScheduler) Execute(tasks int, fn func(task int)) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pool task panicked: %v", r)
		}
	}()
	s.p.Each(tasks, fn)
	return nil
}

// Group returns a scheduler that runs each task in an errgroup goroutine,
// with at most limit running at once. A panicking task is reported as an
// error instead of crashing the process. If limit <= 0, uses GOMAXPROCS.
func Group(limit int) Scheduler {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	return group{limit: limit}
}

type group struct{ limit int }

func (g group) Workers() int { return g.limit }

func (g group) Execute(tasks int, fn func(task int)) error {
	var eg errgroup.Group
	eg.SetLimit(g.limit)
	for i := range tasks {
		eg.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("task %d panicked: %v", i, r)
				}
			}()
			fn(i)
			return nil
		})
	}
	return eg.Wait()
}

// Permuted returns a scheduler that runs tasks one at a time in a random
// order drawn from seed, while reporting workers for partitioning. It
// reproduces an arbitrary parallel completion order deterministically.
func Permuted(seed uint64, workers int) Scheduler {
	if workers <= 0 {
		workers = 1
	}
	return permuted{seed: seed, workers: workers}
}

type permuted struct {
	seed    uint64
	workers int
}

func (p permuted) Workers() int { return p.workers }

func (p permuted) Execute(tasks int, fn func(task int)) error {
	rng := rand.New(rand.NewPCG(p.seed, uint64(tasks)))
	perm := rng.Perm(tasks)
	return runTasks(tasks, func(k int) int { return perm[k] }, fn)
}

// SchedulerNames lists the names accepted by NewScheduler.
var SchedulerNames = []string{"sequential", "goroutines", "pool", "group", "permuted"}

// NewScheduler builds a scheduler by name. The pool scheduler needs a pool;
// it is created with the given worker count and returned so the caller can
// close it. For every other name the returned pool is nil.
func NewScheduler(name string, workers int, seed uint64) (Scheduler, *workerpool.Pool, error) {
	switch name {
	case "", "pool":
		p := workerpool.New(workers)
		return Pool(p), p, nil
	case "sequential":
		return Sequential(), nil, nil
	case "goroutines":
		return Goroutines(workers), nil, nil
	case "group":
		return Group(workers), nil, nil
	case "permuted":
		if workers <= 0 {
			workers = runtime.GOMAXPROCS(0)
		}
		return Permuted(seed, workers), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown scheduler %q (want one of %v)", name, SchedulerNames)
	}
}
