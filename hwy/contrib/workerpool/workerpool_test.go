// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestEach(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)
	var calls atomic.Int32

	pool.Each(n, func(i int) {
		calls.Add(1)
		results[i] = i * 2
	})

	if calls.Load() != int32(n) {
		t.Errorf("calls = %d, want %d", calls.Load(), n)
	}
	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestEachSmallN(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	// Fewer indices than workers
	n := 3
	var count atomic.Int32

	pool.Each(n, func(i int) {
		count.Add(1)
	})

	if count.Load() != int32(n) {
		t.Errorf("count = %d, want %d", count.Load(), n)
	}
}

func TestEachZeroN(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var called bool
	pool.Each(0, func(i int) {
		called = true
	})

	if called {
		t.Error("Each with n=0 should not call fn")
	}
}

func TestEachReuse(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var total atomic.Int64
	for round := 0; round < 50; round++ {
		pool.Each(17, func(i int) {
			total.Add(int64(i))
		})
	}
	// 50 rounds of 0+1+...+16
	if total.Load() != 50*136 {
		t.Errorf("total = %d, want %d", total.Load(), 50*136)
	}
}

func TestEachPanic(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	defer func() {
		r := recover()
		if r != "boom" {
			t.Errorf("recovered %v, want boom", r)
		}
	}()

	pool.Each(100, func(i int) {
		if i == 42 {
			panic("boom")
		}
	})
	t.Error("Each should have re-raised the panic")
}

func TestCloseMultipleTimes(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close() // Should not panic
	if !pool.Closed() {
		t.Error("Closed() = false after Close")
	}
}

func TestClosedPoolFallback(t *testing.T) {
	pool := New(4)
	pool.Close()

	n := 100
	results := make([]int, n)

	// Should still work (sequential fallback)
	pool.Each(n, func(i int) {
		results[i] = i * 2
	})

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestCloseDuringEach(t *testing.T) {
	pool := New(4)

	const callers, n = 8, 1000
	var total atomic.Int64
	var wg sync.WaitGroup
	wg.Add(callers)
	for range callers {
		go func() {
			defer wg.Done()
			for range 20 {
				pool.Each(n, func(i int) { total.Add(1) })
			}
		}()
	}
	pool.Close()
	wg.Wait()

	if got, want := total.Load(), int64(callers*20*n); got != want {
		t.Errorf("total = %d, want %d", got, want)
	}
}

func BenchmarkEach(b *testing.B) {
	pool := New(0) // Use GOMAXPROCS
	defer pool.Close()

	n := 1000

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pool.Each(n, func(i int) {
			_ = i * i
		})
	}
}
