package parallel

import (
	"context"
	"errors"
	"runtime"
	"sync/atomic"
	"testing"
	"time"
)

var bg = context.Background()

func TestWorkerPool_Create(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		want    int
	}{
		{"explicit", 4, 4},
		{"zero uses GOMAXPROCS", 0, runtime.GOMAXPROCS(0)},
		{"negative uses GOMAXPROCS", -5, runtime.GOMAXPROCS(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewWorkerPool(tt.workers)
			defer pool.Close()

			if pool.Workers() != tt.want {
				t.Errorf("Workers() = %d, want %d", pool.Workers(), tt.want)
			}
		})
	}
}

func TestWorkerPool_Execute(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var counter atomic.Int64
	jobs := make([]func(), 100)
	for i := range jobs {
		jobs[i] = func() { counter.Add(1) }
	}
	if err := pool.Execute(bg, jobs); err != nil {
		t.Fatalf("Execute() = %v", err)
	}

	if counter.Load() != 100 {
		t.Errorf("counter = %d, want 100", counter.Load())
	}
}

func TestWorkerPool_Execute_Empty(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	if err := pool.Execute(bg, nil); err != nil {
		t.Errorf("Execute(nil) = %v", err)
	}
	if err := pool.Execute(bg, []func(){}); err != nil {
		t.Errorf("Execute(empty) = %v", err)
	}
}

func TestWorkerPool_ExecuteCanceled(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ran atomic.Int64
	jobs := make([]func(), 20)
	for i := range jobs {
		jobs[i] = func() { ran.Add(1) }
	}

	err := pool.Execute(ctx, jobs)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Execute error = %v, want context.Canceled", err)
	}
	if ran.Load() != 0 {
		t.Errorf("%d jobs ran after cancellation, want 0", ran.Load())
	}
}

func TestWorkerPool_AfterClose(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()
	pool.Close()

	var ran atomic.Bool
	if err := pool.Execute(bg, []func(){func() { ran.Store(true) }}); err != nil {
		t.Errorf("Execute on closed pool = %v", err)
	}
	if ran.Load() {
		t.Error("job ran on a closed pool")
	}
}

func TestWorkerPool_WorkStealing(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	// Every slow job is dealt to worker 0's queue; the others can only
	// help by stealing.
	var slow, fast atomic.Int64
	jobs := make([]func(), 32)
	for i := range jobs {
		if i%4 == 0 {
			jobs[i] = func() {
				time.Sleep(10 * time.Millisecond)
				slow.Add(1)
			}
		} else {
			jobs[i] = func() { fast.Add(1) }
		}
	}

	start := time.Now()
	if err := pool.Execute(bg, jobs); err != nil {
		t.Fatal(err)
	}
	elapsed := time.Since(start)

	if slow.Load() != 8 || fast.Load() != 24 {
		t.Errorf("slow/fast = %d/%d, want 8/24", slow.Load(), fast.Load())
	}
	t.Logf("elapsed %v for 8 slow jobs of 10ms", elapsed)
}

func TestMap(t *testing.T) {
	pool := NewWorkerPool(3)
	defer pool.Close()

	in := []uint64{5, 1, 4, 1, 5, 9, 2, 6}
	out, err := Map(bg, pool, in, func(i int, v uint64) uint64 {
		return v * uint64(i)
	})
	if err != nil {
		t.Fatalf("Map error: %v", err)
	}
	for i, v := range in {
		if out[i] != v*uint64(i) {
			t.Errorf("out[%d] = %d, want %d", i, out[i], v*uint64(i))
		}
	}
}

func BenchmarkWorkerPool_Execute(b *testing.B) {
	pool := NewWorkerPool(0)
	defer pool.Close()

	jobs := make([]func(), 64)
	for i := range jobs {
		jobs[i] = func() {}
	}

	b.ResetTimer()
	for range b.N {
		_ = pool.Execute(bg, jobs)
	}
}
