package hdrpix

import (
	"sync/atomic"
	"testing"
)

func TestTaskDispatchRunsEverything(t *testing.T) {
	td := NewTaskDispatch(4)
	defer td.Close()

	var n atomic.Int64
	for i := 0; i < 100; i++ {
		td.Queue(func() { n.Add(1) })
	}
	td.Sync()

	if got := n.Load(); got != 100 {
		t.Fatalf("ran %d of 100 tasks", got)
	}
}

func TestTaskDispatchMinimumWorkers(t *testing.T) {
	td := NewTaskDispatch(0)
	defer td.Close()
	if td.NumWorkers() != 1 {
		t.Fatalf("worker floor: %d", td.NumWorkers())
	}
}

func TestForEachChunkCoversRange(t *testing.T) {
	const pixels = dispatchChunk*3 + 123

	seen := make([]int32, pixels)
	td := NewTaskDispatch(4)
	defer td.Close()

	forEachChunk(pixels, td, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&seen[i], 1)
		}
	})

	for i, c := range seen {
		if c != 1 {
			t.Fatalf("pixel %d covered %d times", i, c)
		}
	}
}

func TestForEachChunkNilDispatcher(t *testing.T) {
	var calls int
	forEachChunk(1000, nil, func(start, end int) {
		calls++
		if start != 0 || end != 1000 {
			t.Fatalf("serial chunk [%d,%d)", start, end)
		}
	})
	if calls != 1 {
		t.Fatalf("serial path called %d times", calls)
	}
}

func TestSplitRowsPartition(t *testing.T) {
	td := NewTaskDispatch(3)
	defer td.Close()

	for _, total := range []int{1, 2, 7, 100} {
		seen := make([]int32, total)
		splitRows(total, td, func(start, end int) {
			for i := start; i < end; i++ {
				atomic.AddInt32(&seen[i], 1)
			}
		})
		for i, c := range seen {
			if c != 1 {
				t.Fatalf("total %d: row %d covered %d times", total, i, c)
			}
		}
	}
}
