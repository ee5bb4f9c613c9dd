package hdrpix

import "sync"

// Dispatcher is the work-distribution collaborator used to spread chunked
// operations (resize, colorspace conversion, tone mapping) across worker
// threads. Queue enqueues one independent unit of work, NumWorkers reports
// the available parallelism, and Sync blocks until every queued unit has
// completed. The pipeline never queues a second batch before the first has
// been synced, and a nil Dispatcher means the operation runs synchronously
// on the calling goroutine with identical results.
type Dispatcher interface {
	Queue(task func())
	NumWorkers() int
	Sync()
}

// TaskDispatch is a fixed-size worker pool satisfying Dispatcher. It is the
// concrete pool the command-line tool uses; library callers may supply any
// other implementation, or none.
type TaskDispatch struct {
	tasks   chan func()
	wg      sync.WaitGroup
	workers int
}

// NewTaskDispatch starts a pool with the given number of worker goroutines,
// at least one.
func NewTaskDispatch(workers int) *TaskDispatch {
	if workers < 1 {
		workers = 1
	}
	td := &TaskDispatch{
		tasks:   make(chan func(), workers*4),
		workers: workers,
	}
	for i := 0; i < workers; i++ {
		go func() {
			for task := range td.tasks {
				task()
				td.wg.Done()
			}
		}()
	}
	return td
}

// Queue enqueues one unit of work. It may block while all workers are busy
// and the queue is full.
func (td *TaskDispatch) Queue(task func()) {
	td.wg.Add(1)
	td.tasks <- task
}

// NumWorkers reports the pool size.
func (td *TaskDispatch) NumWorkers() int { return td.workers }

// Sync blocks until all queued tasks have finished.
func (td *TaskDispatch) Sync() { td.wg.Wait() }

// Close stops the workers. Pending tasks are drained first; Queue must not
// be called after Close.
func (td *TaskDispatch) Close() { close(td.tasks) }

// dispatchChunk is the pixel count of one unit of work for per-pixel
// operations, matching the chunking of the colorspace and tone mapping
// paths.
const dispatchChunk = 16 * 1024

// forEachChunk runs fn over [0,pixels) pixel index ranges. With a dispatcher
// the range is split into dispatchChunk units joined before returning;
// without one fn runs once over the whole range on the calling goroutine.
func forEachChunk(pixels int, td Dispatcher, fn func(start, end int)) {
	if td == nil {
		fn(0, pixels)
		return
	}
	for start := 0; start < pixels; start += dispatchChunk {
		end := min(start+dispatchChunk, pixels)
		s, e := start, end
		td.Queue(func() { fn(s, e) })
	}
	td.Sync()
}

// splitRows runs fn over [0,total) row ranges. With a dispatcher the rows
// are partitioned into NumWorkers()+1 contiguous splits queued as
// independent units and joined before returning.
func splitRows(total int, td Dispatcher, fn func(start, end int)) {
	if total <= 0 {
		return
	}
	if td == nil {
		fn(0, total)
		return
	}
	parts := td.NumWorkers() + 1
	if parts > total {
		parts = total
	}
	step := (total + parts - 1) / parts
	for start := 0; start < total; start += step {
		s, e := start, min(start+step, total)
		td.Queue(func() { fn(s, e) })
	}
	td.Sync()
}
