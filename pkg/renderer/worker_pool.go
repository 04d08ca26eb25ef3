package renderer

import (
	"fmt"
	"image"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// RowTask represents a row rendering task for the worker pool
type RowTask struct {
	Y      int // Row to render
	TaskID int // For deterministic ordering
}

// RowResult contains the result from rendering a row
type RowResult struct {
	TaskID int
	Y      int
	Rays   int     // Rays traced for this row
	Pixels []uint8 // Copy of the row's RGBA bytes
	Error  error
}

// WorkerPool manages parallel row rendering. Every row is a disjoint slice of
// the shared image, so workers write without locking.
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	workers     []*Worker
	numWorkers  int
	group       errgroup.Group
	rayCount    atomic.Int64
}

// Worker handles individual row rendering tasks
type Worker struct {
	ID          int
	raytracer   *Raytracer
	image       *image.RGBA
	taskQueue   chan RowTask
	resultQueue chan RowResult
	pool        *WorkerPool // Reference to parent pool for the shared ray counter
}

// NewWorkerPool creates a worker pool that renders rows of img with the given raytracer
func NewWorkerPool(raytracer *Raytracer, img *image.RGBA, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	// Buffer for every row so submission and completion never block
	maxTasks := img.Bounds().Dy()

	wp := &WorkerPool{
		taskQueue:   make(chan RowTask, maxTasks),
		resultQueue: make(chan RowResult, maxTasks),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:          i,
			raytracer:   raytracer,
			image:       img,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
			pool:        wp,
		}
		wp.workers = append(wp.workers, worker)
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.group.Go(worker.run)
	}
}

// Stop waits for queued tasks to drain and returns the first worker error
func (wp *WorkerPool) Stop() error {
	close(wp.taskQueue) // No more tasks
	err := wp.group.Wait()
	close(wp.resultQueue)
	return err
}

// SubmitTask submits a row task to the worker pool
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed row result
func (wp *WorkerPool) GetResult() (RowResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// TotalRays returns the number of rays traced by all workers so far
func (wp *WorkerPool) TotalRays() int64 {
	return wp.rayCount.Load()
}

// run is the main worker loop
func (w *Worker) run() error {
	var firstErr error
	bounds := w.image.Bounds()

	for task := range w.taskQueue {
		result := RowResult{TaskID: task.TaskID, Y: task.Y}

		if task.Y < bounds.Min.Y || task.Y >= bounds.Max.Y {
			result.Error = fmt.Errorf("worker %d: row %d outside image bounds %v", w.ID, task.Y, bounds)
			if firstErr == nil {
				firstErr = result.Error
			}
			w.resultQueue <- result
			continue
		}

		result.Rays = w.raytracer.RenderRow(w.image, task.Y, w.raytracer.rowRandom(task.Y))
		w.pool.rayCount.Add(int64(result.Rays))

		// The row is complete and owned by this worker, so copying it is safe
		start := w.image.PixOffset(bounds.Min.X, task.Y)
		result.Pixels = append([]uint8(nil), w.image.Pix[start:start+bounds.Dx()*4]...)

		w.resultQueue <- result
	}

	return firstErr
}
