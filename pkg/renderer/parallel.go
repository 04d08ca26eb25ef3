package renderer

import (
	"fmt"
	"image"
	"time"
)

// RenderParallel renders every row across numWorkers goroutines (0 = CPU count)
// and blocks until the whole image is complete.
func (rt *Raytracer) RenderParallel(numWorkers int) (*image.RGBA, RenderStats, error) {
	img := image.NewRGBA(image.Rect(0, 0, rt.width, rt.height))
	startTime := time.Now()

	pool := NewWorkerPool(rt, img, numWorkers)

	rt.logger.Printf("Rendering %dx%d at %d samples per pixel (using %d workers)...\n",
		rt.width, rt.height, rt.config.SamplesPerPixel, pool.GetNumWorkers())

	pool.Start()
	for y := 0; y < rt.height; y++ {
		pool.SubmitTask(RowTask{Y: y, TaskID: y})
	}

	// Collect results and dispatch row callbacks in a single goroutine
	var renderErr error
	for i := 0; i < rt.height; i++ {
		result, ok := pool.GetResult()
		if !ok {
			renderErr = fmt.Errorf("worker pool closed unexpectedly")
			break
		}
		if result.Error != nil {
			renderErr = result.Error
			break
		}
		if rt.rowCallback != nil {
			rt.rowCallback(result)
		}
	}

	if err := pool.Stop(); err != nil && renderErr == nil {
		renderErr = err
	}
	if renderErr != nil {
		return nil, RenderStats{}, fmt.Errorf("render failed: %w", renderErr)
	}

	stats := rt.newRenderStats(pool.TotalRays(), time.Since(startTime))
	rt.logger.Printf("Render completed in %v\n", stats.Elapsed)
	return img, stats, nil
}
