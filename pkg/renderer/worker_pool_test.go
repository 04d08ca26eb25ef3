package renderer

import (
	"image"
	"testing"
)

func TestWorkerPool_DefaultsToCPUCount(t *testing.T) {
	scene := newSmallScene(1)
	rt := newTestRaytracer(scene, 4, 4)
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))

	pool := NewWorkerPool(rt, img, 0)
	if pool.GetNumWorkers() <= 0 {
		t.Errorf("Expected positive worker count, got %d", pool.GetNumWorkers())
	}
}

func TestWorkerPool_RowOutOfBounds(t *testing.T) {
	scene := newSmallScene(1)
	rt := newTestRaytracer(scene, 4, 4)
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))

	pool := NewWorkerPool(rt, img, 2)
	pool.Start()
	pool.SubmitTask(RowTask{Y: 7, TaskID: 0})
	pool.SubmitTask(RowTask{Y: 1, TaskID: 1})

	errors := 0
	for i := 0; i < 2; i++ {
		result, ok := pool.GetResult()
		if !ok {
			t.Fatal("Result queue closed early")
		}
		if result.Error != nil {
			errors++
			if result.Y != 7 {
				t.Errorf("Error reported for wrong row %d", result.Y)
			}
		} else if result.Rays <= 0 {
			t.Errorf("Expected rays traced for row %d", result.Y)
		}
	}

	if errors != 1 {
		t.Errorf("Expected exactly one failed row, got %d", errors)
	}
	if err := pool.Stop(); err == nil {
		t.Error("Expected Stop to report the worker error")
	}
}
