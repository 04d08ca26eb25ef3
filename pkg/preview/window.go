// Package preview shows a render in a desktop window while rows complete.
package preview

import (
	"image"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// Window is an ebiten game that displays a frame buffer filled row by row
type Window struct {
	mu     sync.Mutex
	frame  *image.RGBA
	dirty  bool
	screen *ebiten.Image
	done   bool
}

// NewWindow creates a preview window for an image of the given size
func NewWindow(width, height int) *Window {
	return &Window{
		frame: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// SetRow copies one finished row of RGBA pixels into the frame buffer.
// Safe to call from any goroutine.
func (w *Window) SetRow(y int, pixels []uint8) {
	w.mu.Lock()
	defer w.mu.Unlock()

	bounds := w.frame.Bounds()
	if y < bounds.Min.Y || y >= bounds.Max.Y {
		return
	}
	offset := w.frame.PixOffset(bounds.Min.X, y)
	copy(w.frame.Pix[offset:offset+w.frame.Stride], pixels)
	w.dirty = true
}

// MarkDone records that the render finished
func (w *Window) MarkDone() {
	w.mu.Lock()
	w.done = true
	w.mu.Unlock()
}

// Done reports whether the render finished
func (w *Window) Done() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.done
}

// Snapshot returns a copy of the current frame buffer
func (w *Window) Snapshot() *image.RGBA {
	w.mu.Lock()
	defer w.mu.Unlock()

	img := image.NewRGBA(w.frame.Bounds())
	copy(img.Pix, w.frame.Pix)
	return img
}

// Update implements ebiten.Game
func (w *Window) Update() error {
	return nil
}

// Draw implements ebiten.Game
func (w *Window) Draw(screen *ebiten.Image) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.screen == nil {
		bounds := w.frame.Bounds()
		w.screen = ebiten.NewImage(bounds.Dx(), bounds.Dy())
		w.dirty = true
	}
	if w.dirty {
		w.screen.WritePixels(w.frame.Pix)
		w.dirty = false
	}
	screen.DrawImage(w.screen, nil)
}

// Layout implements ebiten.Game
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	bounds := w.frame.Bounds()
	return bounds.Dx(), bounds.Dy()
}

// Run opens the window and blocks until it is closed.
// Must be called from the main goroutine.
func (w *Window) Run(title string) error {
	bounds := w.frame.Bounds()
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(bounds.Dx(), bounds.Dy())
	return ebiten.RunGame(w)
}
