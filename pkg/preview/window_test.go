package preview

import (
	"testing"
)

func TestWindow_SetRow(t *testing.T) {
	w := NewWindow(4, 3)

	row := make([]uint8, 4*4)
	for i := range row {
		row[i] = uint8(i + 1)
	}
	w.SetRow(1, row)

	snap := w.Snapshot()
	for x := 0; x < 4; x++ {
		c := snap.RGBAAt(x, 1)
		if c.R != uint8(x*4+1) || c.A != uint8(x*4+4) {
			t.Errorf("Pixel (%d,1) = %v, expected values from row data", x, c)
		}
		if got := snap.RGBAAt(x, 0); got.R != 0 || got.A != 0 {
			t.Errorf("Row 0 should be untouched, got %v", got)
		}
	}
}

func TestWindow_SetRowOutOfBounds(t *testing.T) {
	w := NewWindow(2, 2)
	w.SetRow(-1, make([]uint8, 8))
	w.SetRow(2, make([]uint8, 8))

	if w.Snapshot().Bounds().Dy() != 2 {
		t.Error("Frame size should not change")
	}
}

func TestWindow_SnapshotIsCopy(t *testing.T) {
	w := NewWindow(1, 1)
	snap := w.Snapshot()
	snap.Pix[0] = 200

	if w.Snapshot().Pix[0] != 0 {
		t.Error("Snapshot should not alias the frame buffer")
	}
}

func TestWindow_Layout(t *testing.T) {
	w := NewWindow(40, 20)
	width, height := w.Layout(800, 600)
	if width != 40 || height != 20 {
		t.Errorf("Layout = %dx%d, expected 40x20", width, height)
	}
	if w.Done() {
		t.Error("New window should not be done")
	}
	w.MarkDone()
	if !w.Done() {
		t.Error("MarkDone should be visible through Done")
	}
}
