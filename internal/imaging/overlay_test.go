package imaging

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"
)

func TestBox_Rect(t *testing.T) {
	b := Box{X: 10.4, Y: 20.6, W: 30, H: 40}
	want := image.Rect(10, 21, 40, 61)
	if got := b.Rect(); got != want {
		t.Errorf("Rect: got %v, want %v", got, want)
	}
}

func TestBox_InBounds(t *testing.T) {
	bounds := image.Rect(0, 0, 100, 50)

	tests := []struct {
		name string
		box  Box
		want bool
	}{
		{"inside", Box{X: 10, Y: 10, W: 20, H: 20}, true},
		{"touching edge", Box{X: 0, Y: 0, W: 100, H: 50}, true},
		{"past right edge", Box{X: 90, Y: 10, W: 20, H: 10}, false},
		{"negative origin", Box{X: -1, Y: 0, W: 5, H: 5}, false},
		{"zero width", Box{X: 10, Y: 10, W: 0, H: 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.box.InBounds(bounds); got != tt.want {
				t.Errorf("InBounds: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTrackColor(t *testing.T) {
	a := TrackColor(1)
	if a != TrackColor(1) {
		t.Error("TrackColor is not stable for the same id")
	}
	if a.A != 255 {
		t.Errorf("alpha: got %d, want 255", a.A)
	}
	if a == TrackColor(2) {
		t.Error("neighbouring track ids share a colour")
	}
	// Negative ids still map to a valid colour.
	if TrackColor(-3).A != 255 {
		t.Error("negative track id produced transparent colour")
	}
}

func TestDrawBoxes(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{0, 0, 0, 255})
	box := Box{X: 20, Y: 30, W: 40, H: 50, TrackID: 7}

	out := DrawBoxes(img, []Box{box}, 2)

	if out.Bounds() != img.Bounds() {
		t.Fatalf("bounds: got %v, want %v", out.Bounds(), img.Bounds())
	}

	want := TrackColor(7)
	// Bottom edge, both lines of the 2px outline.
	for _, y := range []int{79, 78} {
		if got := out.RGBAAt(40, y); got != want {
			t.Errorf("outline at (40,%d): got %v, want %v", y, got, want)
		}
	}
	// Left edge.
	if got := out.RGBAAt(20, 60); got != want {
		t.Errorf("outline at (20,60): got %v, want %v", got, want)
	}
	// Interior untouched.
	if got := out.RGBAAt(40, 60); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("interior at (40,60): got %v, want black", got)
	}
	// Source image not modified.
	if got := img.RGBAAt(40, 79); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("source modified at (40,79): got %v", got)
	}
}

func TestDrawBoxes_ClipsOutsideFrame(t *testing.T) {
	img := createInMemoryImage(50, 50, color.RGBA{0, 0, 0, 255})
	boxes := []Box{
		{X: 40, Y: 40, W: 30, H: 30, TrackID: 1},
		{X: 200, Y: 200, W: 10, H: 10, TrackID: 2},
		{X: 5, Y: 5, W: 0, H: 0, TrackID: 3},
	}

	// Must not panic on boxes leaving or missing the frame.
	out := DrawBoxes(img, boxes, 0)

	if got := out.RGBAAt(45, 40); got != TrackColor(1) {
		t.Errorf("clipped box top edge at (45,40): got %v, want %v", got, TrackColor(1))
	}
}

func TestSaveOverlay(t *testing.T) {
	img := createInMemoryImage(20, 10, color.RGBA{10, 20, 30, 255})
	path := filepath.Join(t.TempDir(), "annotations.png")

	if err := SaveOverlay(img, path); err != nil {
		t.Fatalf("SaveOverlay failed: %v", err)
	}

	info, err := LoadFrameInfo(NewFrameCache(), path)
	if err != nil {
		t.Fatalf("failed to reload overlay: %v", err)
	}
	if info.Width != 20 || info.Height != 10 {
		t.Errorf("dimensions: got %dx%d, want 20x10", info.Width, info.Height)
	}
}

func TestSaveOverlay_BadExtension(t *testing.T) {
	img := createInMemoryImage(4, 4, color.White)
	if err := SaveOverlay(img, filepath.Join(t.TempDir(), "overlay.unknown")); err == nil {
		t.Error("SaveOverlay should fail for unsupported extension")
	}
}
