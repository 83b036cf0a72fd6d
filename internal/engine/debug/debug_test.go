package debug

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestCaptureFromPixelsFlips(t *testing.T) {
	dir := t.TempDir()
	sc := NewScreenshotCapture(dir, "shot")
	sc.now = func() time.Time { return time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC) }

	// 1x2: bottom row red, top row blue (OpenGL order).
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}

	path, err := sc.CaptureFromPixels(pixels, 1, 2)
	if err != nil {
		t.Fatalf("CaptureFromPixels failed: %v", err)
	}
	if want := filepath.Join(dir, "shot_2024-03-01_12-30-00.png"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	r, _, b, _ := img.At(0, 0).RGBA()
	if b == 0 || r != 0 {
		t.Errorf("top pixel should be blue, got %v", img.At(0, 0))
	}
	r, _, b, _ = img.At(0, 1).RGBA()
	if r == 0 || b != 0 {
		t.Errorf("bottom pixel should be red, got %v", img.At(0, 1))
	}
}

func TestCaptureFromPixelsSizeMismatch(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "shot")
	_, err := sc.CaptureFromPixels(make([]byte, 7), 1, 2)
	if err == nil || !strings.Contains(err.Error(), "size mismatch") {
		t.Errorf("expected size mismatch error, got %v", err)
	}
}

func TestCaptureFromImageCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "shots")
	sc := NewScreenshotCapture(dir, "img")

	path, err := sc.CaptureFromImage(image.NewGray(image.Rect(0, 0, 2, 2)))
	if err != nil {
		t.Fatalf("CaptureFromImage failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("screenshot not written: %v", err)
	}
}

func TestHeightmapImage(t *testing.T) {
	// Height rises with x.
	img := HeightmapImage(func(x, z float64) float64 { return x }, 0, 0, 10, 10, 3, 2)

	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	for z := 0; z < 2; z++ {
		want := []uint8{0, 128, 255}
		for x := 0; x < 3; x++ {
			if got := img.GrayAt(x, z).Y; got != want[x] {
				t.Errorf("pixel (%d, %d) = %d, want %d", x, z, got, want[x])
			}
		}
	}
}

func TestHeightmapImageFlat(t *testing.T) {
	img := HeightmapImage(func(x, z float64) float64 { return 4 }, -1, -1, 1, 1, 4, 4)
	for i, v := range img.Pix {
		if v != 0 {
			t.Fatalf("pixel %d = %d, want 0 for flat terrain", i, v)
		}
	}
}

func TestHeightmapImageEmpty(t *testing.T) {
	img := HeightmapImage(func(x, z float64) float64 { return x }, 0, 0, 1, 1, 0, 0)
	if !img.Bounds().Empty() {
		t.Errorf("expected empty image, got %v", img.Bounds())
	}
}
