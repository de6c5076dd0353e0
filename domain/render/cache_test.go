package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/soocke/boxlabeler-go/domain/viewport"
)

func solid(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 200, G: 40, B: 40, A: 255})
		}
	}
	return img
}

func TestVisibleRect_FullImageWhenFitted(t *testing.T) {
	tr := viewport.Fit(400, 300, 800, 600)
	r := VisibleRect(tr, 400, 300, 800, 600)
	if r != image.Rect(0, 0, 400, 300) {
		t.Fatalf("expected full image rect, got %v", r)
	}
}

func TestVisibleRect_ClampsPartialView(t *testing.T) {
	// scale 2, image shifted so canvas (0,0) maps to image (50,25)
	tr := viewport.Transform{Scale: 2, ZoomIndex: 14, OffsetX: -100, OffsetY: -50}
	r := VisibleRect(tr, 400, 300, 200, 100)
	// right edge: (200+100)/2 = 150 -> 151; bottom: (100+50)/2 = 75 -> 76
	if r != image.Rect(50, 25, 151, 76) {
		t.Fatalf("unexpected rect %v", r)
	}
}

func TestVisibleRect_EmptyWhenOffscreen(t *testing.T) {
	tr := viewport.Transform{Scale: 1, ZoomIndex: 11, OffsetX: 5000, OffsetY: 0}
	if r := VisibleRect(tr, 100, 100, 800, 600); !r.Empty() {
		t.Fatalf("expected empty rect, got %v", r)
	}
}

func TestCache_ReusesBitmapForSameKey(t *testing.T) {
	src := solid(100, 80)
	tr := viewport.Fit(100, 80, 800, 600)
	var c Cache

	f1 := c.Render(src, tr, 800, 600)
	f2 := c.Render(src, tr.Pan(3, -2), 800, 600)
	if f1.Bitmap == nil || f1.Bitmap != f2.Bitmap {
		t.Fatalf("expected the same cached bitmap on pan within full view")
	}
	if f2.PlaceX != f1.PlaceX+3 || f2.PlaceY != f1.PlaceY-2 {
		t.Fatalf("placement did not follow pan: %v,%v", f2.PlaceX, f2.PlaceY)
	}
	st := c.Stats()
	if st.Hits != 1 || st.Misses != 1 {
		t.Fatalf("expected 1 hit / 1 miss, got %+v", st)
	}
}

func TestCache_ResamplesOnScaleChange(t *testing.T) {
	src := solid(100, 80)
	tr := viewport.Fit(100, 80, 800, 600)
	var c Cache
	c.Render(src, tr, 800, 600)

	zoomed, ok := tr.ZoomStep(400, 300, 1)
	if !ok {
		t.Fatalf("zoom step should succeed")
	}
	f := c.Render(src, zoomed, 800, 600)
	wantW := max(int(float64(f.Key.Rect.Dx())*zoomed.Scale), 1)
	wantH := max(int(float64(f.Key.Rect.Dy())*zoomed.Scale), 1)
	if f.Bitmap.Bounds().Dx() != wantW || f.Bitmap.Bounds().Dy() != wantH {
		t.Fatalf("expected %dx%d bitmap, got %v", wantW, wantH, f.Bitmap.Bounds())
	}
	if c.Stats().Misses != 2 {
		t.Fatalf("expected a second miss after zoom")
	}
}

func TestCache_InvalidateForcesRender(t *testing.T) {
	src := solid(50, 50)
	tr := viewport.Fit(50, 50, 800, 600)
	var c Cache
	c.Render(src, tr, 800, 600)
	c.Invalidate()
	c.Render(src, tr, 800, 600)
	if st := c.Stats(); st.Misses != 2 || st.Hits != 0 {
		t.Fatalf("expected two misses after invalidate, got %+v", st)
	}
}

func TestCache_NilBitmapWhenNothingVisible(t *testing.T) {
	src := solid(50, 50)
	tr := viewport.Transform{Scale: 1, ZoomIndex: 11, OffsetX: -5000, OffsetY: 0}
	var c Cache
	if f := c.Render(src, tr, 800, 600); f.Bitmap != nil {
		t.Fatalf("expected nil bitmap for off-screen image")
	}
}
