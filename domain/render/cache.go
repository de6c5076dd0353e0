// Package render produces the resampled bitmap for the visible part of the
// current image and reuses it while the view does not change.
package render

import (
	"image"
	"sync/atomic"

	"github.com/disintegration/imaging"

	"github.com/soocke/boxlabeler-go/domain/viewport"
)

// VisibleRect returns the region of an imageW x imageH image that the
// viewport shows under t, clamped to the image. The result is empty when the
// image lies entirely outside the viewport.
func VisibleRect(t viewport.Transform, imageW, imageH, viewW, viewH int) image.Rectangle {
	viewW, viewH = viewport.EffectiveSize(viewW, viewH)
	vx1, vy1 := t.CanvasToImage(0, 0)
	vx2, vy2 := t.CanvasToImage(float64(viewW), float64(viewH))

	x1 := max(0, int(vx1))
	y1 := max(0, int(vy1))
	x2 := min(imageW, int(vx2)+1)
	y2 := min(imageH, int(vy2)+1)
	if x2 <= x1 || y2 <= y1 {
		return image.Rectangle{}
	}
	return image.Rect(x1, y1, x2, y2)
}

// Key identifies a rendered bitmap. Offsets that keep the same visible rect
// at the same scale reuse the bitmap and only change its placement.
type Key struct {
	Scale float64
	Rect  image.Rectangle
}

// Frame is the output of a render: the resampled bitmap (nil when nothing
// is visible) and the canvas position of its top-left corner.
type Frame struct {
	Bitmap *image.NRGBA
	PlaceX float64
	PlaceY float64
	Key    Key
}

// Stats are cumulative cache counters.
type Stats struct {
	Hits   uint64
	Misses uint64
}

// Cache keeps the last rendered bitmap. The zero value is ready to use.
// Render and Invalidate must be called from one goroutine; Stats may be
// read from any.
type Cache struct {
	valid  bool
	key    Key
	bitmap *image.NRGBA

	hits   atomic.Uint64
	misses atomic.Uint64
}

// Render returns the frame for src under t in a viewW x viewH viewport.
func (c *Cache) Render(src image.Image, t viewport.Transform, viewW, viewH int) Frame {
	if src == nil {
		return Frame{}
	}
	b := src.Bounds()
	rect := VisibleRect(t, b.Dx(), b.Dy(), viewW, viewH)
	key := Key{Scale: t.Scale, Rect: rect}

	if c.valid && c.key == key {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
		c.key = key
		c.bitmap = resample(src, rect, t.Scale)
		c.valid = true
	}
	return Frame{
		Bitmap: c.bitmap,
		PlaceX: t.OffsetX + float64(rect.Min.X)*t.Scale,
		PlaceY: t.OffsetY + float64(rect.Min.Y)*t.Scale,
		Key:    key,
	}
}

// Invalidate drops the cached bitmap. Call it whenever the source image
// changes.
func (c *Cache) Invalidate() {
	c.valid = false
	c.key = Key{}
	c.bitmap = nil
}

// Stats returns the hit and miss counters.
func (c *Cache) Stats() Stats {
	return Stats{Hits: c.hits.Load(), Misses: c.misses.Load()}
}

// resample crops rect (in image pixel space) out of src and scales it with
// a Lanczos filter. Output sides are truncated and never below 1.
func resample(src image.Image, rect image.Rectangle, scale float64) *image.NRGBA {
	if rect.Empty() {
		return nil
	}
	b := src.Bounds()
	crop := imaging.Crop(src, rect.Add(b.Min))
	w := max(int(float64(rect.Dx())*scale), 1)
	h := max(int(float64(rect.Dy())*scale), 1)
	if w == rect.Dx() && h == rect.Dy() {
		return crop
	}
	return imaging.Resize(crop, w, h, imaging.Lanczos)
}
