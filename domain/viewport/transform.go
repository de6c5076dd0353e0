package viewport

import "math"

// ZoomLevels is the fixed ascending table of allowed scale factors.
// Zoom always snaps to one of these values.
var ZoomLevels = [...]float64{
	0.05, 0.075, 0.1, 0.15, 0.2, 0.25, 0.33, 0.5, 0.67,
	0.75, 0.85, 1.0, 1.25, 1.5, 2.0, 3.0, 4.0, 5.0, 7.0, 10.0,
}

// Fallback viewport used when the display has not been laid out yet.
const (
	FallbackWidth  = 1200
	FallbackHeight = 750
	minViewport    = 10
)

// Transform maps image pixel space to canvas space, independently per axis:
//
//	canvas = image*Scale + Offset
//	image  = (canvas - Offset) / Scale
//
// The zero value is not valid; obtain one from Fit. Scale always equals
// ZoomLevels[ZoomIndex]. Offsets are unconstrained.
type Transform struct {
	Scale     float64
	OffsetX   float64
	OffsetY   float64
	ZoomIndex int
}

// CanvasToImage converts canvas coordinates to image coordinates.
func (t Transform) CanvasToImage(cx, cy float64) (float64, float64) {
	return (cx - t.OffsetX) / t.Scale, (cy - t.OffsetY) / t.Scale
}

// ImageToCanvas converts image coordinates to canvas coordinates.
func (t Transform) ImageToCanvas(ix, iy float64) (float64, float64) {
	return ix*t.Scale + t.OffsetX, iy*t.Scale + t.OffsetY
}

// NearestZoomIndex returns the index of the zoom level closest to target.
// On ties the lower index wins.
func NearestZoomIndex(target float64) int {
	best := 0
	bestDiff := math.Abs(ZoomLevels[0] - target)
	for i, level := range ZoomLevels {
		if diff := math.Abs(level - target); diff < bestDiff {
			best, bestDiff = i, diff
		}
	}
	return best
}

// EffectiveSize substitutes the fallback for viewport sides that have not
// been laid out yet.
func EffectiveSize(viewW, viewH int) (int, int) {
	if viewW < minViewport {
		viewW = FallbackWidth
	}
	if viewH < minViewport {
		viewH = FallbackHeight
	}
	return viewW, viewH
}

// Fit returns a transform that shows the whole image centered in the
// viewport without upscaling past native resolution, snapped to the zoom
// table. Viewport sides smaller than 10 fall back to 1200x750.
func Fit(imageW, imageH, viewW, viewH int) Transform {
	viewW, viewH = EffectiveSize(viewW, viewH)
	if imageW <= 0 || imageH <= 0 {
		idx := NearestZoomIndex(1.0)
		return Transform{Scale: ZoomLevels[idx], ZoomIndex: idx}
	}
	sx := float64(viewW) / float64(imageW)
	sy := float64(viewH) / float64(imageH)
	fit := math.Min(math.Min(sx, sy), 1.0)
	idx := NearestZoomIndex(fit)
	scale := ZoomLevels[idx]
	return Transform{
		Scale:     scale,
		ZoomIndex: idx,
		OffsetX:   (float64(viewW) - float64(imageW)*scale) / 2,
		OffsetY:   (float64(viewH) - float64(imageH)*scale) / 2,
	}
}

// ZoomStep moves one slot up (dir > 0) or down (dir < 0) the zoom table,
// keeping the image point under (cx, cy) fixed on screen. At either end of
// the table it returns t unchanged and false.
func (t Transform) ZoomStep(cx, cy float64, dir int) (Transform, bool) {
	step := 0
	switch {
	case dir > 0:
		step = 1
	case dir < 0:
		step = -1
	}
	next := t.ZoomIndex + step
	if next < 0 {
		next = 0
	}
	if next > len(ZoomLevels)-1 {
		next = len(ZoomLevels) - 1
	}
	if next == t.ZoomIndex {
		return t, false
	}
	ix, iy := t.CanvasToImage(cx, cy)
	scale := ZoomLevels[next]
	return Transform{
		Scale:     scale,
		ZoomIndex: next,
		OffsetX:   cx - ix*scale,
		OffsetY:   cy - iy*scale,
	}, true
}

// Pan shifts the view by (dx, dy) canvas units.
func (t Transform) Pan(dx, dy float64) Transform {
	t.OffsetX += dx
	t.OffsetY += dy
	return t
}

// PanAnchor records where a drag-pan started.
type PanAnchor struct {
	X, Y             float64
	OffsetX, OffsetY float64
}

// BeginPan captures the pointer position and current offsets.
func (t Transform) BeginPan(x, y float64) PanAnchor {
	return PanAnchor{X: x, Y: y, OffsetX: t.OffsetX, OffsetY: t.OffsetY}
}

// DragTo positions the view so that it has moved by the pointer's
// displacement since the anchor was taken.
func (t Transform) DragTo(a PanAnchor, x, y float64) Transform {
	t.OffsetX = a.OffsetX + (x - a.X)
	t.OffsetY = a.OffsetY + (y - a.Y)
	return t
}
