// Package annotation holds the committed boxes of the current image and the
// in-progress drag that may become one.
package annotation

import "math"

// MinBoxSize is the smallest accepted box side, in image pixels.
const MinBoxSize = 3.0

// Box is an axis-aligned rectangle in image pixel space with
// 0 <= X1 < X2 <= W and 0 <= Y1 < Y2 <= H.
type Box struct {
	X1, Y1, X2, Y2 float64
	ClassID        int
}

// Width returns X2-X1.
func (b Box) Width() float64 { return b.X2 - b.X1 }

// Height returns Y2-Y1.
func (b Box) Height() float64 { return b.Y2 - b.Y1 }

// Contains reports whether (x, y) lies inside b, edges included.
func (b Box) Contains(x, y float64) bool {
	return b.X1 <= x && x <= b.X2 && b.Y1 <= y && y <= b.Y2
}

// Point is a canvas-space position.
type Point struct{ X, Y float64 }

// Converter maps canvas coordinates to image coordinates.
type Converter interface {
	CanvasToImage(cx, cy float64) (float64, float64)
}

// Rect is a normalized canvas-space rectangle.
type Rect struct{ X1, Y1, X2, Y2 float64 }

// Store owns the boxes of one image. It is not safe for concurrent use;
// all calls come from the UI thread.
type Store struct {
	imageW, imageH float64
	minSize        float64
	boxes          []Box

	drawing bool
	start   Point
	current Point
}

// NewStore returns an empty store for an image of the given size.
func NewStore(imageW, imageH int) *Store {
	return &Store{imageW: float64(imageW), imageH: float64(imageH), minSize: MinBoxSize}
}

// SetMinSize overrides the minimum box side. Values <= 0 restore the default.
func (s *Store) SetMinSize(v float64) {
	if v <= 0 {
		v = MinBoxSize
	}
	s.minSize = v
}

// BeginDraw starts a drag at p.
func (s *Store) BeginDraw(p Point) {
	s.drawing = true
	s.start = p
	s.current = p
}

// UpdateDraw moves the free corner of the drag. It does nothing when no
// drag is in progress.
func (s *Store) UpdateDraw(p Point) {
	if !s.drawing {
		return
	}
	s.current = p
}

// Provisional returns the canvas rectangle of the drag in progress.
func (s *Store) Provisional() (Rect, bool) {
	if !s.drawing {
		return Rect{}, false
	}
	return Rect{
		X1: math.Min(s.start.X, s.current.X),
		Y1: math.Min(s.start.Y, s.current.Y),
		X2: math.Max(s.start.X, s.current.X),
		Y2: math.Max(s.start.Y, s.current.Y),
	}, true
}

// CancelDraw discards the drag in progress.
func (s *Store) CancelDraw() {
	s.drawing = false
	s.start = Point{}
	s.current = Point{}
}

// EndDraw finishes the drag at end and commits it. It returns false when no
// drag was in progress or the result was too small.
func (s *Store) EndDraw(end Point, classID int, conv Converter) (Box, bool) {
	if !s.drawing {
		return Box{}, false
	}
	start := s.start
	s.CancelDraw()
	return s.CommitDraw(start, end, classID, conv)
}

// CommitDraw converts a canvas drag into an image-space box, clamps it to
// the image and appends it. Boxes narrower or shorter than the minimum size
// after clamping are rejected.
func (s *Store) CommitDraw(start, end Point, classID int, conv Converter) (Box, bool) {
	ax, ay := conv.CanvasToImage(start.X, start.Y)
	bx, by := conv.CanvasToImage(end.X, end.Y)

	b := Box{
		X1:      clamp(math.Min(ax, bx), 0, s.imageW),
		Y1:      clamp(math.Min(ay, by), 0, s.imageH),
		X2:      clamp(math.Max(ax, bx), 0, s.imageW),
		Y2:      clamp(math.Max(ay, by), 0, s.imageH),
		ClassID: classID,
	}
	if b.Width() < s.minSize || b.Height() < s.minSize {
		return Box{}, false
	}
	s.boxes = append(s.boxes, b)
	return b, true
}

// HitTestDelete removes the earliest-added box containing image point (x, y).
// It returns the removed box and the index it had.
func (s *Store) HitTestDelete(x, y float64) (Box, int, bool) {
	for i, b := range s.boxes {
		if b.Contains(x, y) {
			s.boxes = append(s.boxes[:i], s.boxes[i+1:]...)
			return b, i, true
		}
	}
	return Box{}, -1, false
}

// UndoLast pops the last box in the collection. A box removed by
// HitTestDelete is not restored.
func (s *Store) UndoLast() (Box, bool) {
	if len(s.boxes) == 0 {
		return Box{}, false
	}
	last := s.boxes[len(s.boxes)-1]
	s.boxes = s.boxes[:len(s.boxes)-1]
	return last, true
}

// ReplaceAll swaps in the boxes loaded from disk and drops any drag.
func (s *Store) ReplaceAll(boxes []Box) {
	s.boxes = append(s.boxes[:0:0], boxes...)
	s.CancelDraw()
}

// Boxes returns a copy of the committed boxes in insertion order.
func (s *Store) Boxes() []Box {
	out := make([]Box, len(s.boxes))
	copy(out, s.boxes)
	return out
}

// Len returns the number of committed boxes.
func (s *Store) Len() int { return len(s.boxes) }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
