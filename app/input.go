package app

import (
	"fmt"

	"github.com/soocke/boxlabeler-go/domain/annotation"
	"github.com/soocke/boxlabeler-go/domain/viewport"
	"github.com/soocke/boxlabeler-go/ui/model"
)

// The methods below translate raw canvas input into session changes. Each
// returns true when the canvas needs repainting.

// PressDraw starts a box drag at canvas (x, y).
func (c *Controller) PressDraw(x, y float64) bool {
	s := c.s
	if !s.HasImage() || s.mode == ModePanning {
		return false
	}
	s.Store.BeginDraw(annotation.Point{X: x, Y: y})
	s.mode = ModeDrawing
	return true
}

// DragDraw moves the free corner of the box being drawn.
func (c *Controller) DragDraw(x, y float64) bool {
	s := c.s
	if !s.HasImage() || s.mode != ModeDrawing {
		return false
	}
	s.Store.UpdateDraw(annotation.Point{X: x, Y: y})
	return true
}

// ReleaseDraw commits the box being drawn with the active class. Boxes below
// the minimum size are dropped.
func (c *Controller) ReleaseDraw(x, y float64) bool {
	s := c.s
	if !s.HasImage() || s.mode != ModeDrawing {
		return false
	}
	s.mode = ModeIdle
	b, ok := s.Store.EndDraw(annotation.Point{X: x, Y: y}, s.ActiveClass, s.View)
	if ok {
		c.logger.Debug("box added", "image", s.ImageName(), "class", b.ClassID,
			"x1", b.X1, "y1", b.Y1, "x2", b.X2, "y2", b.Y2)
	} else {
		c.logger.Debug("box too small, ignored", "image", s.ImageName())
	}
	return true
}

// DeleteAt removes the first box under canvas (x, y).
func (c *Controller) DeleteAt(x, y float64) bool {
	s := c.s
	if !s.HasImage() {
		return false
	}
	ix, iy := s.View.CanvasToImage(x, y)
	b, idx, ok := s.Store.HitTestDelete(ix, iy)
	if !ok {
		c.logger.Debug("no box at point", "x", ix, "y", iy)
		return false
	}
	c.logger.Debug("box deleted", "index", idx, "class", b.ClassID)
	return true
}

// BeginPan starts a drag-pan at canvas (x, y). A box drag in progress is
// cancelled.
func (c *Controller) BeginPan(x, y float64) bool {
	s := c.s
	if !s.HasImage() {
		return false
	}
	redraw := false
	if s.mode == ModeDrawing {
		s.Store.CancelDraw()
		redraw = true
	}
	s.anchor = s.View.BeginPan(x, y)
	s.mode = ModePanning
	return redraw
}

// DragPan moves the view with the pointer.
func (c *Controller) DragPan(x, y float64) bool {
	s := c.s
	if !s.HasImage() || s.mode != ModePanning {
		return false
	}
	s.View = s.View.DragTo(s.anchor, x, y)
	return true
}

// EndPan finishes a drag-pan.
func (c *Controller) EndPan() {
	if c.s.mode == ModePanning {
		c.s.mode = ModeIdle
	}
}

// Wheel applies a raw wheel delta reported in units per notch.
func (c *Controller) Wheel(g viewport.Gesture, delta, units int, x, y float64) bool {
	s := c.s
	if !s.HasImage() {
		return false
	}
	notches := viewport.GestureNotches(g, delta, units)
	next, changed := s.View.Wheel(g, notches, x, y, c.cfg.PanStep)
	if !changed {
		return false
	}
	s.View = next
	if g == viewport.GestureZoom {
		c.logger.Debug("zoom", "scale", next.Scale, "index", next.ZoomIndex)
	}
	return true
}

// Undo removes the last box.
func (c *Controller) Undo() bool {
	s := c.s
	if !s.HasImage() {
		return false
	}
	b, ok := s.Store.UndoLast()
	if ok {
		c.logger.Debug("undo", "class", b.ClassID)
	}
	return ok
}

// ToggleHelp shows or hides the help overlay.
func (c *Controller) ToggleHelp() bool {
	c.overlay.Toggle()
	return true
}

// Resize records a new viewport size. The transform is kept.
func (c *Controller) Resize(w, h int) bool {
	if w == c.s.ViewW && h == c.s.ViewH {
		return false
	}
	c.s.ViewW, c.s.ViewH = w, h
	return true
}

// Mode returns what the pointer is doing.
func (c *Controller) Mode() PointerMode { return c.s.mode }

// Scene renders the current state into a paintable description.
func (c *Controller) Scene() model.Scene {
	s := c.s
	w, h := viewport.EffectiveSize(s.ViewW, s.ViewH)
	sc := model.Scene{Width: w, Height: h}
	if c.overlay.Visible() {
		sc.Help = append([]string{
			fmt.Sprintf("Active class: %d (%s)", s.ActiveClass, s.Registry.Name(s.ActiveClass)),
			"",
		}, c.help...)
	}
	if !s.HasImage() {
		sc.Message = `Click "Open Folder" to load images`
		return sc
	}

	f := s.Render.Render(s.Current.Image, s.View, w, h)
	if f.Bitmap != nil {
		sc.Bitmap = f.Bitmap
	}
	sc.PlaceX, sc.PlaceY = f.PlaceX, f.PlaceY

	for _, b := range s.Store.Boxes() {
		x1, y1 := s.View.ImageToCanvas(b.X1, b.Y1)
		x2, y2 := s.View.ImageToCanvas(b.X2, b.Y2)
		sc.Boxes = append(sc.Boxes, model.SceneBox{
			X1: x1, Y1: y1, X2: x2, Y2: y2,
			ClassID: b.ClassID,
			Label:   fmt.Sprintf("%d: %s", b.ClassID, s.Registry.Name(b.ClassID)),
		})
	}
	if r, ok := s.Store.Provisional(); ok {
		sc.Provisional = &model.SceneBox{X1: r.X1, Y1: r.Y1, X2: r.X2, Y2: r.Y2, ClassID: s.ActiveClass}
	}
	return sc
}
