package app

import (
	"github.com/soocke/boxlabeler-go/domain/annotation"
	"github.com/soocke/boxlabeler-go/domain/classes"
	"github.com/soocke/boxlabeler-go/domain/imagesource"
	"github.com/soocke/boxlabeler-go/domain/labels"
	"github.com/soocke/boxlabeler-go/domain/render"
	"github.com/soocke/boxlabeler-go/domain/viewport"
)

// PointerMode enumerates what a pointer drag is currently doing.
type PointerMode int

const (
	ModeIdle PointerMode = iota
	ModeDrawing
	ModePanning
)

func (m PointerMode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeDrawing:
		return "drawing"
	case ModePanning:
		return "panning"
	default:
		return "unknown"
	}
}

// Session is the state of one opened folder. It is owned by the Controller
// and only touched from the UI thread.
type Session struct {
	ID      string
	Layout  labels.Layout
	Images  []string
	Index   int
	Labeled int

	// Per-image state, reset by every load.
	Current *imagesource.Decoded
	View    viewport.Transform
	Store   *annotation.Store
	Render  render.Cache

	Registry    *classes.Registry
	ActiveClass int

	ViewW, ViewH int

	mode   PointerMode
	anchor viewport.PanAnchor
}

// HasImage reports whether an image is decoded and on screen.
func (s *Session) HasImage() bool {
	return s != nil && s.Current != nil && s.Store != nil
}

// ImageName returns the current image filename or "".
func (s *Session) ImageName() string {
	if s == nil || s.Index < 0 || s.Index >= len(s.Images) {
		return ""
	}
	return s.Images[s.Index]
}

// resetImage drops all per-image state.
func (s *Session) resetImage() {
	s.Current = nil
	s.Store = nil
	s.View = viewport.Transform{}
	s.Render.Invalidate()
	s.mode = ModeIdle
	s.anchor = viewport.PanAnchor{}
}
