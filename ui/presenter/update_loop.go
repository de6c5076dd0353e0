package presenter

// SizeSource reports the current canvas size in pixels.
type SizeSource interface {
	CanvasSize() (w, h int)
}

// Loop drives periodic updates that have no input event of their own:
// canvas resizes and status text. The zero value is usable (methods are
// nil-safe).
type Loop struct {
	Size     SizeSource
	Canvas   *CanvasPresenter
	Status   *StatusPresenter
	Schedule func()
}

func NewLoop(size SizeSource, canvas *CanvasPresenter, status *StatusPresenter, schedule func()) *Loop {
	return &Loop{Size: size, Canvas: canvas, Status: status, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	if l.Size != nil {
		if w, h := l.Size.CanvasSize(); w > 0 && h > 0 {
			l.Canvas.OnResize(w, h)
		}
	}
	l.Status.Refresh()
	if l.Canvas.Closed() {
		return
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
