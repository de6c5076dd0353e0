package presenter

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/soocke/boxlabeler-go/domain/viewport"
	"github.com/soocke/boxlabeler-go/ui/images"
	"github.com/soocke/boxlabeler-go/ui/model"
)

// Editor is the controller surface driven by canvas input.
type Editor interface {
	PressDraw(x, y float64) bool
	DragDraw(x, y float64) bool
	ReleaseDraw(x, y float64) bool
	DeleteAt(x, y float64) bool
	BeginPan(x, y float64) bool
	DragPan(x, y float64) bool
	EndPan()
	Wheel(g viewport.Gesture, delta, units int, x, y float64) bool
	Undo() bool
	ToggleHelp() bool
	Resize(w, h int) bool
	Next() model.Outcome
	Prev() model.Outcome
	Quit() error
	Scene() model.Scene
}

// CanvasView displays a composed canvas image.
type CanvasView interface {
	ShowCanvas(img image.Image)
}

// AppView shows modal notices and closes the main window.
type AppView interface {
	ShowInfo(title, message string)
	ShowWarning(title, message string)
	Close()
}

// Refresher re-reads state after every paint.
type Refresher interface{ Refresh() }

// CanvasPresenter turns pointer, wheel and key input into editor calls and
// repaints through a coalescing Redraw.
type CanvasPresenter struct {
	editor Editor
	view   CanvasView
	app    AppView
	after  []Refresher
	logger *slog.Logger
	redraw *Redraw
	closed bool
}

// NewCanvasPresenter wires the presenter. schedule defers a function to the
// next idle point of the UI loop; nil paints synchronously. after runs
// following each paint.
func NewCanvasPresenter(editor Editor, view CanvasView, app AppView, schedule func(func()), logger *slog.Logger, after ...Refresher) *CanvasPresenter {
	if logger == nil {
		logger = slog.Default()
	}
	p := &CanvasPresenter{editor: editor, view: view, app: app, after: after, logger: logger}
	p.redraw = NewRedraw(schedule, p.paint)
	return p
}

// Redraw exposes the coalescer, mainly for diagnostics.
func (p *CanvasPresenter) Redraw() *Redraw {
	if p == nil {
		return nil
	}
	return p.redraw
}

func (p *CanvasPresenter) paint() {
	if p.editor == nil || p.view == nil || p.closed {
		return
	}
	frame := images.Compose(p.editor.Scene())
	p.view.ShowCanvas(frame)
	for _, r := range p.after {
		if r != nil {
			r.Refresh()
		}
	}
}

// Attach adds a refresher run after each paint.
func (p *CanvasPresenter) Attach(r Refresher) {
	if p != nil && r != nil {
		p.after = append(p.after, r)
	}
}

func (p *CanvasPresenter) request(changed bool) {
	if changed {
		p.redraw.Request()
	}
}

// Invalidate forces a repaint on the next flush.
func (p *CanvasPresenter) Invalidate() {
	if p == nil {
		return
	}
	p.redraw.Request()
}

func (p *CanvasPresenter) ready() bool { return p != nil && p.editor != nil && !p.closed }

// OnPress handles the primary button going down.
func (p *CanvasPresenter) OnPress(x, y float64) {
	if p.ready() {
		p.request(p.editor.PressDraw(x, y))
	}
}

// OnDrag handles primary button motion.
func (p *CanvasPresenter) OnDrag(x, y float64) {
	if p.ready() {
		p.request(p.editor.DragDraw(x, y))
	}
}

// OnRelease handles the primary button going up.
func (p *CanvasPresenter) OnRelease(x, y float64) {
	if p.ready() {
		p.request(p.editor.ReleaseDraw(x, y))
	}
}

// OnSecondary deletes the box under the pointer.
func (p *CanvasPresenter) OnSecondary(x, y float64) {
	if p.ready() {
		p.request(p.editor.DeleteAt(x, y))
	}
}

// OnPanStart handles the middle button going down.
func (p *CanvasPresenter) OnPanStart(x, y float64) {
	if p.ready() {
		p.request(p.editor.BeginPan(x, y))
	}
}

// OnPanDrag handles middle button motion.
func (p *CanvasPresenter) OnPanDrag(x, y float64) {
	if p.ready() {
		p.request(p.editor.DragPan(x, y))
	}
}

// OnPanEnd handles the middle button going up.
func (p *CanvasPresenter) OnPanEnd() {
	if p.ready() {
		p.editor.EndPan()
	}
}

// OnWheel handles a wheel event; units is the backend's delta per notch.
func (p *CanvasPresenter) OnWheel(g viewport.Gesture, delta, units int, x, y float64) {
	if p.ready() {
		p.request(p.editor.Wheel(g, delta, units, x, y))
	}
}

// OnResize records the canvas size.
func (p *CanvasPresenter) OnResize(w, h int) {
	if p.ready() {
		p.request(p.editor.Resize(w, h))
	}
}

// OnKey dispatches a Tk keysym. It reports whether the key was bound.
func (p *CanvasPresenter) OnKey(keysym string) bool {
	if !p.ready() {
		return false
	}
	switch keysym {
	case "z":
		p.request(p.editor.Undo())
	case "h":
		p.request(p.editor.ToggleHelp())
	case "Right":
		p.Next()
	case "Left":
		p.Prev()
	case "Escape":
		p.Quit()
	default:
		return false
	}
	return true
}

// Next saves and moves forward.
func (p *CanvasPresenter) Next() {
	if p.ready() {
		p.Navigate(p.editor.Next())
	}
}

// Prev saves and moves back.
func (p *CanvasPresenter) Prev() {
	if p.ready() {
		p.Navigate(p.editor.Prev())
	}
}

// Navigate reacts to the outcome of a load. Completion informs the user and
// closes the application.
func (p *CanvasPresenter) Navigate(out model.Outcome) {
	if !p.ready() {
		return
	}
	p.logger.Debug("navigate", "outcome", out.String())
	if out == model.OutcomeCompleted {
		if p.app != nil {
			p.app.ShowInfo("Done", "All images labeled!")
		}
		p.Quit()
		return
	}
	p.redraw.Request()
}

// Quit saves on a best-effort basis and closes the window. A save failure is
// logged and never prevents exit.
func (p *CanvasPresenter) Quit() {
	if !p.ready() {
		return
	}
	p.closed = true
	if err := p.editor.Quit(); err != nil {
		p.logger.Error("save on exit failed", "error", err)
		if p.app != nil {
			p.app.ShowWarning("Save Error", fmt.Sprintf("Could not save labels:\n%v", err))
		}
	}
	if p.app != nil {
		p.app.Close()
	}
}

// Closed reports whether Quit ran.
func (p *CanvasPresenter) Closed() bool { return p != nil && p.closed }
