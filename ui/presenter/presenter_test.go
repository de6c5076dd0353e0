package presenter

import (
	"errors"
	"fmt"
	"image"
	"testing"

	"github.com/soocke/boxlabeler-go/domain/classes"
	"github.com/soocke/boxlabeler-go/domain/labels"
	"github.com/soocke/boxlabeler-go/domain/viewport"
	"github.com/soocke/boxlabeler-go/ui/model"
)

// manualScheduler queues deferred functions until run is called.
type manualScheduler struct{ queue []func() }

func (s *manualScheduler) schedule(fn func()) { s.queue = append(s.queue, fn) }
func (s *manualScheduler) run() {
	q := s.queue
	s.queue = nil
	for _, fn := range q {
		fn()
	}
}

type fakeEditor struct {
	changed  bool
	next     model.Outcome
	quitErr  error
	calls    []string
	progress model.ProgressModel
	resized  [2]int

	entries []classes.Entry
	active  int
	openOut model.Outcome
	openErr error
	addErr  error
}

func (e *fakeEditor) log(s string) bool { e.calls = append(e.calls, s); return e.changed }

func (e *fakeEditor) PressDraw(x, y float64) bool   { return e.log("press") }
func (e *fakeEditor) DragDraw(x, y float64) bool    { return e.log("drag") }
func (e *fakeEditor) ReleaseDraw(x, y float64) bool { return e.log("release") }
func (e *fakeEditor) DeleteAt(x, y float64) bool    { return e.log("delete") }
func (e *fakeEditor) BeginPan(x, y float64) bool    { return e.log("pan-start") }
func (e *fakeEditor) DragPan(x, y float64) bool     { return e.log("pan") }
func (e *fakeEditor) EndPan()                       { e.log("pan-end") }
func (e *fakeEditor) Wheel(g viewport.Gesture, delta, units int, x, y float64) bool {
	return e.log("wheel-" + g.String())
}
func (e *fakeEditor) Undo() bool       { return e.log("undo") }
func (e *fakeEditor) ToggleHelp() bool { return e.log("help") }
func (e *fakeEditor) Resize(w, h int) bool {
	if e.resized == [2]int{w, h} {
		return false
	}
	e.resized = [2]int{w, h}
	return e.log("resize")
}
func (e *fakeEditor) Next() model.Outcome { e.log("next"); return e.next }
func (e *fakeEditor) Prev() model.Outcome { e.log("prev"); return e.next }
func (e *fakeEditor) Quit() error         { e.log("quit"); return e.quitErr }
func (e *fakeEditor) Scene() model.Scene  { return model.Scene{Width: 20, Height: 10} }

func (e *fakeEditor) Progress() model.ProgressModel { return e.progress }

func (e *fakeEditor) Classes() []classes.Entry { return e.entries }
func (e *fakeEditor) ActiveClass() int         { return e.active }
func (e *fakeEditor) AddClass(name string) (classes.Added, error) {
	if name == "" {
		return classes.Added{}, classes.ErrEmptyName
	}
	id := len(e.entries)
	e.entries = append(e.entries, classes.Entry{ID: id, Name: name})
	e.active = id
	return classes.Added{ID: id, Created: true}, e.addErr
}
func (e *fakeEditor) SelectClass(id int) bool {
	for _, en := range e.entries {
		if en.ID == id {
			e.active = id
			return true
		}
	}
	return false
}
func (e *fakeEditor) OpenFolder(folder string) (model.Outcome, error) {
	e.log("open:" + folder)
	return e.openOut, e.openErr
}

type fakeCanvas struct{ shown int }

func (c *fakeCanvas) ShowCanvas(img image.Image) { c.shown++ }

type fakeApp struct {
	infos, warnings []string
	closed          int
}

func (a *fakeApp) ShowInfo(title, message string)    { a.infos = append(a.infos, title) }
func (a *fakeApp) ShowWarning(title, message string) { a.warnings = append(a.warnings, title) }
func (a *fakeApp) Close()                            { a.closed++ }

type fakeStatus struct{ titles, counters []string }

func (s *fakeStatus) SetTitle(t string)   { s.titles = append(s.titles, t) }
func (s *fakeStatus) SetCounter(c string) { s.counters = append(s.counters, c) }

type fakeToolbar struct {
	items    []string
	selected int
	sets     int
	cleared  int
	folder   string
}

func (v *fakeToolbar) SetClasses(items []string, selected int) {
	v.items, v.selected = items, selected
	v.sets++
}
func (v *fakeToolbar) ClearClassEntry()                 { v.cleared++ }
func (v *fakeToolbar) ChooseFolder(title string) string { return v.folder }

func TestRedraw_CoalescesRequests(t *testing.T) {
	sched := &manualScheduler{}
	paints := 0
	r := NewRedraw(sched.schedule, func() { paints++ })
	for i := 0; i < 25; i++ {
		r.Request()
	}
	if len(sched.queue) != 1 {
		t.Fatalf("expected one scheduled flush, got %d", len(sched.queue))
	}
	if paints != 0 || !r.Pending() {
		t.Fatalf("paint must wait for the flush")
	}
	sched.run()
	if paints != 1 || r.Paints() != 1 || r.Pending() {
		t.Fatalf("expected exactly one paint, got %d", paints)
	}
	r.Request()
	sched.run()
	if paints != 2 {
		t.Fatalf("a later request should paint again, got %d", paints)
	}
}

func TestRedraw_FlushWithoutRequestIsNoop(t *testing.T) {
	paints := 0
	r := NewRedraw(nil, func() { paints++ })
	r.Flush()
	if paints != 0 {
		t.Fatalf("unexpected paint")
	}
	r.Request() // no scheduler paints synchronously
	if paints != 1 {
		t.Fatalf("expected synchronous paint, got %d", paints)
	}
	var nilR *Redraw
	nilR.Request()
	nilR.Flush()
}

func TestCanvasPresenter_DragBurstPaintsOnce(t *testing.T) {
	sched := &manualScheduler{}
	ed := &fakeEditor{changed: true}
	cv := &fakeCanvas{}
	st := &fakeStatus{}
	p := NewCanvasPresenter(ed, cv, &fakeApp{}, sched.schedule, nil, NewStatusPresenter(ed, st))

	p.OnPress(1, 1)
	for i := 0; i < 10; i++ {
		p.OnDrag(float64(i), float64(i))
	}
	p.OnWheel(viewport.GestureZoom, 120, viewport.UnitsWheel120, 5, 5)
	sched.run()
	if cv.shown != 1 {
		t.Fatalf("expected one paint for the burst, got %d", cv.shown)
	}
	if len(st.titles) != 1 || len(st.counters) != 1 {
		t.Fatalf("status should refresh after paint")
	}
}

func TestCanvasPresenter_NoChangeNoPaint(t *testing.T) {
	sched := &manualScheduler{}
	ed := &fakeEditor{changed: false}
	p := NewCanvasPresenter(ed, &fakeCanvas{}, &fakeApp{}, sched.schedule, nil)
	p.OnWheel(viewport.GestureZoom, 120, viewport.UnitsWheel120, 0, 0)
	p.OnSecondary(3, 3)
	if len(sched.queue) != 0 {
		t.Fatalf("unchanged state must not schedule a paint")
	}
}

func TestCanvasPresenter_Keys(t *testing.T) {
	ed := &fakeEditor{changed: true, next: model.OutcomeLoaded}
	app := &fakeApp{}
	p := NewCanvasPresenter(ed, &fakeCanvas{}, app, nil, nil)
	for _, k := range []string{"z", "h", "Right", "Left"} {
		if !p.OnKey(k) {
			t.Fatalf("key %q should be bound", k)
		}
	}
	if p.OnKey("q") {
		t.Fatalf("key q should not be bound")
	}
	want := []string{"undo", "help", "next", "prev"}
	if fmt.Sprint(ed.calls) != fmt.Sprint(want) {
		t.Fatalf("calls = %v, want %v", ed.calls, want)
	}
	p.OnKey("Escape")
	if app.closed != 1 || !p.Closed() {
		t.Fatalf("escape should close the app")
	}
	p.OnKey("z")
	if ed.calls[len(ed.calls)-1] != "quit" {
		t.Fatalf("input after close must be ignored")
	}
}

func TestCanvasPresenter_CompletionClosesApp(t *testing.T) {
	ed := &fakeEditor{next: model.OutcomeCompleted}
	app := &fakeApp{}
	p := NewCanvasPresenter(ed, &fakeCanvas{}, app, nil, nil)
	p.Next()
	if len(app.infos) != 1 || app.infos[0] != "Done" {
		t.Fatalf("expected completion notice, got %v", app.infos)
	}
	if app.closed != 1 {
		t.Fatalf("expected close after completion")
	}
}

func TestCanvasPresenter_QuitSaveFailureStillCloses(t *testing.T) {
	ed := &fakeEditor{quitErr: errors.New("disk full")}
	app := &fakeApp{}
	p := NewCanvasPresenter(ed, &fakeCanvas{}, app, nil, nil)
	p.Quit()
	if app.closed != 1 || len(app.warnings) != 1 {
		t.Fatalf("expected warning and close, got closed=%d warnings=%v", app.closed, app.warnings)
	}
	p.Quit()
	if app.closed != 1 {
		t.Fatalf("quit must be idempotent")
	}
}

func TestStatusPresenter_PushesOnlyChanges(t *testing.T) {
	ed := &fakeEditor{progress: model.ProgressModel{Image: "a.png", Total: 3, Index: 0}}
	st := &fakeStatus{}
	p := NewStatusPresenter(ed, st)
	p.Refresh()
	p.Refresh()
	if len(st.titles) != 1 || len(st.counters) != 1 {
		t.Fatalf("unchanged progress pushed again: %v %v", st.titles, st.counters)
	}
	ed.progress.Boxes = 2
	p.Refresh()
	if len(st.titles) != 2 || len(st.counters) != 1 {
		t.Fatalf("only title should change: %v %v", st.titles, st.counters)
	}
	var nilP *StatusPresenter
	nilP.Refresh()
}

func TestToolbarPresenter_RefreshAndSelect(t *testing.T) {
	ed := &fakeEditor{entries: []classes.Entry{{ID: 0, Name: "object"}, {ID: 2, Name: "car"}}, active: 2}
	tb := &fakeToolbar{}
	p := NewToolbarPresenter(ed, tb, &fakeApp{}, nil, nil)
	p.Refresh()
	if fmt.Sprint(tb.items) != "[0: object 2: car]" || tb.selected != 1 {
		t.Fatalf("items=%v selected=%d", tb.items, tb.selected)
	}
	p.Refresh()
	if tb.sets != 1 {
		t.Fatalf("unchanged list pushed again")
	}
	p.OnSelect(0)
	if ed.active != 0 {
		t.Fatalf("expected class 0 active, got %d", ed.active)
	}
	p.OnSelect(7)
	if ed.active != 0 {
		t.Fatalf("out-of-range select must be ignored")
	}
}

func TestToolbarPresenter_Add(t *testing.T) {
	ed := &fakeEditor{entries: []classes.Entry{{ID: 0, Name: "object"}}}
	tb := &fakeToolbar{}
	app := &fakeApp{}
	p := NewToolbarPresenter(ed, tb, app, nil, nil)
	p.OnAdd("")
	if tb.cleared != 0 || tb.sets != 0 {
		t.Fatalf("blank name must be ignored")
	}
	p.OnAdd("dog")
	if tb.cleared != 1 || tb.selected != 1 || len(tb.items) != 2 {
		t.Fatalf("expected new class selected, got items=%v selected=%d", tb.items, tb.selected)
	}
	ed.addErr = errors.New("read-only")
	p.OnAdd("cat")
	if len(app.warnings) != 1 || len(tb.items) != 3 {
		t.Fatalf("write failure should warn and keep the class: %v %v", app.warnings, tb.items)
	}
}

func TestToolbarPresenter_OpenFolder(t *testing.T) {
	ed := &fakeEditor{openOut: model.OutcomeLoaded}
	tb := &fakeToolbar{}
	app := &fakeApp{}
	cv := &fakeCanvas{}
	canvas := NewCanvasPresenter(ed, cv, app, nil, nil)
	p := NewToolbarPresenter(ed, tb, app, canvas, nil)

	p.OnOpenFolder()
	if len(ed.calls) != 0 {
		t.Fatalf("cancelled chooser must not open anything")
	}
	tb.folder = "/data/imgs"
	p.OnOpenFolder()
	if ed.calls[0] != "open:/data/imgs" || cv.shown != 1 {
		t.Fatalf("expected open and repaint, calls=%v shown=%d", ed.calls, cv.shown)
	}

	ed.openOut, ed.openErr = model.OutcomeEmpty, fmt.Errorf("%w: /empty", labels.ErrNoImages)
	p.Open("/empty")
	if len(app.infos) != 1 || app.infos[0] != "No images" {
		t.Fatalf("expected no-images notice, got %v", app.infos)
	}
	ed.openErr = labels.ErrInvalidFolder
	p.Open("/missing")
	if len(app.warnings) != 1 {
		t.Fatalf("expected warning for invalid folder")
	}
	if app.closed != 0 {
		t.Fatalf("open failures must keep the app running")
	}
}

type fakeSize struct{ w, h int }

func (s fakeSize) CanvasSize() (int, int) { return s.w, s.h }

func TestLoop_TickResizesAndReschedules(t *testing.T) {
	ed := &fakeEditor{changed: true}
	cv := &fakeCanvas{}
	canvas := NewCanvasPresenter(ed, cv, &fakeApp{}, nil, nil)
	scheduled := 0
	l := NewLoop(fakeSize{800, 600}, canvas, nil, func() { scheduled++ })
	l.Tick()
	l.Tick()
	if ed.resized != [2]int{800, 600} || cv.shown != 1 {
		t.Fatalf("expected one resize paint, resized=%v shown=%d", ed.resized, cv.shown)
	}
	if scheduled != 2 {
		t.Fatalf("expected reschedule each tick, got %d", scheduled)
	}
	canvas.Quit()
	l.Tick()
	if scheduled != 2 {
		t.Fatalf("loop must stop after close")
	}
	var nilL *Loop
	nilL.Tick()
}
