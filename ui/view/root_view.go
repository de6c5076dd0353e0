package view

import (
	"fmt"
	"image"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/soocke/boxlabeler-go/config"
	"github.com/soocke/boxlabeler-go/ui/model"
	"github.com/soocke/boxlabeler-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// toolbarAllowance is the window height reserved for the toolbar row when
// deriving the canvas size from the window geometry.
const toolbarAllowance = 44

// Handlers are invoked on user actions.
type Handlers struct {
	OpenFolder  func()
	AddClass    func(name string)
	SelectClass func(index int)
	Prev        func()
	Next        func()
	Exit        func()
	Input       CanvasInput
}

// RootView composes the toolbar and canvas. It implements the view
// interfaces the presenters depend on.
type RootView struct {
	cfg    *config.Config
	logger *slog.Logger

	canvas      *canvasView
	ClassSelect *TComboboxWidget
	ClassEntry  *TextWidget
	Counter     *TLabelWidget

	onClose func()
	closed  bool
}

func NewRootView(cfg *config.Config, logger *slog.Logger) *RootView {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &RootView{cfg: cfg, logger: logger}
}

// OnClose registers a hook run once before the window is destroyed.
func (rv *RootView) OnClose(fn func()) {
	if rv != nil {
		rv.onClose = fn
	}
}

// Build constructs the layout and wires h.
func (rv *RootView) Build(h Handlers) {
	if rv == nil {
		return
	}
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", rv.cfg.WindowWidth, rv.cfg.WindowHeight))
	if h.Exit != nil {
		WmProtocol(App, "WM_DELETE_WINDOW", h.Exit)
	}
	GridRowConfigure(App, 1, Weight(1))
	GridColumnConfigure(App, 0, Weight(1))

	bar := Frame(Background(theme.ColorBg))
	Grid(bar, Row(0), Column(0), Sticky("we"), Padx("1m"), Pady("1m"))

	col := 0
	place := func(w Widget, sticky string) {
		Grid(w, In(bar), Row(0), Column(col), Sticky(sticky), Padx("0.4m"), Pady("0.2m"))
		col++
	}

	place(TLabel(Txt("Class:")), "w")
	rv.ClassSelect = TCombobox(Values([]string{}), Width(22), State("readonly"))
	place(rv.ClassSelect, "we")
	Bind(rv.ClassSelect, "<<ComboboxSelected>>", Command(func() {
		idx, err := strconv.Atoi(rv.ClassSelect.Current(nil))
		if err != nil {
			if rv.logger != nil {
				rv.logger.Error("class selection parse error", "error", err)
			}
			return
		}
		if h.SelectClass != nil {
			h.SelectClass(idx)
		}
	}))

	place(TLabel(Txt("New class:")), "w")
	rv.ClassEntry = Text(Height(1), Width(18))
	place(rv.ClassEntry, "we")
	add := func() {
		if h.AddClass != nil {
			h.AddClass(rv.classEntryText())
		}
	}
	place(TButton(Txt("Add"), Style(theme.StylePrimaryButton), Command(add)), "we")
	// Let the Text widget insert its newline first; the add clears it.
	Bind(rv.ClassEntry, "<Return>", Command(func() { TclAfter(time.Millisecond, add) }))

	place(TButton(Txt("Open Folder"), Style(theme.StylePrimaryButton), Command(h.OpenFolder)), "we")

	GridColumnConfigure(bar.Window, col, Weight(1))
	col++
	place(TButton(Txt("◀ Prev"), Style(theme.StyleNavButton), Command(h.Prev)), "e")
	place(TButton(Txt("Next ▶"), Style(theme.StyleNavButton), Command(h.Next)), "e")
	rv.Counter = TLabel(Txt(model.ProgressModel{}.Counter()), Style(theme.StyleCounterLabel))
	place(rv.Counter, "e")

	rv.canvas = newCanvasView(1)
	rv.canvas.bind(h.Input)
	Focus(rv.canvas.label)
}

func (rv *RootView) classEntryText() string {
	if rv.ClassEntry == nil {
		return ""
	}
	return strings.TrimSpace(strings.Join(rv.ClassEntry.Get("1.0", END), ""))
}

// ShowCanvas displays a composed viewport image.
func (rv *RootView) ShowCanvas(img image.Image) {
	if rv != nil && !rv.closed {
		rv.canvas.Show(img)
	}
}

// CanvasSize derives the canvas size from the window geometry.
func (rv *RootView) CanvasSize() (int, int) {
	if rv == nil || rv.closed {
		return 0, 0
	}
	w, h, ok := model.CanvasArea(WmGeometry(App), toolbarAllowance)
	if !ok {
		return 0, 0
	}
	return w, h
}

// SetTitle updates the window title.
func (rv *RootView) SetTitle(title string) {
	if rv != nil && !rv.closed {
		App.WmTitle(title)
	}
}

// SetCounter updates the progress label.
func (rv *RootView) SetCounter(text string) {
	if rv != nil && !rv.closed && rv.Counter != nil {
		rv.Counter.Configure(Txt(text))
	}
}

// SetClasses replaces the dropdown entries and selects one by position.
func (rv *RootView) SetClasses(items []string, selected int) {
	if rv == nil || rv.closed || rv.ClassSelect == nil {
		return
	}
	rv.ClassSelect.Configure(Values(items))
	if selected >= 0 && selected < len(items) {
		rv.ClassSelect.Current(selected)
	}
}

// ClearClassEntry empties the new-class field.
func (rv *RootView) ClearClassEntry() {
	if rv != nil && !rv.closed && rv.ClassEntry != nil {
		rv.ClassEntry.Delete("1.0", END)
	}
}

// Close runs the close hook and destroys the main window. Idempotent.
func (rv *RootView) Close() {
	if rv == nil || rv.closed {
		return
	}
	rv.closed = true
	if rv.onClose != nil {
		rv.onClose()
	}
	Destroy(App)
}
