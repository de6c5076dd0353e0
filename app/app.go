package app

import (
	"log/slog"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/boxlabeler-go/config"
	"github.com/soocke/boxlabeler-go/debug"
	"github.com/soocke/boxlabeler-go/ui/model"
	"github.com/soocke/boxlabeler-go/ui/theme"
)

const (
	tick      = 100 * time.Millisecond
	firstLoad = 100 * time.Millisecond
	statsTick = 5 * time.Second
)

type app struct {
	c       *AppContainer
	logger  *slog.Logger
	folder  string
	afterID string
}

// NewApp prepares the application. folder, when non-empty, is opened once
// the window has been laid out.
func NewApp(cfg *config.Config, cfgPath string, logger *slog.Logger, folder string) *app {
	a := &app{logger: logger, folder: folder}
	a.c = BuildContainer(cfg, logger, cfgPath, a.idle, a.scheduleUpdate)
	App.WmTitle(model.AppName)
	return a
}

// Start builds the window and runs the Tk event loop until it closes.
func (a *app) Start() {
	theme.InitStyles()
	a.c.RootView.OnClose(a.shutdown)
	a.c.RootView.Build(a.c.Handlers())
	a.c.ToolbarPresenter.Refresh()
	a.c.StatusPresenter.Refresh()

	if a.c.Config.Debug {
		debug.StartRenderStatsLogger(statsTick, a.logger, a.c.Controller.RenderStats, a.c.CanvasPresenter.Redraw().Paints)
	}

	// Deferred so the first fit sees the real canvas size.
	TclAfter(firstLoad, func() {
		a.c.Loop.Tick()
		if a.folder != "" {
			a.c.ToolbarPresenter.Open(a.folder)
			return
		}
		a.c.CanvasPresenter.Invalidate()
	})

	App.Wait()
}

// idle runs fn on the event loop after pending events have been handled.
func (a *app) idle(fn func()) {
	TclAfter(time.Millisecond, fn)
}

func (a *app) scheduleUpdate() {
	// Schedule the next update using TclAfter to stay on Tk's event loop thread.
	a.afterID = TclAfter(tick, a.c.Loop.Tick)
}

// shutdown runs while the window still exists.
func (a *app) shutdown() {
	a.cancelUpdate()
	if err := a.c.RememberWindow(WmGeometry(App)); err != nil {
		a.logger.Warn("window size not saved", "error", err)
	}
}

func (a *app) cancelUpdate() {
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
		a.afterID = ""
	}
}
