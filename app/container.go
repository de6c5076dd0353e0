package app

import (
	"fmt"
	"log/slog"

	"github.com/soocke/boxlabeler-go/assets"
	"github.com/soocke/boxlabeler-go/config"
	"github.com/soocke/boxlabeler-go/domain/imagesource"
	"github.com/soocke/boxlabeler-go/ui/model"
	"github.com/soocke/boxlabeler-go/ui/presenter"
	"github.com/soocke/boxlabeler-go/ui/view"
)

// AppContainer assembles the controller, presenters and the root view.
type AppContainer struct {
	Config     *config.Config
	ConfigPath string
	Logger     *slog.Logger
	Loader     imagesource.Loader
	Controller *Controller
	RootView   *view.RootView

	// Presenters
	CanvasPresenter  *presenter.CanvasPresenter
	StatusPresenter  *presenter.StatusPresenter
	ToolbarPresenter *presenter.ToolbarPresenter
	Loop             *presenter.Loop
}

// BuildContainer constructs all components without touching Tk. idle defers
// a function to the next quiet point of the event loop; tick schedules the
// next periodic Loop.Tick.
func BuildContainer(cfg *config.Config, logger *slog.Logger, cfgPath string, idle func(func()), tick func()) *AppContainer {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	c := &AppContainer{Config: cfg, ConfigPath: cfgPath, Logger: logger}
	c.Loader = imagesource.NewCachedLoader(imagesource.FileLoader{}, cfg.DecodeCacheSize)
	c.RootView = view.NewRootView(cfg, logger)
	c.Controller = NewController(cfg, logger, c.Loader, c.RootView, assets.HelpLines())

	c.StatusPresenter = presenter.NewStatusPresenter(c.Controller, c.RootView)
	c.CanvasPresenter = presenter.NewCanvasPresenter(c.Controller, c.RootView, c.RootView, idle, logger, c.StatusPresenter)
	c.ToolbarPresenter = presenter.NewToolbarPresenter(c.Controller, c.RootView, c.RootView, c.CanvasPresenter, logger)
	c.CanvasPresenter.Attach(c.ToolbarPresenter)
	c.Loop = presenter.NewLoop(c.RootView, c.CanvasPresenter, c.StatusPresenter, tick)
	return c
}

// Handlers binds the view's callbacks to the presenters.
func (c *AppContainer) Handlers() view.Handlers {
	return view.Handlers{
		OpenFolder:  c.ToolbarPresenter.OnOpenFolder,
		AddClass:    c.ToolbarPresenter.OnAdd,
		SelectClass: c.ToolbarPresenter.OnSelect,
		Prev:        c.CanvasPresenter.Prev,
		Next:        c.CanvasPresenter.Next,
		Exit:        c.CanvasPresenter.Quit,
		Input:       c.CanvasPresenter,
	}
}

// RememberWindow stores the window size from a Tk geometry string and
// writes the config to ConfigPath. It does nothing without a config path.
func (c *AppContainer) RememberWindow(geometry string) error {
	if c.ConfigPath == "" {
		return nil
	}
	r, ok := model.ParseGeometry(geometry)
	if !ok {
		return fmt.Errorf("unparseable window geometry %q", geometry)
	}
	c.Config.WindowWidth, c.Config.WindowHeight = r.Dx(), r.Dy()
	if err := c.Config.Save(c.ConfigPath); err != nil {
		return fmt.Errorf("save config %s: %w", c.ConfigPath, err)
	}
	return nil
}
