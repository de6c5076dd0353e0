package app

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/google/uuid"

	"github.com/soocke/boxlabeler-go/config"
	"github.com/soocke/boxlabeler-go/domain/annotation"
	"github.com/soocke/boxlabeler-go/domain/classes"
	"github.com/soocke/boxlabeler-go/domain/imagesource"
	"github.com/soocke/boxlabeler-go/domain/labels"
	"github.com/soocke/boxlabeler-go/domain/render"
	"github.com/soocke/boxlabeler-go/domain/viewport"
	"github.com/soocke/boxlabeler-go/ui/model"
)

// ErrNoImages is returned by OpenFolder for a folder without matching images.
var ErrNoImages = labels.ErrNoImages

// Notifier shows non-fatal problems to the user.
type Notifier interface {
	Warn(title, message string)
}

// Controller owns the Session and implements every user operation on it.
// All methods must be called from the UI thread.
type Controller struct {
	cfg    *config.Config
	logger *slog.Logger
	loader imagesource.Loader
	notify Notifier
	help   []string

	overlay *model.OverlayModel
	s       *Session
}

// NewController returns a controller with no folder open.
func NewController(cfg *config.Config, logger *slog.Logger, loader imagesource.Loader, notify Notifier, help []string) *Controller {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}
	if loader == nil {
		loader = imagesource.FileLoader{}
	}
	return &Controller{
		cfg:     cfg,
		logger:  logger,
		loader:  loader,
		notify:  notify,
		help:    help,
		overlay: model.NewOverlayModel(cfg.ShowHelp),
		s: &Session{
			Registry: classes.New(cfg.DefaultClasses),
			ViewW:    cfg.WindowWidth,
			ViewH:    cfg.WindowHeight,
		},
	}
}

// Session exposes the current session for read-only inspection.
func (c *Controller) Session() *Session { return c.s }

// OpenFolder saves the current image, then switches to folder and loads the
// resume image. A folder with a class list replaces the registry; otherwise
// the current registry is kept and bound to the new folder.
func (c *Controller) OpenFolder(folder string) (model.Outcome, error) {
	if c.s.HasImage() {
		if err := c.Save(); err != nil {
			c.logger.Warn("save before folder switch failed", "error", err)
		}
	}
	images, err := labels.ListImages(folder, c.cfg.Extensions)
	if err != nil {
		return model.OutcomeEmpty, err
	}
	layout := labels.NewLayout(folder)
	if err := layout.EnsureDir(); err != nil {
		return model.OutcomeEmpty, err
	}

	reg := c.s.Registry
	if loaded, err := classes.Load(layout.ClassesPath()); err == nil {
		reg = loaded
		c.logger.Info("loaded classes", "path", layout.ClassesPath(), "count", reg.Len())
	} else if !errors.Is(err, fs.ErrNotExist) {
		c.logger.Warn("class list unreadable, keeping current classes", "error", err)
	}
	reg.Bind(layout.ClassesPath())

	if p, ok := c.loader.(imagesource.Purger); ok && c.s.Layout.Folder != folder {
		p.Purge()
	}
	c.s.resetImage()
	c.s.ID = uuid.NewString()
	c.s.Layout = layout
	c.s.Images = images
	c.s.Registry = reg
	if !reg.Has(c.s.ActiveClass) {
		if e := reg.Entries(); len(e) > 0 {
			c.s.ActiveClass = e[0].ID
		}
	}
	c.s.Index = labels.ResumeIndex(layout, images)
	c.s.Labeled = labels.LabeledCount(layout, images)
	c.logger.Info("opened folder", "session", c.s.ID, "folder", folder,
		"images", len(images), "labeled", c.s.Labeled, "index", c.s.Index)

	if len(images) == 0 {
		return model.OutcomeEmpty, fmt.Errorf("%w: %s", ErrNoImages, folder)
	}
	return c.LoadCurrent(), nil
}

// LoadCurrent shows the image at the current index. Images that fail to
// decode are reported and skipped. Passing the end yields OutcomeCompleted.
func (c *Controller) LoadCurrent() model.Outcome {
	s := c.s
	for {
		s.resetImage()
		if len(s.Images) == 0 {
			return model.OutcomeEmpty
		}
		if s.Index >= len(s.Images) {
			c.logger.Info("all images labeled", "session", s.ID, "images", len(s.Images))
			return model.OutcomeCompleted
		}
		name := s.ImageName()
		path := s.Layout.ImagePath(name)
		dec, err := c.loader.Load(path)
		if err != nil {
			c.logger.Error("image load failed", "session", s.ID, "image", name, "error", err)
			if c.notify != nil {
				c.notify.Warn("Image Error", fmt.Sprintf("Could not load:\n%s\n\n%v", path, err))
			}
			s.Index++
			continue
		}
		s.Current = dec
		s.View = viewport.Fit(dec.Width, dec.Height, s.ViewW, s.ViewH)
		s.Store = annotation.NewStore(dec.Width, dec.Height)
		s.Store.SetMinSize(c.cfg.MinBoxSize)

		got, err := labels.Load(s.Layout, name, dec.Width, dec.Height)
		if err != nil {
			c.logger.Warn("could not load labels", "image", name, "error", err)
		}
		s.Store.ReplaceAll(got.Boxes)
		for _, b := range got.Boxes {
			s.Registry.Ensure(b.ClassID)
		}
		if got.Skipped > 0 {
			c.logger.Warn("skipped malformed label lines", "image", name, "skipped", got.Skipped)
		}
		c.logger.Debug("image loaded", "session", s.ID, "image", name, "index", s.Index,
			"width", dec.Width, "height", dec.Height, "scale", s.View.Scale, "boxes", len(got.Boxes))
		return model.OutcomeLoaded
	}
}

// Next saves and advances one image.
func (c *Controller) Next() model.Outcome {
	if len(c.s.Images) == 0 {
		return model.OutcomeEmpty
	}
	if err := c.Save(); err != nil {
		c.logger.Error("save failed", "image", c.s.ImageName(), "error", err)
	}
	c.s.Index++
	return c.LoadCurrent()
}

// Prev saves and goes back one image. At the first image it does nothing.
func (c *Controller) Prev() model.Outcome {
	if len(c.s.Images) == 0 {
		return model.OutcomeEmpty
	}
	if c.s.Index <= 0 {
		if c.s.HasImage() {
			return model.OutcomeLoaded
		}
		return c.LoadCurrent()
	}
	if err := c.Save(); err != nil {
		c.logger.Error("save failed", "image", c.s.ImageName(), "error", err)
	}
	c.s.Index--
	return c.LoadCurrent()
}

// Save writes the current image's labels. Without a decoded image it does
// nothing.
func (c *Controller) Save() error {
	s := c.s
	if !s.HasImage() {
		return nil
	}
	name := s.ImageName()
	had := s.Layout.HasLabels(name)
	err := labels.Save(s.Layout, name, s.Store.Boxes(), s.Current.Width, s.Current.Height, s.Registry.Name)
	if err != nil {
		return err
	}
	if !had {
		s.Labeled++
	}
	c.logger.Debug("saved labels", "session", s.ID, "image", name, "boxes", s.Store.Len())
	return nil
}

// Quit saves on a best-effort basis. The error is logged and returned but
// callers must exit regardless.
func (c *Controller) Quit() error {
	err := c.Save()
	if err != nil {
		c.logger.Warn("could not save on exit", "error", err)
	}
	return err
}

// AddClass registers name and makes it the active class.
func (c *Controller) AddClass(name string) (classes.Added, error) {
	added, err := c.s.Registry.Add(name)
	if errors.Is(err, classes.ErrEmptyName) {
		return added, err
	}
	c.s.ActiveClass = added.ID
	if err != nil {
		c.logger.Error("class list write failed", "error", err)
		return added, err
	}
	if added.Created {
		c.logger.Info("added class", "id", added.ID, "name", c.s.Registry.Name(added.ID))
		if c.cfg.WriteDatasetManifest && c.s.Layout.Folder != "" {
			if err := classes.WriteManifest(c.s.Layout.ManifestPath(), c.s.Layout.Folder, c.s.Registry); err != nil {
				c.logger.Warn("dataset manifest write failed", "error", err)
			}
		}
	} else {
		c.logger.Debug("class exists", "id", added.ID)
	}
	return added, nil
}

// SelectClass makes id the active class if it is registered.
func (c *Controller) SelectClass(id int) bool {
	if !c.s.Registry.Has(id) {
		return false
	}
	c.s.ActiveClass = id
	return true
}

// ActiveClass returns the class new boxes get.
func (c *Controller) ActiveClass() int { return c.s.ActiveClass }

// Classes returns the registry rows sorted by ID.
func (c *Controller) Classes() []classes.Entry { return c.s.Registry.Entries() }

// Progress snapshots the title and counter data.
func (c *Controller) Progress() model.ProgressModel {
	s := c.s
	p := model.ProgressModel{
		Image:     s.ImageName(),
		ClassID:   s.ActiveClass,
		ClassName: s.Registry.Name(s.ActiveClass),
		Index:     s.Index,
		Total:     len(s.Images),
		Labeled:   s.Labeled,
	}
	if s.Store != nil {
		p.Boxes = s.Store.Len()
	}
	return p
}

// RenderStats returns the render cache counters.
func (c *Controller) RenderStats() render.Stats { return c.s.Render.Stats() }

// HelpVisible reports whether the help overlay is shown.
func (c *Controller) HelpVisible() bool { return c.overlay.Visible() }
