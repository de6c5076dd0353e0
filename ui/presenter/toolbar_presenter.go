package presenter

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/soocke/boxlabeler-go/domain/classes"
	"github.com/soocke/boxlabeler-go/domain/labels"
	"github.com/soocke/boxlabeler-go/ui/model"
)

// FolderPickerTitle titles the directory chooser.
const FolderPickerTitle = "Select Folder of Images"

// ClassController narrows the controller to toolbar operations.
type ClassController interface {
	Classes() []classes.Entry
	ActiveClass() int
	AddClass(name string) (classes.Added, error)
	SelectClass(id int) bool
	OpenFolder(folder string) (model.Outcome, error)
}

// ToolbarView shows the class dropdown and asks for folders.
type ToolbarView interface {
	SetClasses(items []string, selected int)
	ClearClassEntry()
	ChooseFolder(title string) string
}

// ToolbarPresenter keeps the class dropdown in sync and handles the add,
// select and open-folder actions.
type ToolbarPresenter struct {
	ctl    ClassController
	view   ToolbarView
	app    AppView
	canvas *CanvasPresenter
	logger *slog.Logger

	ids      []int
	items    []string
	selected int
}

// NewToolbarPresenter returns a new ToolbarPresenter.
func NewToolbarPresenter(ctl ClassController, view ToolbarView, app AppView, canvas *CanvasPresenter, logger *slog.Logger) *ToolbarPresenter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ToolbarPresenter{ctl: ctl, view: view, app: app, canvas: canvas, logger: logger, selected: -1}
}

// ClassItem formats a dropdown entry.
func ClassItem(e classes.Entry) string { return fmt.Sprintf("%d: %s", e.ID, e.Name) }

// Refresh pushes the class list when it or the active class changed.
func (p *ToolbarPresenter) Refresh() {
	if p == nil || p.ctl == nil || p.view == nil {
		return
	}
	entries := p.ctl.Classes()
	ids := make([]int, len(entries))
	items := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
		items[i] = ClassItem(e)
	}
	selected := slices.Index(ids, p.ctl.ActiveClass())
	if slices.Equal(items, p.items) && selected == p.selected {
		return
	}
	p.ids, p.items, p.selected = ids, items, selected
	p.view.SetClasses(items, selected)
}

// OnSelect handles a dropdown pick by position.
func (p *ToolbarPresenter) OnSelect(index int) {
	if p == nil || p.ctl == nil || index < 0 || index >= len(p.ids) {
		return
	}
	if p.ctl.SelectClass(p.ids[index]) {
		p.logger.Debug("class selected", "id", p.ids[index])
		p.canvas.Invalidate()
	}
}

// OnAdd registers the typed class name and selects it. Blank input is
// ignored.
func (p *ToolbarPresenter) OnAdd(name string) {
	if p == nil || p.ctl == nil {
		return
	}
	_, err := p.ctl.AddClass(name)
	switch {
	case errors.Is(err, classes.ErrEmptyName):
		return
	case err != nil:
		if p.app != nil {
			p.app.ShowWarning("Class Error", fmt.Sprintf("Could not save class list:\n%v", err))
		}
	}
	if p.view != nil {
		p.view.ClearClassEntry()
	}
	p.Refresh()
	p.canvas.Invalidate()
}

// OnOpenFolder asks for a folder and opens it.
func (p *ToolbarPresenter) OnOpenFolder() {
	if p == nil || p.view == nil {
		return
	}
	folder := p.view.ChooseFolder(FolderPickerTitle)
	if folder == "" {
		return
	}
	p.Open(folder)
}

// Open switches the session to folder and reports problems to the user.
func (p *ToolbarPresenter) Open(folder string) model.Outcome {
	if p == nil || p.ctl == nil {
		return model.OutcomeEmpty
	}
	out, err := p.ctl.OpenFolder(folder)
	switch {
	case errors.Is(err, labels.ErrNoImages):
		if p.app != nil {
			p.app.ShowInfo("No images", "No images found in the folder!")
		}
	case err != nil:
		p.logger.Error("open folder failed", "folder", folder, "error", err)
		if p.app != nil {
			p.app.ShowWarning("Open Folder", err.Error())
		}
	}
	p.Refresh()
	if err != nil {
		p.canvas.Invalidate()
		return out
	}
	p.canvas.Navigate(out)
	return out
}
