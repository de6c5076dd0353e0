package presenter

import "github.com/soocke/boxlabeler-go/ui/model"

// ProgressSource snapshots labeling progress.
type ProgressSource interface {
	Progress() model.ProgressModel
}

// StatusView shows the window title and the toolbar counter.
type StatusView interface {
	SetTitle(title string)
	SetCounter(text string)
}

// StatusPresenter formats progress and pushes it to the view. Unchanged
// text is not pushed again.
type StatusPresenter struct {
	src  ProgressSource
	view StatusView

	title   string
	counter string
	pushed  bool
}

// NewStatusPresenter returns a new StatusPresenter.
func NewStatusPresenter(src ProgressSource, view StatusView) *StatusPresenter {
	return &StatusPresenter{src: src, view: view}
}

// Refresh re-reads progress and updates whatever text changed.
func (p *StatusPresenter) Refresh() {
	if p == nil || p.src == nil || p.view == nil {
		return
	}
	pm := p.src.Progress()
	title, counter := pm.Title(), pm.Counter()
	if !p.pushed || title != p.title {
		p.title = title
		p.view.SetTitle(title)
	}
	if !p.pushed || counter != p.counter {
		p.counter = counter
		p.view.SetCounter(counter)
	}
	p.pushed = true
}
