package model

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// AppName prefixes the window title.
const AppName = "BoxLabeler"

// Outcome reports what happened when the session tried to show an image.
type Outcome int

const (
	OutcomeLoaded    Outcome = iota // an image is on screen
	OutcomeCompleted                // navigation passed the last image
	OutcomeEmpty                    // no folder or no images
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLoaded:
		return "loaded"
	case OutcomeCompleted:
		return "completed"
	case OutcomeEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// ProgressModel is a snapshot of what the title bar and counter show.
// The zero value describes a session with no folder.
type ProgressModel struct {
	Image     string
	ClassID   int
	ClassName string
	Boxes     int
	Index     int
	Total     int
	Labeled   int
}

// Title returns the window title.
func (p ProgressModel) Title() string {
	if p.Total == 0 || p.Image == "" {
		return AppName
	}
	return fmt.Sprintf("%s — %s | Class: %d (%s) | Boxes: %d", AppName, p.Image, p.ClassID, p.ClassName, p.Boxes)
}

// Counter returns the position and labeled count text.
func (p ProgressModel) Counter() string {
	if p.Total == 0 {
		return "No images loaded"
	}
	return fmt.Sprintf("Image %s / %s  |  Labeled: %s",
		humanize.Comma(int64(p.Index+1)), humanize.Comma(int64(p.Total)), humanize.Comma(int64(p.Labeled)))
}
