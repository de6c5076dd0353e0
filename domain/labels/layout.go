// Package labels reads and writes per-image box labels and works out where
// a labeling session should resume.
package labels

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var (
	// ErrInvalidFolder is returned when an image folder cannot be listed.
	ErrInvalidFolder = errors.New("invalid image folder")
	// ErrNoImages is returned when a folder holds no matching images.
	ErrNoImages = errors.New("no images found in folder")
)

// DirName is the labels subdirectory created inside an image folder.
const DirName = "labels"

// DefaultExtensions are the image file extensions listed by default.
var DefaultExtensions = []string{".png", ".jpg", ".jpeg", ".bmp", ".tif", ".tiff"}

// Layout resolves the files that belong to an image folder.
type Layout struct {
	Folder    string
	LabelsDir string
}

// NewLayout returns the layout for folder.
func NewLayout(folder string) Layout {
	return Layout{Folder: folder, LabelsDir: filepath.Join(folder, DirName)}
}

// EnsureDir creates the labels directory if needed.
func (l Layout) EnsureDir() error {
	if err := os.MkdirAll(l.LabelsDir, 0o755); err != nil {
		return fmt.Errorf("create labels dir %s: %w", l.LabelsDir, err)
	}
	return nil
}

// Stem returns the image filename without its final extension. Leading
// dots are part of the name, so ".png" has no extension.
func Stem(image string) string {
	base := filepath.Base(image)
	rest := strings.TrimLeft(base, ".")
	return strings.TrimSuffix(base, filepath.Ext(rest))
}

// ImagePath returns the full path of an image in the folder.
func (l Layout) ImagePath(image string) string { return filepath.Join(l.Folder, image) }

// LabelPath returns labels/<stem>.txt.
func (l Layout) LabelPath(image string) string {
	return filepath.Join(l.LabelsDir, Stem(image)+".txt")
}

// TablePath returns labels/<stem>_boxes.csv.
func (l Layout) TablePath(image string) string {
	return filepath.Join(l.LabelsDir, Stem(image)+"_boxes.csv")
}

// ClassesPath returns the folder's class list file.
func (l Layout) ClassesPath() string { return filepath.Join(l.Folder, "classes.txt") }

// ManifestPath returns the folder's dataset manifest.
func (l Layout) ManifestPath() string { return filepath.Join(l.Folder, "data.yaml") }

// ListImages returns the regular files in folder whose lowercase extension
// is in exts, sorted by name. A nil exts uses DefaultExtensions.
func ListImages(folder string, exts []string) ([]string, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	allowed := make(map[string]struct{}, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" && !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		allowed[e] = struct{}{}
	}
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFolder, folder, err)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, ok := allowed[strings.ToLower(filepath.Ext(e.Name()))]; ok {
			out = append(out, e.Name())
		}
	}
	sort.Strings(out)
	return out, nil
}

// HasLabels reports whether image already has a label file.
func (l Layout) HasLabels(image string) bool {
	_, err := os.Stat(l.LabelPath(image))
	return err == nil
}

// ResumeIndex returns the index of the first image without a label file.
// When every image is labeled it returns the last index; for an empty list
// it returns 0.
func ResumeIndex(l Layout, images []string) int {
	for i, img := range images {
		if !l.HasLabels(img) {
			return i
		}
	}
	if len(images) == 0 {
		return 0
	}
	return len(images) - 1
}

// LabeledCount returns how many images already have a label file.
func LabeledCount(l Layout, images []string) int {
	n := 0
	for _, img := range images {
		if l.HasLabels(img) {
			n++
		}
	}
	return n
}
