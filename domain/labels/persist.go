package labels

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/soocke/boxlabeler-go/domain/annotation"
)

// Save overwrites both label files for image with boxes.
func Save(l Layout, image string, boxes []annotation.Box, imageW, imageH int, name func(int) string) error {
	if imageW <= 0 || imageH <= 0 {
		return fmt.Errorf("save labels %s: invalid image size %dx%d", image, imageW, imageH)
	}
	if err := l.EnsureDir(); err != nil {
		return err
	}
	var txt bytes.Buffer
	if err := EncodeNormalized(&txt, boxes, imageW, imageH); err != nil {
		return fmt.Errorf("encode labels %s: %w", image, err)
	}
	if err := os.WriteFile(l.LabelPath(image), txt.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write labels %s: %w", l.LabelPath(image), err)
	}
	var table bytes.Buffer
	if err := WriteTable(&table, boxes, name); err != nil {
		return fmt.Errorf("encode table %s: %w", image, err)
	}
	if err := os.WriteFile(l.TablePath(image), table.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write table %s: %w", l.TablePath(image), err)
	}
	return nil
}

// Loaded is the result of reading an image's label file.
type Loaded struct {
	Boxes   []annotation.Box
	Found   bool
	Skipped int
}

// Load reads the label file for image, converting to pixels with the
// current image size. A missing file is not an error.
func Load(l Layout, image string, imageW, imageH int) (Loaded, error) {
	f, err := os.Open(l.LabelPath(image))
	if errors.Is(err, os.ErrNotExist) {
		return Loaded{}, nil
	}
	if err != nil {
		return Loaded{}, fmt.Errorf("open labels %s: %w", l.LabelPath(image), err)
	}
	defer f.Close()
	boxes, skipped, err := DecodeNormalized(f, imageW, imageH)
	if err != nil {
		return Loaded{Boxes: boxes, Found: true, Skipped: skipped}, fmt.Errorf("read labels %s: %w", l.LabelPath(image), err)
	}
	return Loaded{Boxes: boxes, Found: true, Skipped: skipped}, nil
}
