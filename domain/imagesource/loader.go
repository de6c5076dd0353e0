// Package imagesource decodes images from disk with EXIF orientation applied.
package imagesource

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	lru "github.com/hashicorp/golang-lru/v2"

	// extra decoders for formats the standard library lacks
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrUnreadable marks an image that could not be decoded. It is recoverable:
// the session moves on to the next image.
var ErrUnreadable = errors.New("image unreadable")

// Decoded is an orientation-corrected image and its pixel size.
type Decoded struct {
	Image  image.Image
	Width  int
	Height int
}

// Loader decodes an image file.
type Loader interface {
	Load(path string) (*Decoded, error)
}

// FileLoader decodes straight from disk.
type FileLoader struct{}

// Load implements Loader.
func (FileLoader) Load(path string) (*Decoded, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%w: %s: empty image", ErrUnreadable, path)
	}
	return &Decoded{Image: img, Width: b.Dx(), Height: b.Dy()}, nil
}

// CachedLoader keeps the most recently decoded images so stepping back and
// forth does not decode again.
type CachedLoader struct {
	next  Loader
	cache *lru.Cache[string, *Decoded]
}

// NewCachedLoader wraps next with an LRU of the given size. A size below 1
// returns next unchanged.
func NewCachedLoader(next Loader, size int) Loader {
	if size < 1 {
		return next
	}
	c, err := lru.New[string, *Decoded](size)
	if err != nil {
		return next
	}
	return &CachedLoader{next: next, cache: c}
}

// Load implements Loader. Failures are not cached.
func (c *CachedLoader) Load(path string) (*Decoded, error) {
	if d, ok := c.cache.Get(path); ok {
		return d, nil
	}
	d, err := c.next.Load(path)
	if err != nil {
		return nil, err
	}
	c.cache.Add(path, d)
	return d, nil
}

// Purger is implemented by loaders that hold decoded images.
type Purger interface {
	Purge()
}

// Purge drops all cached images.
func (c *CachedLoader) Purge() { c.cache.Purge() }
