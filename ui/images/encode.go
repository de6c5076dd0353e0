package images

import (
	"bytes"
	"image"
	"image/png"
	"sync"
)

// Tk photos are fed PNG data; speed matters more than size for a canvas
// repainted on every drag event.
var pngEncoder = png.Encoder{CompressionLevel: png.BestSpeed, BufferPool: &encoderBuffers{}}

type encoderBuffers struct{ p sync.Pool }

func (b *encoderBuffers) Get() *png.EncoderBuffer {
	if v, ok := b.p.Get().(*png.EncoderBuffer); ok {
		return v
	}
	return nil
}

func (b *encoderBuffers) Put(buf *png.EncoderBuffer) { b.p.Put(buf) }

// EncodePNG encodes an image to PNG bytes. Errors are ignored and may return an empty slice.
func EncodePNG(img image.Image) []byte {
	if img == nil {
		return nil
	}
	var buf bytes.Buffer
	_ = pngEncoder.Encode(&buf, img)
	return buf.Bytes()
}
