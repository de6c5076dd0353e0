package images

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/soocke/boxlabeler-go/ui/model"
)

// Overlay geometry in canvas pixels.
const (
	BoxStroke      = 2
	HelpOriginX    = 10
	HelpOriginY    = 10
	HelpPad        = 10
	HelpLineHeight = 16
)

var face = basicfont.Face7x13

// Compose paints a scene into a canvas-sized image: background, the cached
// bitmap at its placement, box outlines with their labels, the box being
// drawn, and the help block on top. The result may be handed back with
// RecycleFrame once the caller is done with it.
func Compose(sc model.Scene) *image.RGBA {
	w, h := max(sc.Width, 1), max(sc.Height, 1)
	dst := acquireFrame(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(CanvasBackground), image.Point{}, draw.Src)

	if sc.Bitmap != nil {
		b := sc.Bitmap.Bounds()
		at := image.Pt(round(sc.PlaceX), round(sc.PlaceY))
		draw.Draw(dst, b.Sub(b.Min).Add(at), sc.Bitmap, b.Min, draw.Over)
	}
	for _, box := range sc.Boxes {
		c := ClassColor(box.ClassID)
		StrokeRect(dst, box.X1, box.Y1, box.X2, box.Y2, c, BoxStroke)
		if box.Label != "" {
			drawText(dst, round(box.X1)+2, round(box.Y1)-2-face.Descent, box.Label, c)
		}
	}
	if p := sc.Provisional; p != nil {
		StrokeRect(dst, p.X1, p.Y1, p.X2, p.Y2, ClassColor(p.ClassID), BoxStroke)
	}
	if sc.Message != "" {
		tw := font.MeasureString(face, sc.Message).Ceil()
		drawText(dst, (w-tw)/2, h/2, sc.Message, MessageColor)
	}
	if len(sc.Help) > 0 {
		drawHelp(dst, sc.Help)
	}
	return dst
}

// StrokeRect outlines the rectangle spanned by two corners in any order.
// Parts outside dst are clipped.
func StrokeRect(dst draw.Image, x1, y1, x2, y2 float64, c color.Color, width int) {
	if width < 1 {
		width = 1
	}
	r := image.Rect(round(x1), round(y1), round(x2), round(y2)) // canonicalized
	src := image.NewUniform(c)
	half := width / 2
	outer := image.Rect(r.Min.X-half, r.Min.Y-half, r.Max.X-half+width, r.Max.Y-half+width)
	edges := [...]image.Rectangle{
		image.Rect(outer.Min.X, outer.Min.Y, outer.Max.X, outer.Min.Y+width),
		image.Rect(outer.Min.X, outer.Max.Y-width, outer.Max.X, outer.Max.Y),
		image.Rect(outer.Min.X, outer.Min.Y, outer.Min.X+width, outer.Max.Y),
		image.Rect(outer.Max.X-width, outer.Min.Y, outer.Max.X, outer.Max.Y),
	}
	for _, e := range edges {
		draw.Draw(dst, e, src, image.Point{}, draw.Src)
	}
}

// HelpBlock returns the rectangle the help overlay covers for lines.
func HelpBlock(lines []string) image.Rectangle {
	widest := 0
	for _, l := range lines {
		widest = max(widest, font.MeasureString(face, l).Ceil())
	}
	bw := widest + HelpPad*3
	bh := len(lines)*HelpLineHeight + HelpPad*2
	return image.Rect(HelpOriginX, HelpOriginY, HelpOriginX+bw, HelpOriginY+bh)
}

func drawHelp(dst *image.RGBA, lines []string) {
	block := HelpBlock(lines)
	draw.Draw(dst, block, image.NewUniform(HelpBackground), image.Point{}, draw.Over)
	StrokeRect(dst, float64(block.Min.X), float64(block.Min.Y), float64(block.Max.X), float64(block.Max.Y), HelpBorder, 1)
	for i, l := range lines {
		if l == "" {
			continue
		}
		y := block.Min.Y + HelpPad + i*HelpLineHeight + face.Ascent
		drawText(dst, block.Min.X+HelpPad, y, l, HelpText)
	}
}

// drawText draws s with its baseline at y.
func drawText(dst draw.Image, x, y int, s string, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func round(v float64) int { return int(math.Floor(v + 0.5)) }
