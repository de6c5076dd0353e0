package view

import (
	"image"
	"runtime"

	"github.com/soocke/boxlabeler-go/domain/viewport"
	"github.com/soocke/boxlabeler-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// CanvasInput receives translated canvas events.
type CanvasInput interface {
	OnPress(x, y float64)
	OnDrag(x, y float64)
	OnRelease(x, y float64)
	OnSecondary(x, y float64)
	OnPanStart(x, y float64)
	OnPanDrag(x, y float64)
	OnPanEnd()
	OnWheel(g viewport.Gesture, delta, units int, x, y float64)
	OnKey(keysym string) bool
}

// canvasView shows the composed viewport in a label. The previous Tk photo
// is deleted whenever a new one replaces it.
type canvasView struct {
	label *LabelWidget
	photo *Img
}

func newCanvasView(row int) *canvasView {
	placeholder := image.NewRGBA(image.Rect(0, 0, 1, 1))
	photo := NewPhoto(Data(images.EncodePNG(placeholder)))
	label := Label(Image(photo), Borderwidth(0), Background("#333333"), Anchor("nw"))
	Grid(label, Row(row), Column(0), Sticky("nsew"))
	return &canvasView{label: label, photo: photo}
}

// Show replaces the displayed image. Composed frames are recycled once
// encoded.
func (v *canvasView) Show(img image.Image) {
	if v == nil || v.label == nil || img == nil {
		return
	}
	data := images.EncodePNG(img)
	if rgba, ok := img.(*image.RGBA); ok {
		images.RecycleFrame(rgba)
	}
	if v.photo != nil {
		v.photo.Delete()
	}
	v.photo = NewPhoto(Data(data))
	v.label.Configure(Image(v.photo))
}

// wheelUnits is the raw <MouseWheel> delta per notch. Aqua reports notches
// directly; Windows and X11 report multiples of 120.
func wheelUnits() int {
	if runtime.GOOS == "darwin" {
		return viewport.UnitsNotch
	}
	return viewport.UnitsWheel120
}

func (v *canvasView) bind(in CanvasInput) {
	if v == nil || v.label == nil || in == nil {
		return
	}
	w := v.label
	pt := func(e *Event) (float64, float64) { return float64(e.X), float64(e.Y) }

	Bind(w, "<Enter>", Command(func() { Focus(w) }))

	Bind(w, "<ButtonPress-1>", Command(func(e *Event) { in.OnPress(pt(e)) }))
	Bind(w, "<B1-Motion>", Command(func(e *Event) { in.OnDrag(pt(e)) }))
	Bind(w, "<ButtonRelease-1>", Command(func(e *Event) { in.OnRelease(pt(e)) }))
	Bind(w, "<ButtonPress-3>", Command(func(e *Event) { in.OnSecondary(pt(e)) }))

	Bind(w, "<ButtonPress-2>", Command(func(e *Event) { in.OnPanStart(pt(e)) }))
	Bind(w, "<B2-Motion>", Command(func(e *Event) { in.OnPanDrag(pt(e)) }))
	Bind(w, "<ButtonRelease-2>", Command(func() { in.OnPanEnd() }))

	units := wheelUnits()
	wheel := func(g viewport.Gesture) func(e *Event) {
		return func(e *Event) {
			x, y := pt(e)
			in.OnWheel(g, e.Delta, units, x, y)
		}
	}
	Bind(w, "<MouseWheel>", Command(wheel(viewport.GesturePlain)))
	Bind(w, "<Shift-MouseWheel>", Command(wheel(viewport.GestureShift)))
	Bind(w, "<Control-MouseWheel>", Command(wheel(viewport.GestureZoom)))

	// X11 servers that still deliver the wheel as buttons 4 and 5.
	button := func(g viewport.Gesture, notch int) func(e *Event) {
		return func(e *Event) {
			x, y := pt(e)
			in.OnWheel(g, notch, viewport.UnitsNotch, x, y)
		}
	}
	for _, m := range []struct {
		prefix string
		g      viewport.Gesture
	}{{"", viewport.GesturePlain}, {"Shift-", viewport.GestureShift}, {"Control-", viewport.GestureZoom}} {
		Bind(w, "<"+m.prefix+"Button-4>", Command(button(m.g, 1)))
		Bind(w, "<"+m.prefix+"Button-5>", Command(button(m.g, -1)))
	}

	Bind(w, "<KeyPress>", Command(func(e *Event) { in.OnKey(e.Keysym) }))
}
