package viewport

// PanStep is the canvas distance panned per wheel notch.
const PanStep = 40.0

// Raw wheel units per notch reported by the input backends.
const (
	UnitsWheel120 = 120 // Windows and X11 <MouseWheel> deltas
	UnitsNotch    = 1   // backends that already report notches
)

// Gesture selects what a wheel notch does.
type Gesture int

const (
	GesturePlain Gesture = iota // pan vertically
	GestureShift                // pan horizontally
	GestureZoom                 // zoom at the pointer
)

func (g Gesture) String() string {
	switch g {
	case GesturePlain:
		return "pan-y"
	case GestureShift:
		return "pan-x"
	case GestureZoom:
		return "zoom"
	default:
		return "unknown"
	}
}

// NormalizeWheel converts a raw backend delta into whole notches using
// floor division, so a partial negative delta still counts as one notch down.
func NormalizeWheel(delta, unitsPerNotch int) int {
	if unitsPerNotch <= 1 {
		return delta
	}
	n := delta / unitsPerNotch
	if delta%unitsPerNotch != 0 && delta < 0 {
		n--
	}
	return n
}

// GestureNotches converts a raw delta into notches for g. Zoom moves one
// level per event in the direction of any nonzero delta; pans use
// NormalizeWheel.
func GestureNotches(g Gesture, delta, unitsPerNotch int) int {
	if g != GestureZoom {
		return NormalizeWheel(delta, unitsPerNotch)
	}
	switch {
	case delta > 0:
		return 1
	case delta < 0:
		return -1
	default:
		return 0
	}
}

// Wheel applies notches of the given gesture with the pointer at (cx, cy)
// and returns the new transform plus whether anything changed.
// step is the pan distance per notch; values <= 0 use PanStep.
func (t Transform) Wheel(g Gesture, notches int, cx, cy, step float64) (Transform, bool) {
	if notches == 0 {
		return t, false
	}
	if step <= 0 {
		step = PanStep
	}
	switch g {
	case GestureShift:
		return t.Pan(float64(notches)*step, 0), true
	case GestureZoom:
		return t.ZoomStep(cx, cy, notches)
	default:
		return t.Pan(0, float64(notches)*step), true
	}
}
