package model

import (
	"image"
	"regexp"
	"strconv"
	"strings"
)

// geomRe matches window geometry strings in the format "WIDTHxHEIGHT+X+Y".
var geomRe = regexp.MustCompile(`^(\d+)x(\d+)([+-]-?\d+)([+-]-?\d+)$`)

// ParseGeometry parses a Tk geometry string into the window rectangle.
func ParseGeometry(g string) (image.Rectangle, bool) {
	m := geomRe.FindStringSubmatch(strings.TrimSpace(g))
	if len(m) != 5 {
		return image.Rectangle{}, false
	}
	w, _ := strconv.Atoi(m[1])
	h, _ := strconv.Atoi(m[2])
	x, err1 := strconv.Atoi(strings.TrimPrefix(m[3], "+"))
	y, err2 := strconv.Atoi(strings.TrimPrefix(m[4], "+"))
	if w <= 0 || h <= 0 || err1 != nil || err2 != nil {
		return image.Rectangle{}, false
	}
	return image.Rect(x, y, x+w, y+h), true
}

// CanvasArea returns the canvas size left in a window of the given geometry
// after reserving chrome pixels at the top.
func CanvasArea(g string, chrome int) (w, h int, ok bool) {
	r, ok := ParseGeometry(g)
	if !ok {
		return 0, 0, false
	}
	return r.Dx(), max(r.Dy()-chrome, 1), true
}
