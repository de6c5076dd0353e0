package model

import "image"

// SceneBox is a box in canvas coordinates with its caption.
type SceneBox struct {
	X1, Y1, X2, Y2 float64
	ClassID        int
	Label          string
}

// Scene is everything needed to paint the canvas once.
// Bitmap may be nil when no part of the image is visible.
type Scene struct {
	Width, Height  int
	Bitmap         image.Image
	PlaceX, PlaceY float64
	Boxes          []SceneBox
	Provisional    *SceneBox
	Help           []string
	Message        string
}
