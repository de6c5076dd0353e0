package images

import "image/color"

// Canvas colors.
var (
	CanvasBackground = color.RGBA{0x33, 0x33, 0x33, 0xff}
	MessageColor     = color.RGBA{0xcc, 0xcc, 0xcc, 0xff}
	HelpBackground   = color.RGBA{0, 0, 0, 0x80}
	HelpBorder       = color.RGBA{0x80, 0x80, 0x80, 0xff}
	HelpText         = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// ClassColors cycles by class ID: red, blue, green, orange, purple, cyan,
// magenta, yellow, lime, pink.
var ClassColors = [...]color.RGBA{
	{0xff, 0x00, 0x00, 0xff},
	{0x00, 0x00, 0xff, 0xff},
	{0x00, 0x80, 0x00, 0xff},
	{0xff, 0xa5, 0x00, 0xff},
	{0x80, 0x00, 0x80, 0xff},
	{0x00, 0xff, 0xff, 0xff},
	{0xff, 0x00, 0xff, 0xff},
	{0xff, 0xff, 0x00, 0xff},
	{0x00, 0xff, 0x00, 0xff},
	{0xff, 0xc0, 0xcb, 0xff},
}

// ClassColor returns the outline color for a class ID.
func ClassColor(id int) color.RGBA {
	n := len(ClassColors)
	return ClassColors[((id%n)+n)%n]
}
