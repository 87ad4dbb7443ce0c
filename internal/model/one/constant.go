// Package one is the 128x64 monochrome model. It has no controllable
// backlight.
package one

import "github.com/rook-computer/fwdisplay/internal/geometry"

const (
	Width  = 128
	Height = 64
)

var Screen = geometry.NewRect(0, 0, Width, Height)
