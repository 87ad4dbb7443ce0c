// Package tt is the 240x240 colour model with a dimmable backlight.
package tt

import "github.com/rook-computer/fwdisplay/internal/geometry"

const (
	Width  = 240
	Height = 240
)

// Screen is the full display area.
var Screen = geometry.NewRect(0, 0, Width, Height)
