// Package mercury is the 240x240 model with blurred transitions and a QR
// code on its error screen.
package mercury

import "github.com/rook-computer/fwdisplay/internal/geometry"

const (
	Width  = 240
	Height = 240
)

var Screen = geometry.NewRect(0, 0, Width, Height)
