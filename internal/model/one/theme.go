package one

import (
	"image/color"

	"github.com/rook-computer/fwdisplay/internal/render"
)

var (
	ColorBlack = color.RGBA{A: 0xFF}
	ColorWhite = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// FontPixel is the only face; the panel is too small for anything else.
var FontPixel = render.Font{Family: render.FamilyPixel}

const (
	lineHeight   = 13
	headerHeight = lineHeight + 2
)
