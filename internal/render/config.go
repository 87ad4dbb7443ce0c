package render

import (
	"image/color"
	"time"
)

// Default render configuration shared by every hardware variant.
var (
	// Background used to clear off-screen canvases before the first pass.
	Background = color.RGBA{A: 0xFF}

	// DPI used when rasterizing TrueType faces.
	FontDPI = 72.0

	// MaxRetained bounds the number of shapes an Animation can keep alive.
	MaxRetained = 16

	// FrameInterval is the pause between consecutive animation frames.
	FrameInterval = 40 * time.Millisecond
)
