package render

import (
	"image"
	"image/color"

	"github.com/rook-computer/fwdisplay/internal/geometry"
	"github.com/rook-computer/fwdisplay/internal/render/cache"
	"golang.org/x/image/font"
)

// Canvas is the pixel surface shapes draw onto. All operations are clipped
// to the current clip rectangle.
type Canvas interface {
	Bounds() geometry.Rect

	// SetClip restricts pixel writes to r intersected with Bounds.
	SetClip(r geometry.Rect)

	FillRect(r geometry.Rect, c color.Color)

	// DrawImage composites img with its top-left corner at (x, y).
	DrawImage(x, y int, img image.Image)

	// DrawText draws a single line inside r. r.Y is the top of the line.
	DrawText(r geometry.Rect, text string, face font.Face, c color.Color, align TextAlign)

	// BlurRect replaces the pixels of r with a box blur of the given radius.
	// Implementations may reuse a blurred bitmap from dc for the same region
	// and radius. A radius of zero leaves the canvas untouched.
	BlurRect(r geometry.Rect, radius int, dc *cache.DrawingCache)
}

// Flusher is implemented by canvases backed by a physical display that has
// to be updated after a pass.
type Flusher interface {
	Flush(dirty geometry.Rect) error
}

type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)
