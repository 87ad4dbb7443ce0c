package render

import (
	"image"
	"image/color"

	"github.com/rook-computer/fwdisplay/internal/geometry"
	"github.com/rook-computer/fwdisplay/internal/mem"
	"github.com/rook-computer/fwdisplay/internal/render/cache"
)

// Shape is a drawable primitive. The set of shapes is closed: Bar, Blit,
// Text, Blurring and QRCode (and pointers to them, as returned by CloneAt).
//
// A shape is drawn at most once per pass and then cleaned up exactly once.
type Shape interface {
	Bounds() geometry.Rect
	Draw(c Canvas, dc *cache.DrawingCache)
	// Cleanup releases cache entries the shape owns.
	Cleanup(dc *cache.DrawingCache)
	// CloneAt copies the shape into the arena so that it can outlive the
	// caller's frame. It returns nil when the arena is exhausted.
	CloneAt(a *mem.Arena) Shape

	shape()
}

// ReserveShapes preallocates arena storage for MaxRetained clones of every
// shape type, so retaining shapes during an animation stays off the heap.
func ReserveShapes(a *mem.Arena) {
	mem.Reserve[Bar](a, MaxRetained)
	mem.Reserve[Blit](a, MaxRetained)
	mem.Reserve[Text](a, MaxRetained)
	mem.Reserve[Blurring](a, MaxRetained)
	mem.Reserve[QRCode](a, MaxRetained)
}

// Bar fills a rectangle with a solid color.
type Bar struct {
	Area  geometry.Rect
	Color color.RGBA
}

func NewBar(area geometry.Rect, c color.RGBA) Bar { return Bar{Area: area, Color: c} }

func (s Bar) Bounds() geometry.Rect { return s.Area }

func (s Bar) Draw(c Canvas, _ *cache.DrawingCache) { c.FillRect(s.Area, s.Color) }

func (Bar) Cleanup(*cache.DrawingCache) {}

func (s Bar) CloneAt(a *mem.Arena) Shape {
	if p := mem.Make(a, s); p != nil {
		return p
	}
	return nil
}

func (Bar) shape() {}

// Blit copies an image with its top-left corner at (X, Y).
type Blit struct {
	X, Y  int
	Image image.Image
}

func (s Blit) Bounds() geometry.Rect {
	if s.Image == nil {
		return geometry.Rect{X: s.X, Y: s.Y}
	}
	b := s.Image.Bounds()
	return geometry.NewRect(s.X, s.Y, b.Dx(), b.Dy())
}

func (s Blit) Draw(c Canvas, _ *cache.DrawingCache) { c.DrawImage(s.X, s.Y, s.Image) }

func (Blit) Cleanup(*cache.DrawingCache) {}

func (s Blit) CloneAt(a *mem.Arena) Shape {
	if p := mem.Make(a, s); p != nil {
		return p
	}
	return nil
}

func (Blit) shape() {}

// Text draws word-wrapped text inside Area. Lines that do not fit vertically
// are dropped and the last visible line is ellipsized.
type Text struct {
	Area  geometry.Rect
	Text  string
	Font  Font
	Color color.RGBA
	Align TextAlign
}

func (s Text) Bounds() geometry.Rect { return s.Area }

func (s Text) Draw(c Canvas, _ *cache.DrawingCache) {
	face := s.Font.Face()
	lineHeight := LineHeight(face)
	if lineHeight <= 0 {
		return
	}
	lines := WrapText(face, s.Text, s.Area.Width)
	maxLines := s.Area.Height / lineHeight
	if maxLines == 0 && len(lines) > 0 {
		// Still show something when the area is shorter than a line.
		maxLines = 1
	}
	if len(lines) > maxLines {
		lines = lines[:maxLines]
		if maxLines > 0 {
			lines[maxLines-1] = Continued(face, lines[maxLines-1], s.Area.Width)
		}
	}
	for i, line := range lines {
		lineRect := geometry.NewRect(s.Area.X, s.Area.Y+i*lineHeight, s.Area.Width, lineHeight).Intersect(s.Area)
		c.DrawText(lineRect, line, face, s.Color, s.Align)
	}
}

func (Text) Cleanup(*cache.DrawingCache) {}

func (s Text) CloneAt(a *mem.Arena) Shape {
	if p := mem.Make(a, s); p != nil {
		return p
	}
	return nil
}

func (Text) shape() {}
