package render

import (
	"image"

	"github.com/rook-computer/fwdisplay/internal/geometry"
	"github.com/rook-computer/fwdisplay/internal/mem"
	"github.com/rook-computer/fwdisplay/internal/render/cache"
)

// Blurring blurs whatever has already been drawn inside Area.
type Blurring struct {
	Area geometry.Rect
	// Radius of the box kernel in pixels; the kernel is 2*Radius+1 wide.
	Radius int
}

func NewBlurring(area geometry.Rect, radius int) Blurring {
	return Blurring{Area: area, Radius: max(radius, 0)}
}

func (s Blurring) Bounds() geometry.Rect { return s.Area }

func (s Blurring) Draw(c Canvas, dc *cache.DrawingCache) {
	c.BlurRect(s.Area, s.Radius, dc)
}

// Cleanup is a no-op: cached blur data belongs to the canvas.
func (Blurring) Cleanup(*cache.DrawingCache) {}

func (s Blurring) CloneAt(a *mem.Arena) Shape {
	if p := mem.Make(a, s); p != nil {
		return p
	}
	return nil
}

func (Blurring) shape() {}

// boxBlur returns a blurred copy of area. The result has the same bounds as
// area. Samples outside area are clamped to its edge, so the output depends
// only on the pixels inside area.
func boxBlur(src *image.RGBA, area geometry.Rect, radius int) *image.RGBA {
	out := image.NewRGBA(area.Image())
	w, h := area.Width, area.Height
	if w == 0 || h == 0 {
		return out
	}
	kernel := uint32(2*radius + 1)
	temp := make([]uint32, w*h*4)

	// Horizontal pass: src -> temp (sums, not yet divided).
	for y := 0; y < h; y++ {
		row := src.PixOffset(area.X, area.Y+y)
		for x := 0; x < w; x++ {
			var r, g, b, a uint32
			for k := -radius; k <= radius; k++ {
				sx := geometry.Clamp(x+k, 0, w-1)
				i := row + sx*4
				r += uint32(src.Pix[i])
				g += uint32(src.Pix[i+1])
				b += uint32(src.Pix[i+2])
				a += uint32(src.Pix[i+3])
			}
			t := (y*w + x) * 4
			temp[t], temp[t+1], temp[t+2], temp[t+3] = r, g, b, a
		}
	}

	// Vertical pass: temp -> out.
	div := kernel * kernel
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var r, g, b, a uint32
			for k := -radius; k <= radius; k++ {
				sy := geometry.Clamp(y+k, 0, h-1)
				t := (sy*w + x) * 4
				r += temp[t]
				g += temp[t+1]
				b += temp[t+2]
				a += temp[t+3]
			}
			o := out.PixOffset(area.X+x, area.Y+y)
			out.Pix[o] = uint8((r + div/2) / div)
			out.Pix[o+1] = uint8((g + div/2) / div)
			out.Pix[o+2] = uint8((b + div/2) / div)
			out.Pix[o+3] = uint8((a + div/2) / div)
		}
	}
	return out
}
