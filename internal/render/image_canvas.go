package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/rook-computer/fwdisplay/internal/geometry"
	"github.com/rook-computer/fwdisplay/internal/render/cache"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// ImageCanvas draws into an off-screen RGBA buffer.
type ImageCanvas struct {
	img  *image.RGBA
	clip geometry.Rect
	// version counts pixel writes made through the canvas.
	version uint64
}

// NewImageCanvas allocates a width x height canvas cleared to Background.
func NewImageCanvas(width, height int) *ImageCanvas {
	c := WrapImage(image.NewRGBA(image.Rect(0, 0, width, height)))
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{C: Background}, image.Point{}, draw.Src)
	return c
}

// WrapImage uses img as the canvas buffer without copying it.
func WrapImage(img *image.RGBA) *ImageCanvas {
	c := &ImageCanvas{img: img}
	c.clip = c.Bounds()
	return c
}

func (c *ImageCanvas) Image() *image.RGBA { return c.img }

func (c *ImageCanvas) Bounds() geometry.Rect { return geometry.FromImage(c.img.Bounds()) }

func (c *ImageCanvas) Clip() geometry.Rect { return c.clip }

func (c *ImageCanvas) SetClip(r geometry.Rect) {
	c.clip = r.Intersect(c.Bounds())
}

func (c *ImageCanvas) FillRect(r geometry.Rect, col color.Color) {
	r = r.Intersect(c.clip)
	if r.Empty() {
		return
	}
	draw.Draw(c.img, r.Image(), &image.Uniform{C: col}, image.Point{}, draw.Src)
	c.version++
}

func (c *ImageCanvas) DrawImage(x, y int, img image.Image) {
	if img == nil {
		return
	}
	src := img.Bounds()
	dst := geometry.NewRect(x, y, src.Dx(), src.Dy()).Intersect(c.clip)
	if dst.Empty() {
		return
	}
	sp := src.Min.Add(image.Pt(dst.X-x, dst.Y-y))
	draw.Draw(c.img, dst.Image(), img, sp, draw.Over)
	c.version++
}

func (c *ImageCanvas) DrawText(r geometry.Rect, text string, face font.Face, col color.Color, align TextAlign) {
	visible := r.Intersect(c.clip)
	if visible.Empty() || text == "" || face == nil {
		return
	}
	dst, ok := c.img.SubImage(visible.Image()).(*image.RGBA)
	if !ok {
		return
	}
	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
	}
	x := r.X
	switch align {
	case TextAlignCenter:
		x += (r.Width - drawer.MeasureString(text).Ceil()) / 2
	case TextAlignRight:
		x += r.Width - drawer.MeasureString(text).Ceil()
	}
	baseline := r.Y + face.Metrics().Ascent.Ceil()
	drawer.Dot = fixed.P(x, baseline)
	drawer.DrawString(text)
	c.version++
}

func (c *ImageCanvas) BlurRect(r geometry.Rect, radius int, dc *cache.DrawingCache) {
	area := r.Intersect(c.Bounds())
	if radius <= 0 || area.Empty() {
		return
	}
	visible := area.Intersect(c.clip)
	if visible.Empty() {
		return
	}
	compute := func() *image.RGBA { return boxBlur(c.img, area, radius) }
	var blurred *image.RGBA
	if dc != nil {
		blurred = dc.GetOrCompute(c.blurKey(area, radius), compute)
	} else {
		blurred = compute()
	}
	draw.Draw(c.img, visible.Image(), blurred, image.Pt(visible.X, visible.Y), draw.Src)
	c.version++
}

// Version reports how many writes the canvas has seen. Pixels changed
// directly through Image() are not counted.
func (c *ImageCanvas) Version() uint64 { return c.version }

func (c *ImageCanvas) blurKey(area geometry.Rect, radius int) cache.Key {
	return cache.Key{Effect: cache.EffectBlur, Region: area, Param: uint64(radius), Version: c.version}
}
