package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/rook-computer/fwdisplay/internal/geometry"
	"github.com/rook-computer/fwdisplay/internal/mem"
	"github.com/rook-computer/fwdisplay/internal/render/cache"
	"golang.org/x/image/font"
)

// recordingCanvas records every primitive call in order.
type recordingCanvas struct {
	bounds  geometry.Rect
	clips   []geometry.Rect
	calls   []string
	flushed []geometry.Rect
}

func newRecordingCanvas(w, h int) *recordingCanvas {
	return &recordingCanvas{bounds: geometry.NewRect(0, 0, w, h)}
}

func (c *recordingCanvas) Bounds() geometry.Rect { return c.bounds }

func (c *recordingCanvas) SetClip(r geometry.Rect) { c.clips = append(c.clips, r) }

func (c *recordingCanvas) FillRect(r geometry.Rect, col color.Color) {
	c.calls = append(c.calls, fmt.Sprintf("fill %v", r))
}

func (c *recordingCanvas) DrawImage(x, y int, img image.Image) {
	c.calls = append(c.calls, fmt.Sprintf("image %d,%d", x, y))
}

func (c *recordingCanvas) DrawText(r geometry.Rect, text string, face font.Face, col color.Color, align TextAlign) {
	c.calls = append(c.calls, "text "+text)
}

func (c *recordingCanvas) BlurRect(r geometry.Rect, radius int, dc *cache.DrawingCache) {
	c.calls = append(c.calls, fmt.Sprintf("blur %v r=%d", r, radius))
}

func (c *recordingCanvas) Flush(dirty geometry.Rect) error {
	c.flushed = append(c.flushed, dirty)
	return nil
}

// tracer is a Bar wrapper counting draw and cleanup calls. It lives in the
// test file only, so the production shape set stays closed.
type tracer struct {
	Bar
	log *[]string
	id  string
}

func (p tracer) Draw(c Canvas, dc *cache.DrawingCache) {
	*p.log = append(*p.log, "draw "+p.id)
	p.Bar.Draw(c, dc)
}

func (p tracer) Cleanup(dc *cache.DrawingCache) {
	*p.log = append(*p.log, "cleanup "+p.id)
}

func (p tracer) CloneAt(a *mem.Arena) Shape {
	if c := mem.Make(a, p); c != nil {
		return c
	}
	return nil
}

// faulty stores a cache entry and then panics while drawing.
type faulty struct{ Bar }

func (f faulty) Draw(c Canvas, dc *cache.DrawingCache) {
	dc.GetOrCompute(cache.Key{Effect: cache.EffectBlur, Region: f.Area, Param: 1}, func() *image.RGBA {
		return image.NewRGBA(f.Area.Image())
	})
	panic("draw failed")
}

func (f faulty) CloneAt(a *mem.Arena) Shape {
	if c := mem.Make(a, f); c != nil {
		return c
	}
	return nil
}
