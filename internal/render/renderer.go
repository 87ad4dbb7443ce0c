package render

import (
	"github.com/rook-computer/fwdisplay/internal/geometry"
	"github.com/rook-computer/fwdisplay/internal/logging"
	"github.com/rook-computer/fwdisplay/internal/render/cache"
)

// PassStats describes the most recent render pass.
type PassStats struct {
	Shapes    int
	Drawn     int
	CleanedUp int
	Dirty     geometry.Rect
}

// Renderer composites shape sequences onto a canvas. It owns the drawing
// cache, which lives for exactly one pass.
type Renderer struct {
	Canvas Canvas
	Cache  *cache.DrawingCache
	Logger logging.Logger

	last PassStats
}

func NewRenderer(canvas Canvas) *Renderer {
	return &Renderer{Canvas: canvas, Cache: cache.New()}
}

// Render draws shapes in sequence order and cleans each one up right after
// it is drawn. Shapes with empty bounds are not drawn but are still cleaned
// up. Pixel writes are restricted to the union of all bounds, which is
// returned. The drawing cache is invalidated when the pass ends.
func (r *Renderer) Render(shapes ...Shape) geometry.Rect {
	if r.Cache == nil {
		r.Cache = cache.New()
	}
	screen := r.Canvas.Bounds()

	var dirty geometry.Rect
	for _, s := range shapes {
		b := s.Bounds()
		if !screen.Contains(b) && r.Logger != nil {
			r.Logger.Errorf("render", "shape bounds %+v outside screen %+v, clipping", b, screen)
		}
		dirty = dirty.Union(b)
	}
	dirty = dirty.Intersect(screen)

	stats := PassStats{Shapes: len(shapes), Dirty: dirty}
	r.Canvas.SetClip(dirty)
	// A panicking shape must not leave the clip narrowed or this pass's
	// entries behind for whoever renders next.
	defer func() {
		r.Canvas.SetClip(screen)
		r.Cache.Invalidate()
	}()
	for _, s := range shapes {
		if !s.Bounds().Empty() {
			s.Draw(r.Canvas, r.Cache)
			stats.Drawn++
		}
		s.Cleanup(r.Cache)
		stats.CleanedUp++
	}

	if f, ok := r.Canvas.(Flusher); ok && !dirty.Empty() {
		if err := f.Flush(dirty); err != nil && r.Logger != nil {
			r.Logger.Errorf("render", "flush %+v failed: %v", dirty, err)
		}
	}
	r.last = stats
	return dirty
}

// LastPass returns statistics of the most recent Render call.
func (r *Renderer) LastPass() PassStats { return r.last }
