// Package cache holds derived pixel data (blurred regions, rasterized QR
// codes) for the duration of a single render pass.
package cache

import (
	"image"

	"github.com/rook-computer/fwdisplay/internal/geometry"
)

type Effect uint8

const (
	EffectBlur Effect = iota + 1
	EffectQRCode
)

func (e Effect) String() string {
	switch e {
	case EffectBlur:
		return "blur"
	case EffectQRCode:
		return "qrcode"
	default:
		return "unknown"
	}
}

// Key identifies one derived bitmap: the effect, the source region it was
// computed from and a single effect parameter (radius, payload hash, ...).
// Effects that read canvas pixels also set Version to the canvas content
// version they read, so any write in between yields a different key.
type Key struct {
	Effect  Effect
	Region  geometry.Rect
	Param   uint64
	Version uint64
}

type Stats struct {
	Entries      int
	Hits         uint64
	Computations uint64
	Pass         uint64
}

// DrawingCache is owned by one renderer and is not safe for concurrent use.
// Entries must be dropped with Invalidate before the next independent pass,
// since the pixels a region was derived from may have changed.
type DrawingCache struct {
	entries      map[Key]*image.RGBA
	hits         uint64
	computations uint64
	pass         uint64
}

func New() *DrawingCache {
	return &DrawingCache{entries: make(map[Key]*image.RGBA)}
}

// GetOrCompute returns the bitmap stored for key, computing and storing it on
// a miss. Within one pass compute runs at most once per key. A nil result
// from compute is not stored.
func (c *DrawingCache) GetOrCompute(key Key, compute func() *image.RGBA) *image.RGBA {
	if img, ok := c.entries[key]; ok {
		c.hits++
		return img
	}
	c.computations++
	img := compute()
	if img != nil {
		c.entries[key] = img
	}
	return img
}

func (c *DrawingCache) Get(key Key) (*image.RGBA, bool) {
	img, ok := c.entries[key]
	return img, ok
}

// Release drops a single entry. It reports whether the entry existed.
func (c *DrawingCache) Release(key Key) bool {
	if _, ok := c.entries[key]; !ok {
		return false
	}
	delete(c.entries, key)
	return true
}

// Invalidate drops every entry and starts a new pass.
func (c *DrawingCache) Invalidate() {
	clear(c.entries)
	c.pass++
}

func (c *DrawingCache) Len() int { return len(c.entries) }

func (c *DrawingCache) Stats() Stats {
	return Stats{
		Entries:      len(c.entries),
		Hits:         c.hits,
		Computations: c.computations,
		Pass:         c.pass,
	}
}
