package render

import (
	"fmt"
	"image/color"

	fb "github.com/gonutz/framebuffer"
	"github.com/rook-computer/fwdisplay/internal/geometry"
	"github.com/rook-computer/fwdisplay/internal/logging"
)

// FBCanvas renders into an off-screen logical canvas and copies dirty
// regions to a Linux framebuffer device, scaling with nearest-neighbour
// sampling when the device resolution differs from the logical one.
type FBCanvas struct {
	*ImageCanvas

	dev    *fb.Device
	Logger logging.Logger
}

// OpenFBCanvas opens the framebuffer device (usually /dev/fb0) behind a
// logical canvas of width x height pixels.
func OpenFBCanvas(device string, width, height int) (*FBCanvas, error) {
	dev, err := fb.Open(device)
	if err != nil {
		return nil, fmt.Errorf("open framebuffer %s: %w", device, err)
	}
	return &FBCanvas{ImageCanvas: NewImageCanvas(width, height), dev: dev}, nil
}

// DeviceBounds returns the physical resolution.
func (c *FBCanvas) DeviceBounds() geometry.Rect {
	return geometry.FromImage(c.dev.Bounds())
}

// Flush copies the dirty part of the logical canvas to the device.
func (c *FBCanvas) Flush(dirty geometry.Rect) error {
	if c.dev == nil {
		return nil
	}
	logical := c.Bounds()
	dirty = dirty.Intersect(logical)
	if dirty.Empty() {
		return nil
	}
	bounds := c.dev.Bounds()
	fbWidth := bounds.Dx()
	fbHeight := bounds.Dy()

	// Device pixels whose sample falls into the dirty region.
	x0 := ceilDiv(dirty.X*fbWidth, logical.Width)
	x1 := ceilDiv(dirty.X1()*fbWidth, logical.Width)
	y0 := ceilDiv(dirty.Y*fbHeight, logical.Height)
	y1 := ceilDiv(dirty.Y1()*fbHeight, logical.Height)

	img := c.Image()
	for y := y0; y < y1; y++ {
		sy := (y * logical.Height) / fbHeight
		for x := x0; x < x1; x++ {
			sx := (x * logical.Width) / fbWidth
			pixel := img.RGBAAt(sx, sy)
			c.dev.Set(bounds.Min.X+x, bounds.Min.Y+y, color.RGBA{R: pixel.R, G: pixel.G, B: pixel.B, A: 0xFF})
		}
	}
	return nil
}

func (c *FBCanvas) Close() error {
	if c.dev == nil {
		return nil
	}
	c.dev.Close()
	c.dev = nil
	return nil
}

func ceilDiv(a, b int) int {
	if b == 0 {
		return 0
	}
	return (a + b - 1) / b
}
