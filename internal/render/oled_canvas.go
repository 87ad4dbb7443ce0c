package render

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/rook-computer/fwdisplay/internal/geometry"
	"github.com/rook-computer/fwdisplay/internal/logging"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/devices/v3/ssd1306/image1bit"
	"periph.io/x/host/v3"
)

// OLEDCanvas drives a monochrome SSD1306 panel on an I2C bus. Pixels are
// lit when their luminance is at least half.
type OLEDCanvas struct {
	*ImageCanvas

	bus    i2c.BusCloser
	dev    *ssd1306.Dev
	mono   *image1bit.VerticalLSB
	Logger logging.Logger
}

// OpenOLEDCanvas opens the I2C bus by name ("" picks the first one) and
// the panel on it.
func OpenOLEDCanvas(busName string, width, height int) (*OLEDCanvas, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("periph host init: %w", err)
	}
	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("open i2c bus %q: %w", busName, err)
	}
	opts := ssd1306.DefaultOpts
	opts.W, opts.H = width, height
	dev, err := ssd1306.NewI2C(bus, &opts)
	if err != nil {
		bus.Close()
		return nil, fmt.Errorf("ssd1306 on %q: %w", busName, err)
	}
	canvas := NewImageCanvas(width, height)
	return &OLEDCanvas{
		ImageCanvas: canvas,
		bus:         bus,
		dev:         dev,
		mono:        image1bit.NewVerticalLSB(canvas.Image().Bounds()),
	}, nil
}

// Flush thresholds the dirty region and sends it to the panel.
func (c *OLEDCanvas) Flush(dirty geometry.Rect) error {
	if c.dev == nil {
		return nil
	}
	dirty = dirty.Intersect(c.Bounds())
	if dirty.Empty() {
		return nil
	}
	toMono(c.mono, c.Image(), dirty)
	r := dirty.Image()
	if err := c.dev.Draw(r, c.mono, r.Min); err != nil {
		return fmt.Errorf("ssd1306 draw %v: %w", r, err)
	}
	return nil
}

func (c *OLEDCanvas) Close() error {
	if c.dev == nil {
		return nil
	}
	err := c.dev.Halt()
	if cerr := c.bus.Close(); err == nil {
		err = cerr
	}
	c.dev = nil
	return err
}

// toMono converts r of src into dst using image1bit's luminance threshold.
func toMono(dst *image1bit.VerticalLSB, src *image.RGBA, r geometry.Rect) {
	rect := r.Image()
	draw.Draw(dst, rect, src, rect.Min, draw.Src)
}
