// Package display owns the physical canvas shared by every screen. Exactly
// one canvas is active per process; screens reach it through RendererFor.
package display

import (
	"sync"

	"github.com/rook-computer/fwdisplay/internal/backlight"
	"github.com/rook-computer/fwdisplay/internal/geometry"
	"github.com/rook-computer/fwdisplay/internal/logging"
	"github.com/rook-computer/fwdisplay/internal/mem"
	"github.com/rook-computer/fwdisplay/internal/render"
)

var (
	mu       sync.Mutex
	canvas   render.Canvas
	renderer *render.Renderer
	arena    = newArena(DefaultArenaBytes)
	console  bool

	// Logger receives display diagnostics. It may be nil.
	Logger logging.Logger
)

// Open binds the display to the devices in cfg. A framebuffer that cannot be
// opened is logged and replaced by an off-screen canvas, so screens still
// render (and can be inspected) on hosts without one.
func Open(cfg Config, screen geometry.Rect) error {
	mu.Lock()
	defer mu.Unlock()

	arena = newArena(cfg.ArenaBytes)

	if cfg.Backlight != "" {
		if driver, err := backlight.OpenSysfs(cfg.Backlight); err != nil {
			logError("backlight unavailable: %v", err)
		} else {
			backlight.Use(driver)
			logInfo("backlight %s, max=%d", cfg.Backlight, driver.MaxBrightness)
		}
	}

	if cfg.OLEDBus != "" {
		return openOLED(cfg.OLEDBus, screen)
	}
	if cfg.Device == "" {
		install(render.NewImageCanvas(screen.Width, screen.Height))
		return nil
	}
	fbCanvas, err := render.OpenFBCanvas(cfg.Device, screen.Width, screen.Height)
	if err != nil {
		logError("%v, rendering off-screen", err)
		install(render.NewImageCanvas(screen.Width, screen.Height))
		return err
	}
	fbCanvas.Logger = Logger
	install(fbCanvas)
	dev := fbCanvas.DeviceBounds()
	logInfo("framebuffer %s open, bounds=%dx%d, logical=%dx%d", cfg.Device, dev.Width, dev.Height, screen.Width, screen.Height)

	if err := setGraphicsMode(); err != nil {
		logError("set graphics mode failed: %v", err)
	} else {
		console = true
	}
	return nil
}

func openOLED(bus string, screen geometry.Rect) error {
	if bus == "-" {
		bus = ""
	}
	oled, err := render.OpenOLEDCanvas(bus, screen.Width, screen.Height)
	if err != nil {
		logError("%v, rendering off-screen", err)
		install(render.NewImageCanvas(screen.Width, screen.Height))
		return err
	}
	oled.Logger = Logger
	install(oled)
	logInfo("ssd1306 open on i2c bus %q, %dx%d", bus, screen.Width, screen.Height)
	return nil
}

// Use installs c as the display canvas. The simulator and tests use it to
// capture rendered screens.
func Use(c render.Canvas) {
	mu.Lock()
	defer mu.Unlock()
	install(c)
}

func install(c render.Canvas) {
	canvas = c
	renderer = render.NewRenderer(c)
	renderer.Logger = Logger
}

// RendererFor returns the renderer of the active canvas, creating an
// off-screen canvas of the screen's size when none was installed.
func RendererFor(screen geometry.Rect) *render.Renderer {
	mu.Lock()
	defer mu.Unlock()
	if renderer == nil {
		install(render.NewImageCanvas(screen.Width, screen.Height))
	}
	return renderer
}

// Canvas returns the active canvas, or nil before Open, Use or RendererFor.
func Canvas() render.Canvas {
	mu.Lock()
	defer mu.Unlock()
	return canvas
}

func newArena(capacity int) *mem.Arena {
	a := mem.NewArena(capacity)
	render.ReserveShapes(a)
	return a
}

// Arena returns the scratch arena used for retained shapes.
func Arena() *mem.Arena {
	mu.Lock()
	defer mu.Unlock()
	return arena
}

// Close releases the framebuffer and gives the console back to the kernel.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if console {
		if err := restoreTextMode(); err != nil {
			logError("restore text mode failed: %v", err)
		}
		console = false
	}
	var err error
	switch c := canvas.(type) {
	case *render.FBCanvas:
		err = c.Close()
	case *render.OLEDCanvas:
		err = c.Close()
	}
	canvas = nil
	renderer = nil
	return err
}

// Fader is implemented by hardware models.
type Fader interface {
	Fadein()
	Fadeout()
}

// Show renders one full screen. With fading, the backlight is dimmed while
// the new content is drawn and restored afterwards.
func Show[F Fader](f F, fading bool, screen geometry.Rect, shapes ...render.Shape) render.PassStats {
	if fading {
		f.Fadeout()
	}
	r := RendererFor(screen)
	r.Render(shapes...)
	if fading {
		f.Fadein()
	}
	return r.LastPass()
}

func logInfo(format string, args ...interface{}) {
	if Logger != nil {
		Logger.Infof("display", format, args...)
	}
}

func logError(format string, args ...interface{}) {
	if Logger != nil {
		Logger.Errorf("display", format, args...)
	}
}
