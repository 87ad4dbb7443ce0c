package display

import (
	"fmt"
	"os"
	"strconv"
)

const (
	EnvDevice     = "FWDISPLAY_FB_DEVICE"
	EnvBacklight  = "FWDISPLAY_BACKLIGHT"
	EnvOLEDBus    = "FWDISPLAY_OLED_I2C"
	EnvArenaBytes = "FWDISPLAY_ARENA_BYTES"
)

const (
	DefaultDevice     = "/dev/fb0"
	DefaultArenaBytes = 4096
)

// Config selects the physical devices behind the display.
//
// An empty Device renders off-screen only; an empty Backlight keeps the
// no-op backlight driver. OLEDBus selects an SSD1306 panel on that I2C bus
// instead of the framebuffer ("-" for the first bus found).
type Config struct {
	Device     string
	Backlight  string
	OLEDBus    string
	ArenaBytes int
}

func ConfigFromEnv(defaultDevice string) (Config, error) {
	device, ok := os.LookupEnv(EnvDevice)
	if !ok {
		device = defaultDevice
	}

	arenaBytes := DefaultArenaBytes
	if raw := os.Getenv(EnvArenaBytes); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be an integer (got %q): %w", EnvArenaBytes, raw, err)
		}
		if parsed < 0 {
			return Config{}, fmt.Errorf("%s must not be negative (got %d)", EnvArenaBytes, parsed)
		}
		arenaBytes = parsed
	}

	return Config{
		Device:     device,
		Backlight:  os.Getenv(EnvBacklight),
		OLEDBus:    os.Getenv(EnvOLEDBus),
		ArenaBytes: arenaBytes,
	}, nil
}
