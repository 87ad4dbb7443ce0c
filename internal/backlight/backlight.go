// Package backlight is the boundary to the display backlight hardware.
package backlight

import "time"

// Level is a backlight brightness from 0 (off) to 255 (full).
type Level uint8

type Driver interface {
	SetBacklight(level Level) error
	// FadeBacklightDuration moves from the current level to level over d.
	// It returns once the fade has completed.
	FadeBacklightDuration(level Level, d time.Duration) error
}

type NoopDriver struct{}

func (NoopDriver) SetBacklight(Level) error                         { return nil }
func (NoopDriver) FadeBacklightDuration(Level, time.Duration) error { return nil }

var current Driver = NoopDriver{}

// Use installs d as the process-wide driver. A nil d restores the no-op driver.
func Use(d Driver) {
	if d == nil {
		d = NoopDriver{}
	}
	current = d
}

func Current() Driver { return current }

func Set(level Level) error {
	return current.SetBacklight(level)
}

func Fade(level Level, d time.Duration) error {
	return current.FadeBacklightDuration(level, d)
}
