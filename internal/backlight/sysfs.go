package backlight

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const defaultFadeStep = 10 * time.Millisecond

// SysfsDriver drives a backlight exposed under /sys/class/backlight/<name>.
// Levels are scaled to the device's max_brightness.
type SysfsDriver struct {
	Dir           string
	MaxBrightness int
	FadeStep      time.Duration

	sleep   func(time.Duration)
	current Level
}

// OpenSysfs reads max_brightness from dir and starts from the level the
// device currently reports.
func OpenSysfs(dir string) (*SysfsDriver, error) {
	maxBrightness, err := readInt(filepath.Join(dir, "max_brightness"))
	if err != nil {
		return nil, fmt.Errorf("backlight %s: %w", dir, err)
	}
	if maxBrightness <= 0 {
		return nil, fmt.Errorf("backlight %s: max_brightness is %d", dir, maxBrightness)
	}
	d := &SysfsDriver{Dir: dir, MaxBrightness: maxBrightness, FadeStep: defaultFadeStep, sleep: time.Sleep}
	if raw, err := readInt(filepath.Join(dir, "brightness")); err == nil {
		d.current = Level(min(raw*255/maxBrightness, 255))
	}
	return d, nil
}

func (d *SysfsDriver) SetBacklight(level Level) error {
	value := int(level) * d.MaxBrightness / 255
	path := filepath.Join(d.Dir, "brightness")
	if err := os.WriteFile(path, []byte(strconv.Itoa(value)), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	d.current = level
	return nil
}

// FadeBacklightDuration steps linearly from the current level to level,
// writing once per FadeStep, and returns when the target is reached.
func (d *SysfsDriver) FadeBacklightDuration(level Level, duration time.Duration) error {
	step := d.FadeStep
	if step <= 0 {
		step = defaultFadeStep
	}
	sleep := d.sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	steps := int(duration / step)
	start := int(d.current)
	for i := 1; i < steps; i++ {
		next := start + (int(level)-start)*i/steps
		if err := d.SetBacklight(Level(next)); err != nil {
			return err
		}
		sleep(step)
	}
	return d.SetBacklight(level)
}

// Level returns the last level written.
func (d *SysfsDriver) Level() Level { return d.current }

func readInt(path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", path, err)
	}
	return value, nil
}
