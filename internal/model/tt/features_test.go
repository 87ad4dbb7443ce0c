package tt

import (
	"fmt"
	"image"
	"testing"
	"time"

	"github.com/rook-computer/fwdisplay/internal/backlight"
	"github.com/rook-computer/fwdisplay/internal/display"
	"github.com/rook-computer/fwdisplay/internal/geometry"
	"github.com/rook-computer/fwdisplay/internal/render"
)

type recordingDriver struct{ calls []string }

func (d *recordingDriver) SetBacklight(level backlight.Level) error {
	d.calls = append(d.calls, fmt.Sprintf("set %d", level))
	return nil
}

func (d *recordingDriver) FadeBacklightDuration(level backlight.Level, dur time.Duration) error {
	d.calls = append(d.calls, fmt.Sprintf("fade %d %v", level, dur))
	return nil
}

func TestScreenDimensions(t *testing.T) {
	want := geometry.Rect{X: 0, Y: 0, Width: 240, Height: 240}
	if got := (Features{}).Screen(); got != want {
		t.Errorf("Screen() = %+v, want %+v", got, want)
	}
}

func TestBacklight(t *testing.T) {
	d := &recordingDriver{}
	backlight.Use(d)
	defer backlight.Use(nil)

	f := Features{}
	f.BacklightOn()
	f.Fadeout()
	f.Fadein()

	var want []string
	if backlight.Available {
		want = []string{"set 150", "fade 5 150ms", "fade 150 150ms"}
	}
	if fmt.Sprint(d.calls) != fmt.Sprint(want) {
		t.Errorf("calls = %v, want %v", d.calls, want)
	}
}

func textRegions(shapes []render.Shape) []geometry.Rect {
	var regions []geometry.Rect
	for _, s := range shapes {
		if text, ok := s.(render.Text); ok {
			regions = append(regions, text.Bounds())
		}
	}
	return regions
}

// inked reports whether r holds any pixel that differs from its top-left one.
func inked(img *image.RGBA, r geometry.Rect) bool {
	backdrop := img.RGBAAt(r.X, r.Y)
	for y := r.Y; y < r.Y1(); y++ {
		for x := r.X; x < r.X1(); x++ {
			if img.RGBAAt(x, y) != backdrop {
				return true
			}
		}
	}
	return false
}

func TestScreenFatalError(t *testing.T) {
	canvas := render.NewImageCanvas(Width, Height)
	display.Use(canvas)
	defer display.Close()

	shapes := fatalErrorShapes("Error", "Something failed", "Contact support")
	regions := textRegions(shapes[:])
	if len(regions) != 3 {
		t.Fatalf("text regions = %d, want 3", len(regions))
	}
	for i, r := range regions {
		if r.Empty() || !Screen.Contains(r) {
			t.Errorf("region %d %+v not inside screen", i, r)
		}
		for j := i + 1; j < len(regions); j++ {
			if r.Overlaps(regions[j]) {
				t.Errorf("regions %d and %d overlap", i, j)
			}
		}
	}

	Features{}.ScreenFatalError("Error", "Something failed", "Contact support")

	stats := display.RendererFor(Screen).LastPass()
	if stats.CleanedUp != len(shapes) || stats.Shapes != len(shapes) {
		t.Errorf("pass = %+v, want %d shapes cleaned up", stats, len(shapes))
	}
	for i, r := range regions {
		if !inked(canvas.Image(), r) {
			t.Errorf("text region %d is blank", i)
		}
	}
}

func TestScreenBootStage2(t *testing.T) {
	canvas := render.NewImageCanvas(Width, Height)
	display.Use(canvas)
	defer display.Close()

	Features{}.ScreenBootStage2()

	shapes := welcomeShapes()
	for _, r := range textRegions(shapes[:]) {
		if !inked(canvas.Image(), r) {
			t.Errorf("welcome region %+v is blank", r)
		}
	}
}
