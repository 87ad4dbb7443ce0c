package mercury

import (
	"time"

	"github.com/rook-computer/fwdisplay/internal/backlight"
	"github.com/rook-computer/fwdisplay/internal/display"
	"github.com/rook-computer/fwdisplay/internal/geometry"
	"github.com/rook-computer/fwdisplay/internal/render"
)

const fadeDuration = 150 * time.Millisecond

type Features struct{}

func (Features) Screen() geometry.Rect { return Screen }

func (Features) Fadein() {
	if backlight.Available {
		logError("backlight", backlight.Fade(BacklightNormal, fadeDuration))
	}
}

func (Features) Fadeout() {
	if backlight.Available {
		logError("backlight", backlight.Fade(BacklightDim, fadeDuration))
	}
}

func (Features) BacklightOn() {
	if backlight.Available {
		logError("backlight", backlight.Set(BacklightNormal))
	}
}

// ScreenFatalError draws the error screen without touching the arena, so it
// works even when the failure happened mid-animation.
func (f Features) ScreenFatalError(title, msg, footer string) {
	shapes := fatalErrorShapes(title, msg, footer)
	display.Show(f, false, Screen, shapes[:]...)
}

// ScreenBootStage2 reveals the welcome screen by sharpening a blurred logo
// over a few frames.
func (Features) ScreenBootStage2() {
	err := render.Animate(display.Arena(), display.RendererFor(Screen), welcomeFrames, retainWelcome, welcomeOverlay)
	logError("display", err)
}

func logError(component string, err error) {
	if err != nil && display.Logger != nil {
		display.Logger.Errorf(component, "%v", err)
	}
}
