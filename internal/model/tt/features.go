package tt

import (
	"time"

	"github.com/rook-computer/fwdisplay/internal/backlight"
	"github.com/rook-computer/fwdisplay/internal/display"
	"github.com/rook-computer/fwdisplay/internal/geometry"
)

const fadeDuration = 150 * time.Millisecond

// Features carries no state; the build selects it.
type Features struct{}

func (Features) Screen() geometry.Rect { return Screen }

func (Features) Fadein() {
	if backlight.Available {
		logError(backlight.Fade(BacklightNormal, fadeDuration))
	}
}

func (Features) Fadeout() {
	if backlight.Available {
		logError(backlight.Fade(BacklightDim, fadeDuration))
	}
}

func (Features) BacklightOn() {
	if backlight.Available {
		logError(backlight.Set(BacklightNormal))
	}
}

// ScreenFatalError shows the error screen. It returns once every shape of
// the screen has been drawn and cleaned up; callers halt afterwards.
func (f Features) ScreenFatalError(title, msg, footer string) {
	shapes := fatalErrorShapes(title, msg, footer)
	display.Show(f, false, Screen, shapes[:]...)
}

func (f Features) ScreenBootStage2() {
	shapes := welcomeShapes()
	display.Show(f, false, Screen, shapes[:]...)
}

func logError(err error) {
	if err != nil && display.Logger != nil {
		display.Logger.Errorf("backlight", "%v", err)
	}
}
