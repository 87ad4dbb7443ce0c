package one

import (
	"github.com/rook-computer/fwdisplay/internal/display"
	"github.com/rook-computer/fwdisplay/internal/geometry"
)

type Features struct{}

func (Features) Screen() geometry.Rect { return Screen }

func (Features) Fadein()      {}
func (Features) Fadeout()     {}
func (Features) BacklightOn() {}

func (f Features) ScreenFatalError(title, msg, footer string) {
	shapes := fatalErrorShapes(title, msg, footer)
	display.Show(f, false, Screen, shapes[:]...)
}

func (f Features) ScreenBootStage2() {
	shapes := welcomeShapes()
	display.Show(f, false, Screen, shapes[:]...)
}
