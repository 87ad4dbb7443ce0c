// Package model binds the firmware to exactly one hardware variant. The
// variant is chosen with build tags:
//
//	(default)       tt
//	model_mercury   mercury
//	model_one       one
//
// Features is an alias of the selected variant's type, so calls through it
// are resolved statically.
package model

import "github.com/rook-computer/fwdisplay/internal/geometry"

// UIFeaturesCommon is what every hardware variant provides to the firmware.
type UIFeaturesCommon interface {
	// Screen is the full display rectangle of the variant.
	Screen() geometry.Rect

	Fadein()
	Fadeout()
	BacklightOn()

	// ScreenFatalError shows an unrecoverable error. Callers must not
	// resume normal operation afterwards.
	ScreenFatalError(title, msg, footer string)
	ScreenBootStage2()
}

var _ UIFeaturesCommon = Features{}

// Current returns the compiled-in variant.
func Current() Features { return Features{} }

// Screen is the display rectangle of the compiled-in variant.
func Screen() geometry.Rect { return Features{}.Screen() }
