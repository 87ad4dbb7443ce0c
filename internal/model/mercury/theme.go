package mercury

import (
	"image/color"

	"github.com/rook-computer/fwdisplay/internal/backlight"
	"github.com/rook-computer/fwdisplay/internal/render"
)

const (
	BacklightNormal backlight.Level = 150
	BacklightDim    backlight.Level = 5
)

var (
	ColorBackground = color.RGBA{R: 0x0A, G: 0x0C, B: 0x0B, A: 0xFF}
	ColorForeground = color.RGBA{R: 0xF0, G: 0xF0, B: 0xF0, A: 0xFF}
	ColorAccent     = color.RGBA{R: 0x0B, G: 0xB5, B: 0x70, A: 0xFF}
	ColorError      = color.RGBA{R: 0xFF, G: 0x30, B: 0x30, A: 0xFF}
	ColorMuted      = color.RGBA{R: 0x8B, G: 0x8F, B: 0x93, A: 0xFF}
	ColorQR         = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

var (
	FontTitle  = render.Font{Family: render.FamilyBold, Size: 18}
	FontNormal = render.Font{Family: render.FamilyRegular, Size: 14}
	FontFooter = render.Font{Family: render.FamilyMono, Size: 12}
)

const (
	headerHeight = 40
	footerHeight = 32
	qrSize       = 88
	padding      = 6

	// welcome animation
	welcomeFrames = 5
	welcomeBlur   = 4
)
