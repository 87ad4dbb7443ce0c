package tt

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
	ColorBackground = color.RGBA{A: 0xFF}
	ColorForeground = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	ColorError      = color.RGBA{R: 0xE1, G: 0x2A, B: 0x2A, A: 0xFF}
	ColorErrorText  = color.RGBA{R: 0xFF, G: 0xC8, B: 0xC8, A: 0xFF}
	ColorMuted      = color.RGBA{R: 0x96, G: 0x96, B: 0x96, A: 0xFF}
)

var (
	FontTitle  = render.Font{Family: render.FamilyBold, Size: 20}
	FontNormal = render.Font{Family: render.FamilyRegular, Size: 16}
	FontFooter = render.Font{Family: render.FamilyRegular, Size: 13}
)

const (
	headerHeight = 44
	footerHeight = 36
	padding      = 8
)
