package render

import (
	"strings"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/rook-computer/fwdisplay/internal/assets"
	"github.com/rook-computer/fwdisplay/internal/logging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type Family int

const (
	FamilyRegular Family = iota
	FamilyBold
	FamilyMono
	// FamilyPixel is the fixed 7x13 bitmap face; Size is ignored.
	FamilyPixel
)

// Font selects a face by family and point size.
type Font struct {
	Family Family
	Size   float64
}

var (
	fontsMu     sync.Mutex
	parsedFonts = map[Family]*truetype.Font{}
	faces       = map[Font]font.Face{}

	// FontLogger receives font loading failures. It may be nil.
	FontLogger logging.Logger
)

// Face returns a cached face for f. Fonts that fail to load fall back to
// the basic bitmap face so that text always renders.
func (f Font) Face() font.Face {
	if f.Family == FamilyPixel || f.Size <= 0 {
		return basicfont.Face7x13
	}
	fontsMu.Lock()
	defer fontsMu.Unlock()
	if face, ok := faces[f]; ok {
		return face
	}
	tt, err := parseFamily(f.Family)
	if err != nil {
		if FontLogger != nil {
			FontLogger.Errorf("font", "truetype parse failed, using basicfont: %v", err)
		}
		faces[f] = basicfont.Face7x13
		return basicfont.Face7x13
	}
	face := truetype.NewFace(tt, &truetype.Options{Size: f.Size, DPI: FontDPI, Hinting: font.HintingFull})
	faces[f] = face
	return face
}

func parseFamily(family Family) (*truetype.Font, error) {
	if tt, ok := parsedFonts[family]; ok {
		return tt, nil
	}
	var data []byte
	switch family {
	case FamilyBold:
		data = assets.FontBoldTTF
	case FamilyMono:
		data = assets.FontMonoTTF
	default:
		data = assets.FontRegularTTF
	}
	tt, err := truetype.Parse(data)
	if err != nil {
		return nil, err
	}
	parsedFonts[family] = tt
	return tt, nil
}

// LineHeight returns the distance between consecutive baselines.
func LineHeight(face font.Face) int {
	return face.Metrics().Height.Ceil()
}

// MeasureText returns the advance width of s in pixels.
func MeasureText(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

// WrapText breaks text into lines no wider than width. Explicit newlines
// are kept; words longer than a line are left for the canvas to clip.
func WrapText(face font.Face, text string, width int) []string {
	if text == "" {
		return nil
	}
	dc := gg.NewContext(1, 1)
	dc.SetFontFace(face)
	lines := dc.WordWrap(text, float64(width))
	out := lines[:0]
	for _, line := range lines {
		out = append(out, strings.TrimRight(line, " "))
	}
	return out
}

// Ellipsize shortens s until it, followed by "...", fits into width.
// Strings that already fit are returned unchanged.
func Ellipsize(face font.Face, s string, width int) string {
	if MeasureText(face, s) <= width {
		return s
	}
	return truncate(face, []rune(s), width)
}

// Continued marks s as cut short, dropping trailing characters as needed so
// that s plus "..." fits into width.
func Continued(face font.Face, s string, width int) string {
	return truncate(face, []rune(s), width)
}

func truncate(face font.Face, runes []rune, width int) string {
	const ellipsis = "..."
	for ; len(runes) > 0; runes = runes[:len(runes)-1] {
		candidate := strings.TrimRight(string(runes), " ") + ellipsis
		if MeasureText(face, candidate) <= width {
			return candidate
		}
	}
	return ""
}
