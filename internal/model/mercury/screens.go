package mercury

import (
	"github.com/rook-computer/fwdisplay/internal/geometry"
	"github.com/rook-computer/fwdisplay/internal/render"
)

type fatalLayout struct {
	header, title, message, qr, footer geometry.Rect
}

func layoutFatal() fatalLayout {
	header, rest := Screen.SplitTop(headerHeight)
	body, bottom := rest.SplitBottom(footerHeight)
	message, side := body.SplitLeft(body.Width - qrSize - padding)
	return fatalLayout{
		header:  header,
		title:   header.InsetXY(padding*2, 8),
		message: message.Inset(padding),
		qr:      side.AnchorCenter(qrSize, qrSize).Translate(-padding/2, 0),
		footer:  bottom.InsetXY(padding, 4),
	}
}

// fatalErrorShapes puts the title on an error-coloured header and a QR code
// of the footer (usually a support URL) next to the message.
func fatalErrorShapes(title, msg, footer string) [6]render.Shape {
	l := layoutFatal()
	return [6]render.Shape{
		render.NewBar(Screen, ColorBackground),
		render.NewBar(l.header, ColorError),
		render.Text{Area: l.title, Text: title, Font: FontTitle, Color: ColorForeground, Align: render.TextAlignLeft},
		render.Text{Area: l.message, Text: msg, Font: FontNormal, Color: ColorForeground, Align: render.TextAlignLeft},
		render.QRCode{Area: l.qr, Payload: footer, Foreground: ColorBackground, Background: ColorQR},
		render.Text{Area: l.footer, Text: footer, Font: FontFooter, Color: ColorMuted, Align: render.TextAlignCenter},
	}
}

func welcomeLayout() (logo, hint geometry.Rect) {
	logo = Screen.AnchorCenter(160, 48)
	_, below := Screen.SplitTop(logo.Y1() + padding)
	hint = below.AnchorTopLeft(Width, 24).InsetXY(padding, 0)
	return logo, hint
}

func retainWelcome(an *render.Animation) {
	logo, hint := welcomeLayout()
	an.Retain(render.NewBar(Screen, ColorBackground))
	an.Retain(render.NewBar(geometry.NewRect(0, Height-4, Width, 4), ColorAccent))
	an.Retain(render.Text{Area: logo, Text: "RooK", Font: render.Font{Family: render.FamilyBold, Size: 36}, Color: ColorForeground, Align: render.TextAlignCenter})
	an.Retain(render.Text{Area: hint, Text: "Starting up", Font: FontNormal, Color: ColorMuted, Align: render.TextAlignCenter})
}

// welcomeOverlay blurs the logo less on every frame; the last frame is sharp.
func welcomeOverlay(frame int) []render.Shape {
	logo, _ := welcomeLayout()
	radius := welcomeBlur * (welcomeFrames - 1 - frame) / (welcomeFrames - 1)
	return []render.Shape{render.NewBlurring(geometry.FromPoints(logo.X-8, logo.Y-8, logo.X1()+8, logo.Y1()+8), radius)}
}
