package tt

import "github.com/rook-computer/fwdisplay/internal/render"

// fatalErrorShapes lays out a red header with the title, the message below
// it and the footer at the bottom. The array lives on the caller's stack.
func fatalErrorShapes(title, msg, footer string) [5]render.Shape {
	header, rest := Screen.SplitTop(headerHeight)
	body, bottom := rest.SplitBottom(footerHeight)
	return [5]render.Shape{
		render.NewBar(Screen, ColorBackground),
		render.NewBar(header, ColorError),
		render.Text{Area: header.InsetXY(padding, 10), Text: title, Font: FontTitle, Color: ColorForeground, Align: render.TextAlignCenter},
		render.Text{Area: body.Inset(padding), Text: msg, Font: FontNormal, Color: ColorForeground, Align: render.TextAlignCenter},
		render.Text{Area: bottom.InsetXY(padding, 4), Text: footer, Font: FontFooter, Color: ColorErrorText, Align: render.TextAlignCenter},
	}
}

func welcomeShapes() [3]render.Shape {
	_, lower := Screen.SplitTop(Height / 2)
	name, hint := lower.SplitTop(32)
	return [3]render.Shape{
		render.NewBar(Screen, ColorBackground),
		render.Text{Area: name.InsetXY(padding, 0), Text: "RooK", Font: FontTitle, Color: ColorForeground, Align: render.TextAlignCenter},
		render.Text{Area: hint.AnchorTopLeft(Width, 24).InsetXY(padding, 0), Text: "Starting up", Font: FontFooter, Color: ColorMuted, Align: render.TextAlignCenter},
	}
}
