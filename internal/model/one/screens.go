package one

import "github.com/rook-computer/fwdisplay/internal/render"

// fatalErrorShapes draws the title inverted on the first line, the message
// in the middle and the footer on the last line.
func fatalErrorShapes(title, msg, footer string) [5]render.Shape {
	header, rest := Screen.SplitTop(headerHeight)
	body, bottom := rest.SplitBottom(lineHeight)
	return [5]render.Shape{
		render.NewBar(Screen, ColorBlack),
		render.NewBar(header, ColorWhite),
		render.Text{Area: header.InsetXY(2, 1), Text: title, Font: FontPixel, Color: ColorBlack, Align: render.TextAlignCenter},
		render.Text{Area: body.InsetXY(2, 2), Text: msg, Font: FontPixel, Color: ColorWhite, Align: render.TextAlignCenter},
		render.Text{Area: bottom, Text: footer, Font: FontPixel, Color: ColorWhite, Align: render.TextAlignCenter},
	}
}

func welcomeShapes() [2]render.Shape {
	return [2]render.Shape{
		render.NewBar(Screen, ColorBlack),
		render.Text{Area: Screen.AnchorCenter(Width, lineHeight), Text: "RooK", Font: FontPixel, Color: ColorWhite, Align: render.TextAlignCenter},
	}
}

