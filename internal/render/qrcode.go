package render

import (
	"hash/fnv"
	"image"
	"image/color"
	"image/draw"

	"github.com/rook-computer/fwdisplay/internal/geometry"
	"github.com/rook-computer/fwdisplay/internal/mem"
	"github.com/rook-computer/fwdisplay/internal/render/cache"
	"github.com/skip2/go-qrcode"
	xdraw "golang.org/x/image/draw"
)

// QRCode draws Payload as a QR code scaled into the largest square that fits
// Area. The rasterized code lives in the drawing cache and is released on
// cleanup. An empty or unencodable payload draws nothing.
type QRCode struct {
	Area       geometry.Rect
	Payload    string
	Foreground color.RGBA
	Background color.RGBA
}

func (s QRCode) Bounds() geometry.Rect { return s.Area }

func (s QRCode) key() cache.Key {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s.Payload)) // fnv.Write never returns an error
	return cache.Key{Effect: cache.EffectQRCode, Region: s.Area.FitSquare(), Param: h.Sum64()}
}

func (s QRCode) Draw(c Canvas, dc *cache.DrawingCache) {
	if s.Payload == "" {
		return
	}
	square := s.Area.FitSquare()
	if square.Empty() {
		return
	}
	compute := func() *image.RGBA { return rasterizeQRCode(s.Payload, square, s.Foreground, s.Background) }
	var bitmap *image.RGBA
	if dc != nil {
		bitmap = dc.GetOrCompute(s.key(), compute)
	} else {
		bitmap = compute()
	}
	if bitmap == nil {
		return
	}
	c.DrawImage(square.X, square.Y, bitmap)
}

func (s QRCode) Cleanup(dc *cache.DrawingCache) {
	if dc != nil && s.Payload != "" {
		dc.Release(s.key())
	}
}

func (s QRCode) CloneAt(a *mem.Arena) Shape {
	if p := mem.Make(a, s); p != nil {
		return p
	}
	return nil
}

func (QRCode) shape() {}

func rasterizeQRCode(payload string, square geometry.Rect, fg, bg color.RGBA) *image.RGBA {
	qrCode, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return nil
	}
	qrCode.ForegroundColor = fg
	qrCode.BackgroundColor = bg
	// -1 renders one pixel per module; scaling to the target is done below.
	code := qrCode.Image(-1)

	out := image.NewRGBA(image.Rect(0, 0, square.Width, square.Height))
	draw.Draw(out, out.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)
	xdraw.NearestNeighbor.Scale(out, out.Bounds(), code, code.Bounds(), xdraw.Src, nil)
	return out
}
