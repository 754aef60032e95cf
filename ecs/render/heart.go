package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var glyphColors = map[string]color.NRGBA{
	"💗": {R: 0xff, G: 0x69, B: 0xb4, A: 0xff},
	"💖": {R: 0xff, G: 0x14, B: 0x93, A: 0xff},
	"💘": {R: 0xdc, G: 0x14, B: 0x3c, A: 0xff},
	"❤️": {R: 0xe6, G: 0x00, B: 0x28, A: 0xff},
	"🤍": {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	"💞": {R: 0xff, G: 0x8f, B: 0xc7, A: 0xff},
	"💔": {R: 0xb0, G: 0x1c, B: 0x2e, A: 0xff},
}

var whitePixel = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

// GlyphColor maps a heart glyph to its fill color.
func GlyphColor(glyph string) color.NRGBA {
	if c, ok := glyphColors[glyph]; ok {
		return c
	}
	return glyphColors["💗"]
}

// DrawHeart fills a heart of width size centered on (cx, cy): two lobes and
// a point.
func DrawHeart(dst *ebiten.Image, cx, cy, size float64, clr color.NRGBA, alpha float64) {
	if alpha <= 0 || size <= 0 {
		return
	}
	c := clr
	c.A = uint8(float64(c.A) * alpha)
	r := size / 4
	top := cy - size/4
	vector.FillCircle(dst, float32(cx-r), float32(top), float32(r), c, true)
	vector.FillCircle(dst, float32(cx+r), float32(top), float32(r), c, true)

	cr, cg, cb, ca := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255
	vertex := func(x, y float64) ebiten.Vertex {
		return ebiten.Vertex{
			DstX: float32(x), DstY: float32(y),
			SrcX: 1.5, SrcY: 1.5,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		}
	}
	vs := []ebiten.Vertex{
		vertex(cx-2*r, top+r*0.3),
		vertex(cx+2*r, top+r*0.3),
		vertex(cx, cy+size/2),
		vertex(cx, top),
	}
	dst.DrawTriangles(vs, []uint16{0, 1, 2, 0, 3, 1}, whitePixel, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
