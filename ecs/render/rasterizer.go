package render

import (
	"fmt"
	"image"

	"github.com/milk9111/papercards/export"
)

// Rasterizer captures cards through the same painter the table uses. It
// reads pixels back from the GPU, so it must run inside the game loop.
type Rasterizer struct {
	painter *CardPainter
}

func NewRasterizer(painter *CardPainter) *Rasterizer {
	return &Rasterizer{painter: painter}
}

func (r *Rasterizer) Rasterize(card export.Card, opts export.Options) (image.Image, error) {
	if r == nil || r.painter == nil {
		return nil, fmt.Errorf("render: rasterizer has no painter")
	}
	if card.Width <= 0 || card.Height <= 0 {
		return nil, fmt.Errorf("render: card %s has no area", card.ID)
	}
	face := r.painter.Paint(card, "", opts.Scale, opts.TransparentBackground)
	defer face.Deallocate()

	b := face.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	face.ReadPixels(out.Pix)
	return out, nil
}
