package render

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/papercards/export"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	cardPadding   = 24.0
	messageSize   = 18.0
	signatureSize = 15.0
	hintSize      = 12.0
	lineSpacing   = 1.4
)

var (
	defaultInk   = color.NRGBA{R: 0x5a, G: 0x1e, B: 0x3c, A: 0xff}
	defaultPaper = color.NRGBA{R: 0xff, G: 0xf6, B: 0xf8, A: 0xff}
)

type CardStyle struct {
	Ink   color.Color
	Paper color.Color
}

// CardPainter draws a card face in its identity pose. The table and the
// in-game exporter share it so exported PNGs match what is on screen.
type CardPainter struct {
	source *text.GoTextFaceSource
	images *ImageCache
	style  CardStyle
}

func NewCardPainter(images *ImageCache, style CardStyle) (*CardPainter, error) {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("render: load card font: %w", err)
	}
	if style.Ink == nil {
		style.Ink = defaultInk
	}
	if style.Paper == nil {
		style.Paper = defaultPaper
	}
	return &CardPainter{source: s, images: images, style: style}, nil
}

// Face returns a font face of the given size.
func (p *CardPainter) Face(size float64) text.Face {
	return &text.GoTextFace{Source: p.source, Size: size}
}

// Paint renders card at scale into a new image. hint is drawn along the
// bottom edge when non-empty.
func (p *CardPainter) Paint(card export.Card, hint string, scale float64, transparent bool) *ebiten.Image {
	if scale <= 0 {
		scale = 1
	}
	w, h := int(card.Width*scale), int(card.Height*scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	img := ebiten.NewImage(w, h)
	if !transparent {
		img.Fill(color.White)
	}
	fw, fh := float32(w), float32(h)
	vector.FillRect(img, 0, 0, fw, fh, p.style.Paper, false)

	if bg := p.images.Lookup(card.Background); bg != nil {
		op := &ebiten.DrawImageOptions{}
		b := bg.Bounds()
		op.GeoM.Scale(float64(w)/float64(b.Dx()), float64(h)/float64(b.Dy()))
		op.ColorScale.ScaleAlpha(0.55)
		op.Filter = ebiten.FilterLinear
		img.DrawImage(bg, op)
	}
	vector.StrokeRect(img, 1, 1, fw-2, fh-2, float32(scale), withAlpha(p.style.Ink, 0x30), true)

	face := p.Face(messageSize * scale)
	lines := wrapLines(card.Message, face, float64(w)-2*cardPadding*scale)
	step := messageSize * scale * lineSpacing
	y := float64(h)/2 - step*float64(len(lines))/2
	for _, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(w)/2, y)
		op.PrimaryAlign = text.AlignCenter
		op.ColorScale.ScaleWithColor(p.style.Ink)
		text.Draw(img, line, face, op)
		y += step
	}

	if card.Signature != "" {
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(w)-cardPadding*scale, float64(h)-cardPadding*scale-signatureSize*scale)
		op.PrimaryAlign = text.AlignEnd
		op.ColorScale.ScaleWithColor(p.style.Ink)
		text.Draw(img, card.Signature, p.Face(signatureSize*scale), op)
	} else if hint != "" {
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(w)/2, float64(h)-cardPadding*scale)
		op.PrimaryAlign = text.AlignCenter
		op.ColorScale.ScaleWithColor(withAlpha(p.style.Ink, 0x90))
		text.Draw(img, hint, p.Face(hintSize*scale), op)
	}
	return img
}

// wrapLines breaks msg into lines no wider than maxWidth, on spaces.
func wrapLines(msg string, face text.Face, maxWidth float64) []string {
	var lines []string
	for _, para := range strings.Split(msg, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		cur := words[0]
		for _, word := range words[1:] {
			next := cur + " " + word
			if text.Advance(next, face) > maxWidth {
				lines = append(lines, cur)
				cur = word
				continue
			}
			cur = next
		}
		lines = append(lines, cur)
	}
	return lines
}

func withAlpha(c color.Color, a uint8) color.Color {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: a}
}
