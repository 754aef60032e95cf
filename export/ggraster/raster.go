// Package ggraster rasterizes cards on the CPU with gogpu/gg, for exports
// that run without a window.
package ggraster

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/milk9111/papercards/export"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	cornerRadius    = 12.0
	cardPadding     = 24.0
	messageSize     = 18.0
	signatureSize   = 15.0
	lineSpacing     = 1.4
	defaultInk      = "#5a1e3c"
	defaultPaperHex = "#fff6f8"
)

// ImageSource resolves a card background name to pixels.
type ImageSource func(name string) (image.Image, error)

type Options struct {
	Images ImageSource
	Ink    color.Color
	Paper  color.Color
	Logger *slog.Logger
}

// Rasterizer draws a card the way the table shows it in its identity pose:
// rounded paper, tiled background, centered message and the signature in
// the lower right.
type Rasterizer struct {
	source *text.FontSource
	images ImageSource
	ink    color.Color
	paper  color.Color
	cache  map[string]*gg.ImageBuf
	logger *slog.Logger
}

func New(opts Options) (*Rasterizer, error) {
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("ggraster: load font: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Rasterizer{
		source: source,
		images: opts.Images,
		ink:    opts.Ink,
		paper:  opts.Paper,
		cache:  make(map[string]*gg.ImageBuf),
		logger: logger,
	}, nil
}

func (r *Rasterizer) Rasterize(card export.Card, opts export.Options) (image.Image, error) {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	w, h := card.Width*scale, card.Height*scale
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("ggraster: card %s has no area", card.ID)
	}

	dc := gg.NewContext(int(w), int(h))
	defer dc.Close()

	if !opts.TransparentBackground {
		dc.SetRGB(1, 1, 1)
		dc.DrawRectangle(0, 0, w, h)
		if err := dc.Fill(); err != nil {
			return nil, fmt.Errorf("ggraster: fill backdrop: %w", err)
		}
	}

	dc.DrawRoundedRectangle(0, 0, w, h, cornerRadius*scale)
	dc.Clip()
	r.setColor(dc, r.paper, defaultPaperHex)
	dc.DrawRectangle(0, 0, w, h)
	if err := dc.Fill(); err != nil {
		return nil, fmt.Errorf("ggraster: fill paper: %w", err)
	}
	if bg := r.background(card.Background); bg != nil {
		dc.DrawImageEx(bg, gg.DrawImageOptions{DstWidth: w, DstHeight: h, Opacity: 0.55})
	}
	dc.ResetClip()

	r.setColor(dc, r.ink, defaultInk)
	face := r.source.Face(messageSize * scale)
	dc.SetFont(face)
	lines := text.WrapText(card.Message, face, w-2*cardPadding*scale, text.WrapWord)
	step := messageSize * scale * lineSpacing
	y := h/2 - step*float64(len(lines)-1)/2
	for _, line := range lines {
		dc.DrawStringAnchored(line.Text, w/2, y, 0.5, 0.5)
		y += step
	}

	if card.Signature != "" {
		dc.SetFont(r.source.Face(signatureSize * scale))
		dc.DrawStringAnchored(card.Signature, w-cardPadding*scale, h-cardPadding*scale, 1, 0)
	}
	return dc.Image(), nil
}

func (r *Rasterizer) background(name string) *gg.ImageBuf {
	if name == "" || r.images == nil {
		return nil
	}
	if buf, ok := r.cache[name]; ok {
		return buf
	}
	img, err := r.images(name)
	if err != nil {
		r.logger.Warn("ggraster: background unavailable", "image", name, "error", err)
		r.cache[name] = nil
		return nil
	}
	buf := gg.ImageBufFromImage(img)
	r.cache[name] = buf
	return buf
}

func (r *Rasterizer) setColor(dc *gg.Context, c color.Color, fallback string) {
	if c == nil {
		dc.SetHexColor(fallback)
		return
	}
	dc.SetColor(c)
}
