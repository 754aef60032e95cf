// Package export holds the services the export pipeline drives: card
// rasterizers, the zip archive and the file saver.
package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"
)

// Card is the rasterizer's view of one card, already forced to the identity
// pose.
type Card struct {
	ID         string
	Index      int
	Width      float64
	Height     float64
	Message    string
	Background string
	// Signature is the fully revealed signature text, if the card has one.
	Signature string
}

// Options mirror what a DOM rasterizer would be asked for.
type Options struct {
	Scale                 float64
	AllowCrossOrigin      bool
	TransparentBackground bool
}

// Rasterizer turns a card into a bitmap.
type Rasterizer interface {
	Rasterize(card Card, opts Options) (image.Image, error)
}

// RasterizerFunc adapts a function to Rasterizer.
type RasterizerFunc func(card Card, opts Options) (image.Image, error)

func (f RasterizerFunc) Rasterize(card Card, opts Options) (image.Image, error) {
	return f(card, opts)
}

// Saver persists a finished archive and reports where it went.
type Saver interface {
	Save(name string, data []byte) (string, error)
}

// EntryName returns the archive name for the card at zero-based index i.
func EntryName(i int) string {
	return fmt.Sprintf("card-%02d.png", i+1)
}

// Percent is round(100 * done/total), 100 for an empty job.
func Percent(done, total int) int {
	if total <= 0 {
		return 100
	}
	return int(math.Round(float64(done) / float64(total) * 100))
}

// EncodePNG encodes img as PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	if img == nil {
		return nil, fmt.Errorf("encode png: nil image")
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
