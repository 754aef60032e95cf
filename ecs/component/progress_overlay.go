package component

import (
	"strings"
	"time"
)

// ProgressOverlay is the export overlay: a bar with a fill, percent text,
// status line and a marker glyph that slides along the bar.
type ProgressOverlay struct {
	Visible bool
	Opacity float64

	FillPercent   int
	PercentText   string
	StatusText    string
	MarkerPercent int
	MarkerGlyph   string

	BarX     float64
	BarY     float64
	BarWidth float64

	Fading    bool
	FadeStart time.Time
	Failed    bool
}

// MarkerPosition returns the marker's screen center.
func (o ProgressOverlay) MarkerPosition() (float64, float64) {
	return o.BarX + o.BarWidth*float64(o.MarkerPercent)/100, o.BarY
}

// StatusParts splits a trailing heart glyph off the status line so it can be
// drawn as a shape; text faces carry no emoji.
func (o ProgressOverlay) StatusParts() (text, glyph string) {
	s := strings.TrimRight(o.StatusText, " ")
	for _, g := range StatusGlyphs {
		if strings.HasSuffix(s, g) {
			return strings.TrimRight(strings.TrimSuffix(s, g), " "), g
		}
	}
	return s, ""
}

// StatusGlyphs are the heart glyphs that may end a status line.
var StatusGlyphs = []string{"🤍", "💞", "💔", "💗", "❤️", "💖", "💘"}

var ProgressOverlayComponent = NewComponent[ProgressOverlay]()
