// Package sound turns embedded music into ebiten audio players.
package sound

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/milk9111/papercards/assets"
)

const SampleRate = 44100

// Loader owns the process-wide audio context.
type Loader struct {
	ctx *audio.Context
}

// NewLoader creates the audio context. ebiten allows only one per process.
func NewLoader() *Loader {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(SampleRate)
	}
	return &Loader{ctx: ctx}
}

// LoadPlayer decodes an embedded track into a player.
func (l *Loader) LoadPlayer(path string) (*audio.Player, error) {
	b, err := assets.LoadAudio(path)
	if err != nil {
		return nil, fmt.Errorf("sound: load %q: %w", path, err)
	}
	reader := bytes.NewReader(b)
	if strings.HasSuffix(strings.ToLower(path), ".wav") {
		stream, err := wav.DecodeWithSampleRate(l.ctx.SampleRate(), reader)
		if err != nil {
			return nil, fmt.Errorf("sound: decode wav %q: %w", path, err)
		}
		return l.ctx.NewPlayer(stream)
	}

	// already-decoded PCM in ebiten's native format
	return l.ctx.NewPlayerFromBytes(b), nil
}
