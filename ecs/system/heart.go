package system

import (
	"fmt"
	"time"

	"github.com/milk9111/papercards/common"
	"github.com/milk9111/papercards/ecs"
	"github.com/milk9111/papercards/ecs/component"
)

const (
	heartLifetime      = 3800 * time.Millisecond
	heartDrift         = 40.0
	burstHeartLifetime = 4000 * time.Millisecond
	burstHeartDrift    = 60.0
)

var (
	heartGlyphs      = []string{"💗", "💖", "💘"}
	burstHeartGlyphs = []string{"💗", "❤️", "💖", "💘"}
)

// HeartEmitter spawns fire-and-forget heart particles.
type HeartEmitter struct {
	clock common.Clock
	rng   common.Rand
}

func NewHeartEmitter(clock common.Clock, rng common.Rand) *HeartEmitter {
	return &HeartEmitter{clock: clock, rng: rng}
}

// Emit spawns one drag heart at (x, y).
func (h *HeartEmitter) Emit(w *ecs.World, x, y float64) (ecs.Entity, error) {
	return h.spawn(w, x, y, heartGlyphs, heartDrift, heartLifetime)
}

// Burst spawns n celebration hearts at (x, y).
func (h *HeartEmitter) Burst(w *ecs.World, x, y float64, n int) error {
	for i := 0; i < n; i++ {
		if _, err := h.spawn(w, x, y, burstHeartGlyphs, burstHeartDrift, burstHeartLifetime); err != nil {
			return err
		}
	}
	return nil
}

func (h *HeartEmitter) spawn(w *ecs.World, x, y float64, glyphs []string, drift float64, lifetime time.Duration) (ecs.Entity, error) {
	if h == nil || w == nil {
		return 0, fmt.Errorf("heart: emitter or world is nil")
	}
	now := h.clock.Now()
	ent := ecs.CreateEntity(w)
	heart := &component.Heart{
		Glyph:    common.Pick(h.rng, glyphs),
		X:        x,
		Y:        y,
		Drift:    common.Between(h.rng, -drift, drift),
		Born:     now,
		Lifetime: lifetime,
	}
	if err := ecs.Add(w, ent, component.HeartComponent.Kind(), heart); err != nil {
		return 0, fmt.Errorf("heart: add heart: %w", err)
	}
	if err := ecs.Add(w, ent, component.TTLComponent.Kind(), &component.TTL{Deadline: now.Add(lifetime)}); err != nil {
		return 0, fmt.Errorf("heart: add ttl: %w", err)
	}
	if err := ecs.Add(w, ent, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerHearts}); err != nil {
		return 0, fmt.Errorf("heart: add render layer: %w", err)
	}
	return ent, nil
}
