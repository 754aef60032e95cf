package system

import (
	"time"

	"github.com/milk9111/papercards/common"
	"github.com/milk9111/papercards/ecs"
	"github.com/milk9111/papercards/ecs/component"
)

const (
	overlayFadeDuration = 800 * time.Millisecond
	overlayHideAfter    = 900 * time.Millisecond
)

// OverlaySystem fades the progress overlay out once a run finishes.
type OverlaySystem struct {
	clock common.Clock
}

func NewOverlaySystem(clock common.Clock) *OverlaySystem {
	return &OverlaySystem{clock: clock}
}

// OverlayOf returns the overlay singleton, creating it hidden on first use.
func OverlayOf(w *ecs.World) *component.ProgressOverlay {
	if w == nil {
		return nil
	}
	if ent, ok := ecs.First(w, component.ProgressOverlayComponent.Kind()); ok {
		if o, ok := ecs.Get(w, ent, component.ProgressOverlayComponent.Kind()); ok {
			return o
		}
	}
	o := &component.ProgressOverlay{
		Opacity:  1,
		BarX:     common.BaseWidth/2 - 240,
		BarY:     common.BaseHeight / 2,
		BarWidth: 480,
	}
	ent := ecs.CreateEntity(w)
	_ = ecs.Add(w, ent, component.ProgressOverlayComponent.Kind(), o)
	_ = ecs.Add(w, ent, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerOverlay})
	return o
}

// StartOverlayFade begins the fade-out at now.
func StartOverlayFade(o *component.ProgressOverlay, now time.Time) {
	if o == nil {
		return
	}
	o.Fading = true
	o.FadeStart = now
}

func (s *OverlaySystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	now := s.clock.Now()
	ecs.ForEach(w, component.ProgressOverlayComponent.Kind(), func(_ ecs.Entity, o *component.ProgressOverlay) {
		if !o.Fading {
			return
		}
		elapsed := now.Sub(o.FadeStart)
		if elapsed >= overlayHideAfter {
			o.Visible = false
			o.Fading = false
			o.Opacity = 1
			return
		}
		o.Opacity = 1 - common.Clamp(float64(elapsed)/float64(overlayFadeDuration), 0, 1)
	})
}
