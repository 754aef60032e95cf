package system

import (
	"github.com/milk9111/papercards/common"
	"github.com/milk9111/papercards/ecs"
	"github.com/milk9111/papercards/ecs/component"
)

// TTLSystem destroys entities whose TTL deadline has passed.
type TTLSystem struct {
	clock common.Clock
}

func NewTTLSystem(clock common.Clock) *TTLSystem {
	return &TTLSystem{clock: clock}
}

func (s *TTLSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	now := s.clock.Now()
	ecs.ForEach(w, component.TTLComponent.Kind(), func(e ecs.Entity, ttl *component.TTL) {
		if now.Before(ttl.Deadline) {
			return
		}
		ecs.DestroyEntity(w, e)
	})
}
