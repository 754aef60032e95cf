package system

import (
	"github.com/milk9111/papercards/ecs"
	"github.com/milk9111/papercards/ecs/component"
)

// SneakPeekOf returns the carousel singleton, or nil when the deck has none.
func SneakPeekOf(w *ecs.World) *component.SneakPeek {
	ent, ok := ecs.First(w, component.SneakPeekComponent.Kind())
	if !ok {
		return nil
	}
	sp, _ := ecs.Get(w, ent, component.SneakPeekComponent.Kind())
	return sp
}

// OpenSneakPeek shows the carousel at the image it was left on.
func OpenSneakPeek(w *ecs.World) {
	sp := SneakPeekOf(w)
	if sp == nil || len(sp.Images) == 0 {
		return
	}
	sp.Active = true
}

func CloseSneakPeek(w *ecs.World) {
	if sp := SneakPeekOf(w); sp != nil {
		sp.Active = false
	}
}

// StepSneakPeek moves the carousel by delta images, wrapping at both ends.
func StepSneakPeek(w *ecs.World, delta int) {
	sp := SneakPeekOf(w)
	if sp == nil || len(sp.Images) == 0 {
		return
	}
	n := len(sp.Images)
	sp.Index = ((sp.Index+delta)%n + n) % n
}
