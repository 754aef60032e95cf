package system

import (
	"github.com/milk9111/papercards/ecs"
	"github.com/milk9111/papercards/ecs/component"
)

// PointerState is one frame of pointer input in logical screen coordinates.
type PointerState struct {
	X, Y     float64
	Down     bool
	Pressed  bool
	Released bool
}

// PointerSource reads the platform pointer. The ebiten implementation merges
// the mouse and the first touch.
type PointerSource interface {
	Pointer() PointerState
}

type InputSystem struct {
	source PointerSource
}

func NewInputSystem(source PointerSource) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || w == nil || i.source == nil {
		return
	}
	state := i.source.Pointer()

	ent, ok := ecs.First(w, component.PointerComponent.Kind())
	if !ok {
		ent = ecs.CreateEntity(w)
		if err := ecs.Add(w, ent, component.PointerComponent.Kind(), &component.Pointer{X: state.X, Y: state.Y}); err != nil {
			return
		}
	}
	p, ok := ecs.Get(w, ent, component.PointerComponent.Kind())
	if !ok {
		return
	}
	p.Moved = state.X != p.X || state.Y != p.Y
	p.X = state.X
	p.Y = state.Y
	p.Pressed = state.Pressed
	p.Released = state.Released
	p.Down = state.Down
}
