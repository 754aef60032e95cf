package system

import (
	"log/slog"
	"time"

	"github.com/milk9111/papercards/common"
	"github.com/milk9111/papercards/ecs"
	"github.com/milk9111/papercards/ecs/component"
)

const (
	dragActivateDelay = 120 * time.Millisecond
	dragActivateSpeed = 12.0
	dragHeartSpeed    = 6.0
	dragHeartChance   = 0.04
)

// DragSystem routes pointer input to cards: pick-up on press, follow on
// move once the drag is deliberate, drop everything on release.
type DragSystem struct {
	clock  common.Clock
	rng    common.Rand
	hearts *HeartEmitter
	hits   *ecs.HitWorld
	logger *slog.Logger
}

func NewDragSystem(clock common.Clock, rng common.Rand, hearts *HeartEmitter, hits *ecs.HitWorld, logger *slog.Logger) *DragSystem {
	if logger == nil {
		logger = slog.Default()
	}
	return &DragSystem{clock: clock, rng: rng, hearts: hearts, hits: hits, logger: logger}
}

func (d *DragSystem) Update(w *ecs.World) {
	if d == nil || w == nil {
		return
	}
	ent, ok := ecs.First(w, component.PointerComponent.Kind())
	if !ok {
		return
	}
	pointer, ok := ecs.Get(w, ent, component.PointerComponent.Kind())
	if !ok {
		return
	}

	d.syncHits(w)

	if pointer.Pressed {
		if card, ok := d.hits.Topmost(pointer.X, pointer.Y); ok {
			d.PointerDown(w, card, pointer.X, pointer.Y)
		}
	}
	if pointer.Moved {
		d.PointerMove(w, pointer.X, pointer.Y)
	}
	if pointer.Released {
		d.PointerUp(w)
	}
}

// syncHits mirrors each card's displayed pose into the hit world.
func (d *DragSystem) syncHits(w *ecs.World) {
	if d.hits == nil {
		return
	}
	ecs.ForEach2(w, component.CardComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, card *component.Card, t *component.Transform) {
		pose := *t
		if p, ok := ecs.Get(w, e, component.CardPoseComponent.Kind()); ok {
			pose = p.Current
		}
		scale := pose.Scale()
		d.hits.Sync(e, card.X+pose.X, card.Y+pose.Y, card.Width*scale, card.Height*scale, pose.Rotation, card.Z, card.Index)
	})
}

// PointerDown picks up card with the pointer at (x, y).
func (d *DragSystem) PointerDown(w *ecs.World, card ecs.Entity, x, y float64) {
	c, ok := ecs.Get(w, card, component.CardComponent.Kind())
	if !ok {
		return
	}
	drag, ok := ecs.Get(w, card, component.DragComponent.Kind())
	if !ok {
		drag = &component.Drag{}
		if err := ecs.Add(w, card, component.DragComponent.Kind(), drag); err != nil {
			d.logger.Warn("drag: add drag state", "card", c.ID, "error", err)
			return
		}
	}
	session := SessionOf(w)

	if !session.MusicStarted {
		session.MusicStarted = true
		RequestMusic(w)
	}

	drag.Start = d.clock.Now()
	drag.Activated = false
	drag.Holding = true

	if !session.ZoomApplied {
		session.ZoomApplied = true
		ecs.ForEach(w, component.CardComponent.Kind(), func(_ ecs.Entity, other *component.Card) {
			other.TransitionsEnabled = true
		})
	}

	c.Z = session.NextZ
	session.NextZ++

	drag.PrevX = x
	drag.PrevY = y

	w.Events().Push(ecs.Event{Type: ecs.EventCardPicked, Data: card})
	d.logger.Debug("card picked", "card", c.ID, "z", c.Z)
}

// PointerMove feeds a pointer position to every held card.
func (d *DragSystem) PointerMove(w *ecs.World, x, y float64) {
	session := SessionOf(w)
	now := d.clock.Now()
	ecs.ForEach3(w, component.CardComponent.Kind(), component.DragComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, card *component.Card, drag *component.Drag, t *component.Transform) {
		if !drag.Holding {
			return
		}
		drag.VelX = x - drag.PrevX
		drag.VelY = y - drag.PrevY

		if !drag.Activated {
			if now.Sub(drag.Start) <= dragActivateDelay && common.Manhattan(drag.VelX, drag.VelY) <= dragActivateSpeed {
				return
			}
			drag.Activated = true
			d.emitHeart(w, x, y)
		}

		if common.Manhattan(drag.VelX, drag.VelY) > dragHeartSpeed && d.rng.Float64() < dragHeartChance {
			d.emitHeart(w, x, y)
		}

		t.X += drag.VelX
		t.Y += drag.VelY
		drag.PrevX = x
		drag.PrevY = y

		scale := component.RestingScale
		if session.ZoomApplied {
			scale = component.ZoomedScale
		}
		t.Rotation = card.Rotation
		t.ScaleX = scale
		t.ScaleY = scale
	})
}

// PointerUp drops every held card.
func (d *DragSystem) PointerUp(w *ecs.World) {
	ecs.ForEach2(w, component.CardComponent.Kind(), component.DragComponent.Kind(), func(e ecs.Entity, card *component.Card, drag *component.Drag) {
		if !drag.Holding {
			return
		}
		drag.Holding = false
		if p, ok := ecs.Get(w, e, component.PersistentComponent.Kind()); ok {
			p.Dirty = true
		}
		w.Events().Push(ecs.Event{Type: ecs.EventCardReleased, Data: e})
	})
}

func (d *DragSystem) emitHeart(w *ecs.World, x, y float64) {
	if d.hearts == nil {
		return
	}
	if _, err := d.hearts.Emit(w, x, y); err != nil {
		d.logger.Warn("drag: emit heart", "error", err)
	}
}
