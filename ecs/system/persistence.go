package system

import (
	"log/slog"

	"github.com/milk9111/papercards/cardstore"
	"github.com/milk9111/papercards/ecs"
	"github.com/milk9111/papercards/ecs/component"
)

// CardStateStore is satisfied by *cardstore.Store.
type CardStateStore interface {
	Save(key string, state cardstore.CardState) error
	Load(key string) (cardstore.CardState, bool, error)
}

// PersistenceSystem writes the pose of every dropped card to the store.
type PersistenceSystem struct {
	store  CardStateStore
	logger *slog.Logger
}

func NewPersistenceSystem(store CardStateStore, logger *slog.Logger) *PersistenceSystem {
	if logger == nil {
		logger = slog.Default()
	}
	return &PersistenceSystem{store: store, logger: logger}
}

func (p *PersistenceSystem) Update(w *ecs.World) {
	if p == nil || w == nil || p.store == nil {
		return
	}
	ecs.ForEach3(w, component.PersistentComponent.Kind(), component.CardComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, pers *component.Persistent, card *component.Card, t *component.Transform) {
		if !pers.Dirty {
			return
		}
		pers.Dirty = false
		state := cardstore.CardState{X: t.X, Y: t.Y, Z: card.Z}
		if err := p.store.Save(pers.Key, state); err != nil {
			p.logger.Warn("persistence: save card", "card", card.ID, "error", err)
		}
	})
}

// RestoreCards loads saved offsets and stacking values into every persistent
// card. The stacking counter resumes above the highest restored value.
func RestoreCards(w *ecs.World, store CardStateStore, logger *slog.Logger) int {
	if w == nil || store == nil {
		return 0
	}
	if logger == nil {
		logger = slog.Default()
	}
	session := SessionOf(w)
	restored := 0
	ecs.ForEach3(w, component.PersistentComponent.Kind(), component.CardComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pers *component.Persistent, card *component.Card, t *component.Transform) {
		state, ok, err := store.Load(pers.Key)
		if err != nil {
			logger.Warn("persistence: load card", "card", card.ID, "error", err)
			return
		}
		if !ok {
			return
		}
		t.X = state.X
		t.Y = state.Y
		card.Z = state.Z
		if pose, ok := ecs.Get(w, e, component.CardPoseComponent.Kind()); ok {
			pose.Current = *t
			pose.Target = *t
			pose.Active = false
		}
		if state.Z >= session.NextZ {
			session.NextZ = state.Z + 1
		}
		restored++
	})
	return restored
}
