package system

import (
	"sort"

	"github.com/milk9111/papercards/ecs"
	"github.com/milk9111/papercards/ecs/component"
)

// SessionOf returns the session singleton, creating it on first use.
func SessionOf(w *ecs.World) *component.Session {
	if w == nil {
		return nil
	}
	if ent, ok := ecs.First(w, component.SessionComponent.Kind()); ok {
		if s, ok := ecs.Get(w, ent, component.SessionComponent.Kind()); ok {
			return s
		}
	}
	s := &component.Session{NextZ: 1}
	ent := ecs.CreateEntity(w)
	_ = ecs.Add(w, ent, component.SessionComponent.Kind(), s)
	return s
}

// CardsInOrder returns card entities in document order.
func CardsInOrder(w *ecs.World) []ecs.Entity {
	type entry struct {
		e     ecs.Entity
		index int
	}
	var cards []entry
	ecs.ForEach(w, component.CardComponent.Kind(), func(e ecs.Entity, c *component.Card) {
		cards = append(cards, entry{e: e, index: c.Index})
	})
	sort.SliceStable(cards, func(i, j int) bool { return cards[i].index < cards[j].index })
	out := make([]ecs.Entity, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.e)
	}
	return out
}
