package system

import (
	"errors"
	"testing"

	"github.com/milk9111/papercards/cardstore"
	"github.com/milk9111/papercards/ecs"
	"github.com/milk9111/papercards/ecs/component"
)

type memStore struct {
	states map[string]cardstore.CardState
	fail   bool
}

func (m *memStore) Save(key string, state cardstore.CardState) error {
	if m.fail {
		return errors.New("disk full")
	}
	m.states[key] = state
	return nil
}

func (m *memStore) Load(key string) (cardstore.CardState, bool, error) {
	s, ok := m.states[key]
	return s, ok, nil
}

func TestPersistenceSavesDirtyCards(t *testing.T) {
	w := ecs.NewWorld()
	e := addTestCard(t, w, 0, 0, 0)
	pers := &component.Persistent{Key: cardstore.Key("a"), Dirty: true}
	if err := ecs.Add(w, e, component.PersistentComponent.Kind(), pers); err != nil {
		t.Fatalf("add persistent: %v", err)
	}
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	tr.X, tr.Y = 12, -4
	card, _ := ecs.Get(w, e, component.CardComponent.Kind())
	card.Z = 5

	store := &memStore{states: map[string]cardstore.CardState{}}
	NewPersistenceSystem(store, nil).Update(w)

	got, ok := store.states["paper-a"]
	if !ok || got != (cardstore.CardState{X: 12, Y: -4, Z: 5}) {
		t.Fatalf("saved state = %+v, %v", got, ok)
	}
	if pers.Dirty {
		t.Fatalf("dirty flag should clear after save")
	}
}

func TestRestoreCardsResumesStacking(t *testing.T) {
	w := ecs.NewWorld()
	store := &memStore{states: map[string]cardstore.CardState{
		"paper-a": {X: 1, Y: 2, Z: 7},
		"paper-b": {X: 3, Y: 4, Z: 3},
	}}
	for i, id := range []string{"a", "b", "c"} {
		e := addTestCard(t, w, i, 0, 0)
		if err := ecs.Add(w, e, component.PersistentComponent.Kind(), &component.Persistent{Key: cardstore.Key(id)}); err != nil {
			t.Fatalf("add persistent: %v", err)
		}
	}

	if n := RestoreCards(w, store, nil); n != 2 {
		t.Fatalf("restored %d cards, want 2", n)
	}
	if got := SessionOf(w).NextZ; got != 8 {
		t.Fatalf("NextZ = %d, want 8", got)
	}
}
