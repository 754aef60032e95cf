package system

import (
	"testing"
	"time"

	"github.com/milk9111/papercards/ecs"
	"github.com/milk9111/papercards/ecs/component"
)

func TestCardTweenEasesWhenEnabled(t *testing.T) {
	clock := newTestClock()
	w := ecs.NewWorld()
	e := addTestCard(t, w, 1, 0, 0)
	card, _ := ecs.Get(w, e, component.CardComponent.Kind())
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	pose, _ := ecs.Get(w, e, component.CardPoseComponent.Kind())
	sys := NewCardTweenSystem(clock)

	card.TransitionsEnabled = true
	tr.X = 100
	sys.Update(w)
	if pose.Current.X != 0 || !pose.Active {
		t.Fatalf("tween should start from the displayed pose, got %v", pose.Current.X)
	}

	clock.Advance(400 * time.Millisecond)
	sys.Update(w)
	if pose.Current.X <= 50 || pose.Current.X >= 100 {
		t.Fatalf("ease-out should be past halfway at half time, got %v", pose.Current.X)
	}

	clock.Advance(400 * time.Millisecond)
	sys.Update(w)
	if pose.Current.X != 100 || pose.Active {
		t.Fatalf("tween should land on target, got %v active=%v", pose.Current.X, pose.Active)
	}
}

func TestCardTweenSnapsWhenDisabledOrSuspended(t *testing.T) {
	tests := []struct {
		name      string
		enabled   bool
		suspended bool
	}{
		{"disabled", false, false},
		{"suspended", true, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := addTestCard(t, w, 0, 0, 0)
			card, _ := ecs.Get(w, e, component.CardComponent.Kind())
			card.TransitionsEnabled = tc.enabled
			card.TransitionsSuspended = tc.suspended
			tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
			tr.Y = 42

			NewCardTweenSystem(newTestClock()).Update(w)
			pose, _ := ecs.Get(w, e, component.CardPoseComponent.Kind())
			if pose.Current != *tr {
				t.Fatalf("expected snap to %+v, got %+v", *tr, pose.Current)
			}
		})
	}
}
