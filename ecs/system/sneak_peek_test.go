package system

import (
	"testing"

	"github.com/milk9111/papercards/ecs"
	"github.com/milk9111/papercards/ecs/component"
)

func TestSneakPeekWraps(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	sp := &component.SneakPeek{Images: []string{"a.png", "b.png", "c.png"}}
	if err := ecs.Add(w, e, component.SneakPeekComponent.Kind(), sp); err != nil {
		t.Fatalf("add sneak peek: %v", err)
	}

	OpenSneakPeek(w)
	if !sp.Active || sp.Index != 0 {
		t.Fatalf("open should show the first image")
	}

	tests := []struct {
		delta int
		want  int
	}{
		{-1, 2}, {1, 0}, {1, 1}, {1, 2}, {1, 0}, {-1, 2}, {-1, 1},
	}
	for _, tc := range tests {
		StepSneakPeek(w, tc.delta)
		if sp.Index != tc.want {
			t.Fatalf("after step %d index = %d, want %d", tc.delta, sp.Index, tc.want)
		}
	}

	CloseSneakPeek(w)
	if sp.Active {
		t.Fatalf("expected carousel closed")
	}
}
