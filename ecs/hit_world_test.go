package ecs

import "testing"

func TestHitWorldTopmost(t *testing.T) {
	hw := NewHitWorld()
	w := NewWorld()
	a := CreateEntity(w)
	b := CreateEntity(w)
	c := CreateEntity(w)

	hw.Sync(a, 100, 100, 100, 100, 0, 0, 0)
	hw.Sync(b, 130, 100, 100, 100, 0, 0, 1)
	hw.Sync(c, 400, 400, 50, 50, 0, 0, 2)

	tests := []struct {
		name  string
		x, y  float64
		want  Entity
		found bool
	}{
		{"only_a", 60, 100, a, true},
		{"overlap_later_index_wins", 110, 100, b, true},
		{"separate_card", 410, 390, c, true},
		{"empty_space", 700, 700, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := hw.Topmost(tc.x, tc.y)
			if ok != tc.found || got != tc.want {
				t.Fatalf("Topmost(%v,%v) = %v,%v want %v,%v", tc.x, tc.y, got, ok, tc.want, tc.found)
			}
		})
	}

	// raising a's stacking value puts it above b in the overlap
	hw.Sync(a, 100, 100, 100, 100, 0, 1, 0)
	if got, _ := hw.Topmost(110, 100); got != a {
		t.Fatalf("expected a on top after stacking raise, got %v", got)
	}
}

func TestHitWorldRotation(t *testing.T) {
	hw := NewHitWorld()
	w := NewWorld()
	e := CreateEntity(w)

	// a thin bar rotated 90 degrees becomes vertical
	hw.Sync(e, 0, 0, 200, 10, 90, 0, 0)
	if _, ok := hw.Topmost(0, 80); !ok {
		t.Fatalf("expected hit along the rotated long axis")
	}
	if _, ok := hw.Topmost(80, 0); ok {
		t.Fatalf("expected miss along the original long axis")
	}

	hw.Remove(e)
	if hw.Len() != 0 {
		t.Fatalf("expected empty hit world after remove")
	}
}
