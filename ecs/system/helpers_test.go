package system

import (
	"testing"
	"time"

	"github.com/milk9111/papercards/common"
	"github.com/milk9111/papercards/ecs"
	"github.com/milk9111/papercards/ecs/component"
)

var testStart = time.Date(2026, 2, 14, 9, 0, 0, 0, time.UTC)

// fixedRand always returns the same draws.
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) IntN(n int) int {
	if r.n >= n {
		return n - 1
	}
	return r.n
}

type fakeTrack struct {
	name    string
	volume  float64
	playing bool
	plays   int
	pauses  int
	rewinds int
}

func (t *fakeTrack) Play() { t.playing = true; t.plays++ }
func (t *fakeTrack) Pause() { t.playing = false; t.pauses++ }
func (t *fakeTrack) IsPlaying() bool { return t.playing }
func (t *fakeTrack) Rewind() error { t.rewinds++; return nil }
func (t *fakeTrack) Volume() float64 { return t.volume }
func (t *fakeTrack) SetVolume(v float64) { t.volume = v }

func addTestCard(t *testing.T, w *ecs.World, index int, x, y float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	card := &component.Card{
		ID:       "card" + string(rune('a'+index)),
		Index:    index,
		X:        x,
		Y:        y,
		Width:    100,
		Height:   100,
		Rotation: float64(index) - 1,
	}
	tr := &component.Transform{ScaleX: component.RestingScale, ScaleY: component.RestingScale, Rotation: card.Rotation}
	if err := ecs.Add(w, e, component.CardComponent.Kind(), card); err != nil {
		t.Fatalf("add card: %v", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), tr); err != nil {
		t.Fatalf("add transform: %v", err)
	}
	if err := ecs.Add(w, e, component.CardPoseComponent.Kind(), &component.CardPose{Current: *tr, Target: *tr}); err != nil {
		t.Fatalf("add pose: %v", err)
	}
	return e
}

func countHearts(w *ecs.World) int {
	return len(ecs.Query(w, component.HeartComponent.Kind()))
}

func newTestClock() *common.ManualClock {
	return common.NewManualClock(testStart)
}
