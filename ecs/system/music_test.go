package system

import (
	"math"
	"testing"
	"time"

	"github.com/milk9111/papercards/common"
	"github.com/milk9111/papercards/ecs"
	"github.com/milk9111/papercards/ecs/component"
)

type musicFixture struct {
	w      *ecs.World
	sys    *MusicSystem
	clock  *common.ManualClock
	tracks []*fakeTrack
	player *component.MusicPlayer
}

func newMusicFixture(t *testing.T, gains ...float64) *musicFixture {
	t.Helper()
	f := &musicFixture{w: ecs.NewWorld(), clock: newTestClock()}
	entries := make([]component.PlaylistEntry, 0, len(gains))
	for i, g := range gains {
		tr := &fakeTrack{name: string(rune('a' + i))}
		f.tracks = append(f.tracks, tr)
		entries = append(entries, component.PlaylistEntry{Name: tr.name, Track: tr, Gain: g})
	}
	f.player = NewMusicPlayer(entries, 0, 0)
	ent := ecs.CreateEntity(f.w)
	if err := ecs.Add(f.w, ent, component.MusicPlayerComponent.Kind(), f.player); err != nil {
		t.Fatalf("add music player: %v", err)
	}
	f.sys = NewMusicSystem(f.clock, nil)
	return f
}

func (f *musicFixture) step(t *testing.T) {
	t.Helper()
	f.clock.Advance(45 * time.Millisecond)
	f.sys.Update(f.w)
	audible := 0
	for _, tr := range f.tracks {
		if tr.volume > 0 {
			audible++
		}
	}
	if audible > 1 {
		t.Fatalf("%d tracks audible at once", audible)
	}
}

func (f *musicFixture) start(t *testing.T) {
	t.Helper()
	RequestMusic(f.w)
	f.sys.Update(f.w)
}

func TestMusicFadeInToTarget(t *testing.T) {
	f := newMusicFixture(t, 1.4, 1.0)
	f.start(t)

	if !f.tracks[0].playing || f.tracks[0].volume != 0 {
		t.Fatalf("first track should start silent and playing")
	}
	for i := 0; i < 40; i++ {
		f.step(t)
	}
	want := DefaultMaxVolume * 1.4
	if math.Abs(f.tracks[0].volume-want) > 1e-9 {
		t.Fatalf("volume = %v, want %v", f.tracks[0].volume, want)
	}
	if f.player.Phase != component.FadeHold {
		t.Fatalf("phase = %v, want playing", f.player.Phase)
	}
}

func TestMusicStartIsIdempotent(t *testing.T) {
	f := newMusicFixture(t, 1)
	f.start(t)
	f.step(t)
	f.start(t)
	if f.tracks[0].plays != 1 {
		t.Fatalf("expected one play call, got %d", f.tracks[0].plays)
	}
	if got := len(ecs.Query(f.w, component.MusicRequestComponent.Kind())); got != 0 {
		t.Fatalf("requests should be consumed, %d left", got)
	}
}

func TestMusicAdvancesOnNaturalEnd(t *testing.T) {
	f := newMusicFixture(t, 1.0, 1.4, 1.2)
	f.start(t)

	for end := 1; end <= 7; end++ {
		for i := 0; i < 40; i++ {
			f.step(t)
		}
		cur := f.player.Current
		f.tracks[cur].playing = false
		for i := 0; i < 100 && f.player.Advances < end; i++ {
			f.step(t)
		}
		if f.player.Advances != end {
			t.Fatalf("end %d not handled", end)
		}
		if f.tracks[cur].rewinds == 0 || f.tracks[cur].volume != 0 {
			t.Fatalf("ended track should be silent and rewound")
		}
	}
	if f.player.Current != 1 {
		t.Fatalf("index after 7 ends = %d, want 1", f.player.Current)
	}
}

func TestMusicEndOvertakesFadeIn(t *testing.T) {
	f := newMusicFixture(t, 1)
	f.start(t)
	for i := 0; i < 5; i++ {
		f.step(t)
	}
	reached := f.tracks[0].volume
	f.tracks[0].playing = false
	f.sys.Update(f.w)

	if f.player.Phase != component.FadeOut {
		t.Fatalf("phase = %v, want fade_out", f.player.Phase)
	}
	if math.Abs(f.player.Step-reached/30) > 1e-12 {
		t.Fatalf("fade out step = %v, want %v", f.player.Step, reached/30)
	}
	f.step(t)
	if f.tracks[0].volume >= reached {
		t.Fatalf("volume should fall after natural end, got %v", f.tracks[0].volume)
	}
}

func TestMusicCatchesUpMissedTicks(t *testing.T) {
	f := newMusicFixture(t, 1)
	f.start(t)
	f.clock.Advance(10 * time.Second)
	f.sys.Update(f.w)
	if f.player.Phase != component.FadeHold {
		t.Fatalf("expected fade-in finished after a stall, phase %v", f.player.Phase)
	}
}
