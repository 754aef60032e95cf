package system

import (
	"log/slog"
	"time"

	"github.com/milk9111/papercards/common"
	"github.com/milk9111/papercards/ecs"
	"github.com/milk9111/papercards/ecs/component"
)

const (
	DefaultMaxVolume    = 0.25
	DefaultFadeDuration = 1.5
	musicFadeSteps      = 30
	// maxCatchUpTicks bounds the ramp ticks replayed in one update after a
	// long stall.
	maxCatchUpTicks = 10000
)

// MusicSystem crossfades a cyclic playlist: each entry fades in, plays, and
// fades out when it ends on its own before the next one starts.
type MusicSystem struct {
	clock  common.Clock
	logger *slog.Logger
}

func NewMusicSystem(clock common.Clock, logger *slog.Logger) *MusicSystem {
	if logger == nil {
		logger = slog.Default()
	}
	return &MusicSystem{clock: clock, logger: logger}
}

// RequestMusic asks the music system to start the playlist. Requests after
// the first are ignored.
func RequestMusic(w *ecs.World) {
	if w == nil {
		return
	}
	ent := ecs.CreateEntity(w)
	_ = ecs.Add(w, ent, component.MusicRequestComponent.Kind(), &component.MusicRequest{})
}

// NewMusicPlayer fills in the default volume and fade duration.
func NewMusicPlayer(entries []component.PlaylistEntry, maxVolume, fadeDuration float64) *component.MusicPlayer {
	if maxVolume <= 0 {
		maxVolume = DefaultMaxVolume
	}
	if fadeDuration <= 0 {
		fadeDuration = DefaultFadeDuration
	}
	for i := range entries {
		if entries[i].Gain <= 0 {
			entries[i].Gain = 1
		}
	}
	return &component.MusicPlayer{Entries: entries, MaxVolume: maxVolume, FadeDuration: fadeDuration}
}

// TickInterval is the time between two ramp steps.
func TickInterval(player *component.MusicPlayer) time.Duration {
	d := time.Duration(player.FadeDuration * musicFadeSteps * float64(time.Millisecond))
	if d < time.Millisecond {
		d = time.Millisecond
	}
	return d
}

func (m *MusicSystem) Update(w *ecs.World) {
	if m == nil || w == nil {
		return
	}

	requested := false
	ecs.ForEach(w, component.MusicRequestComponent.Kind(), func(ent ecs.Entity, _ *component.MusicRequest) {
		requested = true
		ecs.DestroyEntity(w, ent)
	})

	ent, ok := ecs.First(w, component.MusicPlayerComponent.Kind())
	if !ok {
		return
	}
	player, ok := ecs.Get(w, ent, component.MusicPlayerComponent.Kind())
	if !ok || player == nil || len(player.Entries) == 0 {
		return
	}

	now := m.clock.Now()
	if requested && !player.Started {
		player.Started = true
		player.Current = 0
		m.playCurrent(player, now)
		return
	}
	if !player.Started {
		return
	}

	interval := TickInterval(player)
	for i := 0; i < maxCatchUpTicks && player.Ramping && !now.Before(player.NextTick); i++ {
		at := player.NextTick
		player.NextTick = at.Add(interval)
		m.tick(player, at)
	}

	track := player.Entries[player.Current].Track
	if (player.Phase == component.FadeIn || player.Phase == component.FadeHold) && track != nil && !track.IsPlaying() {
		m.beginFadeOut(player, now)
	}
}

func (m *MusicSystem) tick(player *component.MusicPlayer, at time.Time) {
	track := player.Entries[player.Current].Track
	if track == nil {
		return
	}
	switch player.Phase {
	case component.FadeIn:
		vol := track.Volume()
		if vol < player.Target {
			track.SetVolume(min(player.Target, vol+player.Step))
			return
		}
		player.Ramping = false
		player.Phase = component.FadeHold
	case component.FadeOut:
		vol := track.Volume()
		if vol > 0 {
			track.SetVolume(max(0, vol-player.Step))
			return
		}
		track.Pause()
		if err := track.Rewind(); err != nil {
			m.logger.Warn("music: rewind", "track", player.Entries[player.Current].Name, "error", err)
		}
		player.Current = (player.Current + 1) % len(player.Entries)
		player.Advances++
		m.playCurrent(player, at)
	default:
		player.Ramping = false
	}
}

func (m *MusicSystem) beginFadeOut(player *component.MusicPlayer, now time.Time) {
	track := player.Entries[player.Current].Track
	player.Phase = component.FadeOut
	player.Ramping = true
	player.Step = track.Volume() / musicFadeSteps
	player.NextTick = now.Add(TickInterval(player))
	m.logger.Debug("music fade out", "track", player.Entries[player.Current].Name)
}

func (m *MusicSystem) playCurrent(player *component.MusicPlayer, at time.Time) {
	entry := player.Entries[player.Current]
	player.Target = player.MaxVolume * entry.Gain
	player.Step = player.Target / musicFadeSteps
	player.Phase = component.FadeIn
	player.Ramping = true
	player.NextTick = at.Add(TickInterval(player))
	if entry.Track == nil {
		return
	}
	entry.Track.SetVolume(0)
	entry.Track.Play()
	m.logger.Debug("music play", "track", entry.Name, "target", player.Target)
}
