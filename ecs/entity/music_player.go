package entity

import (
	"fmt"

	"github.com/milk9111/papercards/ecs"
	"github.com/milk9111/papercards/ecs/component"
	"github.com/milk9111/papercards/ecs/system"
	"github.com/milk9111/papercards/prefabs"
)

// TrackLoader opens a playlist file. The game passes the ebiten loader.
type TrackLoader func(file string) (component.AudioTrack, error)

func NewMusicPlayer(w *ecs.World, spec prefabs.PlaylistSpec, load TrackLoader) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("music player: world is nil")
	}
	if load == nil {
		return 0, fmt.Errorf("music player: no track loader")
	}
	entries := make([]component.PlaylistEntry, 0, len(spec.Tracks))
	for i, t := range spec.Tracks {
		track, err := load(t.File)
		if err != nil {
			return 0, fmt.Errorf("music player: track %d (%q): %w", i, t.File, err)
		}
		entries = append(entries, component.PlaylistEntry{Name: t.File, Track: track, Gain: t.Gain})
	}

	ent := ecs.CreateEntity(w)
	player := system.NewMusicPlayer(entries, spec.MaxVolume, spec.FadeDuration)
	if err := ecs.Add(w, ent, component.MusicPlayerComponent.Kind(), player); err != nil {
		return 0, fmt.Errorf("music player: add component: %w", err)
	}
	return ent, nil
}
