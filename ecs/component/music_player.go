package component

import "time"

type FadePhase int

const (
	FadeIdle FadePhase = iota
	FadeIn
	FadeHold
	FadeOut
)

func (p FadePhase) String() string {
	switch p {
	case FadeIn:
		return "fade_in"
	case FadeHold:
		return "playing"
	case FadeOut:
		return "fade_out"
	default:
		return "idle"
	}
}

type PlaylistEntry struct {
	Name  string
	Track AudioTrack
	Gain  float64
}

// MusicPlayer stores the playlist and crossfade state on a dedicated entity.
// The music system mutates this component; no playback state is kept on the
// system.
type MusicPlayer struct {
	Entries []PlaylistEntry

	MaxVolume    float64
	FadeDuration float64

	Started bool
	Current int
	Phase   FadePhase
	// Ramping is false once a fade-in reached its target.
	Ramping  bool
	Target   float64
	Step     float64
	NextTick time.Time
	// Advances counts natural track ends handled.
	Advances int
}

var MusicPlayerComponent = NewComponent[MusicPlayer]()
