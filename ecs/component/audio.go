package component

// AudioTrack is the playback handle the crossfader drives. *audio.Player
// from ebiten satisfies it.
type AudioTrack interface {
	Play()
	Pause()
	IsPlaying() bool
	Rewind() error
	Volume() float64
	SetVolume(volume float64)
}
