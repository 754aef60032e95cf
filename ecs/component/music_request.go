package component

// MusicRequest is a one-shot request to start the playlist. It is consumed
// in the tick it is created.
type MusicRequest struct{}

var MusicRequestComponent = NewComponent[MusicRequest]()
