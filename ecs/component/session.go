package component

// Session holds the session-wide flags shared by every card. It lives on a
// single entity and is never reset while the app runs.
type Session struct {
	ZoomApplied  bool
	MusicStarted bool
	// NextZ is the next stacking value handed out on pick-up.
	NextZ      int
	FontsReady bool
}

var SessionComponent = NewComponent[Session]()
