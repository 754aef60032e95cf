package component

// Card is one draggable paper panel. Index is its document order and never
// changes; Rotation is drawn once at creation.
type Card struct {
	ID         string
	Index      int
	X          float64
	Y          float64
	Width      float64
	Height     float64
	Rotation   float64
	Z          int
	Message    string
	Background string

	TransitionsEnabled   bool
	TransitionsSuspended bool
	// ForceVisible is set while the card is captured; it hides the hint.
	ForceVisible         bool

	// Saved holds the pose snapshotted while an export runs.
	Saved *Transform
}

var CardComponent = NewComponent[Card]()
