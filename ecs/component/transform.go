package component

// Transform is a card's CSS-like pose: translate(X, Y) rotate(Rotation deg)
// scale(ScaleX, ScaleY), relative to the card's layout anchor.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

// Card scales: resting on the table, and lifted once the first card has
// been picked up.
const (
	RestingScale = 0.95
	ZoomedScale  = 1.1
)

// Identity is the "transform: none" pose.
func Identity() Transform {
	return Transform{ScaleX: 1, ScaleY: 1}
}

// Scale returns the uniform scale, treating zero as 1.
func (t Transform) Scale() float64 {
	if t.ScaleX == 0 {
		return 1
	}
	return t.ScaleX
}

var TransformComponent = NewComponent[Transform]()
