package component

import "time"

// Drag is the per-card pointer drag state.
type Drag struct {
	Holding   bool
	Activated bool
	Start     time.Time

	PrevX float64
	PrevY float64
	VelX  float64
	VelY  float64
}

var DragComponent = NewComponent[Drag]()
