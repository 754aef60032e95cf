package component

import "time"

// CardPose is what the renderer draws. It eases toward the card's Transform
// while transitions are enabled.
type CardPose struct {
	Current Transform
	From    Transform
	Target  Transform
	Start   time.Time
	Active  bool
}

var CardPoseComponent = NewComponent[CardPose]()
