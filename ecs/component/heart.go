package component

import "time"

// Heart is a decorative floating particle. It owns nothing and is destroyed
// by its TTL.
type Heart struct {
	Glyph    string
	X        float64
	Y        float64
	Drift    float64
	Born     time.Time
	Lifetime time.Duration
}

const heartRise = 140.0

// Pose returns the heart's offset, opacity and scale at now.
func (h Heart) Pose(now time.Time) (dx, dy, alpha, scale float64) {
	if h.Lifetime <= 0 {
		return 0, 0, 0, 1
	}
	p := float64(now.Sub(h.Born)) / float64(h.Lifetime)
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return h.Drift * p, -heartRise * p, 1 - p, 1 + 0.4*p
}

var HeartComponent = NewComponent[Heart]()
