package common

import "math"

const (
	BaseWidth  = 1280
	BaseHeight = 720
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Manhattan returns |x| + |y|.
func Manhattan(x, y float64) float64 {
	return math.Abs(x) + math.Abs(y)
}

func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
