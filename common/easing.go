package common

// CubicBezier is a CSS-style timing function through (0,0), (X1,Y1),
// (X2,Y2), (1,1).
type CubicBezier struct {
	X1, Y1, X2, Y2 float64
}

// EaseOutExpoish is cubic-bezier(0.22, 1, 0.36, 1), the card transition curve.
var EaseOutExpoish = CubicBezier{X1: 0.22, Y1: 1, X2: 0.36, Y2: 1}

func bezierCoord(t, p1, p2 float64) float64 {
	u := 1 - t
	return 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t
}

func bezierSlope(t, p1, p2 float64) float64 {
	u := 1 - t
	return 3*u*u*p1 + 6*u*t*(p2-p1) + 3*t*t*(1-p2)
}

// Ease maps progress x in [0,1] to eased progress.
func (b CubicBezier) Ease(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	// solve bx(t) = x: newton first, bisection if the slope flattens
	t := x
	for i := 0; i < 8; i++ {
		dx := bezierCoord(t, b.X1, b.X2) - x
		if dx > -1e-7 && dx < 1e-7 {
			return bezierCoord(t, b.Y1, b.Y2)
		}
		d := bezierSlope(t, b.X1, b.X2)
		if d > -1e-6 && d < 1e-6 {
			break
		}
		t -= dx / d
	}
	lo, hi := 0.0, 1.0
	t = x
	for i := 0; i < 40; i++ {
		v := bezierCoord(t, b.X1, b.X2)
		if v-x > -1e-7 && v-x < 1e-7 {
			break
		}
		if v < x {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
	}
	return bezierCoord(t, b.Y1, b.Y2)
}
