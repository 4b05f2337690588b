package wheel

// Easing maps animation progress in [0,1] to eased progress in [0,1].
type Easing func(t float64) float64

// CubicBezier builds an easing curve through (0,0), (x1,y1), (x2,y2), (1,1).
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		u := solveX(t, x1, x2)
		return bezier(u, y1, y2)
	}
}

// FastOutSlowIn decelerates hard towards the end, which is what makes the
// wheel crawl past the last few segments.
var FastOutSlowIn = CubicBezier(0.4, 0, 0.2, 1)

// Linear is the identity easing.
func Linear(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t
}

func bezier(u, p1, p2 float64) float64 {
	inv := 1 - u
	return 3*inv*inv*u*p1 + 3*inv*u*u*p2 + u*u*u
}

func bezierSlope(u, p1, p2 float64) float64 {
	inv := 1 - u
	return 3*inv*inv*p1 + 6*inv*u*(p2-p1) + 3*u*u*(1-p2)
}

// solveX finds u such that bezier(u, x1, x2) == x.
func solveX(x, x1, x2 float64) float64 {
	const eps = 1e-7

	u := x
	for i := 0; i < 8; i++ {
		d := bezier(u, x1, x2) - x
		if d < eps && d > -eps {
			return u
		}
		slope := bezierSlope(u, x1, x2)
		if slope < 1e-6 && slope > -1e-6 {
			break
		}
		u -= d / slope
		if u < 0 || u > 1 {
			break
		}
	}

	// Newton wandered off or stalled, bisect instead
	lo, hi := 0.0, 1.0
	u = x
	for i := 0; i < 64 && hi-lo > eps; i++ {
		if bezier(u, x1, x2) < x {
			lo = u
		} else {
			hi = u
		}
		u = (lo + hi) / 2
	}
	return u
}
