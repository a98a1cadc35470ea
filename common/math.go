package common

// Vec2 is a float pair for positions and velocities that need sub-pixel
// precision.
type Vec2 struct {
	X, Y float64
}

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
