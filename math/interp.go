package math

// Interp linearly interpolates y at x over the breakpoints xp/yp, clamping
// to the endpoints outside the table. xp must be sorted ascending.
func Interp(x float32, xp, yp []float32) float32 {
	if len(xp) == 0 || len(xp) != len(yp) {
		return 0
	}
	if x <= xp[0] {
		return yp[0]
	}
	last := len(xp) - 1
	if x >= xp[last] {
		return yp[last]
	}
	for i := 1; i <= last; i++ {
		if x < xp[i] {
			span := xp[i] - xp[i-1]
			if span == 0 {
				return yp[i-1]
			}
			t := (x - xp[i-1]) / span
			return yp[i-1] + t*(yp[i]-yp[i-1])
		}
	}
	return yp[last]
}

func Clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
