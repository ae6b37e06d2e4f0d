package gamemath

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Floor0 returns v, or 0 when v is negative.
func Floor0(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
