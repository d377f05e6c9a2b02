package chunk

import "math"

// FloorDiv divides a by b rounding toward negative infinity, so chunk
// coordinates stay consistent on both sides of the origin.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// FloorMod returns the non-negative residue of a mod b. The double-mod forces
// a result in [0, b) even when a is negative.
func FloorMod(a, b int) int {
	return ((a % b) + b) % b
}

func floor(v float64) float64 {
	return math.Floor(v)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
