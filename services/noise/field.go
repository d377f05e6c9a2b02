package noise

import (
	"math"
	"math/rand"
)

// FieldInterface defines the interface for coherent noise sampling operations.
// This enables dependency injection and makes services easily testable.
type FieldInterface interface {
	Sample(x, y float64) float64
	Seed() int64
}

// Field is a seeded 2D gradient noise field. It holds a 256-entry permutation
// table, duplicated into the upper half so corner lookups never need a modulo.
// The table is a permutation of 0..255 and is never mutated after construction.
type Field struct {
	perm [512]int
	seed int64
}

// NewField creates a gradient noise field seeded with the given value.
// The same seed always produces the same permutation table and therefore
// the same field.
func NewField(seed int64) *Field {
	f := &Field{seed: seed}

	rng := rand.New(rand.NewSource(seed))

	for i := 0; i < 256; i++ {
		f.perm[i] = i
	}

	// Fisher-Yates shuffle of the first half
	for i := 255; i > 0; i-- {
		j := rng.Intn(i + 1)
		f.perm[i], f.perm[j] = f.perm[j], f.perm[i]
	}

	// Mirror into 256..511 so hashed corner indices stay in range
	for i := 0; i < 256; i++ {
		f.perm[256+i] = f.perm[i]
	}

	return f
}

// Sample returns the noise value at (x, y). The result is continuous in both
// coordinates, deterministic for a fixed seed, roughly in [-1, 1], and exactly
// zero at every integer lattice point.
func (f *Field) Sample(x, y float64) float64 {
	// Lattice cell containing the point
	xi := int(math.Floor(x)) & 255
	yi := int(math.Floor(y)) & 255

	// Position inside the cell
	fx := x - math.Floor(x)
	fy := y - math.Floor(y)

	u := fade(fx)
	v := fade(fy)

	// Hash the four surrounding corners
	a := f.perm[xi] + yi
	b := f.perm[xi+1] + yi

	x1 := lerp(u, grad(f.perm[a], fx, fy), grad(f.perm[b], fx-1, fy))
	x2 := lerp(u, grad(f.perm[a+1], fx, fy-1), grad(f.perm[b+1], fx-1, fy-1))

	return lerp(v, x1, x2)
}

// Seed returns the seed the field was constructed with.
func (f *Field) Seed() int64 {
	return f.seed
}

// fade is the quintic interpolant 6t^5 - 15t^4 + 10t^3. Its first and second
// derivatives vanish at t=0 and t=1, which removes grid-aligned creases that
// linear interpolation would leave in the field's derivative.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// grad selects one of four diagonal gradient directions from the low two bits
// of the corner hash and returns its dot product with (dx, dy).
func grad(hash int, dx, dy float64) float64 {
	h := hash & 3
	u := dx
	if h&1 != 0 {
		u = -dx
	}
	v := dy
	if h&2 != 0 {
		v = -dy
	}
	return u + v
}
