package noise

import (
	"fmt"
)

// FractalConfig tunes the fractal Brownian motion sum layered on top of a Field.
type FractalConfig struct {
	// Octaves is the number of noise layers to sum. Must be at least 1.
	Octaves int
	// Lacunarity multiplies the sampling frequency each octave. Must be > 1.
	Lacunarity float64
	// Gain multiplies the amplitude each octave. Must be in (0, 1).
	Gain float64
}

// DefaultFractalConfig returns the tuning used for terrain generation.
func DefaultFractalConfig() FractalConfig {
	return FractalConfig{
		Octaves:    8,
		Lacunarity: 2.1,
		Gain:       0.45,
	}
}

// Validate checks the config for values that would produce degenerate fields.
func (c FractalConfig) Validate() error {
	if c.Octaves < 1 {
		return fmt.Errorf("fractal config: octaves must be >= 1, got %d", c.Octaves)
	}
	if c.Lacunarity <= 1 {
		return fmt.Errorf("fractal config: lacunarity must be > 1, got %g", c.Lacunarity)
	}
	if c.Gain <= 0 || c.Gain >= 1 {
		return fmt.Errorf("fractal config: gain must be in (0, 1), got %g", c.Gain)
	}
	return nil
}

// Sampler combines multiple octaves of a noise field into a single normalized
// scalar field (fractal Brownian motion). It is stateless apart from its
// configuration and safe for concurrent use.
type Sampler struct {
	field FieldInterface
	cfg   FractalConfig
}

// NewSampler creates a fractal sampler over the given field. It fails fast on
// a config that would divide by zero or never converge.
func NewSampler(field FieldInterface, cfg FractalConfig) (*Sampler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Sampler{field: field, cfg: cfg}, nil
}

// Sample returns the fractal noise value at (x, y), normalized to roughly
// [-1, 1] regardless of octave count.
func (s *Sampler) Sample(x, y float64) float64 {
	value := 0.0
	maxValue := 0.0
	amplitude := 1.0
	frequency := 1.0

	// Octave 0 always contributes at amplitude 1, frequency 1; the multipliers
	// apply after each accumulation.
	for i := 0; i < s.cfg.Octaves; i++ {
		value += s.field.Sample(x*frequency, y*frequency) * amplitude
		maxValue += amplitude

		amplitude *= s.cfg.Gain
		frequency *= s.cfg.Lacunarity
	}

	// Normalize by the accumulated amplitude, not a fixed constant, so the
	// output range is stable as the octave count changes.
	return value / maxValue
}

// Config returns the sampler's fractal configuration.
func (s *Sampler) Config() FractalConfig {
	return s.cfg
}
