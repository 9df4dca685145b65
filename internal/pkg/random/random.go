// Package random adapts dice rolls into the continuous samples the
// simulation needs for particle placement and flavor data.
package random

import (
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// resolution is the die size used to build a uniform float
const resolution = 1 << 20

// Sampler draws uniform random values
type Sampler interface {
	// Float64 returns a value in [0,1)
	Float64() float64
	// Uniform returns a value in [lo,hi)
	Uniform(lo, hi float64) float64
	// Intn returns a value in [0,n)
	Intn(n int) int
}

// DiceSampler draws samples from a dice.Roller
type DiceSampler struct {
	roller dice.Roller
}

// NewDiceSampler wraps roller. A nil roller uses dice.DefaultRoller.
func NewDiceSampler(roller dice.Roller) *DiceSampler {
	if roller == nil {
		roller = dice.DefaultRoller
	}
	return &DiceSampler{roller: roller}
}

// Float64 rolls a d(2^20) and maps it onto [0,1)
func (d *DiceSampler) Float64() float64 {
	v, err := d.roller.Roll(resolution)
	if err != nil {
		slog.Warn("dice roll failed, using zero sample", "error", err)
		return 0
	}
	return float64(v-1) / resolution
}

// Uniform scales Float64 onto [lo,hi)
func (d *DiceSampler) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*d.Float64()
}

// Intn rolls a dn and shifts it to start at zero
func (d *DiceSampler) Intn(n int) int {
	if n <= 1 {
		return 0
	}
	v, err := d.roller.Roll(n)
	if err != nil {
		slog.Warn("dice roll failed, using zero sample", "error", err, "size", n)
		return 0
	}
	return v - 1
}

// Constant always returns the same fraction. Used in tests.
type Constant float64

// Float64 returns the constant
func (c Constant) Float64() float64 { return float64(c) }

// Uniform returns lo + (hi-lo)*c
func (c Constant) Uniform(lo, hi float64) float64 { return lo + (hi-lo)*float64(c) }

// Intn returns floor(c*n)
func (c Constant) Intn(n int) int {
	if n <= 1 {
		return 0
	}
	i := int(float64(c) * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// Sequence cycles through fixed fractions. Used in tests.
type Sequence struct {
	values []float64
	next   int
}

// NewSequence returns a Sequence over values
func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: values}
}

// Float64 returns the next value, wrapping around
func (s *Sequence) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

// Uniform scales the next value onto [lo,hi)
func (s *Sequence) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*s.Float64()
}

// Intn maps the next value onto [0,n)
func (s *Sequence) Intn(n int) int {
	return Constant(s.Float64()).Intn(n)
}
