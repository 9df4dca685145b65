// Package disaster defines the disaster kinds and intensity scale shared by the simulation
package disaster

import "strings"

// Kind identifies a disaster scenario
type Kind string

// Supported disaster kinds
const (
	KindEarthquake Kind = "earthquake"
	KindFlood      Kind = "flood"
	KindFire       Kind = "fire"
	KindHurricane  Kind = "hurricane"
)

// DefaultKind is used whenever a kind is missing or unknown
const DefaultKind = KindEarthquake

// AllKinds returns every supported kind in display order
func AllKinds() []Kind {
	return []Kind{KindEarthquake, KindFlood, KindFire, KindHurricane}
}

// String returns the string representation of the kind
func (k Kind) String() string {
	return string(k)
}

// IsValid reports whether k is one of the supported kinds
func (k Kind) IsValid() bool {
	switch k {
	case KindEarthquake, KindFlood, KindFire, KindHurricane:
		return true
	default:
		return false
	}
}

// Normalize returns k when it is supported and DefaultKind otherwise
func (k Kind) Normalize() Kind {
	if k.IsValid() {
		return k
	}
	return DefaultKind
}

// ParseKind converts user input into a Kind.
// Unknown values resolve to DefaultKind instead of failing.
func ParseKind(s string) Kind {
	return Kind(strings.ToLower(strings.TrimSpace(s))).Normalize()
}

// Intensity is the 1-10 disaster severity scale
type Intensity int

// Intensity bounds
const (
	MinIntensity     Intensity = 1
	MaxIntensity     Intensity = 10
	DefaultIntensity Intensity = 5
)

// ClampIntensity forces any integer into [MinIntensity, MaxIntensity]
func ClampIntensity(i int) Intensity {
	switch {
	case i < int(MinIntensity):
		return MinIntensity
	case i > int(MaxIntensity):
		return MaxIntensity
	default:
		return Intensity(i)
	}
}

// Clamp returns the intensity forced into range
func (i Intensity) Clamp() Intensity {
	return ClampIntensity(int(i))
}

// Over divides the intensity by a calibration constant.
// The motion formulas only ever use intensity in this form (I/5, I/10, I/100).
func (i Intensity) Over(divisor float64) float64 {
	return float64(i) / divisor
}
