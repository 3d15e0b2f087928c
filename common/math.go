package common

import (
	"math"
	"math/rand/v2"
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func DegreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

func RadiansToDegrees(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

// Rand is a seedable uniform source. The zero value is not usable; use
// NewRand or DefaultRand.
type Rand struct {
	r *rand.Rand
}

func NewRand(seed uint64) *Rand {
	return &Rand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

var defaultRand = &Rand{}

// DefaultRand returns a Rand backed by the package-level source.
func DefaultRand() *Rand {
	return defaultRand
}

// Unit returns a value in [0,1).
func (r *Rand) Unit() float64 {
	if r == nil || r.r == nil {
		return rand.Float64()
	}
	return r.r.Float64()
}

// Range returns a value in [min,max). It panics unless min < max.
func (r *Rand) Range(min, max float64) float64 {
	if !(min < max) {
		panic("common: RandomRange requires min < max")
	}
	v := Lerp(min, max, r.Unit())
	// Rounding in Lerp can land exactly on max for tiny spans.
	if v >= max {
		v = math.Nextafter(max, min)
	}
	return v
}

// IntN returns a value in [0,n). It panics if n <= 0.
func (r *Rand) IntN(n int) int {
	if r == nil || r.r == nil {
		return rand.IntN(n)
	}
	return r.r.IntN(n)
}

func RandomUnit() float64 {
	return defaultRand.Unit()
}

func RandomRange(min, max float64) float64 {
	return defaultRand.Range(min, max)
}
