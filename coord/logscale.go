package coord

import (
	"errors"
	"math"
)

// ErrLogDomain is returned when a logarithmic range is constructed with
// a non-positive domain bound.
var ErrLogDomain = errors.New("coord: logarithmic range requires strictly positive bounds")

// LogRange maps values through log-space interpolation, so each factor
// of the base covers the same pixel extent. Both domain bounds must be
// strictly positive; this is checked at construction, never deferred to
// draw time.
type LogRange struct {
	start, end float64
	base       float64
}

// NewLogRange creates a base-10 logarithmic range.
func NewLogRange(start, end float64) (LogRange, error) {
	return NewLogRangeBase(start, end, 10)
}

// NewLogRangeBase creates a logarithmic range with an arbitrary base
// greater than one.
func NewLogRangeBase(start, end, base float64) (LogRange, error) {
	if start <= 0 || end <= 0 {
		return LogRange{}, ErrLogDomain
	}
	if base <= 1 {
		return LogRange{}, errors.New("coord: logarithm base must be greater than one")
	}
	return LogRange{start: start, end: end, base: base}, nil
}

// Base returns the logarithm base.
func (r LogRange) Base() float64 {
	return r.base
}

// Map implements Ranged.
func (r LogRange) Map(v float64, limits PixelRange) int {
	if r.start == r.end {
		return limits.Start
	}
	if v <= 0 {
		return limits.Start
	}
	f := (math.Log(v) - math.Log(r.start)) / (math.Log(r.end) - math.Log(r.start))
	return limits.Interpolate(f)
}

// KeyPoints implements Ranged. One tick per power of the base inside the
// domain; when the domain spans less than one full decade, the tick set
// would be empty or a single point, so it falls back to a linear
// subdivision of the domain instead.
func (r LogRange) KeyPoints(maxCount int) []float64 {
	if maxCount <= 0 || r.start == r.end {
		return nil
	}
	lo, hi := r.start, r.end
	if lo > hi {
		lo, hi = hi, lo
	}

	logLo := math.Log(lo) / math.Log(r.base)
	logHi := math.Log(hi) / math.Log(r.base)

	first := int(math.Ceil(logLo - 1e-9))
	last := int(math.Floor(logHi + 1e-9))
	if last-first < 1 {
		return NewF64Range(r.start, r.end).KeyPoints(maxCount)
	}

	powers := make([]float64, 0, last-first+1)
	for e := first; e <= last; e++ {
		powers = append(powers, math.Pow(r.base, float64(e)))
	}
	// Thin to maxCount by doubling the stride over the exponents.
	stride := 1
	for (len(powers)+stride-1)/stride > maxCount {
		stride *= 2
	}
	out := make([]float64, 0, maxCount)
	for i := 0; i < len(powers); i += stride {
		out = append(out, powers[i])
	}
	if r.start > r.end {
		reverse(out)
	}
	return out
}

// Domain implements Ranged.
func (r LogRange) Domain() (float64, float64) {
	return r.start, r.end
}
