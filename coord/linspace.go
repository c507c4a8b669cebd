package coord

import (
	"errors"
	"math"
)

// ErrNonPositiveStep is returned when a stepped range is constructed
// with a step that is zero or negative.
var ErrNonPositiveStep = errors.New("coord: step must be positive")

// Linspace snaps a continuous numeric range to a fixed step size. The
// mapping is unchanged from the inner range; key points and the discrete
// operations enumerate the multiples of the step inside the domain,
// anchored at the domain start.
type Linspace struct {
	inner Ranged[float64]
	step  float64
}

// NewLinspace wraps a continuous numeric range with a step size.
func NewLinspace(inner Ranged[float64], step float64) (Linspace, error) {
	if step <= 0 {
		return Linspace{}, ErrNonPositiveStep
	}
	return Linspace{inner: inner, step: step}, nil
}

// Step returns the snapping step size.
func (l Linspace) Step() float64 {
	return l.step
}

// Map implements Ranged by delegating to the inner range.
func (l Linspace) Map(v float64, limits PixelRange) int {
	return l.inner.Map(v, limits)
}

// KeyPoints implements Ranged. Candidates are the step multiples inside
// the domain; when there are more than maxCount, the stride over them is
// doubled until the result fits, so the returned points always stay on
// step boundaries.
func (l Linspace) KeyPoints(maxCount int) []float64 {
	n := l.Size()
	if maxCount <= 0 || n == 0 {
		return nil
	}
	stride := 1
	for (n+stride-1)/stride > maxCount {
		stride *= 2
	}
	start, _ := l.inner.Domain()
	out := make([]float64, 0, (n+stride-1)/stride)
	for i := 0; i < n; i += stride {
		out = append(out, start+float64(i)*l.step)
	}
	return out
}

// Domain implements Ranged.
func (l Linspace) Domain() (float64, float64) {
	return l.inner.Domain()
}

// Size implements DiscreteRanged: the number of step multiples in the
// half-open domain.
func (l Linspace) Size() int {
	start, end := l.inner.Domain()
	if end <= start {
		return 0
	}
	// Nudge by a relative epsilon so an exact multiple at the domain end
	// stays excluded despite float rounding.
	return int(math.Ceil((end - start) / l.step * (1 - 1e-12)))
}

// IndexOf implements DiscreteRanged. Values are accepted when they lie
// on a step boundary within a small relative tolerance.
func (l Linspace) IndexOf(v float64) (int, bool) {
	start, _ := l.inner.Domain()
	f := (v - start) / l.step
	i := int(math.Round(f))
	if math.Abs(f-float64(i)) > 1e-9 {
		return 0, false
	}
	if i < 0 || i >= l.Size() {
		return 0, false
	}
	return i, true
}

// FromIndex implements DiscreteRanged.
func (l Linspace) FromIndex(i int) (float64, bool) {
	if i < 0 || i >= l.Size() {
		return 0, false
	}
	start, _ := l.inner.Domain()
	return start + float64(i)*l.step, true
}
