package coord

import "math"

// F64Range is a linear numeric range over [Start, End).
type F64Range struct {
	Start, End float64
}

// NewF64Range creates a linear numeric range.
func NewF64Range(start, end float64) F64Range {
	return F64Range{Start: start, End: end}
}

// Map implements Ranged.
func (r F64Range) Map(v float64, limits PixelRange) int {
	if r.End == r.Start {
		return limits.Start
	}
	f := (v - r.Start) / (r.End - r.Start)
	return limits.Interpolate(f)
}

// KeyPoints implements Ranged. Ticks are placed at "nice" multiples of
// 1, 2 or 5 times a power of ten, using the smallest such step whose
// multiples inside the domain number at most maxCount.
func (r F64Range) KeyPoints(maxCount int) []float64 {
	if maxCount <= 0 || r.End == r.Start {
		return nil
	}
	lo, hi := r.Start, r.End
	if lo > hi {
		lo, hi = hi, lo
	}

	rough := (hi - lo) / float64(maxCount)
	mag := math.Pow(10, math.Floor(math.Log10(rough)))
	var out []float64
	for _, m := range []float64{1, 2, 5, 10, 20, 50} {
		step := m * mag
		first := math.Ceil(lo / step)
		last := math.Floor(hi / step)
		if int(last-first)+1 > maxCount {
			continue
		}
		out = make([]float64, 0, int(last-first)+1)
		for k := first; k <= last; k++ {
			out = append(out, k*step)
		}
		break
	}
	if r.Start > r.End {
		reverse(out)
	}
	return out
}

// Domain implements Ranged.
func (r F64Range) Domain() (float64, float64) {
	return r.Start, r.End
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// IntRange is a discrete integer range over [Start, End): it contains
// the End - Start integers Start, Start+1, ..., End-1.
type IntRange struct {
	Start, End int
}

// NewIntRange creates a discrete integer range.
func NewIntRange(start, end int) IntRange {
	return IntRange{Start: start, End: end}
}

// Map implements Ranged. Mapping is linear in the value over the full
// [Start, End] interval.
func (r IntRange) Map(v int, limits PixelRange) int {
	if r.End == r.Start {
		return limits.Start
	}
	f := float64(v-r.Start) / float64(r.End-r.Start)
	return limits.Interpolate(f)
}

// KeyPoints implements Ranged. All domain values are returned when they
// fit; otherwise the stride grows until at most maxCount remain.
func (r IntRange) KeyPoints(maxCount int) []int {
	if maxCount <= 0 || r.Size() == 0 {
		return nil
	}
	stride := 1
	for (r.Size()+stride-1)/stride > maxCount {
		stride++
	}
	out := make([]int, 0, maxCount)
	for v := r.Start; v < r.End; v += stride {
		out = append(out, v)
	}
	return out
}

// Domain implements Ranged.
func (r IntRange) Domain() (int, int) {
	return r.Start, r.End
}

// Size implements DiscreteRanged.
func (r IntRange) Size() int {
	if r.End <= r.Start {
		return 0
	}
	return r.End - r.Start
}

// IndexOf implements DiscreteRanged.
func (r IntRange) IndexOf(v int) (int, bool) {
	if v < r.Start || v >= r.End {
		return 0, false
	}
	return v - r.Start, true
}

// FromIndex implements DiscreteRanged.
func (r IntRange) FromIndex(i int) (int, bool) {
	if i < 0 || i >= r.Size() {
		return 0, false
	}
	return r.Start + i, true
}
