package coord

import "errors"

// ErrNonPositiveBucket is returned when a GroupBy is constructed with a
// bucket size below one.
var ErrNonPositiveBucket = errors.New("coord: bucket size must be at least one")

// GroupBy thins a dense discrete range by collapsing every n consecutive
// values into one bucket. The bucket's first member is its
// representative: FromIndex(i) returns the inner value at index i*n.
// Mapping individual values is unchanged; grouping only affects the
// discrete view and the key points, which is what axis labeling wants.
type GroupBy[T any] struct {
	inner DiscreteRanged[T]
	n     int
}

// NewGroupBy wraps a discrete range with a bucket size.
func NewGroupBy[T any](inner DiscreteRanged[T], n int) (GroupBy[T], error) {
	if n < 1 {
		return GroupBy[T]{}, ErrNonPositiveBucket
	}
	return GroupBy[T]{inner: inner, n: n}, nil
}

// Map implements Ranged by delegating to the inner range.
func (g GroupBy[T]) Map(v T, limits PixelRange) int {
	return g.inner.Map(v, limits)
}

// KeyPoints implements Ranged: bucket representatives, thinned by
// doubling the bucket stride until at most maxCount remain.
func (g GroupBy[T]) KeyPoints(maxCount int) []T {
	n := g.Size()
	if maxCount <= 0 || n == 0 {
		return nil
	}
	stride := 1
	for (n+stride-1)/stride > maxCount {
		stride *= 2
	}
	out := make([]T, 0, (n+stride-1)/stride)
	for i := 0; i < n; i += stride {
		if v, ok := g.FromIndex(i); ok {
			out = append(out, v)
		}
	}
	return out
}

// Domain implements Ranged.
func (g GroupBy[T]) Domain() (T, T) {
	return g.inner.Domain()
}

// Size implements DiscreteRanged: ceil(inner.Size() / n).
func (g GroupBy[T]) Size() int {
	return (g.inner.Size() + g.n - 1) / g.n
}

// IndexOf implements DiscreteRanged. Every raw value inside a bucket
// reports that bucket's index.
func (g GroupBy[T]) IndexOf(v T) (int, bool) {
	i, ok := g.inner.IndexOf(v)
	if !ok {
		return 0, false
	}
	return i / g.n, true
}

// FromIndex implements DiscreteRanged.
func (g GroupBy[T]) FromIndex(i int) (T, bool) {
	if i < 0 || i >= g.Size() {
		var zero T
		return zero, false
	}
	return g.inner.FromIndex(i * g.n)
}
