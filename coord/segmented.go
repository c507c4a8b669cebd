package coord

// Segmented turns a stepped discrete range into one where each value
// occupies a full step-width pixel span rather than a point, which is
// what histogram-style bar placement needs. Map positions a value at
// the center of its segment; SpanOf exposes the segment's full pixel
// extent for drawing the bar itself.
type Segmented[T any] struct {
	inner DiscreteRanged[T]
}

// NewSegmented wraps a discrete range for segment placement.
func NewSegmented[T any](inner DiscreteRanged[T]) Segmented[T] {
	return Segmented[T]{inner: inner}
}

// segmentEdge returns the pixel coordinate of the boundary before
// segment i, for i in [0, Size()].
func (s Segmented[T]) segmentEdge(i int, limits PixelRange) int {
	n := s.inner.Size()
	if n == 0 {
		return limits.Start
	}
	return limits.Interpolate(float64(i) / float64(n))
}

// Map implements Ranged: a value maps to the midpoint of its segment.
// Values outside the domain map to the lower pixel bound.
func (s Segmented[T]) Map(v T, limits PixelRange) int {
	i, ok := s.inner.IndexOf(v)
	if !ok {
		return limits.Start
	}
	lo := s.segmentEdge(i, limits)
	hi := s.segmentEdge(i+1, limits)
	return (lo + hi) / 2
}

// SpanOf returns the full pixel span [from, to) occupied by the value's
// segment. ok is false when the value is outside the domain.
func (s Segmented[T]) SpanOf(v T, limits PixelRange) (from, to int, ok bool) {
	i, found := s.inner.IndexOf(v)
	if !found {
		return 0, 0, false
	}
	return s.segmentEdge(i, limits), s.segmentEdge(i+1, limits), true
}

// KeyPoints implements Ranged by delegating to the inner range.
func (s Segmented[T]) KeyPoints(maxCount int) []T {
	return s.inner.KeyPoints(maxCount)
}

// Domain implements Ranged.
func (s Segmented[T]) Domain() (T, T) {
	return s.inner.Domain()
}

// Size implements DiscreteRanged.
func (s Segmented[T]) Size() int {
	return s.inner.Size()
}

// IndexOf implements DiscreteRanged.
func (s Segmented[T]) IndexOf(v T) (int, bool) {
	return s.inner.IndexOf(v)
}

// FromIndex implements DiscreteRanged.
func (s Segmented[T]) FromIndex(i int) (T, bool) {
	return s.inner.FromIndex(i)
}
