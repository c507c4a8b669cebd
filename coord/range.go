package coord

import "math"

// PixelRange is a bounded pixel interval. Start may exceed End, in which
// case the axis is rendered reversed; Interpolate handles both
// orientations.
type PixelRange struct {
	Start, End int
}

// Pixels is a convenience function to create a PixelRange.
func Pixels(start, end int) PixelRange {
	return PixelRange{Start: start, End: end}
}

// Span returns the signed pixel extent, End - Start.
func (p PixelRange) Span() int {
	return p.End - p.Start
}

// Interpolate maps a fraction in [0, 1] onto the pixel interval,
// rounding to the nearest pixel.
func (p PixelRange) Interpolate(f float64) int {
	return p.Start + int(math.Round(f*float64(p.Span())))
}

// Ranged is the value-to-pixel mapping capability for one axis. A Ranged
// describes an inclusive-start/exclusive-end value domain, maps any
// value monotonically onto a pixel interval, and proposes tick points.
//
// Map must satisfy Map(start, limits) == limits.Start and
// Map(end, limits) == limits.End within rounding tolerance, for both
// orientations of limits. A degenerate domain (start == end) maps every
// value to limits.Start and has no key points.
type Ranged[T any] interface {
	// Map converts a domain value to a pixel coordinate within limits.
	Map(v T, limits PixelRange) int

	// KeyPoints returns at most maxCount ordered domain values suitable
	// as tick marks.
	KeyPoints(maxCount int) []T

	// Domain returns the domain bounds as (start, end).
	Domain() (T, T)
}

// DiscreteRanged refines Ranged for enumerable domains. FromIndex and
// IndexOf are mutual inverses over the valid index range:
// IndexOf(FromIndex(i)) == (i, true) for every i in [0, Size()).
type DiscreteRanged[T any] interface {
	Ranged[T]

	// Size returns the cardinality of the domain.
	Size() int

	// IndexOf returns the index of a value, or false when the value is
	// outside the domain.
	IndexOf(v T) (int, bool)

	// FromIndex returns the value at the given index, or false when the
	// index is out of range.
	FromIndex(i int) (T, bool)
}
