package coord

import (
	"errors"
	"fmt"
)

// ErrEmptyPrimary is returned when a nested coordinate is constructed
// over a primary range with no values.
var ErrEmptyPrimary = errors.New("coord: nested coordinate requires a non-empty primary range")

// NestedValue is a two-level coordinate value: a primary category and an
// optional secondary value within it. A nil Secondary addresses the
// category as a whole and maps to its bucket's midpoint.
type NestedValue[P, S any] struct {
	Primary   P
	Secondary *S
}

// Whole addresses a primary category without a secondary value.
func Whole[P, S any](p P) NestedValue[P, S] {
	return NestedValue[P, S]{Primary: p}
}

// In addresses a secondary value within a primary category.
func In[P, S any](p P, s S) NestedValue[P, S] {
	return NestedValue[P, S]{Primary: p, Secondary: &s}
}

// Nested is a two-level coordinate: the primary discrete range
// partitions the pixel axis into equal sub-intervals, with remainder
// pixels given to the earliest sub-intervals so coverage stays exact,
// and each bucket owns a secondary range mapped within its sub-interval.
type Nested[P, S any] struct {
	primary     DiscreteRanged[P]
	secondaries []Ranged[S]
}

// NewNested builds a nested coordinate. Pass either one secondary range,
// shared by every primary bucket, or exactly primary.Size() of them, one
// per bucket in index order.
func NewNested[P, S any](primary DiscreteRanged[P], secondaries ...Ranged[S]) (Nested[P, S], error) {
	n := primary.Size()
	if n == 0 {
		return Nested[P, S]{}, ErrEmptyPrimary
	}
	switch len(secondaries) {
	case 1:
		shared := secondaries[0]
		secondaries = make([]Ranged[S], n)
		for i := range secondaries {
			secondaries[i] = shared
		}
	case n:
	default:
		return Nested[P, S]{}, fmt.Errorf("coord: need 1 or %d secondary ranges, got %d", n, len(secondaries))
	}
	return Nested[P, S]{primary: primary, secondaries: secondaries}, nil
}

// bucketLimits returns the pixel sub-interval owned by bucket i. The
// parent span is divided into Size() parts; the leftover pixels after
// integer division go one each to the earliest buckets.
func (c Nested[P, S]) bucketLimits(i int, limits PixelRange) PixelRange {
	n := c.primary.Size()
	width := limits.Span()
	dir := 1
	if width < 0 {
		dir = -1
		width = -width
	}
	base := width / n
	rem := width % n

	edge := func(k int) int {
		off := k*base + min(k, rem)
		return limits.Start + dir*off
	}
	return PixelRange{Start: edge(i), End: edge(i + 1)}
}

// Map implements Ranged. A value with no secondary component maps to its
// bucket's midpoint; otherwise the bucket's secondary range maps it
// within the bucket's sub-interval. Unknown primaries map to the lower
// pixel bound.
func (c Nested[P, S]) Map(v NestedValue[P, S], limits PixelRange) int {
	i, ok := c.primary.IndexOf(v.Primary)
	if !ok {
		return limits.Start
	}
	sub := c.bucketLimits(i, limits)
	if v.Secondary == nil {
		return (sub.Start + sub.End) / 2
	}
	return c.secondaries[i].Map(*v.Secondary, sub)
}

// KeyPoints implements Ranged: the primary key points, addressed as
// whole categories.
func (c Nested[P, S]) KeyPoints(maxCount int) []NestedValue[P, S] {
	primaries := c.primary.KeyPoints(maxCount)
	out := make([]NestedValue[P, S], len(primaries))
	for i, p := range primaries {
		out[i] = NestedValue[P, S]{Primary: p}
	}
	return out
}

// SecondaryKeyPoints returns key points of the given bucket's secondary
// range, addressed within that bucket. ok is false for unknown
// primaries.
func (c Nested[P, S]) SecondaryKeyPoints(p P, maxCount int) ([]NestedValue[P, S], bool) {
	i, ok := c.primary.IndexOf(p)
	if !ok {
		return nil, false
	}
	secs := c.secondaries[i].KeyPoints(maxCount)
	out := make([]NestedValue[P, S], len(secs))
	for j, s := range secs {
		out[j] = NestedValue[P, S]{Primary: p, Secondary: &s}
	}
	return out, true
}

// Domain implements Ranged: from the first primary's start to the last
// primary's end, both addressed as whole categories.
func (c Nested[P, S]) Domain() (NestedValue[P, S], NestedValue[P, S]) {
	start, end := c.primary.Domain()
	return NestedValue[P, S]{Primary: start}, NestedValue[P, S]{Primary: end}
}

// NestedDiscrete is the discrete refinement of Nested, available when
// every secondary range is itself discrete. Indices run bucket by
// bucket: all values of the first bucket's secondary, then the second's,
// and so on.
type NestedDiscrete[P, S any] struct {
	Nested[P, S]
	discs []DiscreteRanged[S]
}

// NewNestedDiscrete builds a nested coordinate over discrete
// secondaries. The same one-or-per-bucket rule as NewNested applies.
func NewNestedDiscrete[P, S any](primary DiscreteRanged[P], secondaries ...DiscreteRanged[S]) (NestedDiscrete[P, S], error) {
	ranged := make([]Ranged[S], len(secondaries))
	for i, s := range secondaries {
		ranged[i] = s
	}
	inner, err := NewNested(primary, ranged...)
	if err != nil {
		return NestedDiscrete[P, S]{}, err
	}
	discs := make([]DiscreteRanged[S], primary.Size())
	if len(secondaries) == 1 {
		for i := range discs {
			discs[i] = secondaries[0]
		}
	} else {
		copy(discs, secondaries)
	}
	return NestedDiscrete[P, S]{Nested: inner, discs: discs}, nil
}

// Size implements DiscreteRanged: the sum of all bucket sizes.
func (c NestedDiscrete[P, S]) Size() int {
	total := 0
	for _, d := range c.discs {
		total += d.Size()
	}
	return total
}

// IndexOf implements DiscreteRanged. Values addressing a whole category
// (nil secondary) have no index.
func (c NestedDiscrete[P, S]) IndexOf(v NestedValue[P, S]) (int, bool) {
	if v.Secondary == nil {
		return 0, false
	}
	pi, ok := c.primary.IndexOf(v.Primary)
	if !ok {
		return 0, false
	}
	si, ok := c.discs[pi].IndexOf(*v.Secondary)
	if !ok {
		return 0, false
	}
	base := 0
	for i := 0; i < pi; i++ {
		base += c.discs[i].Size()
	}
	return base + si, true
}

// FromIndex implements DiscreteRanged.
func (c NestedDiscrete[P, S]) FromIndex(i int) (NestedValue[P, S], bool) {
	if i < 0 {
		return NestedValue[P, S]{}, false
	}
	for pi, d := range c.discs {
		if i < d.Size() {
			p, ok := c.primary.FromIndex(pi)
			if !ok {
				return NestedValue[P, S]{}, false
			}
			s, ok := d.FromIndex(i)
			if !ok {
				return NestedValue[P, S]{}, false
			}
			return NestedValue[P, S]{Primary: p, Secondary: &s}, true
		}
		i -= d.Size()
	}
	return NestedValue[P, S]{}, false
}
