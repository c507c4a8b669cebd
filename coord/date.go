package coord

import "time"

// DateRange is a discrete calendar-date range at day granularity over
// [Start, End). Values are truncated to midnight UTC of their day before
// indexing, so any time within a day identifies that day.
type DateRange struct {
	Start, End time.Time
}

// NewDateRange creates a day-granularity date range.
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: truncateDay(start), End: truncateDay(end)}
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// dayIndex returns the number of whole days from Start to t.
func (r DateRange) dayIndex(t time.Time) int {
	return int(truncateDay(t).Sub(r.Start) / (24 * time.Hour))
}

// Map implements Ranged. Mapping is linear in time across the full
// domain, so partial days interpolate between day boundaries.
func (r DateRange) Map(v time.Time, limits PixelRange) int {
	total := r.End.Sub(r.Start)
	if total == 0 {
		return limits.Start
	}
	f := float64(v.UTC().Sub(r.Start)) / float64(total)
	return limits.Interpolate(f)
}

// KeyPoints implements Ranged. Whole days are returned, thinning by
// growing the day stride until at most maxCount remain.
func (r DateRange) KeyPoints(maxCount int) []time.Time {
	if maxCount <= 0 || r.Size() == 0 {
		return nil
	}
	stride := 1
	for (r.Size()+stride-1)/stride > maxCount {
		stride++
	}
	out := make([]time.Time, 0, maxCount)
	for i := 0; i < r.Size(); i += stride {
		out = append(out, r.Start.AddDate(0, 0, i))
	}
	return out
}

// Domain implements Ranged.
func (r DateRange) Domain() (time.Time, time.Time) {
	return r.Start, r.End
}

// Size implements DiscreteRanged.
func (r DateRange) Size() int {
	days := r.dayIndex(r.End)
	if days < 0 {
		return 0
	}
	return days
}

// IndexOf implements DiscreteRanged.
func (r DateRange) IndexOf(v time.Time) (int, bool) {
	i := r.dayIndex(v)
	if i < 0 || i >= r.Size() {
		return 0, false
	}
	return i, true
}

// FromIndex implements DiscreteRanged.
func (r DateRange) FromIndex(i int) (time.Time, bool) {
	if i < 0 || i >= r.Size() {
		return time.Time{}, false
	}
	return r.Start.AddDate(0, 0, i), true
}
