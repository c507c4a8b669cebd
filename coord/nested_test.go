package coord

import (
	"errors"
	"testing"
)

func TestNewNestedRejectsEmptyPrimary(t *testing.T) {
	_, err := NewNested[int, float64](NewIntRange(0, 0), NewF64Range(0, 1))
	if !errors.Is(err, ErrEmptyPrimary) {
		t.Errorf("err = %v, want ErrEmptyPrimary", err)
	}
}

func TestNewNestedSecondaryCountMismatch(t *testing.T) {
	_, err := NewNested[int, float64](NewIntRange(0, 3),
		NewF64Range(0, 1), NewF64Range(0, 2))
	if err == nil {
		t.Error("expected error for 2 secondaries over 3 buckets")
	}
}

func TestNestedBucketPartition(t *testing.T) {
	// 3 buckets over 100 pixels: widths 34, 33, 33 with the remainder
	// pixel going to the earliest bucket.
	c, err := NewNested[int, float64](NewIntRange(0, 3), NewF64Range(0, 1))
	if err != nil {
		t.Fatal(err)
	}
	limits := Pixels(0, 100)
	wantEdges := [][2]int{{0, 34}, {34, 67}, {67, 100}}
	for i, want := range wantEdges {
		sub := c.bucketLimits(i, limits)
		if sub.Start != want[0] || sub.End != want[1] {
			t.Errorf("bucket %d = [%d, %d), want [%d, %d)", i, sub.Start, sub.End, want[0], want[1])
		}
	}
}

func TestNestedMapMidpointAndSecondary(t *testing.T) {
	c, err := NewNested[int, float64](NewIntRange(0, 2), NewF64Range(0, 1))
	if err != nil {
		t.Fatal(err)
	}
	limits := Pixels(0, 100)

	// Whole-category values map to the bucket midpoint.
	if got := c.Map(Whole[int, float64](0), limits); got != 25 {
		t.Errorf("Map(bucket 0 midpoint) = %d, want 25", got)
	}
	if got := c.Map(Whole[int, float64](1), limits); got != 75 {
		t.Errorf("Map(bucket 1 midpoint) = %d, want 75", got)
	}

	// Secondary values map within their bucket's sub-interval.
	if got := c.Map(In(1, 0.0), limits); got != 50 {
		t.Errorf("Map(1, 0.0) = %d, want 50", got)
	}
	if got := c.Map(In(1, 1.0), limits); got != 100 {
		t.Errorf("Map(1, 1.0) = %d, want 100", got)
	}

	// Unknown primaries map to the lower pixel bound.
	if got := c.Map(Whole[int, float64](9), limits); got != 0 {
		t.Errorf("Map(unknown primary) = %d, want 0", got)
	}
}

func TestNestedKeyPoints(t *testing.T) {
	c, err := NewNested[int, float64](NewIntRange(0, 4), NewF64Range(0, 1))
	if err != nil {
		t.Fatal(err)
	}
	kp := c.KeyPoints(10)
	if len(kp) != 4 {
		t.Fatalf("KeyPoints = %d values, want 4", len(kp))
	}
	for i, v := range kp {
		if v.Primary != i || v.Secondary != nil {
			t.Errorf("key point %d = %+v, want whole category %d", i, v, i)
		}
	}

	secs, ok := c.SecondaryKeyPoints(2, 3)
	if !ok || len(secs) == 0 {
		t.Fatalf("SecondaryKeyPoints(2, 3) = (%v, %v)", secs, ok)
	}
	for _, s := range secs {
		if s.Primary != 2 || s.Secondary == nil {
			t.Errorf("secondary key point %+v not anchored in bucket 2", s)
		}
	}
}

func TestNestedDiscreteInverse(t *testing.T) {
	c, err := NewNestedDiscrete[int, int](NewIntRange(0, 3), NewIntRange(0, 4))
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Size(); got != 12 {
		t.Fatalf("Size() = %d, want 12", got)
	}
	for i := 0; i < c.Size(); i++ {
		v, ok := c.FromIndex(i)
		if !ok {
			t.Fatalf("FromIndex(%d) not ok", i)
		}
		j, ok := c.IndexOf(v)
		if !ok || j != i {
			t.Errorf("IndexOf(FromIndex(%d)) = (%d, %v)", i, j, ok)
		}
	}
}

func TestNestedDiscretePerBucketSecondaries(t *testing.T) {
	c, err := NewNestedDiscrete[int, int](NewIntRange(0, 2),
		NewIntRange(0, 2), NewIntRange(0, 5))
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Size(); got != 7 {
		t.Fatalf("Size() = %d, want 7", got)
	}
	// Index 3 is the second value of bucket 1 (after bucket 0's two).
	v, ok := c.FromIndex(3)
	if !ok || v.Primary != 1 || v.Secondary == nil || *v.Secondary != 1 {
		t.Errorf("FromIndex(3) = (%+v, %v), want bucket 1 value 1", v, ok)
	}
}
