package coord

import (
	"math"
	"testing"
)

func TestF64RangeMapEndpoints(t *testing.T) {
	tests := []struct {
		name       string
		start, end float64
		limits     PixelRange
	}{
		{"unit to 0..100", 0, 1, Pixels(0, 100)},
		{"offset domain", -5, 5, Pixels(0, 300)},
		{"reversed limits", 0, 10, Pixels(200, 0)},
		{"offset limits", 2, 8, Pixels(50, 350)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewF64Range(tt.start, tt.end)
			if got := r.Map(tt.start, tt.limits); got != tt.limits.Start {
				t.Errorf("Map(start) = %d, want %d", got, tt.limits.Start)
			}
			if got := r.Map(tt.end, tt.limits); got != tt.limits.End {
				t.Errorf("Map(end) = %d, want %d", got, tt.limits.End)
			}
		})
	}
}

func TestF64RangeMapMonotonic(t *testing.T) {
	r := NewF64Range(0, 10)
	limits := Pixels(0, 500)
	prev := r.Map(0, limits)
	for v := 0.5; v <= 10; v += 0.5 {
		cur := r.Map(v, limits)
		if cur < prev {
			t.Fatalf("Map not monotonic: Map(%v) = %d < %d", v, cur, prev)
		}
		prev = cur
	}
}

func TestF64RangeDegenerate(t *testing.T) {
	r := NewF64Range(3, 3)
	if got := r.Map(3, Pixels(10, 90)); got != 10 {
		t.Errorf("Map on degenerate domain = %d, want lower bound 10", got)
	}
	if kp := r.KeyPoints(10); len(kp) != 0 {
		t.Errorf("KeyPoints on degenerate domain = %v, want empty", kp)
	}
}

func TestF64RangeKeyPoints(t *testing.T) {
	tests := []struct {
		name       string
		start, end float64
		maxCount   int
	}{
		{"unit", 0, 1, 10},
		{"wide", 0, 1000, 10},
		{"negative", -50, 50, 8},
		{"tiny", 0.001, 0.002, 5},
		{"single slot", 0, 100, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewF64Range(tt.start, tt.end)
			kp := r.KeyPoints(tt.maxCount)
			if len(kp) == 0 {
				t.Fatal("KeyPoints returned no points for a non-degenerate domain")
			}
			if len(kp) > tt.maxCount {
				t.Fatalf("KeyPoints returned %d points, max %d", len(kp), tt.maxCount)
			}
			for i, v := range kp {
				if v < tt.start || v > tt.end {
					t.Errorf("key point %v outside domain [%v, %v]", v, tt.start, tt.end)
				}
				if i > 0 && kp[i-1] >= v {
					t.Errorf("key points not strictly increasing at %d: %v", i, kp)
				}
			}
		})
	}
}

func TestIntRangeDiscrete(t *testing.T) {
	r := NewIntRange(5, 15)
	if got := r.Size(); got != 10 {
		t.Fatalf("Size() = %d, want 10", got)
	}
	for i := 0; i < r.Size(); i++ {
		v, ok := r.FromIndex(i)
		if !ok {
			t.Fatalf("FromIndex(%d) not ok", i)
		}
		j, ok := r.IndexOf(v)
		if !ok || j != i {
			t.Errorf("IndexOf(FromIndex(%d)) = (%d, %v), want (%d, true)", i, j, ok, i)
		}
	}
	if _, ok := r.IndexOf(15); ok {
		t.Error("IndexOf(end) should be out of domain (exclusive end)")
	}
	if _, ok := r.FromIndex(10); ok {
		t.Error("FromIndex(Size()) should be out of range")
	}
}

func TestIntRangeKeyPoints(t *testing.T) {
	r := NewIntRange(0, 10)
	tests := []struct {
		maxCount int
		want     []int
	}{
		{20, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{4, []int{0, 3, 6, 9}},
		{1, []int{0}},
	}
	for _, tt := range tests {
		got := r.KeyPoints(tt.maxCount)
		if len(got) != len(tt.want) {
			t.Errorf("KeyPoints(%d) = %v, want %v", tt.maxCount, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("KeyPoints(%d) = %v, want %v", tt.maxCount, got, tt.want)
				break
			}
		}
	}
}

func TestIntRangeMapEndpoints(t *testing.T) {
	r := NewIntRange(0, 10)
	limits := Pixels(0, 100)
	if got := r.Map(0, limits); got != 0 {
		t.Errorf("Map(0) = %d, want 0", got)
	}
	if got := r.Map(10, limits); got != 100 {
		t.Errorf("Map(10) = %d, want 100", got)
	}
	if got := r.Map(5, limits); got != 50 {
		t.Errorf("Map(5) = %d, want 50", got)
	}
}

func TestF64RangeKeyPointsOnNiceBoundaries(t *testing.T) {
	kp := NewF64Range(0, 10).KeyPoints(10)
	// Step 1 would give 11 boundaries, one over maxCount, so the step
	// escalates to 2.
	want := []float64{0, 2, 4, 6, 8, 10}
	if len(kp) != len(want) {
		t.Fatalf("KeyPoints(10) = %v, want %v", kp, want)
	}
	for i := range kp {
		if math.Abs(kp[i]-want[i]) > 1e-12 {
			t.Fatalf("KeyPoints(10) = %v, want %v", kp, want)
		}
	}
}
