package coord

import (
	"math"
	"testing"
)

func TestNewLogRangeRejectsNonPositive(t *testing.T) {
	tests := []struct {
		name       string
		start, end float64
	}{
		{"zero start", 0, 100},
		{"zero end", 1, 0},
		{"negative start", -1, 100},
		{"negative end", 1, -100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewLogRange(tt.start, tt.end); err == nil {
				t.Errorf("NewLogRange(%v, %v) expected error", tt.start, tt.end)
			}
		})
	}
}

func TestLogRangeDecadeSpacing(t *testing.T) {
	r, err := NewLogRange(1, 1000)
	if err != nil {
		t.Fatal(err)
	}
	limits := Pixels(0, 300)
	// One decade per 100 pixels.
	tests := []struct {
		v    float64
		want int
	}{
		{1, 0},
		{10, 100},
		{100, 200},
		{1000, 300},
	}
	for _, tt := range tests {
		if got := r.Map(tt.v, limits); got != tt.want {
			t.Errorf("Map(%v) = %d, want %d", tt.v, got, tt.want)
		}
	}
}

func TestLogRangeKeyPointsPowers(t *testing.T) {
	r, err := NewLogRange(1, 1000)
	if err != nil {
		t.Fatal(err)
	}
	kp := r.KeyPoints(10)
	want := []float64{1, 10, 100, 1000}
	if len(kp) != len(want) {
		t.Fatalf("KeyPoints = %v, want %v", kp, want)
	}
	for i := range kp {
		if math.Abs(kp[i]-want[i]) > 1e-9 {
			t.Fatalf("KeyPoints = %v, want %v", kp, want)
		}
	}
}

func TestLogRangeSubDecadeFallback(t *testing.T) {
	// 2..5 spans less than one decade and contains no power of ten
	// besides none; the tick set must not be empty.
	r, err := NewLogRange(2, 5)
	if err != nil {
		t.Fatal(err)
	}
	kp := r.KeyPoints(5)
	if len(kp) == 0 {
		t.Fatal("KeyPoints empty for sub-decade domain")
	}
	for _, v := range kp {
		if v < 2 || v > 5 {
			t.Errorf("key point %v outside domain", v)
		}
	}
}

func TestLogRangeBase2(t *testing.T) {
	r, err := NewLogRangeBase(1, 16, 2)
	if err != nil {
		t.Fatal(err)
	}
	kp := r.KeyPoints(10)
	want := []float64{1, 2, 4, 8, 16}
	if len(kp) != len(want) {
		t.Fatalf("KeyPoints = %v, want %v", kp, want)
	}
	for i := range kp {
		if math.Abs(kp[i]-want[i]) > 1e-9 {
			t.Fatalf("KeyPoints = %v, want %v", kp, want)
		}
	}
	if got := r.Map(4, Pixels(0, 400)); got != 200 {
		t.Errorf("Map(4) = %d, want 200", got)
	}
}
