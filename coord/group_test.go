package coord

import "testing"

func TestNewGroupByRejectsBadBucket(t *testing.T) {
	if _, err := NewGroupBy[int](NewIntRange(0, 10), 0); err == nil {
		t.Error("NewGroupBy(0) expected error")
	}
}

func TestGroupBySize(t *testing.T) {
	tests := []struct {
		name      string
		innerSize int
		n         int
		want      int
	}{
		{"exact", 9, 3, 3},
		{"with remainder", 10, 3, 4},
		{"bucket of one", 5, 1, 5},
		{"bucket larger than domain", 4, 10, 1},
		{"empty inner", 0, 3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGroupBy[int](NewIntRange(0, tt.innerSize), tt.n)
			if err != nil {
				t.Fatal(err)
			}
			if got := g.Size(); got != tt.want {
				t.Errorf("Size() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGroupByRepresentatives(t *testing.T) {
	g, err := NewGroupBy[int](NewIntRange(0, 10), 3)
	if err != nil {
		t.Fatal(err)
	}
	if got := g.Size(); got != 4 {
		t.Fatalf("Size() = %d, want 4", got)
	}
	if v, ok := g.FromIndex(1); !ok || v != 3 {
		t.Errorf("FromIndex(1) = (%d, %v), want (3, true)", v, ok)
	}
	// All members of a bucket collapse to one index.
	for _, v := range []int{3, 4, 5} {
		if i, ok := g.IndexOf(v); !ok || i != 1 {
			t.Errorf("IndexOf(%d) = (%d, %v), want (1, true)", v, i, ok)
		}
	}
}

func TestGroupByDiscreteInverse(t *testing.T) {
	g, err := NewGroupBy[int](NewIntRange(0, 10), 3)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < g.Size(); i++ {
		v, ok := g.FromIndex(i)
		if !ok {
			t.Fatalf("FromIndex(%d) not ok", i)
		}
		j, ok := g.IndexOf(v)
		if !ok || j != i {
			t.Errorf("IndexOf(FromIndex(%d)) = (%d, %v)", i, j, ok)
		}
	}
}

func TestGroupByNestsWithGroupBy(t *testing.T) {
	// Combinator composition is closed: grouping a grouped range works.
	inner, err := NewGroupBy[int](NewIntRange(0, 100), 5)
	if err != nil {
		t.Fatal(err)
	}
	outer, err := NewGroupBy[int](inner, 4)
	if err != nil {
		t.Fatal(err)
	}
	if got := outer.Size(); got != 5 {
		t.Errorf("Size() = %d, want 5", got)
	}
	if v, ok := outer.FromIndex(1); !ok || v != 20 {
		t.Errorf("FromIndex(1) = (%d, %v), want (20, true)", v, ok)
	}
}

func TestGroupByKeyPoints(t *testing.T) {
	g, err := NewGroupBy[int](NewIntRange(0, 30), 5)
	if err != nil {
		t.Fatal(err)
	}
	kp := g.KeyPoints(10)
	want := []int{0, 5, 10, 15, 20, 25}
	if len(kp) != len(want) {
		t.Fatalf("KeyPoints = %v, want %v", kp, want)
	}
	for i := range kp {
		if kp[i] != want[i] {
			t.Fatalf("KeyPoints = %v, want %v", kp, want)
		}
	}
	thinned := g.KeyPoints(3)
	if len(thinned) > 3 {
		t.Errorf("KeyPoints(3) returned %d points", len(thinned))
	}
}
