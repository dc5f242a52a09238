package core

import (
	"math"
	"testing"
)

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        NewBox(V(0, 0), 10, 10),
			b:        NewBox(V(5, 5), 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewBox(V(0, 0), 10, 10),
			b:        NewBox(V(15, 0), 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewBox(V(0, 0), 10, 10),
			b:        NewBox(V(0, -15), 10, 10),
			expected: false,
		},
		{
			name:     "touching edges (no overlap)",
			a:        NewBox(V(0, 0), 10, 10),
			b:        NewBox(V(10, 0), 10, 10),
			expected: false,
		},
		{
			name:     "contained box",
			a:        NewBox(V(0, 0), 20, 20),
			b:        NewBox(V(1, 1), 5, 5),
			expected: true,
		},
		{
			name:     "ball against paddle",
			a:        NewBox(V(-320, 60), 25, 25),
			b:        NewBox(V(-330, 0), 10, 150),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Overlaps(tc.b)
			if result != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			if reverse := tc.b.Overlaps(tc.a); reverse != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", reverse, tc.expected)
			}
		})
	}
}

func TestBoxEdges(t *testing.T) {
	b := NewBox(V(10, -20), 4, 6)

	if b.Left() != 8 || b.Right() != 12 {
		t.Errorf("Left/Right = %v/%v, expected 8/12", b.Left(), b.Right())
	}
	if b.Bottom() != -23 || b.Top() != -17 {
		t.Errorf("Bottom/Top = %v/%v, expected -23/-17", b.Bottom(), b.Top())
	}
}

func TestBoxClosestPoint(t *testing.T) {
	b := NewBox(V(0, 0), 10, 20)

	tests := []struct {
		p, expected Vec2
	}{
		{V(0, 0), V(0, 0)},
		{V(20, 0), V(5, 0)},
		{V(-20, 30), V(-5, 10)},
		{V(3, -40), V(3, -10)},
	}

	for _, tc := range tests {
		if got := b.ClosestPoint(tc.p); got != tc.expected {
			t.Errorf("ClosestPoint(%v) = %v, expected %v", tc.p, got, tc.expected)
		}
	}
}

func TestVec2Ops(t *testing.T) {
	a := V(3, 4)
	b := V(-1, 2)

	if got := a.Add(b); got != V(2, 6) {
		t.Errorf("Add() = %v, expected (2, 6)", got)
	}
	if got := a.Sub(b); got != V(4, 2) {
		t.Errorf("Sub() = %v, expected (4, 2)", got)
	}
	if got := a.Scale(-1); got != V(-3, -4) {
		t.Errorf("Scale() = %v, expected (-3, -4)", got)
	}
	if got := a.Dot(b); got != 5 {
		t.Errorf("Dot() = %v, expected 5", got)
	}
	if got := a.Len(); math.Abs(got-5) > 1e-12 {
		t.Errorf("Len() = %v, expected 5", got)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
		{300, -175, 175, 175},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestSign(t *testing.T) {
	if Sign(3) != 1 || Sign(-0.5) != -1 || Sign(0) != 0 {
		t.Error("Sign() returned wrong value")
	}
}
