package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
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

func TestClampCoord(t *testing.T) {
	var lo, hi Coord = 8, 119
	if got := Clamp(Coord(126), lo, hi); got != 119 {
		t.Errorf("Clamp(126) = %d, expected 119", got)
	}
	if got := Clamp(Coord(1), lo, hi); got != 8 {
		t.Errorf("Clamp(1) = %d, expected 8", got)
	}
}

func TestAbsCoord(t *testing.T) {
	tests := []struct {
		in, expected Coord
	}{
		{5, 5},
		{-5, 5},
		{0, 0},
		{MaxCoord, MaxCoord},
		{MinCoord, MaxCoord}, // saturates instead of wrapping
	}

	for _, tc := range tests {
		if got := AbsCoord(tc.in); got != tc.expected {
			t.Errorf("AbsCoord(%d) = %d, expected %d", tc.in, got, tc.expected)
		}
	}
}
