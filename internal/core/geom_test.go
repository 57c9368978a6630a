package core

import "testing"

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
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
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

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestRectCenterIn(t *testing.T) {
	tests := []struct {
		name     string
		outer    Rect
		w, h     int
		expected Rect
	}{
		{"exact fit", NewRect(0, 0, 64, 24), 64, 24, NewRect(0, 0, 64, 24)},
		{"centered", NewRect(0, 0, 80, 30), 64, 24, NewRect(8, 3, 64, 24)},
		{"offset outer", NewRect(2, 1, 10, 10), 4, 4, NewRect(5, 4, 4, 4)},
		{"oversized pinned", NewRect(0, 0, 10, 10), 20, 20, NewRect(0, 0, 20, 20)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.outer.CenterIn(tc.w, tc.h)
			if result != tc.expected {
				t.Errorf("CenterIn(%d, %d) = %+v, expected %+v", tc.w, tc.h, result, tc.expected)
			}
		})
	}
}

func TestRectFits(t *testing.T) {
	r := NewRect(0, 0, 64, 24)
	if !r.Fits(64, 24) {
		t.Error("64x24 should fit in 64x24")
	}
	if r.Fits(65, 24) {
		t.Error("65x24 should not fit in 64x24")
	}
	if r.Fits(64, 25) {
		t.Error("64x25 should not fit in 64x24")
	}
}

func TestMod(t *testing.T) {
	tests := []struct {
		a, m, expected int
	}{
		{0, 640, 0},
		{20, 640, 20},
		{640, 640, 0},
		{660, 640, 20},
		{-20, 640, 620}, // stepping left off the edge
		{-640, 640, 0},
		{-660, 640, 620},
	}

	for _, tc := range tests {
		result := Mod(tc.a, tc.m)
		if result != tc.expected {
			t.Errorf("Mod(%d, %d) = %d, expected %d", tc.a, tc.m, result, tc.expected)
		}
	}
}
