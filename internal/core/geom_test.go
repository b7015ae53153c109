package core

import "testing"

func TestPointWrap(t *testing.T) {
	tests := []struct {
		name     string
		p        Point
		size     int
		expected Point
	}{
		{"inside", Point{3, 5}, 20, Point{3, 5}},
		{"right edge", Point{20, 5}, 20, Point{0, 5}},
		{"left edge", Point{-1, 5}, 20, Point{19, 5}},
		{"top edge", Point{4, -1}, 20, Point{4, 19}},
		{"bottom edge", Point{4, 20}, 20, Point{4, 0}},
		{"far outside", Point{-41, 45}, 20, Point{19, 5}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.p.Wrap(tc.size)
			if result != tc.expected {
				t.Errorf("Wrap(%d) = %v, expected %v", tc.size, result, tc.expected)
			}
			if !result.In(tc.size) {
				t.Errorf("Wrap(%d) = %v is off the board", tc.size, result)
			}
		})
	}
}

func TestPointIn(t *testing.T) {
	tests := []struct {
		p        Point
		expected bool
	}{
		{Point{0, 0}, true},
		{Point{9, 9}, true},
		{Point{10, 0}, false},
		{Point{0, 10}, false},
		{Point{-1, 3}, false},
		{Point{3, -1}, false},
	}

	for _, tc := range tests {
		if got := tc.p.In(10); got != tc.expected {
			t.Errorf("%v.In(10) = %v, expected %v", tc.p, got, tc.expected)
		}
	}
}

func TestPointArithmetic(t *testing.T) {
	p := Point{2, -3}
	if got := p.Add(Point{1, 1}); got != (Point{3, -2}) {
		t.Errorf("Add() = %v, expected (3,-2)", got)
	}
	if got := p.Neg(); got != (Point{-2, 3}) {
		t.Errorf("Neg() = %v, expected (-2,3)", got)
	}
	if got := p.Scale(20); got != (Point{40, -60}) {
		t.Errorf("Scale() = %v, expected (40,-60)", got)
	}
}

func TestMod(t *testing.T) {
	tests := []struct {
		a, n, expected int
	}{
		{5, 3, 2},
		{-1, 3, 2},
		{-3, 3, 0},
		{0, 7, 0},
		{21, 20, 1},
	}

	for _, tc := range tests {
		if got := Mod(tc.a, tc.n); got != tc.expected {
			t.Errorf("Mod(%d, %d) = %d, expected %d", tc.a, tc.n, got, tc.expected)
		}
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

func TestRectCentered(t *testing.T) {
	r := NewRect(0, 0, 80, 24)
	c := r.Centered(40, 20)
	if c.X != 20 || c.Y != 2 || c.W != 40 || c.H != 20 {
		t.Errorf("Centered() = %+v, expected {20 2 40 20}", c)
	}
	if r.Right() != 80 || r.Bottom() != 24 {
		t.Errorf("edges = (%d, %d), expected (80, 24)", r.Right(), r.Bottom())
	}
}
