package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"apart horizontally", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"apart vertically", NewRect(0, 0, 10, 10), NewRect(0, 15, 10, 10), false},
		{"touching right edge", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"touching bottom edge", NewRect(0, 0, 10, 10), NewRect(0, 10, 10, 10), false},
		{"touching corner", NewRect(0, 0, 10, 10), NewRect(10, 10, 2, 2), false},
		{"contained", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
		{"single cell overlap", NewRect(0, 0, 10, 10), NewRect(9, 9, 10, 10), true},
		{"zero width", NewRect(5, 5, 0, 3), NewRect(0, 0, 10, 10), false},
		{"zero height", NewRect(5, 5, 3, 0), NewRect(0, 0, 10, 10), false},
		{"negative size", NewRect(5, 5, -2, 3), NewRect(0, 0, 10, 10), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectFIntersects(t *testing.T) {
	player := RectF{X: 10, Y: 20, W: 2, H: 1}

	tests := []struct {
		name     string
		other    RectF
		expected bool
	}{
		{"overlapping", RectF{X: 11.5, Y: 20.5, W: 1, H: 1}, true},
		{"fractional gap", RectF{X: 12.01, Y: 20, W: 1, H: 1}, false},
		{"touching left edge", RectF{X: 9, Y: 20, W: 1, H: 1}, false},
		{"touching top edge", RectF{X: 10, Y: 19, W: 2, H: 1}, false},
		{"sub-cell overlap", RectF{X: 11.99, Y: 20.99, W: 1, H: 1}, true},
		{"far away", RectF{X: 40, Y: 2, W: 3, H: 3}, false},
		{"zero width inside", RectF{X: 11, Y: 20.5, W: 0, H: 0.5}, false},
		{"zero height inside", RectF{X: 10.5, Y: 20.5, W: 1, H: 0}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := player.Intersects(tc.other); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.other.Intersects(player); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectFCell(t *testing.T) {
	r := RectF{X: 3.5, Y: 4.2, W: 1.5, H: 1}
	cell := r.Cell()
	if cell != NewRect(3, 4, 2, 1) {
		t.Errorf("Cell() = %+v, expected {3 4 2 1}", cell)
	}
	if r.CenterX() != 4.25 {
		t.Errorf("CenterX() = %f, expected 4.25", r.CenterX())
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(0.5, 0, 1); got != 0.5 {
		t.Errorf("ClampF(0.5, 0, 1) = %f, expected 0.5", got)
	}
	if got := ClampF(-0.5, 0, 1); got != 0 {
		t.Errorf("ClampF(-0.5, 0, 1) = %f, expected 0", got)
	}
	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF(1.5, 0, 1) = %f, expected 1", got)
	}
}
