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
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestGridCellRoundTrip(t *testing.T) {
	const cols = 5
	for i := 0; i < 20; i++ {
		c := CellAt(i, cols)
		if c.Index(cols) != i {
			t.Errorf("CellAt(%d).Index() = %d", i, c.Index(cols))
		}
	}
	if c := CellAt(7, cols); c.Row != 1 || c.Col != 2 {
		t.Errorf("CellAt(7, 5) = %+v, expected row 1 col 2", c)
	}
}

func TestGridCellMoveClamps(t *testing.T) {
	tests := []struct {
		name     string
		from     GridCell
		dr, dc   int
		expected GridCell
	}{
		{"move right", GridCell{0, 0}, 0, 1, GridCell{0, 1}},
		{"stop at left edge", GridCell{2, 0}, 0, -1, GridCell{2, 0}},
		{"stop at bottom edge", GridCell{3, 1}, 1, 0, GridCell{3, 1}},
		{"stop at top edge", GridCell{0, 4}, -1, 0, GridCell{0, 4}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.from.Move(tc.dr, tc.dc, 4, 5); got != tc.expected {
				t.Errorf("Move() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max64(-3, -7) != -3 {
		t.Error("Max should return the larger value")
	}
}

func TestCeilDiv(t *testing.T) {
	tests := []struct {
		a, b, expected int64
	}{
		{0, 1000, 0},
		{1, 1000, 1},
		{1000, 1000, 1},
		{4700, 1000, 5},
		{10, 0, 0},
	}
	for _, tc := range tests {
		if got := CeilDiv(tc.a, tc.b); got != tc.expected {
			t.Errorf("CeilDiv(%d, %d) = %d, expected %d", tc.a, tc.b, got, tc.expected)
		}
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		part, whole, expected int
	}{
		{0, 0, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 2, 50},
		{9, 10, 90},
		{5, 5, 100},
	}
	for _, tc := range tests {
		if got := Percent(tc.part, tc.whole); got != tc.expected {
			t.Errorf("Percent(%d, %d) = %d, expected %d", tc.part, tc.whole, got, tc.expected)
		}
	}
}
