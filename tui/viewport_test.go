//go:build !js
// +build !js

package tui

import (
	"testing"

	"github.com/simukka/feed-the-freddies/game"
)

func testViewport() Viewport {
	return Viewport{Cols: 80, Rows: 31, Field: game.Field{Width: 800, Height: 600}}
}

func TestViewport_ToCell(t *testing.T) {
	v := testViewport()

	tests := []struct {
		name     string
		x, y     float64
		col, row int
		ok       bool
	}{
		{"origin", 0, 0, 0, HUDRows, true},
		{"center", 400, 300, 40, 15 + HUDRows, true},
		{"last cell", 799, 599, 79, 29 + HUDRows, true},
		{"above field", 100, -10, 0, 0, false},
		{"right edge", 800, 100, 0, 0, false},
		{"below field", 100, 600, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, row, ok := v.ToCell(tt.x, tt.y)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && (col != tt.col || row != tt.row) {
				t.Errorf("ToCell = (%d,%d), want (%d,%d)", col, row, tt.col, tt.row)
			}
		})
	}
}

func TestViewport_ToFieldRoundTrip(t *testing.T) {
	v := testViewport()

	for _, cell := range [][2]int{{0, HUDRows}, {40, 10}, {79, v.Rows - 1}} {
		x, y, ok := v.ToField(cell[0], cell[1])
		if !ok {
			t.Fatalf("ToField(%d,%d) rejected", cell[0], cell[1])
		}
		col, row, ok := v.ToCell(x, y)
		if !ok || col != cell[0] || row != cell[1] {
			t.Errorf("round trip (%d,%d) -> (%v,%v) -> (%d,%d)", cell[0], cell[1], x, y, col, row)
		}
	}
}

func TestViewport_ToFieldRejectsHUD(t *testing.T) {
	v := testViewport()
	if _, _, ok := v.ToField(10, 0); ok {
		t.Error("HUD row should not map to the field")
	}
	if _, _, ok := v.ToField(80, 5); ok {
		t.Error("column past the edge should not map to the field")
	}
}

func TestViewport_TooSmall(t *testing.T) {
	v := Viewport{Cols: 10, Rows: HUDRows, Field: game.Field{Width: 800, Height: 600}}
	if _, _, ok := v.ToCell(10, 10); ok {
		t.Error("viewport without play rows should reject every point")
	}
	if v.CellHeight() != 0 {
		t.Errorf("CellHeight = %v, want 0", v.CellHeight())
	}
}
