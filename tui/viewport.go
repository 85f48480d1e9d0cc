//go:build !js
// +build !js

package tui

import "github.com/simukka/feed-the-freddies/game"

// HUDRows is the number of terminal rows reserved above the play area.
const HUDRows = 1

// Viewport maps the continuous field onto a grid of terminal cells.
type Viewport struct {
	Cols, Rows int
	Field      game.Field
}

// PlayRows is the height of the play area in cells.
func (v Viewport) PlayRows() int {
	if v.Rows <= HUDRows {
		return 0
	}
	return v.Rows - HUDRows
}

// ToCell converts field coordinates to a screen cell. ok is false when the
// point falls outside the play area.
func (v Viewport) ToCell(x, y float64) (col, row int, ok bool) {
	rows := v.PlayRows()
	if v.Cols <= 0 || rows <= 0 || x < 0 || y < 0 || x >= v.Field.Width || y >= v.Field.Height {
		return 0, 0, false
	}
	col = int(x / v.Field.Width * float64(v.Cols))
	row = int(y/v.Field.Height*float64(rows)) + HUDRows
	return col, row, true
}

// ToField converts a screen cell to the field point at its center. ok is
// false for cells outside the play area.
func (v Viewport) ToField(col, row int) (x, y float64, ok bool) {
	rows := v.PlayRows()
	r := row - HUDRows
	if col < 0 || col >= v.Cols || r < 0 || r >= rows {
		return 0, 0, false
	}
	x = (float64(col) + 0.5) * v.Field.Width / float64(v.Cols)
	y = (float64(r) + 0.5) * v.Field.Height / float64(rows)
	return x, y, true
}

// CellWidth is the field distance covered by one column.
func (v Viewport) CellWidth() float64 {
	if v.Cols <= 0 {
		return 0
	}
	return v.Field.Width / float64(v.Cols)
}

// CellHeight is the field distance covered by one play row.
func (v Viewport) CellHeight() float64 {
	rows := v.PlayRows()
	if rows <= 0 {
		return 0
	}
	return v.Field.Height / float64(rows)
}
