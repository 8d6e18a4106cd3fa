package ui

// CellAt maps a screen position to the grid cell under it. It reports false
// when the position falls outside the rows × cols view.
func CellAt(x, y, cellWidth int, rows, cols uint32) (uint32, uint32, bool) {
	if cellWidth <= 0 || x < 0 || y < 0 {
		return 0, 0, false
	}
	col := x / cellWidth
	row := y / cellWidth
	if uint64(row) >= uint64(rows) || uint64(col) >= uint64(cols) {
		return 0, 0, false
	}
	return uint32(row), uint32(col), true
}
