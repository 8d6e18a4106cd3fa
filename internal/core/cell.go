package core

import "cmp"

// Cell identifies one grid position. 2D grids always store Level 0.
type Cell struct {
	Row   uint32
	Col   uint32
	Level int32
}

// At returns the 2D cell at (row, col).
func At(row, col uint32) Cell { return Cell{Row: row, Col: col} }

// At3 returns the 3D cell at (row, col, level).
func At3(row, col uint32, level int32) Cell { return Cell{Row: row, Col: col, Level: level} }

// Compare orders cells by descending row, then ascending col, then ascending
// level. Iterating occupancy in this order visits the cells nearest the floor
// first.
func Compare(a, b Cell) int {
	if a.Row != b.Row {
		return cmp.Compare(b.Row, a.Row)
	}
	if a.Col != b.Col {
		return cmp.Compare(a.Col, b.Col)
	}
	return cmp.Compare(a.Level, b.Level)
}

// Less reports whether a sorts before b.
func Less(a, b Cell) bool { return Compare(a, b) < 0 }

// Flat drops the level.
func (c Cell) Flat() Cell { return Cell{Row: c.Row, Col: c.Col} }

// Below returns the cell one row down, shifted by dcol columns and dlevel
// levels. Callers check the column bounds.
func (c Cell) Below(dcol int, dlevel int32) Cell {
	return Cell{Row: c.Row + 1, Col: uint32(int64(c.Col) + int64(dcol)), Level: c.Level + dlevel}
}

// InBounds reports whether the cell lies inside rows × cols.
func (c Cell) InBounds(rows, cols uint32) bool { return c.Row < rows && c.Col < cols }
