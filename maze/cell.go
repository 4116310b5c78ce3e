package maze

// Cell represents a single cell in a bordered maze grid.
// Only the upper and left walls are stored on the cell itself; the lower and
// right walls belong to the neighbours below and to the right.
type Cell struct {
	// Carved reports whether the carving walk has reached the cell. Frame cells are always carved.
	Carved bool
	// WallUp indicates whether there is a wall between the cell and the one above it.
	WallUp bool
	// WallLeft indicates whether there is a wall between the cell and the one to its left.
	WallLeft bool

	scratch bool // marks the cell during a single distance measurement
}

// CellPosition represents the position of a cell in the maze grid.
// Interior cells are 1-indexed; the zero value lies on the frame and means "unset".
type CellPosition struct {
	Row int // Row index of the cell
	Col int // Column index of the cell
}

// IsZero reports whether the position is unset.
func (cp CellPosition) IsZero() bool {
	return cp == CellPosition{}
}

func (cp CellPosition) step(d direction) CellPosition {
	return CellPosition{Row: cp.Row + d.rowDelta, Col: cp.Col + d.colDelta}
}
