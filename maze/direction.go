package maze

type wallSide int

const (
	sideUp wallSide = iota
	sideLeft
)

// direction describes a move to a neighbouring cell and which stored wall bit
// guards it. The guarding bit lives on the cell at (wallRow, wallCol) offset
// from the mover.
type direction struct {
	rowDelta int
	colDelta int
	wallRow  int
	wallCol  int
	side     wallSide
}

const (
	dirUp = iota
	dirRight
	dirDown
	dirLeft
	numDirections
)

// directions is ordered clockwise; followers turn by stepping through it.
var directions = [numDirections]direction{
	dirUp:    {rowDelta: -1, colDelta: 0, wallRow: 0, wallCol: 0, side: sideUp},
	dirRight: {rowDelta: 0, colDelta: 1, wallRow: 0, wallCol: 1, side: sideLeft},
	dirDown:  {rowDelta: 1, colDelta: 0, wallRow: 1, wallCol: 0, side: sideUp},
	dirLeft:  {rowDelta: 0, colDelta: -1, wallRow: 0, wallCol: 0, side: sideLeft},
}

// directionBetween returns the index of the direction leading from a to b.
func directionBetween(a, b CellPosition) (int, bool) {
	for i, d := range directions {
		if b.Row-a.Row == d.rowDelta && b.Col-a.Col == d.colDelta {
			return i, true
		}
	}
	return 0, false
}
