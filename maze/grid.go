package maze

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned for a grid with fewer than one row or column.
	ErrInvalidDimensions = errors.New("maze dimensions must be positive")
	// ErrNotAdjacent is returned when a wall is opened between cells that do not touch.
	ErrNotAdjacent = errors.New("cells are not adjacent")
)

// Grid is a rows x cols maze surrounded by a one-cell frame. The frame makes
// every neighbour lookup of an interior cell safe without bounds checks.
type Grid struct {
	rows  int
	cols  int
	cells [][]Cell
}

// NewGrid allocates a fully walled grid of the given interior dimensions.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, rows, cols)
	}

	cells := make([][]Cell, rows+2)
	for r := range cells {
		cells[r] = make([]Cell, cols+2)
		for c := range cells[r] {
			onFrame := r == 0 || r == rows+1 || c == 0 || c == cols+1
			cells[r][c] = Cell{
				Carved: onFrame,
				// Row rows+1 carries the bottom border of the last interior row.
				WallUp: r >= 1 && c >= 1 && c <= cols,
				// Column cols+1 carries the right border of the last interior column.
				WallLeft: c >= 1 && r >= 1 && r <= rows,
			}
		}
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// Rows returns the number of interior rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of interior columns.
func (g *Grid) Cols() int { return g.cols }

// InBound reports whether pos is an interior cell.
func (g *Grid) InBound(pos CellPosition) bool {
	return pos.Row >= 1 && pos.Row <= g.rows && pos.Col >= 1 && pos.Col <= g.cols
}

// Cell returns a copy of the cell at pos. Frame positions are allowed.
func (g *Grid) Cell(pos CellPosition) Cell {
	return g.cells[pos.Row][pos.Col]
}

func (g *Grid) at(pos CellPosition) *Cell {
	return &g.cells[pos.Row][pos.Col]
}

// hasWall reports whether the side of pos facing directions[dir] is walled.
func (g *Grid) hasWall(pos CellPosition, dir int) bool {
	d := directions[dir]
	holder := g.cells[pos.Row+d.wallRow][pos.Col+d.wallCol]
	if d.side == sideUp {
		return holder.WallUp
	}
	return holder.WallLeft
}

// OpenWall removes the wall separating two adjacent cells.
func (g *Grid) OpenWall(a, b CellPosition) error {
	dir, ok := directionBetween(a, b)
	if !ok {
		return fmt.Errorf("%w: %v and %v", ErrNotAdjacent, a, b)
	}

	d := directions[dir]
	holder := g.at(CellPosition{Row: a.Row + d.wallRow, Col: a.Col + d.wallCol})
	if d.side == sideUp {
		holder.WallUp = false
	} else {
		holder.WallLeft = false
	}
	return nil
}

// CountWalls returns how many of the four sides of pos are walled.
func (g *Grid) CountWalls(pos CellPosition) int {
	count := 0
	for dir := range directions {
		if g.hasWall(pos, dir) {
			count++
		}
	}
	return count
}

// hasUncarvedNeighbor reports whether any of the four neighbours of pos is still uncarved.
func (g *Grid) hasUncarvedNeighbor(pos CellPosition) bool {
	for _, d := range directions {
		if !g.Cell(pos.step(d)).Carved {
			return true
		}
	}
	return false
}

// uncarvedNeighbors lists the uncarved neighbours of pos in up, right, down, left order.
func (g *Grid) uncarvedNeighbors(pos CellPosition) []CellPosition {
	var result []CellPosition
	for _, d := range directions {
		next := pos.step(d)
		if !g.Cell(next).Carved {
			result = append(result, next)
		}
	}
	return result
}

// resetScratch clears the measurement overlay on every interior cell.
func (g *Grid) resetScratch() {
	for r := 1; r <= g.rows; r++ {
		for c := 1; c <= g.cols; c++ {
			g.cells[r][c].scratch = false
		}
	}
}
