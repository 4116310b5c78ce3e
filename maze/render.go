package maze

import "strings"

const (
	startMarker = "()"
	endMarker   = "><"
	emptyMarker = "  "
)

// String provides a textual representation of the maze.
func (m *Maze) String() string {
	return strings.Join(m.Lines(), "\n") + "\n"
}

// Lines renders the maze one text row per slice element: a border row and a
// body row for every maze row, followed by the bottom border.
func (m *Maze) Lines() []string {
	g := m.Grid
	lines := make([]string, 0, 2*g.rows+1)

	for row := 1; row <= g.rows+1; row++ {
		// Border row
		var border strings.Builder
		for col := 1; col <= g.cols; col++ {
			if g.cells[row][col].WallUp {
				border.WriteString("+--")
			} else {
				border.WriteString("+  ")
			}
		}
		border.WriteString("+")
		lines = append(lines, border.String())

		if row > g.rows {
			break
		}

		// Body row
		var body strings.Builder
		for col := 1; col <= g.cols+1; col++ {
			if g.cells[row][col].WallLeft {
				body.WriteString("|")
			} else {
				body.WriteString(" ")
			}
			if col <= g.cols {
				body.WriteString(m.marker(CellPosition{Row: row, Col: col}))
			}
		}
		lines = append(lines, body.String())
	}

	return lines
}

func (m *Maze) marker(pos CellPosition) string {
	switch pos {
	case m.Start:
		return startMarker
	case m.End:
		return endMarker
	default:
		return emptyMarker
	}
}
