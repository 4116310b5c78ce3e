package maze

// DeadEnds returns every interior cell with exactly three walls, in row-major order.
func (g *Grid) DeadEnds() []CellPosition {
	var result []CellPosition
	for r := 1; r <= g.rows; r++ {
		for c := 1; c <= g.cols; c++ {
			pos := CellPosition{Row: r, Col: c}
			if g.CountWalls(pos) == 3 {
				result = append(result, pos)
			}
		}
	}
	return result
}

// selectEndCell picks the goal among the dead ends other than start.
//
// Each candidate is measured with both hands. When both agree the running
// maximum is raised to that count, and a candidate whose clockwise count
// equals the running maximum becomes the end. Later matches replace earlier
// ones. The zero position is returned when there is no candidate.
func selectEndCell(g *Grid, start CellPosition) (CellPosition, error) {
	defer g.resetScratch()

	ccw := NewWallFollower(g, start, CounterClockwise)
	cw := NewWallFollower(g, start, Clockwise)

	var end CellPosition
	maxSteps := 0
	for _, candidate := range g.DeadEnds() {
		if candidate == start {
			continue
		}

		ccwSteps, err := ccw.MeasureDistance(candidate)
		if err != nil {
			return CellPosition{}, err
		}
		cwSteps, err := cw.MeasureDistance(candidate)
		if err != nil {
			return CellPosition{}, err
		}

		if ccwSteps == cwSteps {
			maxSteps = max(maxSteps, cwSteps)
		}
		if cwSteps == maxSteps {
			end = candidate
		}
	}

	return end, nil
}
