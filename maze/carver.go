package maze

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrCarveIncomplete is returned when carving stops before every cell is carved.
var ErrCarveIncomplete = errors.New("carving walk ended with uncarved cells")

// carver grows a spanning tree by a random walk, relocating along the wall
// whenever the walk runs into a dead end.
type carver struct {
	grid     *Grid
	rng      *rand.Rand
	start    CellPosition
	follower *WallFollower
}

func newCarver(g *Grid, rng *rand.Rand) *carver {
	start := CellPosition{Row: rng.IntN(g.rows) + 1, Col: rng.IntN(g.cols) + 1}
	return &carver{
		grid:     g,
		rng:      rng,
		start:    start,
		follower: NewWallFollower(g, start, CounterClockwise),
	}
}

// carve runs the walk until every interior cell is carved.
func (c *carver) carve() error {
	c.grid.at(c.start).Carved = true
	remaining := c.grid.rows*c.grid.cols - 1
	current := c.start

	for remaining > 0 {
		candidates := c.grid.uncarvedNeighbors(current)
		if len(candidates) == 0 {
			from := current
			next, err := c.follower.SeekExit(current)
			if err != nil {
				return err
			}
			// A walk from the start only comes back to it after touring every
			// branch, so nothing carved is next to an uncarved cell.
			if from == c.start && next == c.start && !c.grid.hasUncarvedNeighbor(next) {
				return fmt.Errorf("%w: %d cells left", ErrCarveIncomplete, remaining)
			}
			current = next
			continue
		}

		next := candidates[c.rng.IntN(len(candidates))]
		if err := c.grid.OpenWall(current, next); err != nil {
			return err
		}
		c.grid.at(next).Carved = true
		remaining--
		current = next
	}

	return nil
}
