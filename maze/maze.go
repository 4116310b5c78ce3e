/*
Package maze generates rectangular mazes and picks a far-away goal cell.

A maze is a spanning tree over a bordered grid. It is carved by a random walk
that, whenever it gets stuck, follows the wall back to a cell that still has an
uncarved neighbour. The goal is then chosen among the dead ends by walking from
each of them back to the start with both hands on the wall.

The finished maze renders itself as ASCII through String.
*/
package maze

import (
	"fmt"
	"math/rand/v2"
)

// Maze is a finished maze together with its start and end cells.
type Maze struct {
	Grid  *Grid        // Carved grid, read-only once returned
	Start CellPosition // Origin of the carving walk
	End   CellPosition // Goal cell; zero when the maze has no dead end besides the start
}

// New generates a rows x cols maze drawing every random choice from rng.
// A nil rng is replaced by a randomly seeded one.
func New(rows, cols int, rng *rand.Rand) (*Maze, error) {
	grid, err := NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}

	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	c := newCarver(grid, rng)
	if err := c.carve(); err != nil {
		return nil, fmt.Errorf("carving %dx%d maze: %w", rows, cols, err)
	}

	end, err := selectEndCell(grid, c.start)
	if err != nil {
		return nil, fmt.Errorf("selecting end cell: %w", err)
	}

	return &Maze{
		Grid:  grid,
		Start: c.start,
		End:   end,
	}, nil
}

// NewSeeded generates a maze whose layout is fully determined by seed.
func NewSeeded(rows, cols int, seed uint64) (*Maze, error) {
	return New(rows, cols, rand.New(rand.NewPCG(seed, seed)))
}

// HasEnd reports whether an end cell was selected.
func (m *Maze) HasEnd() bool {
	return !m.End.IsZero()
}

// Rows returns the number of interior rows.
func (m *Maze) Rows() int { return m.Grid.Rows() }

// Cols returns the number of interior columns.
func (m *Maze) Cols() int { return m.Grid.Cols() }
