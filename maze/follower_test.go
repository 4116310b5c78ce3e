package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// corridor builds a fully carved 1 x n grid with every inner wall open.
func corridor(t *testing.T, n int) *Grid {
	t.Helper()
	g, err := NewGrid(1, n)
	require.NoError(t, err)
	for c := 1; c <= n; c++ {
		g.at(CellPosition{Row: 1, Col: c}).Carved = true
		if c > 1 {
			require.NoError(t, g.OpenWall(CellPosition{Row: 1, Col: c - 1}, CellPosition{Row: 1, Col: c}))
		}
	}
	return g
}

func TestWallFollower(t *testing.T) {
	t.Run("Measure along a corridor", func(t *testing.T) {
		g := corridor(t, 5)
		start := CellPosition{Row: 1, Col: 1}
		for _, hand := range []Handedness{Clockwise, CounterClockwise} {
			steps, err := NewWallFollower(g, start, hand).MeasureDistance(CellPosition{Row: 1, Col: 5})
			require.NoError(t, err)
			assert.Equal(t, 4, steps, hand.String())
		}
	})

	t.Run("Measure from start is zero", func(t *testing.T) {
		g := corridor(t, 3)
		start := CellPosition{Row: 1, Col: 2}
		steps, err := NewWallFollower(g, start, Clockwise).MeasureDistance(start)
		require.NoError(t, err)
		assert.Zero(t, steps)
	})

	t.Run("Measure around a side branch", func(t *testing.T) {
		// (1,1)-(1,2)-(1,3) with a branch (1,2)-(2,2); start at (1,3).
		g, err := NewGrid(2, 3)
		require.NoError(t, err)
		require.NoError(t, g.OpenWall(CellPosition{Row: 1, Col: 1}, CellPosition{Row: 1, Col: 2}))
		require.NoError(t, g.OpenWall(CellPosition{Row: 1, Col: 2}, CellPosition{Row: 1, Col: 3}))
		require.NoError(t, g.OpenWall(CellPosition{Row: 1, Col: 2}, CellPosition{Row: 2, Col: 2}))

		start := CellPosition{Row: 1, Col: 3}
		for _, hand := range []Handedness{Clockwise, CounterClockwise} {
			steps, attempts, err := NewWallFollower(g, start, hand).measure(CellPosition{Row: 1, Col: 1})
			require.NoError(t, err)
			assert.Equal(t, 2, steps, hand.String())
			assert.LessOrEqual(t, attempts, 4*6)
		}
	})

	t.Run("Seek exit stops next to an uncarved cell", func(t *testing.T) {
		g := corridor(t, 4)
		g.at(CellPosition{Row: 1, Col: 4}).Carved = false

		f := NewWallFollower(g, CellPosition{Row: 1, Col: 1}, CounterClockwise)
		pos, err := f.SeekExit(CellPosition{Row: 1, Col: 1})
		require.NoError(t, err)
		assert.Equal(t, CellPosition{Row: 1, Col: 3}, pos)
	})

	t.Run("Seek exit returns to start", func(t *testing.T) {
		g := corridor(t, 3)
		start := CellPosition{Row: 1, Col: 1}
		pos, err := NewWallFollower(g, start, CounterClockwise).SeekExit(CellPosition{Row: 1, Col: 3})
		require.NoError(t, err)
		assert.Equal(t, start, pos)
	})

	t.Run("Seek exit from start tours every branch", func(t *testing.T) {
		// (1,2)..(1,5) carved, (1,1) still uncarved; start sits between two branches.
		g := corridor(t, 5)
		g.at(CellPosition{Row: 1, Col: 1}).Carved = false
		start := CellPosition{Row: 1, Col: 4}

		for _, hand := range []Handedness{Clockwise, CounterClockwise} {
			pos, err := NewWallFollower(g, start, hand).SeekExit(start)
			require.NoError(t, err)
			assert.Equal(t, CellPosition{Row: 1, Col: 2}, pos, hand.String())
		}
	})

	t.Run("Seek exit from start on a finished tree comes home", func(t *testing.T) {
		g := corridor(t, 5)
		start := CellPosition{Row: 1, Col: 3}
		pos, err := NewWallFollower(g, start, CounterClockwise).SeekExit(start)
		require.NoError(t, err)
		assert.Equal(t, start, pos)
	})

	t.Run("Unreachable start diverges", func(t *testing.T) {
		g, err := NewGrid(2, 2)
		require.NoError(t, err)
		require.NoError(t, g.OpenWall(CellPosition{Row: 1, Col: 1}, CellPosition{Row: 1, Col: 2}))

		_, err = NewWallFollower(g, CellPosition{Row: 2, Col: 2}, Clockwise).MeasureDistance(CellPosition{Row: 1, Col: 1})
		assert.ErrorIs(t, err, ErrFollowerDiverged)
	})

	t.Run("Walks are bounded on generated mazes", func(t *testing.T) {
		for seed := uint64(0); seed < 20; seed++ {
			m, err := NewSeeded(8, 13, seed)
			require.NoError(t, err)
			limit := 4 * m.Rows() * m.Cols()

			for _, hand := range []Handedness{Clockwise, CounterClockwise} {
				f := NewWallFollower(m.Grid, m.Start, hand)
				for r := 1; r <= m.Rows(); r++ {
					for c := 1; c <= m.Cols(); c++ {
						_, attempts, err := f.measure(CellPosition{Row: r, Col: c})
						require.NoError(t, err)
						assert.LessOrEqual(t, attempts, limit)
					}
				}
			}
		}
	})

	t.Run("Both hands agree on dead ends", func(t *testing.T) {
		m, err := NewSeeded(11, 7, 77)
		require.NoError(t, err)
		dist := distances(m.Grid, m.Start)

		cw := NewWallFollower(m.Grid, m.Start, Clockwise)
		ccw := NewWallFollower(m.Grid, m.Start, CounterClockwise)
		for _, pos := range m.Grid.DeadEnds() {
			a, err := cw.MeasureDistance(pos)
			require.NoError(t, err)
			b, err := ccw.MeasureDistance(pos)
			require.NoError(t, err)
			assert.Equal(t, a, b)
			assert.Equal(t, dist[pos], a)
		}
	})
}
