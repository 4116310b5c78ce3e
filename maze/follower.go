package maze

import (
	"errors"
	"fmt"
)

// ErrFollowerDiverged is returned when a walk exceeds its attempt budget.
var ErrFollowerDiverged = errors.New("wall follower did not return to a stop cell")

// Handedness selects which way a wall follower turns.
type Handedness int

const (
	// CounterClockwise turns left after a move and right after hitting a wall.
	CounterClockwise Handedness = iota
	// Clockwise turns right after a move and left after hitting a wall.
	Clockwise
)

func (h Handedness) String() string {
	if h == Clockwise {
		return "clockwise"
	}
	return "counter-clockwise"
}

// turns returns how far the direction cursor advances after a move and after a blocked attempt.
func (h Handedness) turns() (onMove, onBlock int) {
	if h == Clockwise {
		return 1, 3
	}
	return 3, 1
}

// WallFollower walks a grid keeping one hand on the wall until a stop cell is reached.
type WallFollower struct {
	grid  *Grid
	start CellPosition
	hand  Handedness
}

// NewWallFollower returns a follower that treats start as its home cell.
func NewWallFollower(g *Grid, start CellPosition, hand Handedness) *WallFollower {
	return &WallFollower{grid: g, start: start, hand: hand}
}

// maxAttempts bounds a single walk. On a tree every (cell, side) pair is tried
// at most once before the walk comes back to where it began.
func (f *WallFollower) maxAttempts() int {
	return 4*f.grid.rows*f.grid.cols + 4
}

// walk follows the wall from `from` until stop returns true, calling onMove
// after every successful step. stop is told whether the walk has moved and
// whether it is back at `from` about to repeat its first departure, which on
// a tree means every reachable cell has been visited. walk returns the stop
// cell and the number of direction attempts made.
func (f *WallFollower) walk(from CellPosition, stop func(pos CellPosition, moved, toured bool) bool, onMove func(pos CellPosition)) (CellPosition, int, error) {
	onMoveTurn, onBlockTurn := f.hand.turns()
	pos := from
	cursor := dirUp
	moved := false
	firstExit := -1

	for attempts := 0; ; attempts++ {
		toured := moved && pos == from && cursor == firstExit
		if stop(pos, moved, toured) {
			return pos, attempts, nil
		}
		if attempts >= f.maxAttempts() {
			return pos, attempts, fmt.Errorf("%w: %s walk from %v stuck at %v", ErrFollowerDiverged, f.hand, from, pos)
		}

		if f.grid.hasWall(pos, cursor) {
			cursor = (cursor + onBlockTurn) % numDirections
			continue
		}

		if !moved {
			firstExit = cursor
		}
		pos = pos.step(directions[cursor])
		moved = true
		if onMove != nil {
			onMove(pos)
		}
		cursor = (cursor + onMoveTurn) % numDirections
	}
}

// SeekExit walks from `from` to the first cell with an uncarved neighbour.
// Otherwise a walk from elsewhere ends on reaching the start cell, and a walk
// from the start cell ends once it has toured every branch and is back home.
// Walls and carved flags are left untouched.
func (f *WallFollower) SeekExit(from CellPosition) (CellPosition, error) {
	homeward := from != f.start
	pos, _, err := f.walk(from, func(pos CellPosition, moved, toured bool) bool {
		if f.grid.hasUncarvedNeighbor(pos) {
			return true
		}
		if homeward {
			return moved && pos == f.start
		}
		return toured
	}, nil)
	return pos, err
}

// MeasureDistance walks from `from` back to the start cell and returns the net
// number of new cells entered: each first entry counts +1 and each re-entry -1.
// The scratch overlay is reset before the walk.
func (f *WallFollower) MeasureDistance(from CellPosition) (int, error) {
	steps, _, err := f.measure(from)
	return steps, err
}

func (f *WallFollower) measure(from CellPosition) (int, int, error) {
	f.grid.resetScratch()

	steps := 0
	_, attempts, err := f.walk(from,
		func(pos CellPosition, _, _ bool) bool { return pos == f.start },
		func(pos CellPosition) {
			cell := f.grid.at(pos)
			if cell.scratch {
				steps--
				return
			}
			cell.scratch = true
			steps++
		})
	return steps, attempts, err
}
