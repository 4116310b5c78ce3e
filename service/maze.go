package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/lmandres/mazegen/maze"
	"github.com/lmandres/mazegen/service/i"
)

const (
	defaultMaxDimension = 200
)

var (
	// ErrDimensionTooLarge is returned when rows or cols exceed MazeOptions.MaxDimension.
	ErrDimensionTooLarge = errors.New("maze dimension too large")
)

// MazeOptions configures a MazeService.
type MazeOptions struct {
	// MaxDimension caps rows and cols; zero or negative selects the default.
	MaxDimension int
	// SeedSource draws seeds for requests that do not carry one. Defaults to math/rand/v2.
	SeedSource func() uint64
}

// MazeService generates mazes, assigning every result an ID and the seed that reproduces it.
type MazeService struct {
	logger i.Logger
	opts   MazeOptions
}

// NewMazeService creates a MazeService. A nil opts selects the defaults.
func NewMazeService(logger i.Logger, opts *MazeOptions) (*MazeService, error) {
	if logger == nil {
		return nil, errors.New("maze service requires a logger")
	}

	o := MazeOptions{}
	if opts != nil {
		o = *opts
	}

	if o.MaxDimension <= 0 {
		o.MaxDimension = defaultMaxDimension
	}

	if o.SeedSource == nil {
		o.SeedSource = rand.Uint64
	}

	return &MazeService{
		logger: logger,
		opts:   o,
	}, nil
}

// Generate implements i.MazeGenerator.
func (ms *MazeService) Generate(ctx context.Context, req i.MazeRequest) (*i.GeneratedMaze, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if max(req.Rows, req.Cols) > ms.opts.MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d", ErrDimensionTooLarge, req.Rows, req.Cols, ms.opts.MaxDimension)
	}

	seed := ms.opts.SeedSource()
	if req.Seed != nil {
		seed = *req.Seed
	}

	id := uuid.New()
	m, err := maze.NewSeeded(req.Rows, req.Cols, seed)
	if err != nil {
		if !errors.Is(err, maze.ErrInvalidDimensions) {
			ms.logger.Error(fmt.Sprintf("Generating maze %s (seed %d): %s", id, seed, err))
		}
		return nil, err
	}

	if !m.HasEnd() {
		ms.logger.Warning(fmt.Sprintf("Maze %s has no end cell: %dx%d", id, req.Rows, req.Cols))
	}

	ms.logger.Info(fmt.Sprintf("Generated maze: ID=%s Size=%dx%d Seed=%d Start=%v End=%v", id, req.Rows, req.Cols, seed, m.Start, m.End))
	return &i.GeneratedMaze{
		ID:   id,
		Seed: seed,
		Maze: m,
	}, nil
}
