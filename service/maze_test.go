package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/lmandres/mazegen/maze"
	"github.com/lmandres/mazegen/service/i"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	infos    []string
	warnings []string
	errors   []string
}

func (l *recordingLogger) Info(msg string)    { l.infos = append(l.infos, msg) }
func (l *recordingLogger) Warning(msg string) { l.warnings = append(l.warnings, msg) }
func (l *recordingLogger) Error(msg string)   { l.errors = append(l.errors, msg) }

var _ i.MazeGenerator = &MazeService{}

func TestMazeService(t *testing.T) {
	seed := uint64(99)

	t.Run("Requires a logger", func(t *testing.T) {
		_, err := NewMazeService(nil, nil)
		assert.Error(t, err)
	})

	t.Run("Generate with explicit seed", func(t *testing.T) {
		log := &recordingLogger{}
		svc, err := NewMazeService(log, nil)
		require.NoError(t, err)

		got, err := svc.Generate(context.Background(), i.MazeRequest{Rows: 6, Cols: 9, Seed: &seed})
		require.NoError(t, err)

		want, err := maze.NewSeeded(6, 9, seed)
		require.NoError(t, err)
		assert.Equal(t, seed, got.Seed)
		assert.Equal(t, want.String(), got.Maze.String())
		assert.NotEqual(t, uuid.Nil, got.ID)
		assert.Len(t, log.infos, 1)
		assert.Empty(t, log.errors)
	})

	t.Run("Seed drawn from source", func(t *testing.T) {
		svc, err := NewMazeService(&recordingLogger{}, &MazeOptions{SeedSource: func() uint64 { return 7 }})
		require.NoError(t, err)

		got, err := svc.Generate(context.Background(), i.MazeRequest{Rows: 3, Cols: 3})
		require.NoError(t, err)
		assert.Equal(t, uint64(7), got.Seed)
	})

	t.Run("Each maze gets its own ID", func(t *testing.T) {
		svc, err := NewMazeService(&recordingLogger{}, nil)
		require.NoError(t, err)

		a, err := svc.Generate(context.Background(), i.MazeRequest{Rows: 2, Cols: 2, Seed: &seed})
		require.NoError(t, err)
		b, err := svc.Generate(context.Background(), i.MazeRequest{Rows: 2, Cols: 2, Seed: &seed})
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)
		assert.Equal(t, a.Maze.String(), b.Maze.String())
	})

	t.Run("Reject oversized maze", func(t *testing.T) {
		svc, err := NewMazeService(&recordingLogger{}, &MazeOptions{MaxDimension: 20})
		require.NoError(t, err)

		_, err = svc.Generate(context.Background(), i.MazeRequest{Rows: 21, Cols: 5})
		assert.ErrorIs(t, err, ErrDimensionTooLarge)
	})

	t.Run("Caller options are not modified", func(t *testing.T) {
		opts := &MazeOptions{}
		svc, err := NewMazeService(&recordingLogger{}, opts)
		require.NoError(t, err)
		assert.Zero(t, opts.MaxDimension)
		assert.Nil(t, opts.SeedSource)

		_, err = svc.Generate(context.Background(), i.MazeRequest{Rows: defaultMaxDimension, Cols: 1})
		assert.NotErrorIs(t, err, ErrDimensionTooLarge)
	})

	t.Run("Reject invalid dimensions", func(t *testing.T) {
		log := &recordingLogger{}
		svc, err := NewMazeService(log, nil)
		require.NoError(t, err)

		_, err = svc.Generate(context.Background(), i.MazeRequest{Rows: 0, Cols: 5})
		assert.ErrorIs(t, err, maze.ErrInvalidDimensions)
		assert.Empty(t, log.errors)
	})

	t.Run("Single cell warns about missing end", func(t *testing.T) {
		log := &recordingLogger{}
		svc, err := NewMazeService(log, nil)
		require.NoError(t, err)

		got, err := svc.Generate(context.Background(), i.MazeRequest{Rows: 1, Cols: 1})
		require.NoError(t, err)
		assert.False(t, got.Maze.HasEnd())
		assert.Len(t, log.warnings, 1)
	})

	t.Run("Cancelled context", func(t *testing.T) {
		svc, err := NewMazeService(&recordingLogger{}, nil)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err = svc.Generate(ctx, i.MazeRequest{Rows: 3, Cols: 3})
		assert.ErrorIs(t, err, context.Canceled)
	})
}
