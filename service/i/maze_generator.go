package i

import (
	"context"

	"github.com/google/uuid"
	"github.com/lmandres/mazegen/maze"
)

// MazeRequest describes a maze to generate. A nil Seed asks for a random one.
type MazeRequest struct {
	Rows int
	Cols int
	Seed *uint64
}

// GeneratedMaze is a finished maze together with what is needed to reproduce it.
type GeneratedMaze struct {
	ID   uuid.UUID
	Seed uint64
	Maze *maze.Maze
}

// MazeGenerator generates mazes on request.
type MazeGenerator interface {
	// Generate builds a new maze. It returns an error for invalid or oversized
	// dimensions and when generation hits a broken invariant.
	Generate(ctx context.Context, req MazeRequest) (*GeneratedMaze, error)
}

// MazeSharer converts generated mazes to and from share tokens.
type MazeSharer interface {
	// Token returns a token from which the maze can be regenerated.
	Token(g *GeneratedMaze) (string, error)

	// Request decodes a token back into the request that reproduces the maze.
	Request(token string) (MazeRequest, error)
}
