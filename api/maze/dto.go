// Package mazeapi exposes maze generation over HTTP.
package mazeapi

import (
	"github.com/google/uuid"
	"github.com/lmandres/mazegen/maze"
	"github.com/lmandres/mazegen/service/i"
)

// MazeRequest holds the query parameters of a generation request.
type MazeRequest struct {
	Rows int     `form:"rows" binding:"required,min=1"`
	Cols int     `form:"cols" binding:"required,min=1"`
	Seed *uint64 `form:"seed"`
}

func (r MazeRequest) toService() i.MazeRequest {
	return i.MazeRequest{Rows: r.Rows, Cols: r.Cols, Seed: r.Seed}
}

// PositionDTO is a 1-indexed cell position.
type PositionDTO struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// MazeResponse represents a generated maze.
type MazeResponse struct {
	ID       uuid.UUID     `json:"id"`
	Seed     uint64        `json:"seed"`
	Rows     int           `json:"rows"`
	Cols     int           `json:"cols"`
	Start    PositionDTO   `json:"start"`
	End      *PositionDTO  `json:"end"`
	DeadEnds []PositionDTO `json:"dead_ends"`
	Lines    []string      `json:"lines"`
	Token    string        `json:"token,omitempty"`
}

func positionFrom(p maze.CellPosition) PositionDTO {
	return PositionDTO{Row: p.Row, Col: p.Col}
}

func newMazeResponse(g *i.GeneratedMaze) *MazeResponse {
	m := g.Maze
	response := &MazeResponse{
		ID:    g.ID,
		Seed:  g.Seed,
		Rows:  m.Rows(),
		Cols:  m.Cols(),
		Start: positionFrom(m.Start),
		Lines: m.Lines(),
	}
	if m.HasEnd() {
		end := positionFrom(m.End)
		response.End = &end
	}
	for _, pos := range m.Grid.DeadEnds() {
		response.DeadEnds = append(response.DeadEnds, positionFrom(pos))
	}
	return response
}
