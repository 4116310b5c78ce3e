package service

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/lmandres/mazegen/service/i"
)

const (
	defaultShareTTL = 7 * 24 * time.Hour

	claimRows = "rows"
	claimCols = "cols"
	claimSeed = "seed"
)

var (
	// ErrMalformedShareToken is returned when a decoded token lacks valid maze claims.
	ErrMalformedShareToken = errors.New("malformed share token")
)

// MazeSharer turns a generated maze into a signed token carrying its size and
// seed, so the same maze can be regenerated later without storing it.
type MazeSharer struct {
	tokenizer i.Tokenizer
	ttl       time.Duration
}

// NewMazeSharer creates a MazeSharer. A non-positive ttl selects the default.
func NewMazeSharer(tokenizer i.Tokenizer, ttl time.Duration) (*MazeSharer, error) {
	if tokenizer == nil {
		return nil, errors.New("maze sharer requires a tokenizer")
	}
	if ttl <= 0 {
		ttl = defaultShareTTL
	}
	return &MazeSharer{tokenizer: tokenizer, ttl: ttl}, nil
}

// Token implements i.MazeSharer.
func (s *MazeSharer) Token(g *i.GeneratedMaze) (string, error) {
	return s.tokenizer.Generate(map[string]interface{}{
		claimRows: g.Maze.Rows(),
		claimCols: g.Maze.Cols(),
		// Seeds do not survive a round trip through JSON numbers.
		claimSeed: strconv.FormatUint(g.Seed, 10),
	}, s.ttl)
}

// Request implements i.MazeSharer.
func (s *MazeSharer) Request(token string) (i.MazeRequest, error) {
	claims, err := s.tokenizer.Decode(token)
	if err != nil {
		return i.MazeRequest{}, err
	}

	rows, okRows := claims[claimRows].(float64)
	cols, okCols := claims[claimCols].(float64)
	seedStr, okSeed := claims[claimSeed].(string)
	if !okRows || !okCols || !okSeed {
		return i.MazeRequest{}, ErrMalformedShareToken
	}

	seed, err := strconv.ParseUint(seedStr, 10, 64)
	if err != nil {
		return i.MazeRequest{}, fmt.Errorf("%w: %v", ErrMalformedShareToken, err)
	}

	return i.MazeRequest{
		Rows: int(rows),
		Cols: int(cols),
		Seed: &seed,
	}, nil
}
