package mazeapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lmandres/mazegen/maze"
	"github.com/lmandres/mazegen/service"
	"github.com/lmandres/mazegen/service/i"
)

// MazeController serves generated mazes.
type MazeController struct {
	generator i.MazeGenerator
	sharer    i.MazeSharer
}

// NewMazeController initializes a MazeController. The sharer is optional;
// without it responses carry no share token and the shared route is not registered.
func NewMazeController(g i.MazeGenerator, s i.MazeSharer) (*MazeController, error) {
	if g == nil {
		return nil, errors.New("maze controller requires a generator")
	}
	return &MazeController{
		generator: g,
		sharer:    s,
	}, nil
}

// Register registers the maze routes.
func (mc *MazeController) Register(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.GET("", mc.generate)
		mazes.GET("/text", mc.text)
		if mc.sharer != nil {
			mazes.GET("/shared/:token", mc.shared)
		}
	}
}

// generate responds with a new maze as JSON.
func (mc *MazeController) generate(ctx *gin.Context) {
	var request MazeRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	generated, ok := mc.build(ctx, request.toService())
	if !ok {
		return
	}
	mc.respond(ctx, generated)
}

// text responds with the rendered maze only.
func (mc *MazeController) text(ctx *gin.Context) {
	var request MazeRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	generated, ok := mc.build(ctx, request.toService())
	if !ok {
		return
	}

	ctx.Header("X-Maze-ID", generated.ID.String())
	ctx.String(http.StatusOK, "%s", generated.Maze.String())
}

// shared regenerates the maze described by a share token.
func (mc *MazeController) shared(ctx *gin.Context) {
	request, err := mc.sharer.Request(ctx.Params.ByName("token"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid share token"})
		return
	}

	generated, ok := mc.build(ctx, request)
	if !ok {
		return
	}
	mc.respond(ctx, generated)
}

// build generates the maze, writing the error response on failure.
func (mc *MazeController) build(ctx *gin.Context, request i.MazeRequest) (*i.GeneratedMaze, bool) {
	generated, err := mc.generator.Generate(ctx.Request.Context(), request)
	if err != nil {
		if errors.Is(err, service.ErrDimensionTooLarge) || errors.Is(err, maze.ErrInvalidDimensions) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return nil, false
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while generating maze"})
		return nil, false
	}

	return generated, true
}

func (mc *MazeController) respond(ctx *gin.Context, generated *i.GeneratedMaze) {
	response := newMazeResponse(generated)
	if mc.sharer != nil {
		token, err := mc.sharer.Token(generated)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while sharing maze"})
			return
		}
		response.Token = token
	}

	ctx.JSON(http.StatusOK, response)
}
