package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lmandres/mazegen/api"
	api_i "github.com/lmandres/mazegen/api/i"
	mazeapi "github.com/lmandres/mazegen/api/maze"
	"github.com/lmandres/mazegen/config"
	logger "github.com/lmandres/mazegen/infrastruture/log"
	"github.com/lmandres/mazegen/infrastruture/token"
	"github.com/lmandres/mazegen/maze"
	"github.com/lmandres/mazegen/service"
	"github.com/lmandres/mazegen/service/i"
	"github.com/spf13/cobra"
)

// Global variables for dependencies
var (
	appLogger      *logger.Logger
	mazeService    *service.MazeService
	mazeSharer     i.MazeSharer
	mazeController api_i.Controller
	router         *api.Router
)

func initMazeService() {
	mazeLogger, err := logger.New("MAZE", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze logger: %v", err))
		os.Exit(1)
	}

	opts := &service.MazeOptions{MaxDimension: config.Envs.MazeMaxDimension}
	seed, fixed, err := configuredSeed()
	if err != nil {
		appLogger.Error(err.Error())
		os.Exit(1)
	}
	if fixed {
		appLogger.Warning(fmt.Sprintf("MAZE_SEED is set, every maze without a seed uses %d", seed))
		opts.SeedSource = func() uint64 { return seed }
	}

	mazeService, err = service.NewMazeService(mazeLogger, opts)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze service initialized")
}

func initMazeSharer() {
	if config.Envs.ShareSecret == "" {
		appLogger.Warning("SHARE_SECRET is not set, share tokens are disabled")
		return
	}

	tokenizer, err := token.NewJwtService(config.Envs.ShareSecret, config.Envs.ShareIssuer)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating share tokenizer: %v", err))
		os.Exit(1)
	}

	sharer, err := service.NewMazeSharer(tokenizer, time.Duration(config.Envs.ShareTTLHours)*time.Hour)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze sharer: %v", err))
		os.Exit(1)
	}
	mazeSharer = sharer
	appLogger.Info("Maze sharer initialized")
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewMazeController(mazeService, mazeSharer)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze controller initialized")
}

func initRouter() {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{mazeController},
		Middlewares: []gin.HandlerFunc{api.RequestID()},
	})
	appLogger.Info("Router initialized")
}

// parseSeed reads a seed given on the command line or in MAZE_SEED. An empty
// value means no fixed seed.
func parseSeed(value string) (uint64, bool, error) {
	if value == "" {
		return 0, false, nil
	}
	seed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("seed must be an unsigned integer: %w", err)
	}
	return seed, true, nil
}

func configuredSeed() (uint64, bool, error) {
	return parseSeed(config.Envs.MazeSeed)
}

// printMaze generates a single maze and writes its rendering to w.
func printMaze(w io.Writer, rowsArg, colsArg, seedArg string) error {
	rows, err := strconv.Atoi(rowsArg)
	if err != nil {
		return fmt.Errorf("rows must be an integer: %w", err)
	}
	cols, err := strconv.Atoi(colsArg)
	if err != nil {
		return fmt.Errorf("cols must be an integer: %w", err)
	}

	if seedArg == "" {
		seedArg = config.Envs.MazeSeed
	}
	seed, fixed, err := parseSeed(seedArg)
	if err != nil {
		return err
	}

	var m *maze.Maze
	if fixed {
		m, err = maze.NewSeeded(rows, cols, seed)
	} else {
		m, err = maze.New(rows, cols, nil)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, m)
	return err
}

func serve() error {
	initMazeService()
	initMazeSharer()
	initMazeController()
	initRouter()

	// Run HTTP server
	if err := router.Run(); err != nil {
		return fmt.Errorf("starting server: %w", err)
	}
	return nil
}

// noneOrTwoArgs accepts either no arguments or a ROWS COLS pair.
func noneOrTwoArgs(_ *cobra.Command, args []string) error {
	if len(args) != 0 && len(args) != 2 {
		return fmt.Errorf("accepts either no arguments or ROWS COLS, received %d", len(args))
	}
	return nil
}

func newRootCmd() *cobra.Command {
	var seed string

	root := &cobra.Command{
		Use:           "mazegen [ROWS COLS]",
		Short:         "Generate rectangular mazes",
		Long:          "Without arguments mazegen serves the maze API on HOST_IP:REST_PORT. With ROWS COLS it prints one maze.",
		Args:          noneOrTwoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 2 {
				return printMaze(cmd.OutOrStdout(), args[0], args[1], seed)
			}
			return serve()
		},
	}
	root.PersistentFlags().StringVar(&seed, "seed", "", "seed for printed mazes (defaults to MAZE_SEED)")

	root.AddCommand(&cobra.Command{
		Use:   "print [ROWS COLS]",
		Short: "Print one maze, sized by MAZE_ROWS and MAZE_COLS unless given",
		Args:  noneOrTwoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{strconv.Itoa(config.Envs.MazeRows), strconv.Itoa(config.Envs.MazeCols)}
			}
			return printMaze(cmd.OutOrStdout(), args[0], args[1], seed)
		},
	})

	return root
}

func main() {
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stderr)

	if err := newRootCmd().Execute(); err != nil {
		appLogger.Error(err.Error())
		os.Exit(1)
	}
}
