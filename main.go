package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-maze/api"
	api_i "github.com/beka-birhanu/vinom-maze/api/i"
	mazeapi "github.com/beka-birhanu/vinom-maze/api/maze"
	"github.com/beka-birhanu/vinom-maze/config"
	logger "github.com/beka-birhanu/vinom-maze/infrastruture/log"
	"github.com/beka-birhanu/vinom-maze/render"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gookit/color"
	"golang.org/x/term"
)

// Global variables for dependencies
var (
	appLogger      i.Logger
	mazeGenerator  i.MazeGenerator
	mazeController api_i.Controller
	router         *api.Router
)

func newLogger(prefix string, c color.Color) *logger.Logger {
	l, err := logger.New(prefix, c, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Creating %s logger: %v\n", prefix, err)
		os.Exit(1)
	}
	if err := l.SetLevel(config.Envs.LogLevel); err != nil {
		l.Warning(fmt.Sprintf("Ignoring LOG_LEVEL %q: %v", config.Envs.LogLevel, err))
	}
	return l
}

func pngOptions() render.Options {
	opts := render.DefaultOptions()
	if config.Envs.MazeCellSize > 0 {
		scale := float32(config.Envs.MazeCellSize) / float32(opts.CellSize)
		opts.CellSize = config.Envs.MazeCellSize
		opts.WallWidth *= scale
		opts.PathWidth *= scale
	}
	return opts
}

func initMazeService() {
	var err error
	mazeGenerator, err = service.NewMazeService(newLogger("MAZE", config.ColorCyan), &service.MazeOptions{
		MaxDimension: config.Envs.MazeMaxDimension,
		DisjointSets: config.Envs.MazeDisjointSets,
		MaxAttempts:  config.Envs.MazeMaxAttempts,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze service initialized")
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewMazeController(mazeGenerator, pngOptions())
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze controller initialized")
}

func initRouter() {
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Mode:        config.Envs.GinMode,
		Controllers: []api_i.Controller{mazeController},
	})
	appLogger.Info("Router initialized")
}

// renderOnce generates the configured maze and writes it to the configured outputs.
func renderOnce(ctx context.Context) error {
	result, err := mazeGenerator.Generate(ctx, i.MazeSpec{
		Width:    config.Envs.MazeWidth,
		Height:   config.Envs.MazeHeight,
		Strategy: config.Envs.MazeStrategy,
		Seed:     config.Envs.MazeSeed,
	})
	if err != nil {
		return err
	}
	if len(result.Path) == 0 {
		appLogger.Warning("Destination is not reachable from the origin")
	}

	if err := writeFile(config.Envs.MazeOutput, func(f *os.File) error {
		return render.PNG(f, result.Maze, result.Path, pngOptions())
	}); err != nil {
		return err
	}
	appLogger.Info(fmt.Sprintf("Wrote %s", config.Envs.MazeOutput))

	if config.Envs.MazeJSONOutput != "" {
		if err := writeFile(config.Envs.MazeJSONOutput, func(f *os.File) error {
			return render.JSON(f, result.Maze, result.Path)
		}); err != nil {
			return err
		}
		appLogger.Info(fmt.Sprintf("Wrote %s", config.Envs.MazeJSONOutput))
	}

	if config.Envs.MazePrintASCII {
		opts := render.DefaultASCIIOptions()
		opts.Colorize = term.IsTerminal(int(os.Stdout.Fd()))
		if err := render.ASCII(os.Stdout, result.Maze, result.Path, opts); err != nil {
			return err
		}
	}

	return nil
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

func main() {
	// Initialize dependencies
	appLogger = newLogger("APP", config.ColorGreen)

	initMazeService()

	if !config.Envs.Serve {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		if err := renderOnce(ctx); err != nil {
			appLogger.Error(fmt.Sprintf("Rendering maze: %v", err))
			cancel()
			os.Exit(1)
		}
		return
	}

	initMazeController()
	initRouter()

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
