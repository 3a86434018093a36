package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/sheikhrachel/sparse-gol/model"
	"github.com/sheikhrachel/sparse-gol/patterns"
	"github.com/sheikhrachel/sparse-gol/utils"
)

const defaultConfigFile = "config.json"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "gol: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "gol"
	app.Usage = "Conway's Game of Life in the terminal"
	app.ArgsUsage = "[coords-file...]"
	app.Description = fmt.Sprintf(
		"Coordinate files hold one \"row,col\" pair per line. Without files the --pattern seed is used (%v).",
		patterns.Names,
	)
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "config, c", Value: defaultConfigFile, Usage: "JSON configuration file"},
		cli.DurationFlag{Name: "frame-rate, r", Usage: "delay between generations"},
		cli.IntFlag{Name: "generations, n", Usage: "stop after this many generations (0 runs forever)"},
		cli.StringFlag{Name: "pattern, p", Usage: "built-in seed used when no coordinate file is given"},
		cli.BoolFlag{Name: "status, s", Usage: "show generation statistics on screen"},
		cli.BoolFlag{Name: "auto-restart", Usage: "re-seed after extinction or stagnation"},
		cli.Int64Flag{Name: "seed", Usage: "random seed for the random patterns (0 uses the clock)"},
		cli.BoolFlag{Name: "fit", Usage: "shrink the boundary to the terminal size (on by default, --fit=false disables)"},
		cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
	}
	app.Action = run
	return app
}

func run(c *cli.Context) error {
	config, configErr := utils.LoadConfig(c.String("config"))
	if configErr != nil {
		if !errors.Is(configErr, os.ErrNotExist) {
			return configErr
		}
		config = utils.DefaultConfig()
	}
	applyFlags(c, &config)

	logger, err := utils.NewLogger(os.Stderr, config.LogLevel)
	if err != nil {
		return err
	}
	if configErr != nil {
		level.Info(logger).Log("msg", "using default configuration", "config", c.String("config"))
	}

	if config.FitTerminal {
		config = fitToTerminal(config, int(os.Stdout.Fd()), logger)
	}
	if err = config.Validate(); err != nil {
		return err
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	reseed, err := initializeGame(ctx, config, c.Args(), rng)
	if err != nil {
		return err
	}

	initial := reseed()
	displayGameInfo(logger, config, model.NewBoard(config.Boundary(), initial), c.Args())

	stats, err := runGame(ctx, config, initial, reseed, rng, model.NewTerminalRenderer(os.Stdout), logger)
	displayFinalStats(logger, stats)
	return err
}

// applyFlags overrides file configuration with explicitly set flags
func applyFlags(c *cli.Context, config *utils.Config) {
	if c.IsSet("frame-rate") {
		config.FrameRate = c.Duration("frame-rate")
	}
	if c.IsSet("generations") {
		config.MaxGenerations = c.Int("generations")
	}
	if c.IsSet("pattern") {
		config.Pattern = c.String("pattern")
	}
	if c.IsSet("status") {
		config.ShowStatus = c.Bool("status")
	}
	if c.IsSet("auto-restart") {
		config.AutoRestart = c.Bool("auto-restart")
	}
	if c.IsSet("seed") {
		config.Seed = c.Int64("seed")
	}
	if c.IsSet("fit") {
		config.FitTerminal = c.Bool("fit")
	}
	if c.IsSet("log-level") {
		config.LogLevel = c.String("log-level")
	}
}
