package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/sheikhrachel/sparse-gol/engine"
	"github.com/sheikhrachel/sparse-gol/model"
	"github.com/sheikhrachel/sparse-gol/patterns"
	"github.com/sheikhrachel/sparse-gol/utils"
)

const (
	statusActive   = "Active"
	statusExtinct  = "Extinct"
	statusStagnant = "Stagnant"

	reasonExtinction = "extinction"
	reasonStagnation = "stagnation detected"
	reasonRefresh    = "periodic refresh"

	// consecutive stagnant generations before random cells are injected
	injectAfter = 2
)

// initializeGame returns a function producing the starting live set.
// Coordinate files are loaded once; built-in patterns are regenerated on every call.
func initializeGame(
	ctx context.Context,
	config utils.Config,
	files []string,
	rng *rand.Rand,
) (func() model.LiveSet, error) {
	if len(files) > 0 {
		live, err := patterns.LoadFiles(ctx, files...)
		if err != nil {
			return nil, err
		}
		return live.Clone, nil
	}

	gen, err := patterns.Lookup(config.Pattern)
	if err != nil {
		return nil, err
	}
	area := patterns.SeedBounds(config.Boundary())
	return func() model.LiveSet {
		return gen(area, config.RandomDensity, rng)
	}, nil
}

// fitToTerminal clips the boundary to the terminal attached to fd, keeping it unchanged on failure
func fitToTerminal(config utils.Config, fd int, logger log.Logger) utils.Config {
	rows, cols, err := utils.TerminalSize(fd)
	if err != nil {
		level.Warn(logger).Log("msg", "cannot fit boundary to terminal", "err", err)
		return config
	}

	bounds := utils.FitBoundary(config.Boundary(), rows, cols)
	config.BoundaryMin, config.BoundaryMax = bounds.Min, bounds.Max
	level.Debug(logger).Log("msg", "fitted boundary", "rows", rows, "cols", cols, "max", bounds.Max)
	return config
}

// displayGameInfo logs the initial game information
func displayGameInfo(logger log.Logger, config utils.Config, board model.Board, files []string) {
	source := config.Pattern
	if len(files) > 0 {
		source = fmt.Sprintf("%v", files)
	}
	level.Info(logger).Log(
		"msg", "starting simulation",
		"source", source,
		"boundary_min", config.BoundaryMin,
		"boundary_max", config.BoundaryMax,
		"population", board.Population(),
		"visible", len(board.Visible()),
		"frame_rate", config.FrameRate,
	)
}

// displayFinalStats logs the summary once the loop has stopped
func displayFinalStats(logger log.Logger, stats *utils.Stats) {
	if stats == nil {
		return
	}
	level.Info(logger).Log(
		"msg", "shutting down",
		"generations", stats.TotalGenerations,
		"runtime", stats.Runtime().Round(time.Millisecond),
		"avg_population", fmt.Sprintf("%.1f", stats.AveragePopulation),
		"restarts", stats.Restarts,
		"injections", stats.Injections,
	)
}

// updateGameState updates stats and history for the board about to be rendered
func updateGameState(
	board model.Board,
	history *model.History,
	generation int,
	lastFrameTime time.Time,
	stats *utils.Stats,
) (string, bool) {
	var (
		population = board.Population()
		visible    = len(board.Visible())
	)
	stats.Update(generation, population, visible, time.Since(lastFrameTime))
	stats.Density = float64(visible) / board.Boundary().Area() * 100

	isStagnant := history.Observe(board.Live())

	status := statusActive
	if isStagnant {
		status = fmt.Sprintf("%s (%d)", statusStagnant, generation)
	}
	if population == 0 {
		status = statusExtinct
	}
	return status, isStagnant
}

// statusLines formats the on-screen statistics
func statusLines(generation, lastRestartGen int, status string, stats *utils.Stats) []string {
	lines := []string{
		fmt.Sprintf("Gen: %d | Living: %d | Visible: %d | Density: %.1f%% | Status: %s",
			generation, stats.Population, stats.VisibleCells, stats.Density, status),
		fmt.Sprintf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs",
			stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds()),
	}
	if generation > lastRestartGen && lastRestartGen > 0 {
		lines = append(lines, fmt.Sprintf("Generations since restart: %d", generation-lastRestartGen))
	}
	return lines
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(population, stagnantCount, generation int, config utils.Config) (bool, string) {
	if population == 0 {
		return true, reasonExtinction
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, reasonStagnation
	}
	if config.RefreshInterval > 0 && generation > 0 && generation%config.RefreshInterval == 0 {
		return true, reasonRefresh
	}
	return false, ""
}

// shouldInject reports whether a stagnating board should get random cells before restarting becomes necessary
func shouldInject(stagnantCount int, config utils.Config) bool {
	if config.InjectionCount <= 0 || stagnantCount < injectAfter {
		return false
	}
	return config.StagnationThreshold <= 0 || stagnantCount < config.StagnationThreshold
}

/*
runGame alternates between rendering the current board and computing the next one
until ctx is cancelled or the generation limit is reached.

The loop owns the only Board binding and replaces it every iteration. With
auto restart enabled, stagnating boards first get random cells injected and are
re-seeded after extinction, lasting stagnation or every refresh interval.
*/
func runGame(
	ctx context.Context,
	config utils.Config,
	initial model.LiveSet,
	reseed func() model.LiveSet,
	rng *rand.Rand,
	renderer *model.TerminalRenderer,
	logger log.Logger,
) (*utils.Stats, error) {
	var (
		board          = model.NewBoard(config.Boundary(), initial)
		history        = model.NewHistory(config.HistoryDepth)
		stats          = utils.NewStats()
		stagnantCount  = 0
		lastRestartGen = 0
		lastFrameTime  = time.Now()
	)

	for generation := 0; ; generation++ {
		if ctx.Err() != nil {
			return stats, nil
		}

		frameStart := time.Now()
		status, isStagnant := updateGameState(board, history, generation, lastFrameTime, stats)
		lastFrameTime = frameStart

		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		renderer.Clear()
		renderer.Display(board)
		if config.ShowStatus {
			renderer.Status(statusLines(generation, lastRestartGen, status, stats)...)
		}
		if err := renderer.Flush(); err != nil {
			return stats, err
		}

		if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
			level.Info(logger).Log("msg", "reached maximum generations limit", "limit", config.MaxGenerations)
			return stats, nil
		}

		shouldRestart, reason := checkRestartConditions(board.Population(), stagnantCount, generation, config)
		switch {
		case config.AutoRestart && shouldRestart:
			level.Debug(logger).Log("msg", "restarting", "reason", reason, "generation", generation)
			board = board.WithLive(reseed())
			history.Reset()
			stagnantCount = 0
			lastRestartGen = generation
			stats.Restarts++
		case config.AutoRestart && shouldInject(stagnantCount, config):
			level.Debug(logger).Log("msg", "injecting life", "count", config.InjectionCount, "generation", generation)
			live := patterns.Inject(board.Live(), board.Boundary(), config.InjectionCount, rng)
			board = board.WithLive(engine.Advance(live))
			stats.Injections++
		default:
			board = board.WithLive(engine.Advance(board.Live()))
		}

		if !sleep(ctx, config.FrameRate) {
			return stats, nil
		}
	}
}

// sleep waits for d and reports false if ctx was cancelled first
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
