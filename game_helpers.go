package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// benchCancelCheckInterval is how many ticks run between context checks in a bench
const benchCancelCheckInterval = 1024

// newGame builds the configured variant and seeds its starting pattern
func newGame(config utils.Config, seed int64) (model.GameOfLife, error) {
	game, err := model.NewGame(config.Variant, config.Width, config.Height)
	if err != nil {
		return nil, err
	}
	if err = seedPattern(game, config, seed); err != nil {
		return nil, err
	}
	return game, nil
}

// seedPattern loads the configured starting pattern into game
func seedPattern(game model.GameOfLife, config utils.Config, seed int64) error {
	switch config.Pattern {
	case utils.PatternDefault:
		model.ApplyDefaultPattern(game)
	case utils.PatternRandom:
		model.Randomize(game, config.RandomDensity, seed)
	default:
		return errors.Errorf("[seedPattern] unknown pattern %q", config.Pattern)
	}
	return nil
}

// updateGameState updates stats and history, returning the population and whether the board is stagnant
func updateGameState(
	game model.GameOfLife,
	history *model.History,
	generation int,
	lastFrameTime time.Time,
	stats *utils.Stats,
) (int, bool) {
	livingCells := model.CountLivingCells(game)
	stats.Update(generation, livingCells, time.Since(lastFrameTime))

	// compare before recording, or the current generation always matches itself
	isStagnant := history.IsStagnant(game)
	history.Record(game)

	return livingCells, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(
	out io.Writer,
	generation, lastRestartGen int,
	game model.GameOfLife,
	stats *utils.Stats,
) {
	density := float64(stats.LivingCells) / float64(game.Width()*game.Height()) * 100

	fmt.Fprintf(out, "Gen: %d | Living: %d | Density: %.1f%% | Grid: %dx%d\n",
		generation, stats.LivingCells, density, game.Width(), game.Height())
	fmt.Fprintf(out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds())

	if generation > lastRestartGen {
		fmt.Fprintf(out, "Generations since restart: %d\n", generation-lastRestartGen)
	}
	fmt.Fprintln(out)
}

// checkStopConditions determines if the current board has run its course
func checkStopConditions(livingCells, stagnantCount int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// runRender draws and ticks a board at a wall-clock pace until the context is cancelled,
// the generation limit is reached, or the board dies out or stagnates without auto restart.
func runRender(ctx context.Context, logger log.Logger, config utils.Config, out io.Writer) (*utils.Stats, error) {
	seed := config.Seed
	game, err := newGame(config, seed)
	if err != nil {
		return nil, err
	}

	var (
		renderer       = &model.TerminalRenderer{}
		history        = model.NewHistory(0)
		stats          = utils.NewStats()
		generation     = 0
		stagnantCount  = 0
		lastRestartGen = 0
		lastFrameTime  = time.Now()
	)

	level.Info(logger).Log(
		"msg", "starting render",
		"variant", config.Variant,
		"width", game.Width(),
		"height", game.Height(),
		"pattern", config.Pattern,
		"living", model.CountLivingCells(game),
	)

	for {
		select {
		case <-ctx.Done():
			return stats, nil
		default:
		}

		frameStart := time.Now()
		if err = renderer.Clear(out); err != nil {
			return stats, err
		}

		livingCells, isStagnant := updateGameState(game, history, generation, lastFrameTime, stats)
		lastFrameTime = frameStart

		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		displayGameStatus(out, generation, lastRestartGen, game, stats)
		if err = renderer.Display(out, game); err != nil {
			return stats, err
		}

		if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
			level.Info(logger).Log("msg", "reached maximum generations", "generations", config.MaxGenerations)
			return stats, nil
		}

		if stop, reason := checkStopConditions(livingCells, stagnantCount, config); stop {
			if !config.AutoRestart {
				level.Info(logger).Log("msg", "stopping", "reason", reason, "generation", generation)
				return stats, nil
			}

			if game, seed, err = restartGame(config, seed); err != nil {
				return stats, err
			}
			if model.CountLivingCells(game) == 0 {
				level.Info(logger).Log("msg", "stopping", "reason", "restarted board is empty", "generation", generation)
				return stats, nil
			}
			history.Reset()
			stagnantCount = 0
			lastRestartGen = generation
			level.Info(logger).Log("msg", "restarting", "reason", reason, "generation", generation, "seed", seed)

			// show the fresh board before ticking it
			if !wait(ctx, config.TickInterval) {
				return stats, nil
			}
			continue
		}

		game.Tick()
		generation++

		if !wait(ctx, config.TickInterval) {
			return stats, nil
		}
	}
}

// restartGame builds a fresh board. Only the random pattern takes a new seed, the default pattern is fixed.
func restartGame(config utils.Config, seed int64) (model.GameOfLife, int64, error) {
	if config.Pattern == utils.PatternRandom {
		seed++
	}
	game, err := newGame(config, seed)
	return game, seed, err
}

// wait sleeps for d, returning false if ctx is cancelled first
func wait(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}

// benchResult is the outcome of ticking one board a fixed number of times
type benchResult struct {
	Variant string
	Size    int
	Ticks   int
	Elapsed time.Duration
}

// TicksPerSecond returns the measured tick rate
func (r benchResult) TicksPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Ticks) / r.Elapsed.Seconds()
}

// runBench ticks one square board per configured size. Each board is owned by a single goroutine.
func runBench(ctx context.Context, logger log.Logger, config utils.Config) ([]benchResult, error) {
	var (
		results   = make([]benchResult, len(config.BenchSizes))
		eg, egCtx = errgroup.WithContext(ctx)
	)
	eg.SetLimit(max(1, config.BenchParallel))

	for i, size := range config.BenchSizes {
		eg.Go(func() error {
			sized := config
			sized.Width, sized.Height = size, size

			game, err := newGame(sized, config.Seed)
			if err != nil {
				return errors.Wrapf(err, "[runBench] size: %d", size)
			}

			level.Debug(logger).Log("msg", "starting benchmark", "variant", config.Variant, "size", size, "ticks", config.BenchTicks)

			start := time.Now()
			for tick := range config.BenchTicks {
				if tick%benchCancelCheckInterval == 0 && egCtx.Err() != nil {
					return errors.Wrapf(egCtx.Err(), "[runBench] size %d interrupted after %d ticks", size, tick)
				}
				game.Tick()
			}

			results[i] = benchResult{
				Variant: config.Variant,
				Size:    size,
				Ticks:   config.BenchTicks,
				Elapsed: time.Since(start),
			}
			level.Info(logger).Log(
				"msg", "finished benchmark",
				"variant", config.Variant,
				"size", size,
				"ticks", config.BenchTicks,
				"elapsed", results[i].Elapsed,
				"ticks_per_sec", fmt.Sprintf("%.1f", results[i].TicksPerSecond()),
			)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
