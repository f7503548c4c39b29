package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const defaultConfigFile = "config.json"

func main() {
	app := cli.NewApp()
	app.Name = "go-life"
	app.Usage = "run Conway's Game of Life in the terminal or benchmark it"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "config", Value: defaultConfigFile, Usage: "JSON configuration file"},
		cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
		cli.StringFlag{Name: "variant", Usage: "simulation variant: " + strings.Join(model.Variants(), ", ")},
		cli.StringFlag{Name: "pattern", Usage: "starting pattern: default or random"},
		cli.Int64Flag{Name: "seed", Usage: "seed for the random pattern"},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "draw the board every tick",
			Flags: []cli.Flag{
				cli.IntFlag{Name: "width", Usage: "board width in cells"},
				cli.IntFlag{Name: "height", Usage: "board height in cells"},
				cli.DurationFlag{Name: "interval", Usage: "time between ticks"},
				cli.IntFlag{Name: "generations", Usage: "stop after this many generations, 0 runs until interrupted"},
				cli.BoolFlag{Name: "auto-restart", Usage: "reseed the board when it dies out or stagnates"},
			},
			Action: renderAction,
		},
		{
			Name:  "bench",
			Usage: "tick square boards a fixed number of times",
			Flags: []cli.Flag{
				cli.IntSliceFlag{Name: "sizes", Usage: "board sizes to benchmark"},
				cli.IntFlag{Name: "ticks", Usage: "ticks per board"},
				cli.IntFlag{Name: "parallel", Usage: "boards benchmarked at once"},
			},
			Action: benchAction,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "go-life: %+v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file, falling back to defaults when it does not exist, and applies flag overrides
func loadConfig(c *cli.Context) (utils.Config, log.Logger, error) {
	path := c.GlobalString("config")
	config, err := utils.LoadConfig(path)
	missing := errors.Is(err, os.ErrNotExist) && !c.GlobalIsSet("config")
	if err != nil && !missing {
		return config, nil, err
	}

	if c.GlobalIsSet("log-level") {
		config.LogLevel = c.GlobalString("log-level")
	}
	logger := utils.NewLogger(os.Stderr, config.LogLevel)
	if missing {
		level.Info(logger).Log("msg", "using default configuration", "path", path)
	}

	if c.GlobalIsSet("variant") {
		config.Variant = c.GlobalString("variant")
	}
	if c.GlobalIsSet("pattern") {
		config.Pattern = c.GlobalString("pattern")
	}
	if c.GlobalIsSet("seed") {
		config.Seed = c.GlobalInt64("seed")
	}

	if c.IsSet("width") {
		config.Width = c.Int("width")
	}
	if c.IsSet("height") {
		config.Height = c.Int("height")
	}
	if c.IsSet("interval") {
		config.TickInterval = c.Duration("interval")
	}
	if c.IsSet("generations") {
		config.MaxGenerations = c.Int("generations")
	}
	if c.IsSet("auto-restart") {
		config.AutoRestart = c.Bool("auto-restart")
	}
	if c.IsSet("sizes") {
		config.BenchSizes = c.IntSlice("sizes")
	}
	if c.IsSet("ticks") {
		config.BenchTicks = c.Int("ticks")
	}
	if c.IsSet("parallel") {
		config.BenchParallel = c.Int("parallel")
	}

	return config, logger, config.Validate()
}

// signalContext is cancelled on Ctrl+C or SIGTERM
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

func renderAction(c *cli.Context) error {
	config, logger, err := loadConfig(c)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	stats, err := runRender(ctx, logger, config, os.Stdout)
	if stats != nil {
		level.Info(logger).Log(
			"msg", "final stats",
			"generations", stats.TotalGenerations,
			"runtime", stats.Runtime().Round(time.Millisecond),
			"gen_per_sec", fmt.Sprintf("%.1f", stats.GenerationsPerSecond),
			"avg_population", fmt.Sprintf("%.1f", stats.AveragePopulation),
		)
	}
	return err
}

func benchAction(c *cli.Context) error {
	config, logger, err := loadConfig(c)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	results, err := runBench(ctx, logger, config)
	if err != nil {
		return err
	}
	for _, r := range results {
		fmt.Printf("%s/%d: %d ticks in %v (%.1f ticks/sec)\n",
			r.Variant, r.Size, r.Ticks, r.Elapsed.Round(time.Microsecond), r.TicksPerSecond())
	}
	return nil
}
