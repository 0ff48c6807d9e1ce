// Command searchclient generates a box-pushing level and solves it with the
// selected search strategy.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	searchclient "github.com/JulyThe9/SearchClient"
	"github.com/JulyThe9/SearchClient/gridworld"
)

func main() {
	cfg := gridworld.DefaultConfig()

	strategyName := flag.String("strategy", getEnvOrDefault("SEARCHCLIENT_STRATEGY", "astar"), "Strategy: bfs, dfs, astar, wastar, greedy or race")
	weight := flag.Int("weight", getEnvIntOrDefault("SEARCHCLIENT_WEIGHT", 5), "Weight W for wastar")
	flag.IntVar(&cfg.Rows, "rows", getEnvIntOrDefault("SEARCHCLIENT_ROWS", cfg.Rows), "Level rows, including the outer wall")
	flag.IntVar(&cfg.Cols, "cols", getEnvIntOrDefault("SEARCHCLIENT_COLS", cfg.Cols), "Level columns, including the outer wall")
	flag.IntVar(&cfg.Boxes, "boxes", getEnvIntOrDefault("SEARCHCLIENT_BOXES", cfg.Boxes), "Number of boxes")
	flag.IntVar(&cfg.Kinds, "kinds", getEnvIntOrDefault("SEARCHCLIENT_KINDS", cfg.Kinds), "Number of distinct box letters")
	flag.IntVar(&cfg.Clusters, "clusters", getEnvIntOrDefault("SEARCHCLIENT_CLUSTERS", cfg.Clusters), "Wall clusters")
	flag.IntVar(&cfg.Scramble, "scramble", getEnvIntOrDefault("SEARCHCLIENT_SCRAMBLE", cfg.Scramble), "Reverse moves applied to the solved level")
	seed := flag.Int64("seed", int64(getEnvIntOrDefault("SEARCHCLIENT_SEED", int(time.Now().UnixNano()))), "Random seed")
	maxExplored := flag.Int("max-explored", getEnvIntOrDefault("SEARCHCLIENT_MAX_EXPLORED", 0), "Abort after this many explored states (0 = no limit)")
	timeout := flag.Duration("timeout", getEnvDurationOrDefault("SEARCHCLIENT_TIMEOUT", 3*time.Minute), "Wall-clock limit for the search")
	statusEvery := flag.Duration("status-every", getEnvDurationOrDefault("SEARCHCLIENT_STATUS_EVERY", 2*time.Second), "Progress log interval (0 = off)")
	logLevel := flag.String("log-level", getEnvOrDefault("SEARCHCLIENT_LOG_LEVEL", "info"), "Log level: debug, info, warn, error")
	logFormat := flag.String("log-format", getEnvOrDefault("SEARCHCLIENT_LOG_FORMAT", "text"), "Log format: text or json")

	flag.Parse()

	logger, err := newLogger(*logLevel, *logFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "searchclient: %v\n", err)
		os.Exit(2)
	}

	level, start, err := gridworld.Generate(rand.New(rand.NewSource(*seed)), cfg)
	if err != nil {
		logger.Error("level generation failed", "error", err)
		os.Exit(2)
	}
	logger.Info("level generated",
		"seed", *seed,
		"rows", level.Rows(),
		"cols", level.Cols(),
		"boxes", cfg.Boxes,
	)
	fmt.Print(start)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	options := []searchclient.Option{
		searchclient.WithLogger(logger),
		searchclient.WithMaxExplored(*maxExplored),
		searchclient.WithStatusInterval(*statusEvery),
	}

	var result searchclient.Result[*gridworld.State]
	if strings.EqualFold(*strategyName, "race") {
		var entrants []*searchclient.Strategy[*gridworld.State]
		for _, name := range []string{"bfs", "dfs", "astar", "wastar", "greedy"} {
			strategy, err := buildStrategy(name, *weight, level)
			if err != nil {
				logger.Error("invalid strategy", "strategy", name, "error", err)
				os.Exit(2)
			}
			entrants = append(entrants, strategy)
		}
		raced, err := searchclient.Race(ctx, level, start, entrants, options...)
		if err != nil {
			exitOnSearchError(logger, err)
		}
		logger.Info("race won", "strategy", raced.Winner.String(), "status", raced.Winner.Status())
		result = raced.Result
	} else {
		strategy, err := buildStrategy(*strategyName, *weight, level)
		if err != nil {
			logger.Error("invalid strategy", "strategy", *strategyName, "error", err)
			os.Exit(2)
		}
		result, err = searchclient.Search(ctx, strategy, level, start, options...)
		if err != nil {
			exitOnSearchError(logger, err)
		}
		logger.Info("search finished", "status", strategy.Status())
	}

	goal := result.Path[len(result.Path)-1]
	fmt.Print(goal)
	for _, action := range goal.Plan() {
		fmt.Println(action)
	}
}

// buildStrategy maps a command-line name to a fresh strategy for level.
func buildStrategy(name string, weight int, level *gridworld.Level) (*searchclient.Strategy[*gridworld.State], error) {
	if kind, err := searchclient.ParseKind(name); err == nil && kind != searchclient.BestFirst {
		return searchclient.New[*gridworld.State](kind, nil)
	}
	mode, err := searchclient.ParseMode(name)
	if err != nil {
		return nil, err
	}
	h, err := searchclient.NewHeuristic(level.Goals(), searchclient.Evaluation{Mode: mode, Weight: weight})
	if err != nil {
		return nil, err
	}
	return searchclient.NewBestFirst[*gridworld.State](h), nil
}

func newLogger(level, format string) (*searchclient.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	switch format {
	case "text":
		return searchclient.NewTextLogger(lvl), nil
	case "json":
		return searchclient.NewJSONLogger(lvl), nil
	}
	return nil, fmt.Errorf("invalid log format %q", format)
}

func exitOnSearchError(logger *searchclient.Logger, err error) {
	switch {
	case errors.Is(err, searchclient.ErrNoSolution):
		logger.Error("level has no solution", "error", err)
	case errors.Is(err, searchclient.ErrLimitExceeded):
		logger.Error("search gave up", "error", err)
	case errors.Is(err, context.DeadlineExceeded):
		logger.Error("search timed out", "error", err)
	default:
		logger.Error("search failed", "error", err)
	}
	os.Exit(1)
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvIntOrDefault(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		var i int
		if _, err := fmt.Sscanf(val, "%d", &i); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDurationOrDefault(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
