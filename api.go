package searchclient

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/JulyThe9/SearchClient/internal"
)

// State is one configuration of a search problem.
//
// Key must be equal for two states describing the same configuration,
// however they were reached. G is the path cost from the start state.
type State interface {
	Key() string
	G() int
}

// Problem supplies the goal test and successor generation for a State type.
type Problem[S State] interface {
	IsGoal(state S) bool
	Successors(state S) []S
}

// Result contains the outcome of a search run.
type Result[S State] struct {
	Path      []S
	Cost      int
	Explored  int
	Generated int
	Elapsed   time.Duration
	Found     bool
}

// Steps returns the number of transitions on the solution path.
func (r Result[S]) Steps() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// Options defines parameters for the search driver.
type Options struct {
	Logger         *Logger
	MaxExplored    int
	StatusInterval time.Duration
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithLogger sets the logger used for progress and result records.
func WithLogger(logger *Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

// WithMaxExplored aborts the run once this many states have been explored.
// Zero disables the limit.
func WithMaxExplored(limit int) Option {
	return func(options *Options) { options.MaxExplored = limit }
}

// WithStatusInterval sets how often progress is logged. Zero disables it.
func WithStatusInterval(interval time.Duration) Option {
	return func(options *Options) { options.StatusInterval = interval }
}

func applyOptions(options []Option) Options {
	searchOptions := Options{
		Logger:         NoopLogger(),
		StatusInterval: 5 * time.Second,
	}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.Logger == nil {
		searchOptions.Logger = NoopLogger()
	}
	return searchOptions
}

// Search runs strategy from start until a goal state is expanded.
//
// The strategy must be fresh; it is consumed by the run. Search stops with
// ErrNoSolution when the frontier runs dry, with a *LimitError when the
// explored limit is reached, and with the context error on cancellation.
func Search[S State](
	ctx context.Context,
	strategy *Strategy[S],
	problem Problem[S],
	start S,
	options ...Option,
) (Result[S], error) {
	searchOptions := applyOptions(options)
	logger := searchOptions.Logger.WithStrategy(strategy.String())
	logger.LogStart(ctx, searchOptions.MaxExplored)

	var status *rate.Sometimes
	if searchOptions.StatusInterval > 0 {
		status = &rate.Sometimes{Interval: searchOptions.StatusInterval}
	}

	finish := func(result Result[S], err error) (Result[S], error) {
		result.Explored = strategy.ExploredCount()
		result.Generated = result.Explored + strategy.FrontierSize()
		result.Elapsed = strategy.Elapsed()
		logger.LogResult(ctx, result.Steps(), result.Cost, result.Explored, result.Elapsed, err)
		return result, err
	}

	cameFrom := make(map[string]S)
	strategy.Insert(start)

	for {
		if err := ctx.Err(); err != nil {
			return finish(Result[S]{}, fmt.Errorf("search aborted: %w", err))
		}
		if limit := searchOptions.MaxExplored; limit > 0 && strategy.ExploredCount() >= limit {
			return finish(Result[S]{}, &LimitError{Explored: strategy.ExploredCount(), Limit: limit})
		}
		if status != nil {
			status.Do(func() {
				logger.LogStatus(ctx, strategy.ExploredCount(), strategy.FrontierSize(), strategy.Elapsed())
			})
		}
		if strategy.FrontierEmpty() {
			return finish(Result[S]{}, ErrNoSolution)
		}

		leaf, err := strategy.NextLeaf()
		if err != nil {
			return finish(Result[S]{}, err)
		}

		if problem.IsGoal(leaf) {
			return finish(Result[S]{
				Path:  reconstructPath(cameFrom, leaf),
				Cost:  leaf.G(),
				Found: true,
			}, nil)
		}

		expand(strategy, problem, leaf, cameFrom)
	}
}

// expand marks leaf explored and inserts every successor that is neither
// explored nor already in the frontier. It returns the inserted states.
func expand[S State](strategy *Strategy[S], problem Problem[S], leaf S, cameFrom map[string]S) []S {
	strategy.MarkExplored(leaf)
	successors := problem.Successors(leaf)
	var inserted []S
	for _, child := range successors {
		if strategy.IsExplored(child) || strategy.InFrontier(child) {
			continue
		}
		cameFrom[child.Key()] = leaf
		strategy.Insert(child)
		inserted = append(inserted, child)
	}
	return inserted
}

func reconstructPath[S State](cameFrom map[string]S, current S) []S {
	return internal.ReconstructPath(cameFrom, current, func(state S) string { return state.Key() })
}
