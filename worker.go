package searchclient

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// errRaceWon cancels the remaining runs once one of them has a solution.
var errRaceWon = errors.New("race won")

// RaceResult is the outcome of Race.
type RaceResult[S State] struct {
	Result[S]
	Winner *Strategy[S]
}

// Race runs one search per strategy on its own goroutine and returns the
// first solution found. The others are cancelled.
//
// Each strategy is owned by its run. problem and the states it produces are
// shared, so they must be safe for concurrent reads.
func Race[S State](
	ctx context.Context,
	problem Problem[S],
	start S,
	strategies []*Strategy[S],
	options ...Option,
) (RaceResult[S], error) {
	if len(strategies) == 0 {
		return RaceResult[S]{}, fmt.Errorf("%w: no strategies to race", ErrUnknownStrategy)
	}

	group, groupCtx := errgroup.WithContext(ctx)

	var (
		mu       sync.Mutex
		winner   RaceResult[S]
		failures []error
	)
	for _, strategy := range strategies {
		strategy := strategy
		group.Go(func() error {
			result, err := Search(groupCtx, strategy, problem, start, options...)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if groupCtx.Err() == nil {
					failures = append(failures, fmt.Errorf("%s: %w", strategy, err))
				}
				return nil
			}
			if winner.Winner == nil {
				winner = RaceResult[S]{Result: result, Winner: strategy}
			}
			return errRaceWon
		})
	}

	if err := group.Wait(); err != nil && !errors.Is(err, errRaceWon) {
		return RaceResult[S]{}, err
	}
	if winner.Winner != nil {
		return winner, nil
	}
	if err := ctx.Err(); err != nil {
		return RaceResult[S]{}, fmt.Errorf("race aborted: %w", err)
	}
	return RaceResult[S]{}, errors.Join(failures...)
}
