package searchclient

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyFrontier is returned by NextLeaf when no state is left to expand.
	// Callers are expected to check FrontierEmpty first.
	ErrEmptyFrontier = errors.New("frontier is empty")

	// ErrInvalidWeight is returned when a weighted A* evaluation has a weight below 1.
	ErrInvalidWeight = errors.New("weight must be positive")

	// ErrUnknownStrategy is returned when a strategy or evaluation name cannot be parsed.
	ErrUnknownStrategy = errors.New("unknown strategy")

	// ErrNoSolution is returned when the frontier runs dry before a goal is reached.
	ErrNoSolution = errors.New("no solution found")

	// ErrLimitExceeded is returned when a search run hits its explored-state limit.
	ErrLimitExceeded = errors.New("explored limit exceeded")
)

// LimitError reports the counts at which a search run was aborted.
//
// errors.Is(err, ErrLimitExceeded) holds for every LimitError.
type LimitError struct {
	Explored int
	Limit    int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("explored limit exceeded: %d states explored, limit %d", e.Explored, e.Limit)
}

func (e *LimitError) Unwrap() error { return ErrLimitExceeded }
