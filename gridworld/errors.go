package gridworld

import "errors"

var (
	// ErrBlockedCell is returned when an agent, box or goal is placed on a
	// wall, off the grid, or on an occupied cell.
	ErrBlockedCell = errors.New("cell is blocked")

	// ErrInvalidKind is returned for box or goal tokens that are not ASCII letters.
	ErrInvalidKind = errors.New("invalid kind")

	// ErrInvalidConfig is returned by Generate for impossible settings.
	ErrInvalidConfig = errors.New("invalid generator config")
)
