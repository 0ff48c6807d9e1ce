package searchclient

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	// BoxWeight scales the summed box-to-goal distances.
	BoxWeight = 5

	// Unreachable is the distance charged for a box with no goal of its kind.
	Unreachable = 9999
)

// Layout is a row-major grid of kind tokens. Zero marks an empty cell.
type Layout [][]byte

// BoxState is a State whose movable entities can be read as a Layout.
type BoxState interface {
	State
	Boxes() Layout
}

// Cell is a grid position carrying a kind token.
type Cell struct {
	Row  int
	Col  int
	Kind byte
}

// GoalSpec is the immutable set of goal cells of a level.
type GoalSpec struct {
	goals []Cell
}

// NewGoalSpec extracts every goal cell from the static goal layout.
func NewGoalSpec(goals Layout) GoalSpec {
	var spec GoalSpec
	for i, row := range goals {
		for j, kind := range row {
			if kind != 0 {
				spec.goals = append(spec.goals, Cell{Row: i, Col: j, Kind: normalizeKind(kind)})
			}
		}
	}
	return spec
}

// Len returns the number of goal cells.
func (g GoalSpec) Len() int { return len(g.goals) }

// Goals returns a copy of the goal cells in row-major order.
func (g GoalSpec) Goals() []Cell {
	out := make([]Cell, len(g.goals))
	copy(out, g.goals)
	return out
}

// nearest returns the Manhattan distance from (row, col) to the closest goal of kind.
func (g GoalSpec) nearest(row, col int, kind byte) int {
	best := Unreachable
	for _, goal := range g.goals {
		if goal.Kind != kind {
			continue
		}
		if d := manhattan(row, col, goal.Row, goal.Col); d < best {
			best = d
		}
	}
	return best
}

// Mode selects how g and h combine into an evaluation score.
type Mode int

const (
	AStar Mode = iota
	WeightedAStar
	Greedy
)

// ParseMode maps a command-line name to a Mode.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(name) {
	case "astar", "a*":
		return AStar, nil
	case "wastar", "wa*", "weighted":
		return WeightedAStar, nil
	case "greedy":
		return Greedy, nil
	}
	return 0, fmt.Errorf("%w: evaluation %q", ErrUnknownStrategy, name)
}

// Evaluation configures the scoring policy of a Heuristic.
// Weight is only read in WeightedAStar mode.
type Evaluation struct {
	Mode   Mode
	Weight int
}

// Heuristic estimates the remaining cost of box states against a fixed goal layout.
type Heuristic struct {
	spec GoalSpec
	eval Evaluation
}

// NewHeuristic precomputes the goal cells and binds the evaluation policy.
func NewHeuristic(goals Layout, eval Evaluation) (*Heuristic, error) {
	switch eval.Mode {
	case AStar, Greedy:
	case WeightedAStar:
		if eval.Weight < 1 {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidWeight, eval.Weight)
		}
	default:
		return nil, fmt.Errorf("%w: evaluation mode %d", ErrUnknownStrategy, eval.Mode)
	}
	return &Heuristic{spec: NewGoalSpec(goals), eval: eval}, nil
}

// GoalSpec returns the precomputed goal cells.
func (h *Heuristic) GoalSpec() GoalSpec { return h.spec }

// Evaluation returns the scoring policy.
func (h *Heuristic) Evaluation() Evaluation { return h.eval }

// Estimate returns h(s).
//
// Each box contributes the distance to its nearest goal of the same kind,
// scaled by BoxWeight. The distances between successive boxes in row-major
// order are added unscaled.
func (h *Heuristic) Estimate(s BoxState) int {
	var (
		toGoals int
		between int
		prevRow int
		prevCol int
		seen    bool
	)
	for i, row := range s.Boxes() {
		for j, kind := range row {
			if kind == 0 {
				continue
			}
			if seen {
				between += manhattan(prevRow, prevCol, i, j)
			}
			seen = true
			prevRow, prevCol = i, j
			toGoals += h.spec.nearest(i, j, normalizeKind(kind))
		}
	}
	return BoxWeight*toGoals + between
}

// Score returns the evaluation score f(s) used to order the frontier.
func (h *Heuristic) Score(s BoxState) int {
	switch h.eval.Mode {
	case WeightedAStar:
		return s.G() + h.eval.Weight*h.Estimate(s)
	case Greedy:
		return h.Estimate(s)
	default:
		return s.G() + h.Estimate(s)
	}
}

// Less reports whether a ranks strictly before b.
func (h *Heuristic) Less(a, b BoxState) bool {
	return h.Score(a) < h.Score(b)
}

func (h *Heuristic) String() string {
	switch h.eval.Mode {
	case WeightedAStar:
		return fmt.Sprintf("WA*(%d) evaluation", h.eval.Weight)
	case Greedy:
		return "Greedy evaluation"
	default:
		return "A* evaluation"
	}
}

func manhattan(r1, c1, r2, c2 int) int {
	return abs(r1-r2) + abs(c1-c2)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// normalizeKind folds a box token onto the goal token it must reach.
func normalizeKind(kind byte) byte {
	if kind < unicode.MaxASCII {
		return byte(unicode.ToLower(rune(kind)))
	}
	return kind
}
