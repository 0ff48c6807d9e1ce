// Package gridworld is a box-pushing puzzle that implements the search
// contracts of package searchclient.
//
// An agent walks on a grid of floor and wall cells and pushes lettered boxes
// onto goal cells of the same letter (box 'A' belongs on goal 'a'). Every
// move and push costs one.
package gridworld

import (
	"fmt"
	"strings"
	"unicode"

	searchclient "github.com/JulyThe9/SearchClient"
)

const (
	wallRune  = '+'
	agentRune = '0'
	floorRune = ' '
)

var _ searchclient.Problem[*State] = (*Level)(nil)

// Level holds the static part of a puzzle: walls and goals.
type Level struct {
	rows  int
	cols  int
	walls []bool
	goals searchclient.Layout
}

// NewLevel creates a rows x cols level of open floor.
func NewLevel(rows, cols int) *Level {
	goals := make(searchclient.Layout, rows)
	for i := range goals {
		goals[i] = make([]byte, cols)
	}
	return &Level{
		rows:  rows,
		cols:  cols,
		walls: make([]bool, rows*cols),
		goals: goals,
	}
}

// Rows returns the number of grid rows.
func (l *Level) Rows() int { return l.rows }

// Cols returns the number of grid columns.
func (l *Level) Cols() int { return l.cols }

// Goals returns the goal layout. Callers must not modify it.
func (l *Level) Goals() searchclient.Layout { return l.goals }

// In reports whether (row, col) lies on the grid.
func (l *Level) In(row, col int) bool {
	return row >= 0 && row < l.rows && col >= 0 && col < l.cols
}

// Wall reports whether (row, col) is a wall. Cells off the grid count as walls.
func (l *Level) Wall(row, col int) bool {
	return !l.In(row, col) || l.walls[row*l.cols+col]
}

// SetWall turns (row, col) into a wall.
func (l *Level) SetWall(row, col int) {
	if l.In(row, col) {
		l.walls[row*l.cols+col] = true
		l.goals[row][col] = 0
	}
}

// SetGoal marks (row, col) as a goal for boxes of kind.
func (l *Level) SetGoal(row, col int, kind byte) error {
	if l.Wall(row, col) {
		return fmt.Errorf("%w: goal at (%d,%d)", ErrBlockedCell, row, col)
	}
	if !isLetter(kind) {
		return fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}
	l.goals[row][col] = byte(unicode.ToLower(rune(kind)))
	return nil
}

// Enclose turns the outer ring of cells into walls.
func (l *Level) Enclose() {
	for j := 0; j < l.cols; j++ {
		l.SetWall(0, j)
		l.SetWall(l.rows-1, j)
	}
	for i := 0; i < l.rows; i++ {
		l.SetWall(i, 0)
		l.SetWall(i, l.cols-1)
	}
}

// Start builds the initial state with the agent at (row, col) and the given boxes.
func (l *Level) Start(row, col int, boxes []searchclient.Cell) (*State, error) {
	if l.Wall(row, col) {
		return nil, fmt.Errorf("%w: agent at (%d,%d)", ErrBlockedCell, row, col)
	}
	layout := make(searchclient.Layout, l.rows)
	for i := range layout {
		layout[i] = make([]byte, l.cols)
	}
	for _, box := range boxes {
		switch {
		case l.Wall(box.Row, box.Col):
			return nil, fmt.Errorf("%w: box at (%d,%d)", ErrBlockedCell, box.Row, box.Col)
		case !isLetter(box.Kind):
			return nil, fmt.Errorf("%w: %q", ErrInvalidKind, box.Kind)
		case box.Row == row && box.Col == col:
			return nil, fmt.Errorf("%w: box under agent at (%d,%d)", ErrBlockedCell, row, col)
		case layout[box.Row][box.Col] != 0:
			return nil, fmt.Errorf("%w: two boxes at (%d,%d)", ErrBlockedCell, box.Row, box.Col)
		}
		layout[box.Row][box.Col] = byte(unicode.ToUpper(rune(box.Kind)))
	}
	return newState(l, row, col, layout, 0, nil, Action{}), nil
}

// IsGoal reports whether every goal cell holds a box of its kind.
func (l *Level) IsGoal(s *State) bool {
	for i, row := range l.goals {
		for j, goal := range row {
			if goal == 0 {
				continue
			}
			if byte(unicode.ToLower(rune(s.boxes[i][j]))) != goal {
				return false
			}
		}
	}
	return true
}

// Successors returns every state reachable from s by one move or push,
// in the order N, S, E, W.
func (l *Level) Successors(s *State) []*State {
	out := make([]*State, 0, len(directions))
	for _, dir := range directions {
		dr, dc := dir.delta()
		nr, nc := s.agentRow+dr, s.agentCol+dc
		if l.Wall(nr, nc) {
			continue
		}
		if s.boxes[nr][nc] == 0 {
			out = append(out, newState(l, nr, nc, s.boxes, s.g+1, s, Action{Kind: Move, Dir: dir}))
			continue
		}
		br, bc := nr+dr, nc+dc
		if l.Wall(br, bc) || s.boxes[br][bc] != 0 {
			continue
		}
		boxes := cloneLayout(s.boxes)
		boxes[br][bc] = boxes[nr][nc]
		boxes[nr][nc] = 0
		out = append(out, newState(l, nr, nc, boxes, s.g+1, s, Action{Kind: Push, Dir: dir}))
	}
	return out
}

// Render draws s on the level: walls '+', agent '0', boxes upper case,
// uncovered goals lower case.
func (l *Level) Render(s *State) string {
	var b strings.Builder
	for i := 0; i < l.rows; i++ {
		for j := 0; j < l.cols; j++ {
			switch {
			case l.Wall(i, j):
				b.WriteByte(wallRune)
			case i == s.agentRow && j == s.agentCol:
				b.WriteByte(agentRune)
			case s.boxes[i][j] != 0:
				b.WriteByte(s.boxes[i][j])
			case l.goals[i][j] != 0:
				b.WriteByte(l.goals[i][j])
			default:
				b.WriteByte(floorRune)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func isLetter(kind byte) bool {
	return kind < unicode.MaxASCII && unicode.IsLetter(rune(kind))
}
