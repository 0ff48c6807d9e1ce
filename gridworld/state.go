package gridworld

import (
	"fmt"

	searchclient "github.com/JulyThe9/SearchClient"
)

var _ searchclient.BoxState = (*State)(nil)

// ActionKind distinguishes plain moves from box pushes.
type ActionKind int

const (
	NoOp ActionKind = iota
	Move
	Push
)

// Direction is a compass direction on the grid.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

var directions = [...]Direction{North, South, East, West}

func (d Direction) delta() (int, int) {
	switch d {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case East:
		return 0, 1
	default:
		return 0, -1
	}
}

func (d Direction) String() string {
	return [...]string{"N", "S", "E", "W"}[d]
}

// Action is the transition that produced a state.
type Action struct {
	Kind ActionKind
	Dir  Direction
}

func (a Action) String() string {
	switch a.Kind {
	case Move:
		return fmt.Sprintf("Move(%s)", a.Dir)
	case Push:
		return fmt.Sprintf("Push(%s)", a.Dir)
	}
	return "NoOp"
}

// State is the dynamic part of a puzzle: agent position and box layout.
// States are immutable and safe for concurrent reads.
type State struct {
	level    *Level
	agentRow int
	agentCol int
	boxes    searchclient.Layout
	g        int
	parent   *State
	action   Action
	key      string
}

func newState(level *Level, row, col int, boxes searchclient.Layout, g int, parent *State, action Action) *State {
	s := &State{
		level:    level,
		agentRow: row,
		agentCol: col,
		boxes:    boxes,
		g:        g,
		parent:   parent,
		action:   action,
	}
	s.key = s.encodeKey()
	return s
}

// encodeKey packs the agent position and the box layout. Path cost and
// parent are left out so that equal configurations share a key.
func (s *State) encodeKey() string {
	buf := make([]byte, 0, 4+s.level.rows*s.level.cols)
	buf = append(buf, byte(s.agentRow>>8), byte(s.agentRow), byte(s.agentCol>>8), byte(s.agentCol))
	for _, row := range s.boxes {
		buf = append(buf, row...)
	}
	return string(buf)
}

// Key implements searchclient.State.
func (s *State) Key() string { return s.key }

// G implements searchclient.State.
func (s *State) G() int { return s.g }

// Boxes implements searchclient.BoxState. Callers must not modify the layout.
func (s *State) Boxes() searchclient.Layout { return s.boxes }

// Agent returns the agent position.
func (s *State) Agent() (row, col int) { return s.agentRow, s.agentCol }

// Parent returns the state this one was generated from, or nil for a start state.
func (s *State) Parent() *State { return s.parent }

// Action returns the transition that produced s.
func (s *State) Action() Action { return s.action }

// Plan returns the actions leading from the start state to s.
func (s *State) Plan() []Action {
	var plan []Action
	for cur := s; cur.parent != nil; cur = cur.parent {
		plan = append(plan, cur.action)
	}
	for i, j := 0, len(plan)-1; i < j; i, j = i+1, j-1 {
		plan[i], plan[j] = plan[j], plan[i]
	}
	return plan
}

func (s *State) String() string { return s.level.Render(s) }

func cloneLayout(layout searchclient.Layout) searchclient.Layout {
	out := make(searchclient.Layout, len(layout))
	for i, row := range layout {
		out[i] = append([]byte(nil), row...)
	}
	return out
}
