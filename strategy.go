package searchclient

import (
	"container/heap"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/JulyThe9/SearchClient/internal/stateset"
)

// Kind is the exploration policy of a Strategy. It is fixed at construction.
type Kind int

const (
	BreadthFirst Kind = iota
	DepthFirst
	BestFirst
)

// ParseKind maps a command-line name to a Kind.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(name) {
	case "bfs", "breadth-first":
		return BreadthFirst, nil
	case "dfs", "depth-first":
		return DepthFirst, nil
	case "best", "best-first":
		return BestFirst, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

func (k Kind) String() string {
	switch k {
	case BreadthFirst:
		return "Breadth-first Search"
	case DepthFirst:
		return "Depth-first Search"
	case BestFirst:
		return "Best-first Search"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

type dequeItem[S State] struct {
	state S
	id    uint32
}

// Strategy owns the frontier and the explored set of one search run.
//
// Membership in both containers follows State.Key, so distinct instances of
// the same configuration are duplicates. Insert does not filter duplicates;
// the driver checks InFrontier and IsExplored first.
//
// A Strategy is not safe for concurrent use.
type Strategy[S State] struct {
	kind      Kind
	heuristic *Heuristic
	score     func(S) int

	keys        *stateset.Table
	frontierSet *stateset.Set
	explored    *stateset.Set

	fifo  deque[dequeItem[S]]
	queue priorityQueue[S]
	seq   uint64

	started time.Time
	printer *message.Printer
}

func newStrategy[S State](kind Kind) *Strategy[S] {
	return &Strategy[S]{
		kind:        kind,
		keys:        stateset.NewTable(),
		frontierSet: stateset.New(),
		explored:    stateset.New(),
		started:     time.Now(),
		printer:     message.NewPrinter(language.English),
	}
}

// NewBreadthFirst returns a FIFO strategy.
func NewBreadthFirst[S State]() *Strategy[S] {
	return newStrategy[S](BreadthFirst)
}

// NewDepthFirst returns a LIFO strategy.
func NewDepthFirst[S State]() *Strategy[S] {
	return newStrategy[S](DepthFirst)
}

// NewBestFirst returns a strategy that expands the lowest h.Score first.
// The heuristic's evaluation mode decides between A*, weighted A* and greedy.
func NewBestFirst[S BoxState](h *Heuristic) *Strategy[S] {
	s := newStrategy[S](BestFirst)
	s.heuristic = h
	s.score = func(state S) int { return h.Score(state) }
	heap.Init(&s.queue)
	return s
}

// New builds the strategy named by kind. h is required for BestFirst only.
func New[S BoxState](kind Kind, h *Heuristic) (*Strategy[S], error) {
	switch kind {
	case BreadthFirst:
		return NewBreadthFirst[S](), nil
	case DepthFirst:
		return NewDepthFirst[S](), nil
	case BestFirst:
		if h == nil {
			return nil, fmt.Errorf("%w: best-first search needs a heuristic", ErrUnknownStrategy)
		}
		return NewBestFirst[S](h), nil
	}
	return nil, fmt.Errorf("%w: kind %d", ErrUnknownStrategy, int(kind))
}

// Kind returns the exploration policy.
func (s *Strategy[S]) Kind() Kind { return s.kind }

// Heuristic returns the heuristic of a best-first strategy, or nil.
func (s *Strategy[S]) Heuristic() *Heuristic { return s.heuristic }

// NextLeaf removes and returns the next state according to the policy.
// On an empty frontier it returns ErrEmptyFrontier and changes nothing.
func (s *Strategy[S]) NextLeaf() (S, error) {
	if s.FrontierEmpty() {
		var zero S
		return zero, ErrEmptyFrontier
	}
	if s.kind == BestFirst {
		item := heap.Pop(&s.queue).(*queueItem[S])
		s.frontierSet.Remove(item.ID)
		return item.State, nil
	}
	item := s.fifo.PopFront()
	s.frontierSet.Remove(item.id)
	return item.state, nil
}

// Insert adds state to the frontier.
func (s *Strategy[S]) Insert(state S) {
	id := s.keys.Intern(state.Key())
	s.frontierSet.Add(id)
	switch s.kind {
	case BreadthFirst:
		s.fifo.PushBack(dequeItem[S]{state: state, id: id})
	case DepthFirst:
		s.fifo.PushFront(dequeItem[S]{state: state, id: id})
	case BestFirst:
		s.seq++
		heap.Push(&s.queue, &queueItem[S]{
			State: state,
			ID:    id,
			Score: s.score(state),
			Seq:   s.seq,
		})
	}
}

// InFrontier reports whether a state with the same key awaits expansion.
func (s *Strategy[S]) InFrontier(state S) bool {
	id, ok := s.keys.Lookup(state.Key())
	return ok && s.frontierSet.Contains(id)
}

// IsExplored reports whether a state with the same key was marked explored.
func (s *Strategy[S]) IsExplored(state S) bool {
	id, ok := s.keys.Lookup(state.Key())
	return ok && s.explored.Contains(id)
}

// MarkExplored adds state to the explored set.
func (s *Strategy[S]) MarkExplored(state S) {
	s.explored.Add(s.keys.Intern(state.Key()))
}

// FrontierEmpty reports whether no state awaits expansion.
func (s *Strategy[S]) FrontierEmpty() bool { return s.FrontierSize() == 0 }

// FrontierSize returns the number of frontier entries.
func (s *Strategy[S]) FrontierSize() int {
	if s.kind == BestFirst {
		return s.queue.Len()
	}
	return s.fifo.Len()
}

// ExploredCount returns the size of the explored set.
func (s *Strategy[S]) ExploredCount() int { return s.explored.Len() }

// Elapsed returns the wall-clock time since the strategy was created.
func (s *Strategy[S]) Elapsed() time.Duration { return time.Since(s.started) }

// Status returns a one-line progress snapshot.
func (s *Strategy[S]) Status() string {
	explored, frontier := s.ExploredCount(), s.FrontierSize()
	return s.printer.Sprintf("#Explored: %6d, #Frontier: %6d, #Generated: %6d, Time: %3.2f s",
		explored, frontier, explored+frontier, s.Elapsed().Seconds())
}

func (s *Strategy[S]) String() string {
	if s.kind == BestFirst {
		return "Best-first Search using " + s.heuristic.String()
	}
	return s.kind.String()
}
