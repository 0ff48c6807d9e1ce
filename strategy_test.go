package searchclient

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scoreByG builds a best-first strategy whose score is g: no goals, no boxes.
func scoreByG(t *testing.T) *Strategy[*testState] {
	t.Helper()
	h, err := NewHeuristic(grid(1, 1), Evaluation{Mode: AStar})
	require.NoError(t, err)
	return NewBestFirst[*testState](h)
}

func drain(t *testing.T, s *Strategy[*testState]) []string {
	t.Helper()
	var keys []string
	for !s.FrontierEmpty() {
		leaf, err := s.NextLeaf()
		require.NoError(t, err)
		keys = append(keys, leaf.Key())
	}
	return keys
}

func TestStrategyOrder(t *testing.T) {
	t.Run("BreadthFirst", func(t *testing.T) {
		s := NewBreadthFirst[*testState]()
		for _, k := range []string{"A", "B", "C"} {
			s.Insert(newTestState(k, 0))
		}
		assert.Equal(t, []string{"A", "B", "C"}, drain(t, s))
	})

	t.Run("DepthFirst", func(t *testing.T) {
		s := NewDepthFirst[*testState]()
		for _, k := range []string{"A", "B", "C"} {
			s.Insert(newTestState(k, 0))
		}
		assert.Equal(t, []string{"C", "B", "A"}, drain(t, s))
	})

	t.Run("BreadthFirstInterleaved", func(t *testing.T) {
		s := NewBreadthFirst[*testState]()
		s.Insert(newTestState("A", 0))
		s.Insert(newTestState("B", 0))
		leaf, err := s.NextLeaf()
		require.NoError(t, err)
		assert.Equal(t, "A", leaf.Key())
		s.Insert(newTestState("C", 0))
		assert.Equal(t, []string{"B", "C"}, drain(t, s))
	})

	t.Run("BestFirst", func(t *testing.T) {
		s := scoreByG(t)
		s.Insert(newTestState("five", 5))
		s.Insert(newTestState("one", 1))
		s.Insert(newTestState("three", 3))
		assert.Equal(t, []string{"one", "three", "five"}, drain(t, s))
	})

	t.Run("BestFirstTiesKeepInsertionOrder", func(t *testing.T) {
		s := scoreByG(t)
		for _, k := range []string{"x", "y", "z"} {
			s.Insert(newTestState(k, 2))
		}
		assert.Equal(t, []string{"x", "y", "z"}, drain(t, s))
	})

	t.Run("BestFirstReturnsMinimum", func(t *testing.T) {
		rng := rand.New(rand.NewSource(42))
		s := scoreByG(t)
		scores := map[string]int{}
		for i := 0; i < 500; i++ {
			st := newTestState(fmt.Sprintf("s%d", i), rng.Intn(50))
			scores[st.Key()] = st.g
			s.Insert(st)

			// Interleave removals and check each one against the remaining frontier.
			if i%7 == 0 {
				leaf, err := s.NextLeaf()
				require.NoError(t, err)
				for _, item := range s.queue {
					assert.LessOrEqual(t, leaf.G(), item.Score)
				}
				delete(scores, leaf.Key())
			}
		}
		prev := -1
		for !s.FrontierEmpty() {
			leaf, err := s.NextLeaf()
			require.NoError(t, err)
			assert.GreaterOrEqual(t, leaf.G(), prev)
			prev = leaf.G()
			delete(scores, leaf.Key())
		}
		assert.Empty(t, scores)
	})
}

func TestStrategyEmptyFrontier(t *testing.T) {
	for _, s := range []*Strategy[*testState]{
		NewBreadthFirst[*testState](),
		NewDepthFirst[*testState](),
		scoreByG(t),
	} {
		t.Run(s.Kind().String(), func(t *testing.T) {
			s.MarkExplored(newTestState("seen", 0))
			require.True(t, s.FrontierEmpty())

			_, err := s.NextLeaf()
			assert.ErrorIs(t, err, ErrEmptyFrontier)
			assert.Equal(t, 0, s.FrontierSize())
			assert.Equal(t, 1, s.ExploredCount())
			assert.True(t, s.IsExplored(newTestState("seen", 0)))
		})
	}
}

func TestStrategyMembership(t *testing.T) {
	for _, s := range []*Strategy[*testState]{
		NewBreadthFirst[*testState](),
		NewDepthFirst[*testState](),
		scoreByG(t),
	} {
		t.Run(s.Kind().String(), func(t *testing.T) {
			a := newTestState("A", 1)
			s.Insert(a)

			// A distinct instance with the same key is the same state.
			twin := newTestState("A", 9)
			assert.True(t, s.InFrontier(twin))
			assert.False(t, s.IsExplored(twin))
			assert.False(t, s.InFrontier(newTestState("B", 0)))

			leaf, err := s.NextLeaf()
			require.NoError(t, err)
			assert.False(t, s.InFrontier(twin))

			s.MarkExplored(leaf)
			assert.True(t, s.IsExplored(twin))
			assert.False(t, s.InFrontier(twin))
		})
	}
}

func TestStrategyQueriesArePure(t *testing.T) {
	s := NewBreadthFirst[*testState]()
	s.Insert(newTestState("A", 0))
	s.MarkExplored(newTestState("B", 0))

	for i := 0; i < 3; i++ {
		s.InFrontier(newTestState("A", 0))
		s.InFrontier(newTestState("unknown", 0))
		s.IsExplored(newTestState("B", 0))
		s.IsExplored(newTestState("other", 0))
	}
	assert.Equal(t, 1, s.FrontierSize())
	assert.Equal(t, 1, s.ExploredCount())
	assert.Equal(t, 2, s.keys.Len())
}

func TestStrategyConservation(t *testing.T) {
	s := NewBreadthFirst[*testState]()
	generated := 0
	for i := 0; i < 20; i++ {
		before := s.ExploredCount() + s.FrontierSize()
		s.Insert(newTestState(fmt.Sprintf("s%d", i), 0))
		generated++
		after := s.ExploredCount() + s.FrontierSize()
		assert.Equal(t, before+1, after)

		if i%3 == 0 {
			leaf, err := s.NextLeaf()
			require.NoError(t, err)
			s.MarkExplored(leaf)
		}
		assert.Equal(t, generated, s.ExploredCount()+s.FrontierSize())
	}
}

func TestStrategyNames(t *testing.T) {
	assert.Equal(t, "Breadth-first Search", NewBreadthFirst[*testState]().String())
	assert.Equal(t, "Depth-first Search", NewDepthFirst[*testState]().String())

	h, err := NewHeuristic(grid(1, 1), Evaluation{Mode: WeightedAStar, Weight: 5})
	require.NoError(t, err)
	assert.Equal(t, "Best-first Search using WA*(5) evaluation", NewBestFirst[*testState](h).String())
}

func TestStrategyStatus(t *testing.T) {
	s := NewBreadthFirst[*testState]()
	for i := 0; i < 1500; i++ {
		s.Insert(newTestState(fmt.Sprintf("s%d", i), 0))
	}
	status := s.Status()
	assert.Regexp(t, `^#Explored:\s+0, #Frontier:\s+1,500, #Generated:\s+1,500, Time:\s+\d+\.\d{2} s$`, status)
	assert.GreaterOrEqual(t, s.Elapsed().Nanoseconds(), int64(0))
}

func TestNew(t *testing.T) {
	h, err := NewHeuristic(grid(1, 1), Evaluation{Mode: Greedy})
	require.NoError(t, err)

	for _, kind := range []Kind{BreadthFirst, DepthFirst, BestFirst} {
		s, err := New[*testState](kind, h)
		require.NoError(t, err)
		assert.Equal(t, kind, s.Kind())
	}

	_, err = New[*testState](BestFirst, nil)
	assert.ErrorIs(t, err, ErrUnknownStrategy)

	_, err = New[*testState](Kind(9), h)
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestParseKind(t *testing.T) {
	for name, want := range map[string]Kind{"bfs": BreadthFirst, "DFS": DepthFirst, "best-first": BestFirst} {
		got, err := ParseKind(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	_, err := ParseKind("ids")
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestDeque(t *testing.T) {
	var d deque[int]
	for i := 0; i < 40; i++ {
		d.PushBack(i)
	}
	for i := 0; i < 20; i++ {
		assert.Equal(t, i, d.PopFront())
	}
	for i := 0; i < 30; i++ {
		d.PushFront(-i)
	}
	assert.Equal(t, 50, d.Len())
	assert.Equal(t, -29, d.PopFront())
}
