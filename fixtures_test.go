package searchclient_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	searchclient "github.com/JulyThe9/SearchClient"
	"github.com/JulyThe9/SearchClient/gridworld"
)

// corridor is a 1x5 corridor: agent, floor, box A, floor, goal a.
// The shortest plan is Move(E), Push(E), Push(E).
func corridor(t *testing.T) (*gridworld.Level, *gridworld.State) {
	t.Helper()
	level := gridworld.NewLevel(3, 7)
	level.Enclose()
	require.NoError(t, level.SetGoal(1, 5, 'a'))
	start, err := level.Start(1, 1, []searchclient.Cell{{Row: 1, Col: 3, Kind: 'A'}})
	require.NoError(t, err)
	return level, start
}

// stuck has its only box in a corner, away from its goal.
func stuck(t *testing.T) (*gridworld.Level, *gridworld.State) {
	t.Helper()
	level := gridworld.NewLevel(3, 6)
	level.Enclose()
	require.NoError(t, level.SetGoal(1, 4, 'a'))
	start, err := level.Start(1, 2, []searchclient.Cell{{Row: 1, Col: 1, Kind: 'A'}})
	require.NoError(t, err)
	return level, start
}

func generated(t *testing.T, seed int64) (*gridworld.Level, *gridworld.State) {
	t.Helper()
	cfg := gridworld.DefaultConfig()
	cfg.Rows, cfg.Cols, cfg.Clusters, cfg.Scramble = 6, 7, 1, 25
	level, start, err := gridworld.Generate(rand.New(rand.NewSource(seed)), cfg)
	require.NoError(t, err)
	return level, start
}

func strategies(t *testing.T, level *gridworld.Level) []*searchclient.Strategy[*gridworld.State] {
	t.Helper()
	out := []*searchclient.Strategy[*gridworld.State]{
		searchclient.NewBreadthFirst[*gridworld.State](),
		searchclient.NewDepthFirst[*gridworld.State](),
	}
	for _, eval := range []searchclient.Evaluation{
		{Mode: searchclient.AStar},
		{Mode: searchclient.WeightedAStar, Weight: 5},
		{Mode: searchclient.Greedy},
	} {
		h, err := searchclient.NewHeuristic(level.Goals(), eval)
		require.NoError(t, err)
		out = append(out, searchclient.NewBestFirst[*gridworld.State](h))
	}
	return out
}

// requireValidPath checks that path walks from start to a goal one successor at a time.
func requireValidPath(t *testing.T, level *gridworld.Level, start *gridworld.State, path []*gridworld.State) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, start.Key(), path[0].Key())
	require.True(t, level.IsGoal(path[len(path)-1]))
	for i := 1; i < len(path); i++ {
		found := false
		for _, next := range level.Successors(path[i-1]) {
			if next.Key() == path[i].Key() {
				found = true
				break
			}
		}
		require.True(t, found, "step %d is not a successor", i)
	}
}
