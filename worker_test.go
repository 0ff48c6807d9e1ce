package searchclient_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	searchclient "github.com/JulyThe9/SearchClient"
	"github.com/JulyThe9/SearchClient/gridworld"
)

func TestRace(t *testing.T) {
	level, start := generated(t, 7)
	entrants := strategies(t, level)

	result, err := searchclient.Race(context.Background(), level, start, entrants)
	require.NoError(t, err)
	require.NotNil(t, result.Winner)
	assert.Contains(t, entrants, result.Winner)
	assert.True(t, result.Found)
	requireValidPath(t, level, start, result.Path)
}

func TestRaceNoSolution(t *testing.T) {
	level, start := stuck(t)

	_, err := searchclient.Race(context.Background(), level, start, strategies(t, level))
	assert.ErrorIs(t, err, searchclient.ErrNoSolution)
}

func TestRaceCancelled(t *testing.T) {
	level, start := corridor(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := searchclient.Race(ctx, level, start, strategies(t, level))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRaceNoEntrants(t *testing.T) {
	level, start := corridor(t)

	_, err := searchclient.Race[*gridworld.State](context.Background(), level, start, nil)
	assert.ErrorIs(t, err, searchclient.ErrUnknownStrategy)
}
