package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/dfs"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// buildGrid creates an n×n grid with the given obstacles.
func buildGrid(t testing.TB, n int, obs ...gridgraph.Cell) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.NewGrid(gridgraph.Config{Size: n, Obstacles: obs})
	require.NoError(t, err)
	return g
}

// assertSimplePath checks a start→end path of passable, adjacent, distinct cells.
func assertSimplePath(t *testing.T, g *gridgraph.Grid, path []gridgraph.Cell, start, end gridgraph.Cell) {
	t.Helper()
	require.NotEmpty(t, path)
	assert.Equal(t, start, path[0])
	assert.Equal(t, end, path[len(path)-1])
	seen := map[gridgraph.Cell]bool{}
	for i, c := range path {
		assert.True(t, g.Passable(c), "cell %v not passable", c)
		assert.False(t, seen[c], "cell %v repeated", c)
		seen[c] = true
		if i > 0 {
			assert.Equal(t, 1, gridgraph.Manhattan(path[i-1], c))
		}
	}
}

func TestSearch_NilGrid(t *testing.T) {
	res, err := dfs.Search(nil, gridgraph.Cell{}, gridgraph.Cell{})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, search.ErrGridNil)
}

func TestSearch_BlockedEndpoint(t *testing.T) {
	g := buildGrid(t, 3, gridgraph.Cell{X: 0, Y: 0})
	res, err := dfs.Search(g, gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 2, Y: 2})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, gridgraph.ErrInvalidEndpoint)
}

// TestSearch_OpenGrid: the LIFO order explores −y/+y before ±x and snakes.
func TestSearch_OpenGrid(t *testing.T) {
	g := buildGrid(t, 3)
	res, err := dfs.Search(g, gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 2, Y: 2})
	require.NoError(t, err)

	assert.True(t, res.Found)
	assert.Equal(t, []gridgraph.Cell{
		{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2},
	}, res.Path)
	assert.Equal(t, 8, res.Cost)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, res.Trace.Iterations)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, res.Trace.Progress)
}

// TestSearch_NotShortestButValid: DFS paths are valid, at least Manhattan long.
func TestSearch_NotShortestButValid(t *testing.T) {
	for _, n := range []int{2, 5, 8, 20} {
		g := buildGrid(t, n)
		start, end := g.Corners()
		res, err := dfs.Search(g, start, end)
		require.NoError(t, err)
		assert.True(t, res.Found)
		assertSimplePath(t, g, res.Path, start, end)
		assert.Equal(t, res.Steps(), res.Cost)
		assert.GreaterOrEqual(t, res.Cost, 2*(n-1))
	}
}

func TestSearch_WallWithGaps(t *testing.T) {
	g := buildGrid(t, 5, gridgraph.Cell{X: 1, Y: 1}, gridgraph.Cell{X: 1, Y: 2}, gridgraph.Cell{X: 1, Y: 3})
	res, err := dfs.Search(g, gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 4, Y: 4})
	require.NoError(t, err)
	assert.True(t, res.Found)
	assertSimplePath(t, g, res.Path, gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 4, Y: 4})
	assert.GreaterOrEqual(t, res.Cost, 8)
}

func TestSearch_FullWall(t *testing.T) {
	g := buildGrid(t, 3, gridgraph.Cell{X: 0, Y: 1}, gridgraph.Cell{X: 1, Y: 1}, gridgraph.Cell{X: 2, Y: 1})
	res, err := dfs.Search(g, gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 2, Y: 2})
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.Path)
	assert.Equal(t, []int{1, 2, 3}, res.Trace.Iterations)
	assert.Equal(t, []int{0, 1, 2}, res.Trace.Progress)
}

// TestSearch_Disconnected: trace length equals the reachable component size.
func TestSearch_Disconnected(t *testing.T) {
	// pocket around (4,4) sealed by (3,4) and (4,3)
	g := buildGrid(t, 5, gridgraph.Cell{X: 3, Y: 4}, gridgraph.Cell{X: 4, Y: 3})
	res, err := dfs.Search(g, gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 4, Y: 4})
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, len(g.Reachable(gridgraph.Cell{X: 0, Y: 0})), res.Visited())
	assert.Equal(t, 22, res.Visited())
}

func TestSearch_Deterministic(t *testing.T) {
	g, err := gridgraph.NewGrid(gridgraph.DefaultConfig())
	require.NoError(t, err)
	start, end := g.Corners()
	a, err := dfs.Search(g, start, end)
	require.NoError(t, err)
	b, err := dfs.Search(g, start, end)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assertSimplePath(t, g, a.Path, start, end)
}

func TestSearch_HookAndContext(t *testing.T) {
	g := buildGrid(t, 4)
	boom := errors.New("boom")
	_, err := dfs.Search(g, gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 3, Y: 3},
		search.WithOnVisit(func(c gridgraph.Cell, _, _ int) error {
			if c == (gridgraph.Cell{X: 0, Y: 2}) {
				return boom
			}
			return nil
		}))
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "dfs: OnVisit error at (0,2)")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.Search(g, gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 3, Y: 3}, search.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSearch_MaxVisits(t *testing.T) {
	g := buildGrid(t, 4)
	res, err := dfs.Search(g, gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 3, Y: 3}, search.WithMaxVisits(2))
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, []int{0, 1}, res.Trace.Progress)
}
