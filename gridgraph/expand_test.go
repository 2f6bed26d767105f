package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// TestNeighbors_Order pins the +x, −x, +y, −y enumeration.
func TestNeighbors_Order(t *testing.T) {
	g, err := gridgraph.NewGrid(gridgraph.Config{Size: 3})
	require.NoError(t, err)

	assert.Equal(t,
		[]gridgraph.Cell{{2, 1}, {0, 1}, {1, 2}, {1, 0}},
		g.Neighbors(gridgraph.Cell{1, 1}))
	assert.Equal(t,
		[]gridgraph.Cell{{1, 0}, {0, 1}},
		g.Neighbors(gridgraph.Cell{0, 0}))
	assert.Equal(t,
		[]gridgraph.Cell{{1, 2}, {2, 1}},
		g.Neighbors(gridgraph.Cell{2, 2}))
}

// TestNeighbors_SkipsObstacles checks that blocked cells are filtered.
func TestNeighbors_SkipsObstacles(t *testing.T) {
	g, err := gridgraph.NewGrid(gridgraph.Config{Size: 3, Obstacles: []gridgraph.Cell{{1, 0}}})
	require.NoError(t, err)

	assert.Equal(t, []gridgraph.Cell{{0, 1}}, g.Neighbors(gridgraph.Cell{0, 0}))
	// the source cell itself is not checked
	assert.Equal(t, []gridgraph.Cell{{2, 0}, {0, 0}, {1, 1}}, g.Neighbors(gridgraph.Cell{1, 0}))
}

// TestNeighbors_NeverLeavesGrid exercises random layouts and every cell,
// including cells just outside the grid.
func TestNeighbors_NeverLeavesGrid(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 25; trial++ {
		n := 1 + rng.Intn(8)
		var obs []gridgraph.Cell
		for k := 0; k < n*n/3; k++ {
			obs = append(obs, gridgraph.Cell{rng.Intn(n), rng.Intn(n)})
		}
		g, err := gridgraph.NewGrid(gridgraph.Config{Size: n, Obstacles: obs})
		require.NoError(t, err)

		for x := -1; x <= n; x++ {
			for y := -1; y <= n; y++ {
				c := gridgraph.Cell{x, y}
				for _, nb := range g.Neighbors(c) {
					assert.True(t, g.InBounds(nb), "neighbor %v of %v out of bounds", nb, c)
					assert.False(t, g.IsObstacle(nb), "neighbor %v of %v is an obstacle", nb, c)
					assert.Equal(t, 1, gridgraph.Manhattan(c, nb))
				}
			}
		}
	}
}

func TestManhattan(t *testing.T) {
	assert.Equal(t, 0, gridgraph.Manhattan(gridgraph.Cell{3, 4}, gridgraph.Cell{3, 4}))
	assert.Equal(t, 38, gridgraph.Manhattan(gridgraph.Cell{0, 0}, gridgraph.Cell{19, 19}))
	assert.Equal(t, 7, gridgraph.Manhattan(gridgraph.Cell{5, 1}, gridgraph.Cell{1, 4}))
}
