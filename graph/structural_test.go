package graph_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clemens865/phago/graph"
)

func buildChain(t *testing.T, n int) (*graph.Graph, []uint64) {
	t.Helper()
	g := graph.New()
	ids := make([]uint64, n)
	for i := 0; i < n; i++ {
		id, err := g.InsertNode(label(i), graph.KindConcept, 0)
		require.NoError(t, err)
		ids[i] = id
	}
	for i := 0; i+1 < n; i++ {
		_, _, err := g.Wire(ids[i], ids[i+1], 0, uint64(i+1), 0.2, 0.1)
		require.NoError(t, err)
	}
	return g, ids
}

func TestShortestPathChain(t *testing.T) {
	g, ids := buildChain(t, 5)

	path, _, ok := g.ShortestPath(ids[0], ids[4])
	require.True(t, ok)
	require.Equal(t, ids, path)
}

func TestShortestPathUnreachable(t *testing.T) {
	g := graph.New()
	a, _ := g.InsertNode("a", graph.KindConcept, 0)
	b, _ := g.InsertNode("b", graph.KindConcept, 0)

	_, _, ok := g.ShortestPath(a, b)
	require.False(t, ok)
}

func TestConnectedComponents(t *testing.T) {
	g, _ := buildChain(t, 4)
	require.Equal(t, 1, g.ConnectedComponents())

	// Add two isolated nodes: now 3 components.
	g.InsertNode("isolated1", graph.KindConcept, 0)
	g.InsertNode("isolated2", graph.KindConcept, 0)
	require.Equal(t, 3, g.ConnectedComponents())
}

func TestBetweennessChainMiddleIsHighest(t *testing.T) {
	g, ids := buildChain(t, 5)
	scores := g.Betweenness(0, rand.New(rand.NewSource(42)))

	middle := ids[2]
	for _, id := range ids {
		if id == middle {
			continue
		}
		require.GreaterOrEqual(t, scores[middle], scores[id])
	}
}

func TestBridgeNodesRanksMiddleOfChainHighest(t *testing.T) {
	g, ids := buildChain(t, 5)
	scores := g.BridgeNodes(1, 0, rand.New(rand.NewSource(7)))

	require.Len(t, scores, 1)
	require.Equal(t, ids[2], scores[0].NodeID)
}
