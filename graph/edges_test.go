package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clemens865/phago/graph"
)

func TestWireCreateReinforceTouch(t *testing.T) {
	g := graph.New()
	a, err := g.InsertNode("membrane", graph.KindConcept, 0)
	require.NoError(t, err)
	b, err := g.InsertNode("transport", graph.KindConcept, 0)
	require.NoError(t, err)

	outcome, eid, err := g.Wire(a, b, 1, 10, 0.1, 0.05)
	require.NoError(t, err)
	require.Equal(t, graph.WireCreated, outcome)

	e, ok := g.GetEdge(eid)
	require.True(t, ok)
	require.Equal(t, 1, e.Reinforcement)
	require.InDelta(t, 0.1, e.Weight, 1e-9)

	// Same document again: touch only, no weight change.
	outcome, _, err = g.Wire(a, b, 2, 10, 0.1, 0.05)
	require.NoError(t, err)
	require.Equal(t, graph.WireTouched, outcome)
	e, _ = g.GetEdge(eid)
	require.Equal(t, 1, e.Reinforcement)

	// New document: reinforcement.
	outcome, _, err = g.Wire(a, b, 3, 11, 0.1, 0.05)
	require.NoError(t, err)
	require.Equal(t, graph.WireReinforced, outcome)
	e, _ = g.GetEdge(eid)
	require.Equal(t, 2, e.Reinforcement)
	require.InDelta(t, 0.15, e.Weight, 1e-9)
}

func TestWireSameNodeIsNoOp(t *testing.T) {
	g := graph.New()
	a, _ := g.InsertNode("cell", graph.KindConcept, 0)

	outcome, _, err := g.Wire(a, a, 1, 1, 0.1, 0.05)
	require.NoError(t, err)
	require.Equal(t, graph.WireNoOp, outcome)
	require.Equal(t, 0, g.EdgeCount())
}

func TestEdgeInvariants(t *testing.T) {
	g := graph.New()
	a, _ := g.InsertNode("a", graph.KindConcept, 0)
	b, _ := g.InsertNode("b", graph.KindConcept, 0)
	_, _, err := g.Wire(a, b, 0, 1, 0.2, 0.1)
	require.NoError(t, err)

	for _, e := range g.Edges() {
		require.NotEqual(t, e.U, e.V)
		require.Greater(t, e.Weight, 0.0)
	}
}

func TestDecayAndPrune(t *testing.T) {
	g := graph.New()
	a, _ := g.InsertNode("a", graph.KindConcept, 0)
	b, _ := g.InsertNode("b", graph.KindConcept, 0)
	_, _, err := g.Wire(a, b, 0, 1, 0.1, 0.05)
	require.NoError(t, err)

	maturation := uint64(50)
	base := 0.005
	staleness := 1.5

	var tick uint64
	for tick = 1; tick <= maturation+uint64(1/base)+5; tick++ {
		g.Decay(tick, base, staleness, maturation)
		g.Prune(tick, 0.05, maturation, 30)
	}

	require.False(t, g.HasEdge(a, b), "unreinforced edge should be pruned after maturation + ~1/base_rate ticks")
}

func TestDegreeCap(t *testing.T) {
	g := graph.New()
	center, _ := g.InsertNode("center", graph.KindConcept, 0)

	var leaves []uint64
	for i := 0; i < 50; i++ {
		leaf, _ := g.InsertNode(label(i), graph.KindConcept, 0)
		leaves = append(leaves, leaf)
	}

	for i, leaf := range leaves {
		// Vary tentative weight so prune order is deterministic and testable.
		w := 0.01 * float64(i+1)
		_, _, err := g.Wire(center, leaf, 0, uint64(i+1), w, 0)
		require.NoError(t, err)
	}

	g.Prune(0, 0, 1000, 30)

	nbs := g.Neighbors(center)
	require.Len(t, nbs, 30)

	// The 20 weakest leaves (lowest wire weight, i.e. lowest index) must be gone.
	for i := 0; i < 20; i++ {
		require.False(t, g.HasEdge(center, leaves[i]), "leaf %d should have been pruned by degree cap", i)
	}
}

func label(i int) string {
	return "concept" + string(rune('A'+i%26)) + string(rune('0'+i/26))
}
