// File: query_view.go
// Role: thin delegators so *Substrate satisfies query.View directly,
// keeping the hybrid query engine's only dependency on this package the
// inverted index and a handful of Graph pass-throughs (spec §4.8, §9
// "Substrate owns the Graph exclusively").
package substrate

import (
	"math/rand"

	"github.com/clemens865/phago/graph"
)

// GraphNode delegates to Graph.GetNode.
func (s *Substrate) GraphNode(id uint64) (graph.Node, bool) {
	return s.Graph.GetNode(id)
}

// GraphNodes delegates to Graph.Nodes.
func (s *Substrate) GraphNodes() []graph.Node {
	return s.Graph.Nodes()
}

// ShortestPathBounded delegates to Graph.ShortestPathBounded.
func (s *Substrate) ShortestPathBounded(src, dst uint64, maxHops int) (float64, float64, bool) {
	return s.Graph.ShortestPathBounded(src, dst, maxHops)
}

// Betweenness delegates to Graph.Betweenness.
func (s *Substrate) Betweenness(sampleSize int, rng *rand.Rand) map[uint64]float64 {
	return s.Graph.Betweenness(sampleSize, rng)
}
