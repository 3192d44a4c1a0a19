// File: bridges.go
// Role: bridge_nodes — fragility ranking per spec §4.1: for each node,
// "fragility" = increase in connected-component count if the node were
// removed, weighted by the node's degree-normalized centrality.
package graph

import (
	"math/rand"
	"sort"
)

// BridgeScore is one entry of BridgeNodes' ranked output.
type BridgeScore struct {
	NodeID     uint64
	Fragility  float64
	DeltaComps int
}

// BridgeNodes returns the topK nodes with the highest fragility: removing a
// bridge node increases the number of connected components, and that
// increase is weighted by the node's degree-normalized betweenness
// centrality (sampleSize sources, spec §9 uniform sampling).
func (g *Graph) BridgeNodes(topK int, sampleSize int, rng *rand.Rand) []BridgeScore {
	if topK <= 0 {
		return nil
	}

	baseline := g.ConnectedComponents()
	centrality := g.Betweenness(sampleSize, rng)

	maxDegree := 1
	degree := make(map[uint64]int)
	for _, id := range g.allNodeIDs() {
		d := len(g.Neighbors(id))
		degree[id] = d
		if d > maxDegree {
			maxDegree = d
		}
	}

	scores := make([]BridgeScore, 0, len(degree))
	for _, id := range g.allNodeIDs() {
		withoutID := g.componentCountExcluding(id)
		delta := withoutID - baseline
		if delta < 0 {
			delta = 0
		}

		degNorm := float64(degree[id]) / float64(maxDegree)
		fragility := float64(delta) * degNorm * (1 + centrality[id])

		scores = append(scores, BridgeScore{NodeID: id, Fragility: fragility, DeltaComps: delta})
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Fragility != scores[j].Fragility {
			return scores[i].Fragility > scores[j].Fragility
		}
		return scores[i].NodeID < scores[j].NodeID
	})

	if topK > len(scores) {
		topK = len(scores)
	}

	return scores[:topK]
}
