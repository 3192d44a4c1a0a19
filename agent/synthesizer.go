// File: synthesizer.go
// Role: the Synthesizer role (spec §4.5): dormant until the colony's alive
// agent count reaches quorum_threshold. Once active, each tick it samples
// the graph for nodes bridging ≥2 connected components or carrying high
// betweenness, and creates an insight node wired to both sides at
// tentative_weight·2. Synthesizer carries no position-driven sensing of its
// own in the spec, so Sense never moves it.
package agent

import (
	"math/rand"
	"strings"

	"github.com/clemens865/phago/graph"
	"github.com/clemens865/phago/substrate"
)

func senseSynthesizer(a *Agent, view substrate.View, params Params) Intent {
	return Intent{Move: a.Position}
}

// actSynthesizer implements spec §4.5. Bridge candidates are exactly
// graph.BridgeNodes' fragility ranking: "Δcomponents weighted by
// degree-normalized centrality" is the same test as "neighborhoods span ≥2
// components or high betweenness" the spec describes in prose.
func actSynthesizer(a *Agent, sub *substrate.Substrate, rng *rand.Rand, params Params) {
	if !params.QuorumMet {
		return
	}

	bridges := sub.Graph.BridgeNodes(1, params.BridgeSampleSize, rng)
	if len(bridges) == 0 || bridges[0].Fragility <= 0 {
		return
	}

	bridge := bridges[0]
	node, ok := sub.Graph.GetNode(bridge.NodeID)
	if !ok {
		return
	}

	neighbors := sub.Graph.Neighbors(bridge.NodeID)
	if len(neighbors) == 0 {
		return
	}

	labels := make([]string, 0, len(neighbors))
	for _, nb := range neighbors {
		if n, ok := sub.Graph.GetNode(nb.OtherID); ok {
			labels = append(labels, n.Label)
		}
	}

	insightLabel := "insight:" + node.Label + ":" + strings.Join(labels, "+")
	if _, exists := sub.Graph.FindByLabel(insightLabel); exists {
		return
	}

	insightID, err := sub.Graph.InsertNode(insightLabel, graph.KindInsight, sub.Tick())
	if err != nil {
		return
	}

	weight := params.SynthesisTentativeWeight * 2
	_, _, _ = sub.Graph.Wire(insightID, bridge.NodeID, sub.Tick(), 0, weight, weight)
	for _, nb := range neighbors {
		_, _, _ = sub.Graph.Wire(insightID, nb.OtherID, sub.Tick(), 0, weight, weight)
	}
}
