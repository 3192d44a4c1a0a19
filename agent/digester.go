// File: digester.go
// Role: the Digester role handlers (spec §4.4): Sense (gradient-ascent
// movement + nearby-document lookup), Act (tokenize/extract/wire/stigmerge).
package agent

import (
	"math"
	"math/rand"
	"sort"

	"github.com/clemens865/phago/graph"
	"github.com/clemens865/phago/spatial"
	"github.com/clemens865/phago/substrate"
)

// DigestTopK bounds how many distinct tokens one Digest call extracts from
// a document, kept by descending term frequency (spec §4.4 step 2: "an
// implementation constant, typical 12-20"). Set at the top of that band so
// a single wide document (e.g. Scenario D's 50-term kept-token set) can
// still drive a central node's digest-wired degree up toward
// max_edge_degree across repeated digestion.
const DigestTopK = 20

// senseDigester blends gradient ascent on the concept_activity signal with
// random exploration (weighted by explore_bias), and a mild drift away from
// the origin (weighted by boundary_bias) so agents spread out rather than
// clump at the first-discovered peak, then looks for the nearest
// not-yet-digested document within sense_radius.
func senseDigester(a *Agent, view substrate.View, rng *rand.Rand) Intent {
	radius := a.Genome.SenseRadius

	dirX, dirY := 0.0, 0.0
	if peak, intensity, ok := view.PeakSignal(SignalConceptActivity, a.Position, radius); ok && intensity > 0 {
		dirX, dirY = peak.X-a.Position.X, peak.Y-a.Position.Y
		dirX, dirY = normalize(dirX, dirY)
	}

	randAngle := rng.Float64() * 2 * math.Pi
	randX, randY := math.Cos(randAngle), math.Sin(randAngle)

	boundaryX, boundaryY := normalize(a.Position.X, a.Position.Y)

	bias := a.Genome.ExploreBias
	bnd := a.Genome.BoundaryBias
	blendX := (1-bias-bnd)*dirX + bias*randX + bnd*boundaryX
	blendY := (1-bias-bnd)*dirY + bias*randY + bnd*boundaryY
	blendX, blendY = normalize(blendX, blendY)

	const stepSize = 1.0
	move := spatial.Position{X: a.Position.X + blendX*stepSize, Y: a.Position.Y + blendY*stepSize}

	docID := nearestUndigested(a, view, radius)

	return Intent{Move: move, DocumentID: docID}
}

func normalize(x, y float64) (float64, float64) {
	mag := math.Hypot(x, y)
	if mag == 0 {
		return 0, 0
	}
	return x / mag, y / mag
}

// nearestUndigested returns the id of the closest document within radius
// that this agent has not yet digested, or 0 if none (spec §4.4 step 1).
// Ties (equal distance) break on ascending document id for determinism.
func nearestUndigested(a *Agent, view substrate.View, radius float64) uint64 {
	best := uint64(0)
	bestDist := math.Inf(1)

	for _, doc := range view.Documents() {
		if _, done := a.digested[doc.ID]; done {
			continue
		}
		dx := doc.Position.X - a.Position.X
		dy := doc.Position.Y - a.Position.Y
		dist := math.Hypot(dx, dy)
		if dist > radius {
			continue
		}
		if dist < bestDist {
			bestDist = dist
			best = doc.ID
		}
	}

	return best
}

// actDigester performs spec §4.4's Digest/Wire/Stigmerge sequence against
// the document selected by Sense, if any.
func actDigester(a *Agent, sub *substrate.Substrate, intent Intent) {
	if intent.DocumentID == 0 {
		return
	}
	doc, ok := sub.GetDocument(intent.DocumentID)
	if !ok {
		return
	}

	tf, _ := substrate.TermFrequency(substrate.Tokenize(doc.Content))
	kept := pickTopTokens(tf, DigestTopK)

	maxTF := 0
	for _, tok := range kept {
		if tf[tok] > maxTF {
			maxTF = tf[tok]
		}
	}

	nodeIDs := make([]uint64, 0, len(kept))
	tfNorm := make([]float64, 0, len(kept))

	for _, tok := range kept {
		_, existed := sub.Graph.FindByLabel(tok)
		id, err := sub.Graph.InsertNode(tok, graph.KindConcept, sub.Tick())
		if err != nil {
			continue
		}
		if !existed {
			a.fitness.conceptsNew++
		}
		a.fitness.conceptsProcessed++

		_ = sub.RecordConceptSource(id, doc.ID)
		a.Vocabulary[id] = struct{}{}

		nodeIDs = append(nodeIDs, id)
		// tf values are normalized against the document's own peak
		// frequency (spec §4.4 step 3 "where tf values are normalized"),
		// so a short document of distinct, equally-frequent keywords still
		// clears a selective wiring_selectivity gate.
		if maxTF > 0 {
			tfNorm = append(tfNorm, float64(tf[tok])/float64(maxTF))
		} else {
			tfNorm = append(tfNorm, 0)
		}
	}
	a.digested[doc.ID] = struct{}{}

	for i := 0; i < len(nodeIDs); i++ {
		for j := i + 1; j < len(nodeIDs); j++ {
			u, v := nodeIDs[i], nodeIDs[j]
			score := tfNorm[i] * tfNorm[j]
			if score < a.Genome.WiringSelectivity {
				continue
			}

			bridging := false
			if !sub.Graph.HasEdge(u, v) {
				_, _, reachable := sub.Graph.ShortestPath(u, v)
				bridging = !reachable
			}

			outcome, eid, err := sub.Graph.Wire(u, v, sub.Tick(), doc.ID, a.Genome.TentativeWeight, a.Genome.ReinforcementBoost)
			if err != nil {
				continue
			}
			if outcome == graph.WireCreated {
				a.fitness.edgesCreated++
				a.fitness.edgesQualityGE2 = append(a.fitness.edgesQualityGE2, eid)
				if bridging {
					a.fitness.edgesBridging++
				}
			}
		}
	}

	if n := len(nodeIDs); n > 0 {
		sub.DepositTrace(TraceDigestion, a.Position, float64(n))
		sub.DepositSignal(SignalConceptActivity, a.Position, float64(n)*a.Genome.KeywordBoost)
	}
}

// pickTopTokens returns up to k tokens ordered by descending frequency,
// ties broken alphabetically so repeated runs over the same document are
// deterministic.
func pickTopTokens(tf map[string]int, k int) []string {
	tokens := make([]string, 0, len(tf))
	for tok := range tf {
		tokens = append(tokens, tok)
	}
	sort.Slice(tokens, func(i, j int) bool {
		if tf[tokens[i]] != tf[tokens[j]] {
			return tf[tokens[i]] > tf[tokens[j]]
		}
		return tokens[i] < tokens[j]
	})
	if len(tokens) > k {
		tokens = tokens[:k]
	}
	return tokens
}
