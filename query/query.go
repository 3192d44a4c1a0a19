// Package query implements hybrid_query (spec §4.8): a three-phase blend of
// TF-IDF lexical relevance and graph-structural relevance over the same
// substrate a Colony drives.
package query

import (
	"math"
	"math/rand"
	"sort"

	"github.com/clemens865/phago/graph"
	"github.com/clemens865/phago/substrate"
)

// Config holds hybrid_query's three tunables (spec §4.8 Inputs) plus the
// betweenness sample size used for centrality_score.
type Config struct {
	Alpha               float64 // weight of TF-IDF vs graph score, in [0,1]
	MaxResults          int
	CandidateMultiplier int
	BetweennessSample   int // sources sampled for centrality_score
}

// Default returns hybrid_query's documented defaults.
func Default() Config {
	return Config{
		Alpha:               0.5,
		MaxResults:          10,
		CandidateMultiplier: 3,
		BetweennessSample:   32,
	}
}

// maxPathHops bounds Phase 2's edge_score/reinforcement_score path search
// (spec §4.8 Phase 2: "capped at length 3").
const maxPathHops = 3

// Result is one ranked hybrid_query hit, carrying its component scores for
// callers that want to explain a ranking (spec §4.8 Phase 3: "return top
// max_results with label, node id, and component scores").
type Result struct {
	NodeID    uint64
	Label     string
	Final     float64
	TFIDF     float64
	Graph     float64
	EdgeScore float64
	Reinforce float64
	Centrality float64
	Access     float64
}

// View is the read surface hybrid_query needs: the inverted index and the
// graph's structural queries. *substrate.Substrate satisfies it; Colony
// passes its Substrate.
type View interface {
	InvertedIndex() substrate.IndexSnapshot
	GraphNode(id uint64) (graph.Node, bool)
	GraphNodes() []graph.Node
	ShortestPathBounded(src, dst uint64, maxHops int) (maxWeight, avgReinforcement float64, ok bool)
	Betweenness(sampleSize int, rng *rand.Rand) map[uint64]float64
}

// Run executes hybrid_query against v for the given free-text query (spec
// §4.8). An empty query, or a query with no surviving Phase 1 candidates,
// returns an empty (nil) result list.
func Run(v View, queryText string, cfg Config, rng *rand.Rand) []Result {
	tokens := substrate.Tokenize(queryText)
	if len(tokens) == 0 {
		return nil
	}

	candidates := phaseOneTFIDF(v, tokens, cfg)
	if len(candidates) == 0 {
		return nil
	}

	seeds := seedNodes(v, tokens)
	scored := phaseTwoGraphRerank(v, candidates, seeds, cfg, rng)

	results := phaseThreeBlend(candidates, scored, cfg)
	for i := range results {
		if n, ok := v.GraphNode(results[i].NodeID); ok {
			results[i].Label = n.Label
		}
	}

	return results
}

// tfidfCandidate is one Phase 1 survivor before graph re-ranking.
type tfidfCandidate struct {
	nodeID uint64
	raw    float64 // un-normalized TF-IDF score
}

// phaseOneTFIDF scores every indexed node against the query tokens with
// classic TF-IDF (tf of query tokens in the node's bag, idf over the node
// corpus) and keeps the top candidate_multiplier*max_results (spec §4.8
// Phase 1).
func phaseOneTFIDF(v View, tokens []string, cfg Config) []tfidfCandidate {
	idx := v.InvertedIndex()
	if idx.Corpus == 0 {
		return nil
	}

	scores := make(map[uint64]float64)
	for nodeID, bag := range idx.TermFreq {
		var s float64
		for _, tok := range tokens {
			tf := bag[tok]
			if tf == 0 {
				continue
			}
			df := idx.DocFreq[tok]
			if df == 0 {
				continue
			}
			idf := math.Log(float64(idx.Corpus)/float64(df)) + 1
			s += float64(tf) * idf
		}
		if s > 0 {
			scores[nodeID] = s
		}
	}

	out := make([]tfidfCandidate, 0, len(scores))
	for id, s := range scores {
		out = append(out, tfidfCandidate{nodeID: id, raw: s})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].raw != out[j].raw {
			return out[i].raw > out[j].raw
		}
		return out[i].nodeID < out[j].nodeID
	})

	keep := cfg.CandidateMultiplier * cfg.MaxResults
	if keep <= 0 || keep > len(out) {
		keep = len(out)
	}

	return out[:keep]
}

// seedNodes resolves query tokens to graph nodes whose label matches a
// token exactly, case-insensitively (spec §4.8 Phase 2 "seed nodes").
func seedNodes(v View, tokens []string) []uint64 {
	want := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		want[t] = struct{}{}
	}

	var seeds []uint64
	for _, n := range v.GraphNodes() {
		if _, ok := want[n.Label]; ok {
			seeds = append(seeds, n.ID)
		}
	}
	sort.Slice(seeds, func(i, j int) bool { return seeds[i] < seeds[j] })

	return seeds
}

// graphComponents holds a candidate's raw Phase 2 component scores before
// cross-candidate normalization.
type graphComponents struct {
	nodeID     uint64
	edgeScore  float64
	reinforce  float64
	centrality float64
	access     float64
}

// phaseTwoGraphRerank computes each candidate's raw graph-structural
// component scores (spec §4.8 Phase 2).
func phaseTwoGraphRerank(v View, candidates []tfidfCandidate, seeds []uint64, cfg Config, rng *rand.Rand) []graphComponents {
	centrality := v.Betweenness(cfg.BetweennessSample, rng)

	out := make([]graphComponents, 0, len(candidates))
	for _, c := range candidates {
		gc := graphComponents{nodeID: c.nodeID, centrality: centrality[c.nodeID]}

		var reinforceSum float64
		var reinforceHops int
		for _, s := range seeds {
			if s == c.nodeID {
				continue
			}
			maxWeight, avgReinf, ok := v.ShortestPathBounded(s, c.nodeID, maxPathHops)
			if !ok {
				continue
			}
			gc.edgeScore += maxWeight
			reinforceSum += avgReinf
			reinforceHops++
		}
		if reinforceHops > 0 {
			gc.reinforce = reinforceSum / float64(reinforceHops)
		}

		if n, ok := v.GraphNode(c.nodeID); ok {
			gc.access = math.Log(1 + float64(n.AccessCount))
		}

		out = append(out, gc)
	}

	return out
}

// phaseThreeBlend normalizes Phase 1's raw TF-IDF scores and Phase 2's
// combined graph scores independently to [0,1] across the candidate set,
// then alpha-blends them and returns the top max_results descending (spec
// §4.8 Phase 3).
func phaseThreeBlend(candidates []tfidfCandidate, scored []graphComponents, cfg Config) []Result {
	rawTFIDF := make(map[uint64]float64, len(candidates))
	maxTFIDF := 0.0
	for _, c := range candidates {
		rawTFIDF[c.nodeID] = c.raw
		if c.raw > maxTFIDF {
			maxTFIDF = c.raw
		}
	}

	maxEdge, maxReinforce, maxCentrality, maxAccess := 0.0, 0.0, 0.0, 0.0
	for _, gc := range scored {
		maxEdge = math.Max(maxEdge, gc.edgeScore)
		maxReinforce = math.Max(maxReinforce, gc.reinforce)
		maxCentrality = math.Max(maxCentrality, gc.centrality)
		maxAccess = math.Max(maxAccess, gc.access)
	}

	rawGraph := make(map[uint64]float64, len(scored))
	components := make(map[uint64]graphComponents, len(scored))
	maxGraph := 0.0
	for _, gc := range scored {
		edgeNorm := safeDiv(gc.edgeScore, maxEdge)
		reinforceNorm := safeDiv(gc.reinforce, maxReinforce)
		centralityNorm := safeDiv(gc.centrality, maxCentrality)
		accessNorm := safeDiv(gc.access, maxAccess)

		g := 0.5*edgeNorm + 0.2*reinforceNorm + 0.2*centralityNorm + 0.1*accessNorm
		rawGraph[gc.nodeID] = g
		components[gc.nodeID] = gc
		maxGraph = math.Max(maxGraph, g)
	}

	results := make([]Result, 0, len(candidates))
	for _, c := range candidates {
		tfidfNorm := safeDiv(rawTFIDF[c.nodeID], maxTFIDF)
		graphNorm := safeDiv(rawGraph[c.nodeID], maxGraph)
		final := cfg.Alpha*tfidfNorm + (1-cfg.Alpha)*graphNorm

		gc := components[c.nodeID]
		results = append(results, Result{
			NodeID:     c.nodeID,
			Final:      final,
			TFIDF:      tfidfNorm,
			Graph:      graphNorm,
			EdgeScore:  gc.edgeScore,
			Reinforce:  gc.reinforce,
			Centrality: gc.centrality,
			Access:     gc.access,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Final != results[j].Final {
			return results[i].Final > results[j].Final
		}
		return results[i].NodeID < results[j].NodeID
	})

	max := cfg.MaxResults
	if max <= 0 || max > len(results) {
		max = len(results)
	}

	return results[:max]
}

func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
