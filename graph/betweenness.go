// File: betweenness.go
// Role: Brandes' algorithm for betweenness centrality over uniformly sampled
// source nodes, grounded on the BFS traversal structure of
// github.com/katalvlaran/lvlath/algorithms/bfs.go (queue, visited, parent
// bookkeeping) generalized to Brandes' dependency-accumulation pass. Uses hop
// count (unweighted shortest paths) as the distance metric, the standard
// definition of betweenness centrality; Wire/Decay weights are not factored
// in here since they would require a weighted Brandes variant the spec does
// not call for (spec asks only for "uniform" source sampling, not weighting).
package graph

import (
	"math/rand"
	"sort"
)

// Betweenness computes betweenness centrality for every node, divided by
// the number of sampled sources (the result is not bounded to [0,1]; the
// middle of a 5-node chain scores 1.6), using Brandes' algorithm over
// sampleSize uniformly-chosen source nodes (spec §4.1 betweenness_centrality,
// §9 "uniform for determinism"). If sampleSize >= node count, every node is
// used as a source (exact betweenness).
func (g *Graph) Betweenness(sampleSize int, rng *rand.Rand) map[uint64]float64 {
	ids := g.allNodeIDs()
	n := len(ids)
	scores := make(map[uint64]float64, n)
	for _, id := range ids {
		scores[id] = 0
	}
	if n == 0 {
		return scores
	}

	sources := ids
	if sampleSize > 0 && sampleSize < n {
		sources = sampleUniform(ids, sampleSize, rng)
	}

	// Precompute adjacency once: node id -> sorted neighbor ids.
	adj := make(map[uint64][]uint64, n)
	for _, id := range ids {
		nbs := g.Neighbors(id)
		lst := make([]uint64, len(nbs))
		for i, nb := range nbs {
			lst[i] = nb.OtherID
		}
		adj[id] = lst
	}

	for _, s := range sources {
		accumulateBrandes(s, ids, adj, scores)
	}

	denom := float64(len(sources))
	if denom == 0 {
		denom = 1
	}
	for id := range scores {
		scores[id] /= denom
	}

	return scores
}

// accumulateBrandes runs one single-source BFS + back-propagation pass of
// Brandes' algorithm from source s, adding its contribution into scores.
func accumulateBrandes(s uint64, ids []uint64, adj map[uint64][]uint64, scores map[uint64]float64) {
	sigma := make(map[uint64]float64, len(ids))
	dist := make(map[uint64]int, len(ids))
	preds := make(map[uint64][]uint64, len(ids))
	for _, id := range ids {
		dist[id] = -1
		sigma[id] = 0
	}
	dist[s] = 0
	sigma[s] = 1

	var stack []uint64
	queue := []uint64{s}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		stack = append(stack, v)

		for _, w := range adj[v] {
			if dist[w] < 0 {
				dist[w] = dist[v] + 1
				queue = append(queue, w)
			}
			if dist[w] == dist[v]+1 {
				sigma[w] += sigma[v]
				preds[w] = append(preds[w], v)
			}
		}
	}

	delta := make(map[uint64]float64, len(ids))
	for i := len(stack) - 1; i >= 0; i-- {
		w := stack[i]
		for _, v := range preds[w] {
			if sigma[w] != 0 {
				delta[v] += (sigma[v] / sigma[w]) * (1 + delta[w])
			}
		}
		if w != s {
			scores[w] += delta[w]
		}
	}
}

// sampleUniform draws k distinct ids from ids uniformly without replacement,
// using rng deterministically (nil rng falls back to a fixed, unseeded
// source only suitable for non-deterministic callers — colony always passes
// its seeded RNG).
func sampleUniform(ids []uint64, k int, rng *rand.Rand) []uint64 {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	pool := make([]uint64, len(ids))
	copy(pool, ids)

	// Fisher-Yates partial shuffle, then take the first k; stable given rng.
	for i := 0; i < k && i < len(pool); i++ {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	out := append([]uint64(nil), pool[:k]...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
