// File: shortest_path.go
// Role: Dijkstra's algorithm over edge cost = 1/weight, grounded on
// github.com/katalvlaran/lvlath/dijkstra's min-heap/lazy-decrease-key idiom.
// Determinism: tie-breaking among equal-cost frontier items is by node id,
// via the heap's secondary comparison key.
package graph

import (
	"container/heap"
)

// ShortestPath runs Dijkstra from src to dst with edge cost 1/weight (higher
// weight -> cheaper hop, per spec §4.1). ok is false if dst is unreachable or
// either endpoint does not exist.
func (g *Graph) ShortestPath(src, dst uint64) (path []uint64, cost float64, ok bool) {
	g.muNodes.RLock()
	_, srcOK := g.nodes[src]
	_, dstOK := g.nodes[dst]
	g.muNodes.RUnlock()
	if !srcOK || !dstOK {
		return nil, 0, false
	}
	if src == dst {
		return []uint64{src}, 0, true
	}

	dist := map[uint64]float64{src: 0}
	prev := map[uint64]uint64{}
	visited := map[uint64]bool{}

	pq := &pathHeap{{id: src, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(pathItem)
		u := item.id
		if visited[u] {
			continue
		}
		visited[u] = true

		if u == dst {
			break
		}

		for _, nb := range g.Neighbors(u) {
			if nb.Weight <= 0 {
				continue
			}
			w := 1.0 / nb.Weight
			nd := dist[u] + w
			if cur, ok := dist[nb.OtherID]; !ok || nd < cur {
				dist[nb.OtherID] = nd
				prev[nb.OtherID] = u
				heap.Push(pq, pathItem{id: nb.OtherID, dist: nd})
			}
		}
	}

	finalDist, reached := dist[dst]
	if !reached {
		return nil, 0, false
	}

	// Reconstruct path by walking prev back to src.
	rev := []uint64{dst}
	cur := dst
	for cur != src {
		p, ok := prev[cur]
		if !ok {
			return nil, 0, false
		}
		rev = append(rev, p)
		cur = p
	}
	path = make([]uint64, len(rev))
	for i, id := range rev {
		path[len(rev)-1-i] = id
	}

	return path, finalDist, true
}

// ShortestPathBounded is used by the hybrid query engine (Phase 2): it takes
// the ShortestPath result from src to dst and returns the max edge weight
// and average reinforcement along it (query §4.8 edge_score/
// reinforcement_score). ok is false when that cheapest path has more than
// maxHops edges; other paths within maxHops are not searched.
func (g *Graph) ShortestPathBounded(src, dst uint64, maxHops int) (maxWeight float64, avgReinforcement float64, ok bool) {
	path, _, reachable := g.ShortestPath(src, dst)
	if !reachable || len(path) == 0 || len(path) > maxHops+1 {
		return 0, 0, false
	}

	var totalReinforcement int
	var hops int
	for i := 0; i+1 < len(path); i++ {
		a, b := orderedPair(path[i], path[i+1])
		g.muEdges.RLock()
		eid, has := g.adjacency[a][b]
		var e *Edge
		if has {
			e = g.edges[eid]
		}
		g.muEdges.RUnlock()
		if !has {
			return 0, 0, false
		}
		if e.Weight > maxWeight {
			maxWeight = e.Weight
		}
		totalReinforcement += e.Reinforcement
		hops++
	}
	if hops == 0 {
		return 0, 0, true
	}

	return maxWeight, float64(totalReinforcement) / float64(hops), true
}

type pathItem struct {
	id   uint64
	dist float64
}

type pathHeap []pathItem

func (h pathHeap) Len() int { return len(h) }
func (h pathHeap) Less(i, j int) bool {
	if h[i].dist != h[j].dist {
		return h[i].dist < h[j].dist
	}
	return h[i].id < h[j].id
}
func (h pathHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *pathHeap) Push(x any)        { *h = append(*h, x.(pathItem)) }
func (h *pathHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
