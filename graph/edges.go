// File: edges.go
// Role: Hebbian wiring (create/reinforce/touch), decay, prune, degree cap,
// and edge accessors. This is the heart of spec §4.4's wiring schedule.
// Determinism: Edges() sorted by ID asc; prune tie-breaks are total order.
// Concurrency: mutations under muEdges write lock; reads under read lock.
package graph

import "sort"

// Wire creates or reinforces the edge between u and v for document docID,
// per spec §4.4 step 3 / §4.1 wire. tentativeWeight seeds a brand-new edge;
// reinforcementBoost is added to an existing edge the first time docID
// activates it. Wiring the same node to itself is a no-op (WireNoOp).
//
// selectivity is not applied here: the caller (Digester.Wire) is responsible
// for the tf_a*tf_b >= wiring_selectivity gate described in spec §4.4 step 3,
// since that gate depends on per-document term frequencies the Graph does
// not track. Wire always creates/reinforces once called.
func (g *Graph) Wire(u, v uint64, tick uint64, docID uint64, tentativeWeight, reinforcementBoost float64) (WireOutcome, uint64, error) {
	if u == v {
		return WireNoOp, 0, nil
	}

	a, b := orderedPair(u, v)

	g.muNodes.RLock()
	_, uOK := g.nodes[a]
	_, vOK := g.nodes[b]
	g.muNodes.RUnlock()
	if !uOK || !vOK {
		return WireNoOp, 0, ErrNodeNotFound
	}

	g.muEdges.Lock()
	defer g.muEdges.Unlock()

	if eid, ok := g.adjacency[a][b]; ok {
		e := g.edges[eid]
		if _, seen := e.sourceDocuments[docID]; seen {
			e.LastActivationTick = tick
			return WireTouched, eid, nil
		}
		e.sourceDocuments[docID] = struct{}{}
		e.Weight += reinforcementBoost
		e.Reinforcement++
		e.LastActivationTick = tick
		return WireReinforced, eid, nil
	}

	g.nextEdgeID++
	eid := g.nextEdgeID
	e := &Edge{
		ID:                 eid,
		U:                  a,
		V:                  b,
		Weight:             tentativeWeight,
		Reinforcement:      1,
		CreatedTick:        tick,
		LastActivationTick: tick,
		sourceDocuments:    map[uint64]struct{}{docID: {}},
	}
	g.edges[eid] = e
	g.linkAdjacency(a, b, eid)

	return WireCreated, eid, nil
}

// linkAdjacency must be called with muEdges held.
func (g *Graph) linkAdjacency(a, b, eid uint64) {
	if g.adjacency[a] == nil {
		g.adjacency[a] = make(map[uint64]uint64)
	}
	if g.adjacency[b] == nil {
		g.adjacency[b] = make(map[uint64]uint64)
	}
	g.adjacency[a][b] = eid
	g.adjacency[b][a] = eid
}

// unlinkAdjacency must be called with muEdges held.
func (g *Graph) unlinkAdjacency(e *Edge) {
	delete(g.adjacency[e.U], e.V)
	delete(g.adjacency[e.V], e.U)
	if len(g.adjacency[e.U]) == 0 {
		delete(g.adjacency, e.U)
	}
	if len(g.adjacency[e.V]) == 0 {
		delete(g.adjacency, e.V)
	}
}

// GetEdge returns a copy of the edge with the given id.
func (g *Graph) GetEdge(id uint64) (Edge, bool) {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	e, ok := g.edges[id]
	if !ok {
		return Edge{}, false
	}

	return cloneEdge(e), true
}

// HasEdge reports whether an edge exists between u and v.
func (g *Graph) HasEdge(u, v uint64) bool {
	a, b := orderedPair(u, v)
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	_, ok := g.adjacency[a][b]
	return ok
}

// Edges returns every edge sorted by id ascending.
func (g *Graph) Edges() []Edge {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, cloneEdge(e))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	return len(g.edges)
}

// Neighbor describes one edge incident to a queried node, from that node's
// point of view (spec §4.1 neighbors(id) -> (other_id, weight, reinforcement)).
type Neighbor struct {
	OtherID       uint64
	EdgeID        uint64
	Weight        float64
	Reinforcement int
}

// Neighbors returns every edge incident to id, sorted by neighbor id asc.
func (g *Graph) Neighbors(id uint64) []Neighbor {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	adj := g.adjacency[id]
	out := make([]Neighbor, 0, len(adj))
	for other, eid := range adj {
		e := g.edges[eid]
		out = append(out, Neighbor{OtherID: other, EdgeID: eid, Weight: e.Weight, Reinforcement: e.Reinforcement})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OtherID < out[j].OtherID })

	return out
}

// Decay applies spec §4.4's decay schedule to every edge:
//
//	idle_ticks := tick - last_activation_tick
//	effective_rate := baseRate * (age < maturationTicks ? 1 :
//	                    (idle_ticks >= maturationTicks ? stalenessFactor : 1))
//	weight *= (1 - effective_rate)
func (g *Graph) Decay(tick uint64, baseRate, stalenessFactor float64, maturationTicks uint64) {
	g.muEdges.Lock()
	defer g.muEdges.Unlock()

	for _, e := range g.edges {
		age := tick - e.CreatedTick
		idle := tick - e.LastActivationTick

		rate := baseRate
		if age >= maturationTicks && idle >= maturationTicks {
			rate = baseRate * stalenessFactor
		}
		e.Weight *= 1 - rate
		if e.Weight < 0 {
			e.Weight = 0
		}
	}
}

// Prune removes edges below threshold whose age has passed maturationTicks,
// then enforces maxDegree per node by removing the weakest excess edges
// (oldest last_activation_tick first, then lowest id, per spec §4.1/§4.4).
func (g *Graph) Prune(tick uint64, threshold float64, maturationTicks uint64, maxDegree int) {
	g.muEdges.Lock()
	defer g.muEdges.Unlock()

	for eid, e := range g.edges {
		age := tick - e.CreatedTick
		if e.Weight < threshold && age >= maturationTicks {
			g.unlinkAdjacency(e)
			delete(g.edges, eid)
		}
	}

	g.capDegree(maxDegree)
}

// capDegree must be called with muEdges held.
func (g *Graph) capDegree(maxDegree int) {
	if maxDegree <= 0 {
		return
	}

	nodeIDs := make([]uint64, 0, len(g.adjacency))
	for id := range g.adjacency {
		nodeIDs = append(nodeIDs, id)
	}
	sort.Slice(nodeIDs, func(i, j int) bool { return nodeIDs[i] < nodeIDs[j] })

	for _, id := range nodeIDs {
		adj := g.adjacency[id]
		if len(adj) <= maxDegree {
			continue
		}

		type candidate struct {
			eid  uint64
			e    *Edge
		}
		cands := make([]candidate, 0, len(adj))
		for _, eid := range adj {
			if e, ok := g.edges[eid]; ok {
				cands = append(cands, candidate{eid: eid, e: e})
			}
		}
		sort.Slice(cands, func(i, j int) bool {
			if cands[i].e.Weight != cands[j].e.Weight {
				return cands[i].e.Weight < cands[j].e.Weight
			}
			if cands[i].e.LastActivationTick != cands[j].e.LastActivationTick {
				return cands[i].e.LastActivationTick < cands[j].e.LastActivationTick
			}
			return cands[i].eid < cands[j].eid
		})

		excess := len(adj) - maxDegree
		for i := 0; i < excess && i < len(cands); i++ {
			e := cands[i].e
			if len(g.adjacency[id]) <= maxDegree {
				break
			}
			g.unlinkAdjacency(e)
			delete(g.edges, cands[i].eid)
		}
	}
}

func cloneEdge(e *Edge) Edge {
	cp := *e
	cp.sourceDocuments = nil
	return cp
}

// SourceDocumentCount exposes len(e.sourceDocuments) without leaking the
// internal set, used by Digester.Wire to decide whether docID is new to e.
func (g *Graph) HasDocumentOnEdge(edgeID, docID uint64) bool {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	e, ok := g.edges[edgeID]
	if !ok {
		return false
	}
	_, seen := e.sourceDocuments[docID]
	return seen
}
