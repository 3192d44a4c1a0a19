// File: components.go
// Role: union-find connected components, grounded on
// github.com/katalvlaran/lvlath/prim_kruskal's disjoint-set (path
// compression + union by rank) idiom, adapted from string to uint64 ids.
package graph

import "sort"

// disjointSet is a union-find over node ids.
type disjointSet struct {
	parent map[uint64]uint64
	rank   map[uint64]int
}

func newDisjointSet(ids []uint64) *disjointSet {
	ds := &disjointSet{
		parent: make(map[uint64]uint64, len(ids)),
		rank:   make(map[uint64]int, len(ids)),
	}
	for _, id := range ids {
		ds.parent[id] = id
	}
	return ds
}

func (ds *disjointSet) find(u uint64) uint64 {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}
	return u
}

func (ds *disjointSet) union(u, v uint64) {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return
	}
	if ds.rank[ru] < ds.rank[rv] {
		ds.parent[ru] = rv
	} else {
		ds.parent[rv] = ru
		if ds.rank[ru] == ds.rank[rv] {
			ds.rank[ru]++
		}
	}
}

// allNodeIDs returns every node id, sorted ascending (muNodes held by caller
// is not assumed; this takes its own read lock).
func (g *Graph) allNodeIDs() []uint64 {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	ids := make([]uint64, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// buildDisjointSet runs union-find over every current edge. Exposed
// separately from ConnectedComponents so BridgeNodes can reuse it to test
// "removal increases component count" without removing edges it isn't
// supposed to touch.
func (g *Graph) buildDisjointSet(excludeNode uint64) *disjointSet {
	ids := g.allNodeIDs()
	ds := newDisjointSet(ids)

	for _, e := range g.Edges() {
		if e.U == excludeNode || e.V == excludeNode {
			continue
		}
		ds.union(e.U, e.V)
	}

	return ds
}

// ConnectedComponents returns the number of connected components under the
// current edge set (spec §4.1 connected_components).
func (g *Graph) ConnectedComponents() int {
	ds := g.buildDisjointSet(0)
	roots := make(map[uint64]struct{})
	for _, id := range g.allNodeIDs() {
		if id == 0 {
			continue
		}
		roots[ds.find(id)] = struct{}{}
	}

	return len(roots)
}

// componentCountExcluding returns the number of components that remain when
// node id (and all its incident edges) is removed from consideration. Used
// by BridgeNodes' fragility metric.
func (g *Graph) componentCountExcluding(id uint64) int {
	ds := g.buildDisjointSet(id)
	roots := make(map[uint64]struct{})
	for _, nid := range g.allNodeIDs() {
		if nid == id || nid == 0 {
			continue
		}
		roots[ds.find(nid)] = struct{}{}
	}
	if len(roots) == 0 {
		return 0
	}

	return len(roots)
}
