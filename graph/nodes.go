// File: nodes.go
// Role: node lifecycle — InsertNode, TouchNode, label lookup, accessors.
// Determinism: Nodes() returns nodes sorted by ID asc.
// Concurrency: mutations under muNodes write lock; reads under read lock.
package graph

import (
	"sort"
	"strings"
)

// foldLabel normalizes a label for case-insensitive uniqueness.
func foldLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// InsertNode returns the id of the node labeled label, creating one of the
// given kind if none exists yet. An existing node is touched (access count
// incremented, last_activation_tick updated) rather than duplicated, per
// spec §4.1 InsertNode semantics.
func (g *Graph) InsertNode(label string, kind NodeKind, tick uint64) (uint64, error) {
	if strings.TrimSpace(label) == "" {
		return 0, ErrEmptyLabel
	}
	folded := foldLabel(label)

	g.muNodes.Lock()
	defer g.muNodes.Unlock()

	if id, ok := g.labelToNode[folded]; ok {
		n := g.nodes[id]
		n.AccessCount++
		n.LastActivationTick = tick
		return id, nil
	}

	g.nextNodeID++
	id := g.nextNodeID
	g.nodes[id] = &Node{
		ID:                 id,
		Label:              folded,
		Kind:               kind,
		CreatedTick:        tick,
		LastActivationTick: tick,
		AccessCount:        1,
		SourceDocuments:    make(map[uint64]int),
	}
	g.labelToNode[folded] = id

	return id, nil
}

// TouchNode updates last_activation_tick and increments the access counter
// for an existing node.
func (g *Graph) TouchNode(id uint64, tick uint64) error {
	g.muNodes.Lock()
	defer g.muNodes.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		return ErrNodeNotFound
	}
	n.AccessCount++
	n.LastActivationTick = tick

	return nil
}

// RecordSource marks that node id was extracted from document docID,
// incrementing its per-document touch count. Used by Digester.Digest and
// invalidates the hybrid query's inverted-index cache in the caller
// (substrate owns that invalidation, since it owns the cache).
func (g *Graph) RecordSource(id uint64, docID uint64) error {
	g.muNodes.Lock()
	defer g.muNodes.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		return ErrNodeNotFound
	}
	n.SourceDocuments[docID]++

	return nil
}

// GetNode returns a read-only snapshot of the node with the given id.
func (g *Graph) GetNode(id uint64) (Node, bool) {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return Node{}, false
	}

	return cloneNode(n), true
}

// FindByLabel returns the node id whose case-folded label matches label.
func (g *Graph) FindByLabel(label string) (uint64, bool) {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	id, ok := g.labelToNode[foldLabel(label)]
	return id, ok
}

// Nodes returns every node, sorted by id ascending (deterministic snapshot
// and iteration order per spec §9 Determinism).
func (g *Graph) Nodes() []Node {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	out := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, cloneNode(n))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	return len(g.nodes)
}

// cloneNode returns a value copy of n with its own SourceDocuments map so
// callers cannot mutate internal state through the returned Node.
func cloneNode(n *Node) Node {
	cp := *n
	cp.SourceDocuments = make(map[uint64]int, len(n.SourceDocuments))
	for k, v := range n.SourceDocuments {
		cp.SourceDocuments[k] = v
	}

	return cp
}
