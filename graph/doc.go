// Package graph is the weighted, labeled multigraph store at the bottom of
// Phago's dependency stack.
//
// A Graph holds Nodes (concept, document, or insight) and undirected Edges
// wired by Hebbian co-activation: Wire creates a tentative edge the first
// time two concepts co-occur in a document and reinforces it on later
// co-occurrences, Decay ages every edge's weight down each tick, and Prune
// removes edges that fall below threshold once they are past their
// maturation window, then caps each node's degree.
//
// Structural queries (ShortestPath, Betweenness, BridgeNodes,
// ConnectedComponents) never fail on a missing node or an unreachable
// target — they report absence through a zero-value/ok-bool result, exactly
// as spec §4.1 Errors describes. Graph hands out Node and Edge values as
// copies; higher layers (substrate, agent, colony) hold node and edge ids
// as plain uint64 handles, never pointers into the Graph's internals.
package graph
