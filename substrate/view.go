// File: view.go
// Role: the read-only views handed to agents during Sense (spec §5 phase 1:
// "Agents observe a frozen snapshot of the substrate. Mutations are
// forbidden; violations are programming errors."). GraphView and View are
// narrow interfaces containing only non-mutating methods, so code written
// against them cannot accidentally call Wire/Decay/Prune/IngestDocument —
// the type system enforces the read-only discipline the spec asks for,
// even though the concrete *Substrate underneath is the same mutable value
// Act receives a full handle to.
package substrate

import (
	"github.com/clemens865/phago/graph"
	"github.com/clemens865/phago/spatial"
)

// GraphView exposes the Graph's non-mutating queries.
type GraphView interface {
	GetNode(id uint64) (graph.Node, bool)
	FindByLabel(label string) (uint64, bool)
	Neighbors(id uint64) []graph.Neighbor
	Nodes() []graph.Node
	Edges() []graph.Edge
	NodeCount() int
	EdgeCount() int
	HasEdge(u, v uint64) bool
	ShortestPath(src, dst uint64) ([]uint64, float64, bool)
	ConnectedComponents() int
}

// View exposes Substrate's non-mutating queries: signal/trace sampling and
// document/graph reads.
type View interface {
	Tick() uint64
	SampleSignal(label string, pos spatial.Position, radius float64) float64
	PeakSignal(label string, pos spatial.Position, radius float64) (spatial.Position, float64, bool)
	SampleTrace(kind string, pos spatial.Position, radius float64) float64
	GetDocument(id uint64) (Document, bool)
	Documents() []Document
	GraphView() GraphView
}

// GraphView returns a read-only view of the Graph.
func (s *Substrate) GraphView() GraphView { return s.Graph }

var _ View = (*Substrate)(nil)
