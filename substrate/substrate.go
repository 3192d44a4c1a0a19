// Package substrate aggregates Phago's shared environment: the Graph, the
// signal and trace fields, the document table, and the tick counter (spec
// §4.2). Colony drives ticks over it; Digester/Synthesizer/Sentinel read and
// mutate it through the methods here during their Sense/Act phases.
package substrate

import (
	"errors"
	"strings"

	"github.com/clemens865/phago/graph"
	"github.com/clemens865/phago/spatial"
)

// MaxDocumentBytes is the hard content-length cap of spec §7 CapacityExceeded
// ("implementation-defined, suggested 10 MB").
const MaxDocumentBytes = 10 * 1024 * 1024

// Sentinel errors surfaced by Substrate's mutation API (spec §7
// InvalidArgument/CapacityExceeded/NotFound). Colony.IngestDocument returns
// them unchanged rather than redefining the checks itself.
var (
	ErrEmptyTitle      = errors.New("substrate: document title is empty")
	ErrNonFinitePos    = errors.New("substrate: position must be finite")
	ErrContentTooLarge = errors.New("substrate: document content exceeds capacity")
	ErrDocumentNotFound = errors.New("substrate: document not found")
)

// Document is a stable, immutable record of one ingested text.
type Document struct {
	ID           uint64
	Title        string
	Content      string
	Position     spatial.Position
	IngestedTick uint64
}

// Substrate is the shared environment a Colony schedules agents over.
type Substrate struct {
	Graph   *graph.Graph
	Signals *spatial.FieldSet
	Traces  *spatial.FieldSet

	tick uint64

	nextDocID uint64
	documents map[uint64]*Document

	index *invertedIndex
}

// New constructs an empty Substrate at tick 0.
func New() *Substrate {
	return &Substrate{
		Graph:     graph.New(),
		Signals:   spatial.NewFieldSet(),
		Traces:    spatial.NewFieldSet(),
		documents: make(map[uint64]*Document),
		index:     newInvertedIndex(),
	}
}

// Tick returns the current tick counter.
func (s *Substrate) Tick() uint64 { return s.tick }

// AdvanceTick increments the tick counter; called once per tick by Colony's
// Advance phase.
func (s *Substrate) AdvanceTick() { s.tick++ }

// IngestDocument stores a new, immutable Document and creates its backing
// KindDocument graph node (spec §3 Lifecycle: "Nodes are created during
// document ingestion... for the document itself").
func (s *Substrate) IngestDocument(title, content string, pos spatial.Position) (uint64, error) {
	if strings.TrimSpace(title) == "" {
		return 0, ErrEmptyTitle
	}
	if !pos.Finite() {
		return 0, ErrNonFinitePos
	}
	if len(content) > MaxDocumentBytes {
		return 0, ErrContentTooLarge
	}

	s.nextDocID++
	id := s.nextDocID
	s.documents[id] = &Document{
		ID:           id,
		Title:        title,
		Content:      content,
		Position:     pos,
		IngestedTick: s.tick,
	}

	if _, err := s.Graph.InsertNode(documentLabel(id), graph.KindDocument, s.tick); err != nil {
		return 0, err
	}

	return id, nil
}

// documentLabel gives each document's backing graph node a unique,
// never-user-visible label derived from its id.
func documentLabel(id uint64) string {
	return "__doc__" + itoa(id)
}

// GetDocument returns the document with the given id.
func (s *Substrate) GetDocument(id uint64) (Document, bool) {
	d, ok := s.documents[id]
	if !ok {
		return Document{}, false
	}
	return *d, true
}

// Documents returns every document sorted by id ascending.
func (s *Substrate) Documents() []Document {
	out := make([]Document, 0, len(s.documents))
	for _, d := range s.documents {
		out = append(out, *d)
	}
	sortDocuments(out)
	return out
}

// DocumentCount returns the number of ingested documents.
func (s *Substrate) DocumentCount() int { return len(s.documents) }
