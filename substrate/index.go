// File: index.go
// Role: the lazy inverted index over node "bags of words" that
// hybrid_query's TF-IDF phase reads (spec §4.8 Phase 1, §9 "Inverted index
// cache"). Rebuilt on first use after any node source-document mutation;
// rebuild cost is bounded by the number of (node, source_doc) pairs.
package substrate

import "github.com/clemens865/phago/graph"

// invertedIndex caches, per node, a term-frequency bag of words and the
// document-frequency of every token across the node corpus.
type invertedIndex struct {
	dirty bool

	termFreq map[uint64]map[string]int // node id -> token -> count
	docCount map[uint64]int            // node id -> total token count
	docFreq  map[string]int            // token -> number of nodes containing it
	corpus   int                       // number of indexed nodes
}

func newInvertedIndex() *invertedIndex {
	return &invertedIndex{dirty: true}
}

// invalidateIndex marks the index stale; the next InvertedIndex() call rebuilds
// it. Called whenever a node's source-document set changes.
func (s *Substrate) invalidateIndex() {
	s.index.dirty = true
}

// RecordConceptSource wraps graph.RecordSource and invalidates the inverted
// index cache, since the index is keyed on source-document sets (spec §9).
func (s *Substrate) RecordConceptSource(nodeID, docID uint64) error {
	if err := s.Graph.RecordSource(nodeID, docID); err != nil {
		return err
	}
	s.invalidateIndex()
	return nil
}

// IndexSnapshot is the read-only view of the inverted index query needs to
// compute TF-IDF scores.
type IndexSnapshot struct {
	TermFreq map[uint64]map[string]int
	DocFreq  map[string]int
	Corpus   int
}

// InvertedIndex returns the current (rebuilding if stale) inverted index.
func (s *Substrate) InvertedIndex() IndexSnapshot {
	if s.index.dirty {
		s.rebuildIndex()
	}

	return IndexSnapshot{
		TermFreq: s.index.termFreq,
		DocFreq:  s.index.docFreq,
		Corpus:   s.index.corpus,
	}
}

// rebuildIndex recomputes the bag-of-words representation for every node:
//
//   - KindDocument nodes: tokenize the backing Document's content directly.
//   - KindConcept / KindInsight nodes: the node's own label (weighted by
//     access count) plus the tokenized content of every source document it
//     was extracted from (weighted by that document's per-node touch
//     count), so a concept's relevance reflects the text it actually came
//     from. Per the Open Question resolved in SPEC_FULL.md, insight nodes
//     are not extraction sources for *other* nodes, but they do carry their
//     own bag of words so they remain eligible hybrid_query candidates.
func (s *Substrate) rebuildIndex() {
	termFreq := make(map[uint64]map[string]int)
	docFreq := make(map[string]int)

	for _, n := range s.Graph.Nodes() {
		bag := make(map[string]int)

		switch n.Kind {
		case graph.KindDocument:
			doc := s.documentByLabel(n.Label)
			if doc != nil {
				tf, _ := TermFrequency(Tokenize(doc.Content))
				for tok, c := range tf {
					bag[tok] += c
				}
			}
		default:
			bag[n.Label] += int(n.AccessCount)
			for docID, touches := range n.SourceDocuments {
				d, ok := s.documents[docID]
				if !ok {
					continue
				}
				tf, _ := TermFrequency(Tokenize(d.Content))
				for tok, c := range tf {
					bag[tok] += c * touches
				}
			}
		}

		if len(bag) == 0 {
			continue
		}

		termFreq[n.ID] = bag
		for tok := range bag {
			docFreq[tok]++
		}
	}

	s.index.termFreq = termFreq
	s.index.docFreq = docFreq
	s.index.corpus = len(termFreq)
	s.index.dirty = false
}

// documentByLabel resolves a KindDocument node's backing Document via its
// synthetic "__doc__<id>" label.
func (s *Substrate) documentByLabel(label string) *Document {
	id, ok := parseDocLabel(label)
	if !ok {
		return nil
	}
	return s.documents[id]
}
