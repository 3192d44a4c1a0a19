package substrate_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clemens865/phago/graph"
	"github.com/clemens865/phago/spatial"
	"github.com/clemens865/phago/substrate"
)

func TestIngestDocumentCreatesBackingNode(t *testing.T) {
	s := substrate.New()

	id, err := s.IngestDocument("Bio", "cell membrane transport", spatial.Position{X: 0, Y: 0})
	require.NoError(t, err)

	doc, ok := s.GetDocument(id)
	require.True(t, ok)
	require.Equal(t, "Bio", doc.Title)
	require.Equal(t, 1, s.Graph.NodeCount())
}

func TestIngestDocumentRejectsEmptyTitle(t *testing.T) {
	s := substrate.New()
	_, err := s.IngestDocument("", "content", spatial.Position{})
	require.ErrorIs(t, err, substrate.ErrEmptyTitle)
}

func TestIngestDocumentRejectsNonFinitePosition(t *testing.T) {
	s := substrate.New()
	_, err := s.IngestDocument("T", "content", spatial.Position{X: math.NaN()})
	require.ErrorIs(t, err, substrate.ErrNonFinitePos)
}

func TestIngestDocumentRejectsOversizedContent(t *testing.T) {
	s := substrate.New()
	big := make([]byte, substrate.MaxDocumentBytes+1)
	_, err := s.IngestDocument("T", string(big), spatial.Position{})
	require.ErrorIs(t, err, substrate.ErrContentTooLarge)
}

func TestInvertedIndexRebuildsOnSourceMutation(t *testing.T) {
	s := substrate.New()
	docID, err := s.IngestDocument("Bio", "membrane transport proteins", spatial.Position{})
	require.NoError(t, err)

	nodeID, err := s.Graph.InsertNode("membrane", graph.KindConcept, 1)
	require.NoError(t, err)

	idx := s.InvertedIndex()
	_, present := idx.TermFreq[nodeID]
	require.False(t, present, "concept with no recorded source should not yet carry the document's bag of words")

	require.NoError(t, s.RecordConceptSource(nodeID, docID))

	idx = s.InvertedIndex()
	bag, present := idx.TermFreq[nodeID]
	require.True(t, present)
	require.Greater(t, bag["transport"], 0)
}
