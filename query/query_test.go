package query_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clemens865/phago/graph"
	"github.com/clemens865/phago/query"
	"github.com/clemens865/phago/spatial"
	"github.com/clemens865/phago/substrate"
)

func TestRunEmptyQueryReturnsEmptyList(t *testing.T) {
	sub := substrate.New()
	results := query.Run(sub, "   ", query.Default(), rand.New(rand.NewSource(1)))
	require.Empty(t, results)
}

func TestRunNoCandidatesReturnsEmptyList(t *testing.T) {
	sub := substrate.New()
	_, err := sub.IngestDocument("Doc", "completely unrelated wording here", spatial.Position{})
	require.NoError(t, err)

	results := query.Run(sub, "membrane", query.Default(), rand.New(rand.NewSource(1)))
	require.Empty(t, results)
}

func TestRunRanksLexicalMatchAboveUnrelatedNode(t *testing.T) {
	sub := substrate.New()

	_, err := sub.Graph.InsertNode("membrane", graph.KindConcept, 0)
	require.NoError(t, err)
	_, err = sub.Graph.InsertNode("unrelated", graph.KindConcept, 0)
	require.NoError(t, err)

	docID, err := sub.IngestDocument("Bio", "membrane membrane membrane transport", spatial.Position{})
	require.NoError(t, err)

	membraneID, ok := sub.Graph.FindByLabel("membrane")
	require.True(t, ok)
	require.NoError(t, sub.RecordConceptSource(membraneID, docID))

	results := query.Run(sub, "membrane", query.Default(), rand.New(rand.NewSource(1)))
	require.NotEmpty(t, results)
	require.Equal(t, membraneID, results[0].NodeID)
}

func TestRunAlphaOneIsPureTFIDFOrdering(t *testing.T) {
	sub := substrate.New()

	aID, err := sub.Graph.InsertNode("alpha", graph.KindConcept, 0)
	require.NoError(t, err)
	bID, err := sub.Graph.InsertNode("beta", graph.KindConcept, 0)
	require.NoError(t, err)

	doc1, err := sub.IngestDocument("D1", "alpha alpha alpha topic one", spatial.Position{})
	require.NoError(t, err)
	doc2, err := sub.IngestDocument("D2", "beta topic two", spatial.Position{})
	require.NoError(t, err)
	require.NoError(t, sub.RecordConceptSource(aID, doc1))
	require.NoError(t, sub.RecordConceptSource(bID, doc2))

	cfg := query.Default()
	cfg.Alpha = 1.0
	results := query.Run(sub, "alpha beta topic", cfg, rand.New(rand.NewSource(1)))
	require.NotEmpty(t, results)
	require.Equal(t, aID, results[0].NodeID, "alpha appears with higher tf and should rank first under pure TF-IDF")
}
