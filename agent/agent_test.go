package agent_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clemens865/phago/agent"
	"github.com/clemens865/phago/genome"
	"github.com/clemens865/phago/graph"
	"github.com/clemens865/phago/spatial"
	"github.com/clemens865/phago/substrate"
)

func TestSenseDigesterFindsNearbyDocument(t *testing.T) {
	sub := substrate.New()
	docID, err := sub.IngestDocument("Bio", "membrane transport proteins across cell walls", spatial.Position{X: 0, Y: 0})
	require.NoError(t, err)

	g := genome.Default()
	a := agent.New(1, agent.RoleDigester, spatial.Position{X: 0, Y: 0}, 0, g)
	rng := rand.New(rand.NewSource(1))

	intent := agent.Sense(a, sub, rng, agent.DefaultParams())
	require.Equal(t, docID, intent.DocumentID)
}

func TestSenseDigesterSkipsAlreadyDigestedDocument(t *testing.T) {
	sub := substrate.New()
	_, err := sub.IngestDocument("Bio", "membrane transport proteins", spatial.Position{X: 0, Y: 0})
	require.NoError(t, err)

	g := genome.Default()
	a := agent.New(1, agent.RoleDigester, spatial.Position{X: 0, Y: 0}, 0, g)
	rng := rand.New(rand.NewSource(1))

	params := agent.DefaultParams()
	intent := agent.Sense(a, sub, rng, params)
	agent.Apply(a, intent)
	agent.Act(a, sub, intent, rng, params)

	intent2 := agent.Sense(a, sub, rng, params)
	require.Equal(t, uint64(0), intent2.DocumentID)
}

func TestActDigesterExtractsConceptsAndWiresEdges(t *testing.T) {
	sub := substrate.New()
	docID, err := sub.IngestDocument("Bio", "membrane transport membrane transport channel protein channel protein", spatial.Position{X: 0, Y: 0})
	require.NoError(t, err)

	g := genome.Default()
	g.WiringSelectivity = 0 // force every pair to clear the gate deterministically
	a := agent.New(1, agent.RoleDigester, spatial.Position{X: 0, Y: 0}, 0, g)
	rng := rand.New(rand.NewSource(1))

	intent := agent.Intent{Move: a.Position, DocumentID: docID}
	agent.Act(a, sub, intent, rng, agent.DefaultParams())

	require.Greater(t, sub.Graph.NodeCount(), 1, "expected concept nodes beyond the document node")
	require.Greater(t, sub.Graph.EdgeCount(), 0, "expected at least one wired edge between co-occurring concepts")
}

func TestDeathCheckTriggersAfterMaxIdle(t *testing.T) {
	g := genome.Default()
	g.MaxIdle = 2
	a := agent.New(1, agent.RoleDigester, spatial.Position{}, 0, g)

	require.False(t, agent.DeathCheck(a))

	agent.Apply(a, agent.Intent{Move: a.Position})
	agent.Apply(a, agent.Intent{Move: a.Position})

	require.True(t, agent.DeathCheck(a))
}

func TestApplyResetsIdleCounterOnDocumentFound(t *testing.T) {
	g := genome.Default()
	a := agent.New(1, agent.RoleDigester, spatial.Position{}, 0, g)

	agent.Apply(a, agent.Intent{Move: a.Position})
	require.Equal(t, uint64(1), a.IdleCounter)

	agent.Apply(a, agent.Intent{Move: a.Position, DocumentID: 7})
	require.Equal(t, uint64(0), a.IdleCounter)
}

func TestNonDigesterNeverApoptosesFromIdle(t *testing.T) {
	a := agent.New(1, agent.RoleSentinel, spatial.Position{}, 0, genome.Genome{})
	a.IdleCounter = 1_000_000
	require.False(t, agent.DeathCheck(a))
}

func TestTransferSharesVocabularyWhenColocated(t *testing.T) {
	a := agent.New(1, agent.RoleDigester, spatial.Position{X: 0.2, Y: 0.2}, 0, genome.Default())
	b := agent.New(2, agent.RoleDigester, spatial.Position{X: 0.6, Y: 0.9}, 0, genome.Default())
	a.Vocabulary[42] = struct{}{}

	agent.Transfer(a, b)

	_, ok := b.Vocabulary[42]
	require.True(t, ok, "colocated agents should exchange vocabulary")
}

func TestTransferNoOpWhenNotColocated(t *testing.T) {
	a := agent.New(1, agent.RoleDigester, spatial.Position{X: 0, Y: 0}, 0, genome.Default())
	b := agent.New(2, agent.RoleDigester, spatial.Position{X: 10, Y: 10}, 0, genome.Default())
	a.Vocabulary[42] = struct{}{}

	agent.Transfer(a, b)

	_, ok := b.Vocabulary[42]
	require.False(t, ok)
}

func TestFitnessGuardsZeroDenominators(t *testing.T) {
	a := agent.New(1, agent.RoleDigester, spatial.Position{}, 0, genome.Default())
	report := agent.Fitness(a, func(uint64) (int, bool) { return 0, false })
	require.Equal(t, 0.0, report.Total)
}

func TestSynthesizerDormantUntilQuorum(t *testing.T) {
	sub := substrate.New()
	u, _ := sub.Graph.InsertNode("alpha", graph.KindConcept, 0)
	v, _ := sub.Graph.InsertNode("beta", graph.KindConcept, 0)
	_, _, _ = sub.Graph.Wire(u, v, 0, 1, 0.1, 0.05)

	s := agent.New(99, agent.RoleSynthesizer, spatial.Position{}, 0, genome.Genome{})
	rng := rand.New(rand.NewSource(1))
	before := sub.Graph.NodeCount()

	agent.Act(s, sub, agent.Intent{}, rng, agent.DefaultParams()) // QuorumMet: false
	require.Equal(t, before, sub.Graph.NodeCount(), "synthesizer must stay dormant below quorum")
}

func TestSynthesizerCreatesInsightNodeOnceQuorumMet(t *testing.T) {
	sub := substrate.New()
	u, _ := sub.Graph.InsertNode("alpha", graph.KindConcept, 0)
	v, _ := sub.Graph.InsertNode("beta", graph.KindConcept, 0)
	w, _ := sub.Graph.InsertNode("gamma", graph.KindConcept, 0)
	_, _, _ = sub.Graph.Wire(u, v, 0, 1, 0.1, 0.05)
	_, _, _ = sub.Graph.Wire(v, w, 0, 1, 0.1, 0.05)

	s := agent.New(99, agent.RoleSynthesizer, spatial.Position{}, 0, genome.Genome{})
	rng := rand.New(rand.NewSource(1))
	params := agent.DefaultParams()
	params.QuorumMet = true

	before := sub.Graph.NodeCount()
	agent.Act(s, sub, agent.Intent{}, rng, params)

	require.Greater(t, sub.Graph.NodeCount(), before, "quorum-active synthesizer should add an insight node")
}

func TestSentinelFlagsDeviatingDocumentAfterBaseline(t *testing.T) {
	sub := substrate.New()
	baselineID, err := sub.IngestDocument("Base", "membrane transport membrane transport membrane transport", spatial.Position{X: 1, Y: 1})
	require.NoError(t, err)
	_ = baselineID

	s := agent.New(7, agent.RoleSentinel, spatial.Position{}, 0, genome.Genome{})
	params := agent.DefaultParams()

	actSentinelOnce(s, sub, params)
	require.Equal(t, 0.0, sub.SampleTrace(agent.TraceAnomaly, spatial.Position{X: 1, Y: 1}, 5))

	_, err = sub.IngestDocument("Outlier", "xenomorph xenomorph xenomorph xenomorph xenomorph", spatial.Position{X: 9, Y: 9})
	require.NoError(t, err)

	actSentinelOnce(s, sub, params)
	require.Greater(t, sub.SampleTrace(agent.TraceAnomaly, spatial.Position{X: 9, Y: 9}, 5), 0.0, "wildly different document should be flagged as anomaly")
}

// actSentinelOnce drives Sentinel's Act phase directly; DocumentID in the
// Intent is irrelevant to Sentinel, which scans the whole document table.
func actSentinelOnce(a *agent.Agent, sub *substrate.Substrate, params agent.Params) {
	rng := rand.New(rand.NewSource(1))
	agent.Act(a, sub, agent.Intent{}, rng, params)
}
