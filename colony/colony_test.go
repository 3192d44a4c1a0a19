package colony_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clemens865/phago/agent"
	"github.com/clemens865/phago/colony"
	"github.com/clemens865/phago/genome"
	"github.com/clemens865/phago/spatial"
)

func newTestColony(t *testing.T) *colony.Colony {
	t.Helper()
	cfg := colony.Default()
	cfg.RNGSeed = 42
	cfg.HasRNGSeed = true
	c, err := colony.New(cfg, nil)
	require.NoError(t, err)
	return c
}

// TestScenarioASingleDocumentDigest exercises spec §8 Scenario A.
func TestScenarioASingleDocumentDigest(t *testing.T) {
	c := newTestColony(t)

	_, err := c.IngestDocument("Bio", "The cell membrane controls transport of molecules", spatial.Position{X: 0, Y: 0})
	require.NoError(t, err)

	_, err = c.SpawnAgent(agent.RoleDigester, spatial.Position{X: 0, Y: 0}, genome.Default())
	require.NoError(t, err)

	report := c.Run(30)
	require.Empty(t, report.Errors)
	require.Equal(t, 30, report.TicksRun)

	stats := c.Stats()
	require.GreaterOrEqual(t, stats.Nodes, 5, "expect the document node plus at least 4 extracted concepts")

	for _, e := range mustGraphEdges(t, c) {
		require.Equal(t, 1, e.Reinforcement, "a single document's edges should have reinforcement 1")
	}
}

// TestScenarioBReinforcementAcrossDocuments exercises spec §8 Scenario B.
func TestScenarioBReinforcementAcrossDocuments(t *testing.T) {
	c := newTestColony(t)

	_, err := c.IngestDocument("Bio", "The cell membrane controls transport of molecules", spatial.Position{X: 0, Y: 0})
	require.NoError(t, err)
	_, err = c.SpawnAgent(agent.RoleDigester, spatial.Position{X: 0, Y: 0}, genome.Default())
	require.NoError(t, err)

	_ = c.Run(30)

	_, err = c.IngestDocument("Bio2", "Membrane transport proteins facilitate molecular transport", spatial.Position{X: 0, Y: 0})
	require.NoError(t, err)

	report := c.Run(30)
	require.Empty(t, report.Errors)

	membraneID, ok, err := c.FindNodeByLabel("membrane")
	require.NoError(t, err)
	require.True(t, ok)
	transportID, ok, err := c.FindNodeByLabel("transport")
	require.NoError(t, err)
	require.True(t, ok)

	neighbors, err := c.Neighbors(membraneID)
	require.NoError(t, err)

	found := false
	for _, nb := range neighbors {
		if nb.OtherID == transportID {
			found = true
			require.GreaterOrEqual(t, nb.Reinforcement, 2)
		}
	}
	require.True(t, found, "expected membrane-transport edge to exist after two documents")
}

func mustGraphEdges(t *testing.T, c *colony.Colony) []edgeView {
	t.Helper()
	snap, err := c.Snapshot()
	require.NoError(t, err)
	out := make([]edgeView, len(snap.Edges))
	for i, e := range snap.Edges {
		out[i] = edgeView{Reinforcement: e.Reinforcement}
	}
	return out
}

type edgeView struct {
	Reinforcement int
}

func TestSpawnAgentRejectsNonFinitePosition(t *testing.T) {
	c := newTestColony(t)
	_, err := c.SpawnAgent(agent.RoleDigester, spatial.Position{X: 0, Y: 0}, genome.Default())
	require.NoError(t, err)

	_, err = c.SpawnAgent(agent.RoleDigester, spatial.Position{X: math.NaN(), Y: 1}, genome.Default())
	require.ErrorIs(t, err, colony.ErrInvalidPosition)

	_, err = c.SpawnAgent(agent.RoleDigester, spatial.Position{X: math.Inf(1), Y: 1}, genome.Default())
	require.ErrorIs(t, err, colony.ErrInvalidPosition)
}

func TestKillAgentRemovedAtNextDeathPhase(t *testing.T) {
	c := newTestColony(t)
	id, err := c.SpawnAgent(agent.RoleSentinel, spatial.Position{}, genome.Genome{})
	require.NoError(t, err)

	require.Equal(t, 1, c.Stats().AliveAgents)

	require.NoError(t, c.KillAgent(id))
	require.Equal(t, 1, c.Stats().AliveAgents, "removal happens at the next tick's Death phase, not immediately")

	require.NoError(t, c.Tick())
	require.Equal(t, 0, c.Stats().AliveAgents)
}

func TestKillAgentUnknownIDReturnsNotFound(t *testing.T) {
	c := newTestColony(t)
	err := c.KillAgent(999)
	require.ErrorIs(t, err, colony.ErrAgentNotFound)
}

func TestSetConfigRejectsOutOfRangeRate(t *testing.T) {
	c := newTestColony(t)
	bad := colony.Default()
	bad.SignalDecayRate = 2.0
	err := c.SetConfig(bad)
	require.ErrorIs(t, err, colony.ErrInvalidConfig)
}

func TestRunStopsEarlyOnStop(t *testing.T) {
	c := newTestColony(t)
	c.Stop()
	report := c.Run(10)
	require.Equal(t, 0, report.TicksRun)
}

func TestSnapshotOrdersEverythingByAscendingID(t *testing.T) {
	c := newTestColony(t)
	_, err := c.IngestDocument("A", "alpha beta gamma delta epsilon", spatial.Position{})
	require.NoError(t, err)
	_, err = c.SpawnAgent(agent.RoleDigester, spatial.Position{}, genome.Default())
	require.NoError(t, err)
	_, err = c.SpawnAgent(agent.RoleSentinel, spatial.Position{}, genome.Genome{})
	require.NoError(t, err)

	_ = c.Run(5)

	snap, err := c.Snapshot()
	require.NoError(t, err)

	for i := 1; i < len(snap.Nodes); i++ {
		require.Less(t, snap.Nodes[i-1].ID, snap.Nodes[i].ID)
	}
	for i := 1; i < len(snap.Agents); i++ {
		require.Less(t, snap.Agents[i-1].ID, snap.Agents[i].ID)
	}
}
