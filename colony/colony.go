// Package colony implements the scheduler of spec §4.7/§5: it owns the
// Substrate and every live agent, drives the six-phase cooperative tick
// (Sense, Act, Transfer/Dissolve, Death, Decay, Advance), and exposes the
// colony's public mutation/read API.
//
// Concurrency: the default colony is single-threaded cooperative (spec §5):
// one goroutine calls Tick/Run; there is no internal locking, matching the
// teacher's posture of fine-grained locks only where genuine concurrent
// access exists. tickInProgress is a plain bool, not an atomic or mutex,
// because the model promises no parallel callers — a concurrent caller
// racing on it is exactly the "programming error" spec §5 describes, and
// shard.Pool (this repo's only place real goroutines touch a Colony) never
// shares one Colony across shards.
package colony

import (
	"math/rand"
	"sort"

	"go.uber.org/zap"

	"github.com/clemens865/phago/agent"
	"github.com/clemens865/phago/genome"
	"github.com/clemens865/phago/graph"
	"github.com/clemens865/phago/spatial"
	"github.com/clemens865/phago/substrate"
)

// Colony owns the substrate, the agent population, and the scheduler loop.
type Colony struct {
	Substrate *substrate.Substrate
	Config    Config

	agents      map[uint64]*agent.Agent
	nextAgentID uint64

	rng *rand.Rand

	tickInProgress bool
	stopRequested  bool

	logger *zap.Logger
}

// New constructs a Colony with an empty Substrate. A nil logger defaults to
// a no-op logger (spec doesn't require logging; SPEC_FULL.md's ambient
// stack wires zap the way the corpus does, defaulting to silence).
func New(cfg Config, logger *zap.Logger) (*Colony, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	var rng *rand.Rand
	if cfg.HasRNGSeed {
		rng = rand.New(rand.NewSource(cfg.RNGSeed))
	} else {
		rng = rand.New(rand.NewSource(1))
	}

	return &Colony{
		Substrate: substrate.New(),
		Config:    cfg,
		agents:    make(map[uint64]*agent.Agent),
		rng:       rng,
		logger:    logger,
	}, nil
}

// IngestDocument delegates to Substrate.IngestDocument (spec §6 mutation
// API "ingest_document").
func (c *Colony) IngestDocument(title, content string, pos spatial.Position) (uint64, error) {
	if c.tickInProgress {
		return 0, ErrTickInProgress
	}
	return c.Substrate.IngestDocument(title, content, pos)
}

// SpawnAgent creates a new agent of role at pos (spec §6 "spawn_agent").
// g is used only for RoleDigester; other roles ignore it.
func (c *Colony) SpawnAgent(role agent.Role, pos spatial.Position, g genome.Genome) (uint64, error) {
	if c.tickInProgress {
		return 0, ErrTickInProgress
	}
	if !pos.Finite() {
		return 0, ErrInvalidPosition
	}

	c.nextAgentID++
	id := c.nextAgentID
	c.agents[id] = agent.New(id, role, pos, c.Substrate.Tick(), g)

	c.logger.Debug("agent spawned", zap.Uint64("agent_id", id), zap.String("role", role.String()))

	return id, nil
}

// KillAgent marks an agent dead; it is actually removed during the next
// tick's Death phase, and its id is never reused (spec §5 Death).
func (c *Colony) KillAgent(id uint64) error {
	if c.tickInProgress {
		return ErrTickInProgress
	}
	a, ok := c.agents[id]
	if !ok {
		return ErrAgentNotFound
	}
	a.Alive = false
	return nil
}

// SetConfig validates and replaces the colony's config (spec §6
// "set_config").
func (c *Colony) SetConfig(cfg Config) error {
	if c.tickInProgress {
		return ErrTickInProgress
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.Config = cfg
	return nil
}

// Stop requests that a subsequent Run(n) stop between ticks (spec §5
// "cooperative: a scheduler flag checked between ticks aborts cleanly").
func (c *Colony) Stop() {
	c.stopRequested = true
}

// sortedAliveAgentIDs returns the ids of every currently alive agent,
// ascending (spec §5 Act phase: "deterministic order, ascending agent id").
func (c *Colony) sortedAliveAgentIDs() []uint64 {
	ids := make([]uint64, 0, len(c.agents))
	for id, a := range c.agents {
		if a.Alive {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// params builds the agent.Params for the current config and alive count.
func (c *Colony) params(aliveCount int) agent.Params {
	return agent.Params{
		QuorumMet:                  aliveCount >= c.Config.QuorumThreshold,
		SynthesisTentativeWeight:   c.Config.SynthesisTentativeWeight,
		SentinelDeviationThreshold: c.Config.SentinelDeviationThreshold,
		BridgeSampleSize:           c.Config.BetweennessSampleSize,
	}
}

// GetNode, FindNodesByLabel, Neighbors, ShortestPath, BetweennessCentrality,
// BridgeNodes, ConnectedComponents delegate to the Graph (spec §6 Read API,
// "Graph read/structural methods delegated from Graph"), guarded against
// mid-tick calls (spec §5: "calling them mid-tick is a programming error").

func (c *Colony) GetNode(id uint64) (graph.Node, bool, error) {
	if c.tickInProgress {
		return graph.Node{}, false, ErrTickInProgress
	}
	n, ok := c.Substrate.Graph.GetNode(id)
	return n, ok, nil
}

func (c *Colony) FindNodeByLabel(label string) (uint64, bool, error) {
	if c.tickInProgress {
		return 0, false, ErrTickInProgress
	}
	id, ok := c.Substrate.Graph.FindByLabel(label)
	return id, ok, nil
}

func (c *Colony) Neighbors(id uint64) ([]graph.Neighbor, error) {
	if c.tickInProgress {
		return nil, ErrTickInProgress
	}
	return c.Substrate.Graph.Neighbors(id), nil
}

func (c *Colony) ShortestPath(src, dst uint64) ([]uint64, float64, bool, error) {
	if c.tickInProgress {
		return nil, 0, false, ErrTickInProgress
	}
	path, cost, ok := c.Substrate.Graph.ShortestPath(src, dst)
	return path, cost, ok, nil
}

func (c *Colony) BetweennessCentrality() (map[uint64]float64, error) {
	if c.tickInProgress {
		return nil, ErrTickInProgress
	}
	return c.Substrate.Graph.Betweenness(c.Config.BetweennessSampleSize, c.rng), nil
}

func (c *Colony) BridgeNodes(topK int) ([]graph.BridgeScore, error) {
	if c.tickInProgress {
		return nil, ErrTickInProgress
	}
	return c.Substrate.Graph.BridgeNodes(topK, c.Config.BetweennessSampleSize, c.rng), nil
}

func (c *Colony) ConnectedComponents() (int, error) {
	if c.tickInProgress {
		return 0, ErrTickInProgress
	}
	return c.Substrate.Graph.ConnectedComponents(), nil
}
