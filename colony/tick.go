// File: tick.go
// Role: the six-phase tick scheduler (spec §5): Sense, Act, Transfer/
// Dissolve, Death, Decay, Advance, executed in strict order, every agent
// finishing each phase before the next begins.
package colony

import (
	"sort"

	"go.uber.org/zap"

	"github.com/clemens865/phago/agent"
)

// Tick runs one full scheduler cycle (spec §6 "tick").
func (c *Colony) Tick() error {
	if c.tickInProgress {
		return ErrTickInProgress
	}
	c.tickInProgress = true
	defer func() { c.tickInProgress = false }()

	ids := c.sortedAliveAgentIDs()
	params := c.params(len(ids))

	// Phase 1: Sense (read-only).
	intents := make(map[uint64]agent.Intent, len(ids))
	for _, id := range ids {
		intents[id] = agent.Sense(c.agents[id], c.Substrate, c.rng, params)
	}
	for _, id := range ids {
		agent.Apply(c.agents[id], intents[id])
	}

	// Phase 2: Act (write, ascending agent id, serial).
	for _, id := range ids {
		agent.Act(c.agents[id], c.Substrate, intents[id], c.rng, params)
	}

	// Phase 3: Transfer / Dissolve.
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			agent.Transfer(c.agents[ids[i]], c.agents[ids[j]])
		}
	}

	// Phase 4: Death. Agents killed via KillAgent before this tick are not
	// in ids, so every registered agent is checked for removal.
	for _, id := range ids {
		a := c.agents[id]
		if agent.DeathCheck(a) {
			a.Alive = false
		}
	}
	dead := make([]uint64, 0)
	for id, a := range c.agents {
		if !a.Alive {
			dead = append(dead, id)
		}
	}
	sort.Slice(dead, func(i, j int) bool { return dead[i] < dead[j] })
	for _, id := range dead {
		c.retireAgent(c.agents[id])
	}

	// Phase 5: Decay.
	c.Substrate.DecayFields(c.Config.SignalDecayRate, c.Config.TraceDecayRate, c.Config.FieldEpsilon)
	c.Substrate.Graph.Decay(c.Substrate.Tick(), c.Config.EdgeDecayRate, c.Config.StalenessFactor, c.Config.MaturationTicks)
	c.Substrate.Graph.Prune(c.Substrate.Tick(), c.Config.EdgePruneThreshold, c.Config.MaturationTicks, c.Config.MaxEdgeDegree)

	// Phase 6: Advance.
	c.Substrate.AdvanceTick()

	c.logger.Debug("tick complete",
		zap.Uint64("tick", c.Substrate.Tick()),
		zap.Int("nodes", c.Substrate.Graph.NodeCount()),
		zap.Int("edges", c.Substrate.Graph.EdgeCount()),
		zap.Int("alive_agents", len(c.agents)),
	)

	return nil
}

// retireAgent scores and removes a dead agent; its id is never reused
// (spec §5 Death).
func (c *Colony) retireAgent(a *agent.Agent) {
	report := agent.Fitness(a, func(edgeID uint64) (int, bool) {
		e, ok := c.Substrate.Graph.GetEdge(edgeID)
		return e.Reinforcement, ok
	})

	c.logger.Info("agent death",
		zap.Uint64("agent_id", a.ID),
		zap.String("role", a.Role.String()),
		zap.Float64("fitness", report.Total),
	)

	delete(c.agents, a.ID)
}

// RunReport summarizes a Run(n) call.
type RunReport struct {
	TicksRun int
	Errors   []error
}

// Run executes up to n ticks, stopping early if Stop() was called before or
// between ticks (spec §5 "run(n) is cooperative... a scheduler flag checked
// between ticks aborts cleanly"); a Stop is consumed by the Run it stops. A
// Tick error is recorded in the report's Errors and ends the run. Agent
// handlers return no errors, so Tick fails only when a tick is already in
// progress.
func (c *Colony) Run(n int) RunReport {
	report := RunReport{}

	for i := 0; i < n; i++ {
		if c.stopRequested {
			c.stopRequested = false
			break
		}
		if err := c.Tick(); err != nil {
			report.Errors = append(report.Errors, err)
			break
		}
		report.TicksRun++
	}

	return report
}
