// File: snapshot.go
// Role: Colony.Snapshot (spec §6 "Snapshot format (design-level)"): an
// immutable, id-ordered view of every node, edge, document, and agent, with
// stable field semantics an outer layer is free to encode however it likes.
package colony

import (
	"sort"

	"github.com/clemens865/phago/agent"
	"github.com/clemens865/phago/genome"
	"github.com/clemens865/phago/graph"
	"github.com/clemens865/phago/spatial"
	"github.com/clemens865/phago/substrate"
)

// AgentSnapshot is one agent's serializable state (spec §6 snapshot
// format: "id, role, position, alive, genome if digester, idle_counter").
type AgentSnapshot struct {
	ID          uint64
	Role        agent.Role
	Position    spatial.Position
	Alive       bool
	Genome      *genome.Genome // nil unless Role == RoleDigester
	IdleCounter uint64
}

// Snapshot is the full, point-in-time, ascending-by-id colony state.
type Snapshot struct {
	Tick      uint64
	Nodes     []graph.Node
	Edges     []graph.Edge
	Documents []substrate.Document
	Agents    []AgentSnapshot
}

// Snapshot captures the colony's current state (spec §6 "snapshot() —
// immutable view suitable for external serialization").
func (c *Colony) Snapshot() (Snapshot, error) {
	if c.tickInProgress {
		return Snapshot{}, ErrTickInProgress
	}

	ids := make([]uint64, 0, len(c.agents))
	for id := range c.agents {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	agents := make([]AgentSnapshot, 0, len(ids))
	for _, id := range ids {
		a := c.agents[id]
		snap := AgentSnapshot{
			ID:          a.ID,
			Role:        a.Role,
			Position:    a.Position,
			Alive:       a.Alive,
			IdleCounter: a.IdleCounter,
		}
		if a.Role == agent.RoleDigester {
			g := a.Genome
			snap.Genome = &g
		}
		agents = append(agents, snap)
	}

	return Snapshot{
		Tick:      c.Substrate.Tick(),
		Nodes:     c.Substrate.Graph.Nodes(),
		Edges:     c.Substrate.Graph.Edges(),
		Documents: c.Substrate.Documents(),
		Agents:    agents,
	}, nil
}
