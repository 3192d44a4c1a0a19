// File: stats.go
// Role: Colony.Stats (spec §4.7/§6 "stats() -> {tick, nodes, edges,
// alive_agents, documents}").
package colony

// Stats is a point-in-time summary of colony size.
type Stats struct {
	Tick        uint64
	Nodes       int
	Edges       int
	AliveAgents int
	Documents   int
}

// Stats returns the colony's current counters.
func (c *Colony) Stats() Stats {
	return Stats{
		Tick:        c.Substrate.Tick(),
		Nodes:       c.Substrate.Graph.NodeCount(),
		Edges:       c.Substrate.Graph.EdgeCount(),
		AliveAgents: len(c.agents),
		Documents:   c.Substrate.DocumentCount(),
	}
}
