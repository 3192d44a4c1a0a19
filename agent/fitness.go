// File: fitness.go
// Role: Digester fitness scoring (spec §4.4 step 6):
//
//	fitness = 0.3*productivity + 0.3*novelty + 0.2*quality + 0.2*connectivity
//
// Computed once, at death, from counters accumulated during the agent's
// lifetime by actDigester.
package agent

// fitnessCounters accumulates the raw tallies Fitness derives its four
// terms from.
type fitnessCounters struct {
	conceptsProcessed int // every kept token touched during Digest
	conceptsNew       int // subset where InsertNode created a brand-new node
	edgesCreated      int // edges this agent's Wire calls created
	edgesQualityGE2   []uint64
	edgesBridging     int
}

// FitnessReport is the scored breakdown returned by Fitness.
type FitnessReport struct {
	Productivity float64
	Novelty      float64
	Quality      float64
	Connectivity float64
	Total        float64
}

// Fitness scores the agent using its accumulated lifetime counters.
// graphEdgeReinforcement looks up an edge's reinforcement count in the
// graph, used to check which created edges reached reinforcement >= 2
// (spec §4.4 step 6 "quality"); call this before the agent's edges are
// pruned away.
func Fitness(a *Agent, graphEdgeReinforcement func(edgeID uint64) (int, bool)) FitnessReport {
	ticksLived := float64(a.LastActedTick - a.SpawnedTick)
	if ticksLived <= 0 {
		ticksLived = 1
	}

	c := a.fitness

	productivity := float64(c.conceptsProcessed+c.edgesCreated) / ticksLived

	var novelty float64
	if c.conceptsProcessed > 0 {
		novelty = float64(c.conceptsNew) / float64(c.conceptsProcessed)
	}

	var quality float64
	if c.edgesCreated > 0 {
		qualifying := 0
		for _, eid := range c.edgesQualityGE2 {
			if r, ok := graphEdgeReinforcement(eid); ok && r >= 2 {
				qualifying++
			}
		}
		quality = float64(qualifying) / float64(c.edgesCreated)
	}

	var connectivity float64
	if c.edgesCreated > 0 {
		connectivity = float64(c.edgesBridging) / float64(c.edgesCreated)
	}

	total := 0.3*productivity + 0.3*novelty + 0.2*quality + 0.2*connectivity

	return FitnessReport{
		Productivity: productivity,
		Novelty:      novelty,
		Quality:      quality,
		Connectivity: connectivity,
		Total:        total,
	}
}
