// Package genome implements the 8-parameter Digester genome of spec §4.3:
// a bounded parameter vector that mutates under Gaussian perturbation and
// crosses over per-parameter uniformly, the way a Digester's behavior
// evolves under the colony's selection pressure.
package genome

import "math/rand"

// Bounds describes the inclusive [Min, Max] domain of one parameter.
type Bounds struct {
	Min, Max float64
}

func (b Bounds) clamp(v float64) float64 {
	if v < b.Min {
		return b.Min
	}
	if v > b.Max {
		return b.Max
	}
	return v
}

// Domains are the eight parameter domains fixed by spec §4.3.
var Domains = struct {
	SenseRadius        Bounds
	MaxIdle            Bounds
	KeywordBoost       Bounds
	ExploreBias        Bounds
	BoundaryBias       Bounds
	TentativeWeight    Bounds
	ReinforcementBoost Bounds
	WiringSelectivity  Bounds
}{
	SenseRadius:        Bounds{Min: 1, Max: 10},
	MaxIdle:            Bounds{Min: 10, Max: 100},
	KeywordBoost:       Bounds{Min: 0.5, Max: 2.0},
	ExploreBias:        Bounds{Min: 0, Max: 1},
	BoundaryBias:       Bounds{Min: 0, Max: 1},
	TentativeWeight:    Bounds{Min: 0.05, Max: 0.5},
	ReinforcementBoost: Bounds{Min: 0.01, Max: 0.3},
	WiringSelectivity:  Bounds{Min: 0.1, Max: 1.0},
}

// Genome is the Digester behavior parameter vector.
type Genome struct {
	SenseRadius        float64
	MaxIdle            float64
	KeywordBoost       float64
	ExploreBias        float64
	BoundaryBias       float64
	TentativeWeight    float64
	ReinforcementBoost float64
	WiringSelectivity  float64
}

// Default returns the midpoint-biased genome used for newly spawned
// Digesters when no explicit genome is supplied.
func Default() Genome {
	return Genome{
		SenseRadius:        3,
		MaxIdle:            30,
		KeywordBoost:       1.0,
		ExploreBias:        0.3,
		BoundaryBias:       0.2,
		TentativeWeight:    0.1,
		ReinforcementBoost: 0.05,
		WiringSelectivity:  0.3,
	}
}

// eachParam applies fn to every (value, bounds) pair, in a fixed field
// order, and rebuilds the Genome from the results. Keeping a single
// iteration order here guarantees Mutate consumes rng draws in the same
// deterministic sequence on every call; Crossover lists the fields in the
// same order itself.
func eachParam(g Genome, fn func(v float64, b Bounds) float64) Genome {
	return Genome{
		SenseRadius:        fn(g.SenseRadius, Domains.SenseRadius),
		MaxIdle:            fn(g.MaxIdle, Domains.MaxIdle),
		KeywordBoost:       fn(g.KeywordBoost, Domains.KeywordBoost),
		ExploreBias:        fn(g.ExploreBias, Domains.ExploreBias),
		BoundaryBias:       fn(g.BoundaryBias, Domains.BoundaryBias),
		TentativeWeight:    fn(g.TentativeWeight, Domains.TentativeWeight),
		ReinforcementBoost: fn(g.ReinforcementBoost, Domains.ReinforcementBoost),
		WiringSelectivity:  fn(g.WiringSelectivity, Domains.WiringSelectivity),
	}
}

// Mutate perturbs each parameter by Gaussian noise scaled to 10% of its
// domain width, clamped back into domain, applied independently with
// probability rate per parameter (spec §4.3: "mutation rate is a colony
// config, default 0.15").
func Mutate(g Genome, rate float64, rng *rand.Rand) Genome {
	return eachParam(g, func(v float64, b Bounds) float64 {
		if rng.Float64() >= rate {
			return v
		}
		sigma := (b.Max - b.Min) * 0.1
		return b.clamp(v + rng.NormFloat64()*sigma)
	})
}

// Crossover produces a child genome by picking each parameter uniformly at
// random from parent a or parent b (spec §4.3: "Crossover is per-parameter
// uniform").
func Crossover(a, b Genome, rng *rand.Rand) Genome {
	pick := func(va, vb float64, _ Bounds) float64 {
		if rng.Float64() < 0.5 {
			return va
		}
		return vb
	}

	return Genome{
		SenseRadius:        pick(a.SenseRadius, b.SenseRadius, Domains.SenseRadius),
		MaxIdle:            pick(a.MaxIdle, b.MaxIdle, Domains.MaxIdle),
		KeywordBoost:       pick(a.KeywordBoost, b.KeywordBoost, Domains.KeywordBoost),
		ExploreBias:        pick(a.ExploreBias, b.ExploreBias, Domains.ExploreBias),
		BoundaryBias:       pick(a.BoundaryBias, b.BoundaryBias, Domains.BoundaryBias),
		TentativeWeight:    pick(a.TentativeWeight, b.TentativeWeight, Domains.TentativeWeight),
		ReinforcementBoost: pick(a.ReinforcementBoost, b.ReinforcementBoost, Domains.ReinforcementBoost),
		WiringSelectivity:  pick(a.WiringSelectivity, b.WiringSelectivity, Domains.WiringSelectivity),
	}
}
