// File: config.go
// Role: Colony.Config, the enumerated knob set of spec §6 plus the
// agent-params this repo's expanded Synthesizer/Sentinel implementation
// needs (SPEC_FULL.md §3.6).
package colony

import "fmt"

// Config holds every tunable spec §6 enumerates, plus the additional
// values SPEC_FULL.md's expanded component map requires (field epsilon for
// field decay, hybrid-query defaults, and the Synthesizer/Sentinel
// parameters agent.Params threads through Sense/Act).
type Config struct {
	SignalDecayRate float64 // default 0.05
	TraceDecayRate  float64 // default 0.05
	FieldEpsilon    float64 // minimum cell intensity before removal

	EdgeDecayRate       float64 // default 0.005
	EdgePruneThreshold  float64 // default 0.05
	StalenessFactor     float64 // default 1.5
	MaturationTicks     uint64  // default 50
	MaxEdgeDegree       int     // default 30

	QuorumThreshold int     // default 3, Synthesizer activation
	MutationRate    float64 // default 0.15, Genome.Mutate rate

	RNGSeed     int64 // deterministic if set; 0 is a valid seed too
	HasRNGSeed  bool

	BetweennessSampleSize int // Synthesizer/BridgeNodes probe cost bound

	SynthesisTentativeWeight   float64 // tentative_weight for Synthesizer's insight edges (spec §4.5)
	SentinelDeviationThreshold float64 // theta, spec §4.6 default 0.5

	// Hybrid query defaults (spec §4.8); HybridQuery callers may override
	// per call.
	QueryAlpha               float64 // default 0.5
	QueryMaxResults          int     // default 10
	QueryCandidateMultiplier int     // default 3
}

// Default returns spec §6's defaults.
func Default() Config {
	return Config{
		SignalDecayRate: 0.05,
		TraceDecayRate:  0.05,
		FieldEpsilon:    1e-6,

		EdgeDecayRate:      0.005,
		EdgePruneThreshold: 0.05,
		StalenessFactor:    1.5,
		MaturationTicks:    50,
		MaxEdgeDegree:      30,

		QuorumThreshold: 3,
		MutationRate:    0.15,

		BetweennessSampleSize: 64,

		SynthesisTentativeWeight:   0.1,
		SentinelDeviationThreshold: 0.5,

		QueryAlpha:               0.5,
		QueryMaxResults:          10,
		QueryCandidateMultiplier: 3,
	}
}

// Validate checks every rate/threshold is in its sane range (spec §7
// InvalidArgument: "out-of-range config... reported synchronously").
func (c Config) Validate() error {
	rates := map[string]float64{
		"SignalDecayRate": c.SignalDecayRate,
		"TraceDecayRate":  c.TraceDecayRate,
		"EdgeDecayRate":   c.EdgeDecayRate,
		"MutationRate":    c.MutationRate,
		"QueryAlpha":      c.QueryAlpha,
	}
	for name, v := range rates {
		if v < 0 || v > 1 {
			return fmt.Errorf("colony: %s out of range [0,1]: %w", name, ErrInvalidConfig)
		}
	}
	if c.StalenessFactor < 0 {
		return fmt.Errorf("colony: StalenessFactor must be non-negative: %w", ErrInvalidConfig)
	}
	if c.EdgePruneThreshold < 0 {
		return fmt.Errorf("colony: EdgePruneThreshold must be non-negative: %w", ErrInvalidConfig)
	}
	if c.MaxEdgeDegree < 0 {
		return fmt.Errorf("colony: MaxEdgeDegree must be non-negative: %w", ErrInvalidConfig)
	}
	if c.QuorumThreshold < 0 {
		return fmt.Errorf("colony: QuorumThreshold must be non-negative: %w", ErrInvalidConfig)
	}
	if c.QueryMaxResults < 0 || c.QueryCandidateMultiplier < 0 {
		return fmt.Errorf("colony: query result bounds must be non-negative: %w", ErrInvalidConfig)
	}
	return nil
}
