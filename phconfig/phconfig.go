// Package phconfig loads the colony's enumerated configuration (spec §6)
// from YAML, following the corpus convention (theRebelliousNerd/codenerd's
// internal/config) of a yaml-tagged struct with a Default() and a Load(path)
// that parses a file into it. colony.Colony itself never depends on this
// package; phconfig is the outer-layer file-loading surface that converts
// into a colony.Config.
package phconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/clemens865/phago/colony"
)

// Config mirrors every enumerated knob in spec §6, plus the hybrid-query
// defaults and genome mutation rate SPEC_FULL.md's expanded scope adds.
type Config struct {
	SignalDecayRate float64 `yaml:"signal_decay_rate"`
	TraceDecayRate  float64 `yaml:"trace_decay_rate"`
	FieldEpsilon    float64 `yaml:"field_epsilon"`

	EdgeDecayRate      float64 `yaml:"edge_decay_rate"`
	EdgePruneThreshold float64 `yaml:"edge_prune_threshold"`
	StalenessFactor    float64 `yaml:"staleness_factor"`
	MaturationTicks    uint64  `yaml:"maturation_ticks"`
	MaxEdgeDegree      int     `yaml:"max_edge_degree"`

	QuorumThreshold int     `yaml:"quorum_threshold"`
	MutationRate    float64 `yaml:"mutation_rate"`

	RNGSeed    *int64 `yaml:"rng_seed"`

	BetweennessSampleSize int `yaml:"betweenness_sample_size"`

	SynthesisTentativeWeight   float64 `yaml:"synthesis_tentative_weight"`
	SentinelDeviationThreshold float64 `yaml:"sentinel_deviation_threshold"`

	QueryAlpha               float64 `yaml:"query_alpha"`
	QueryMaxResults          int     `yaml:"query_max_results"`
	QueryCandidateMultiplier int     `yaml:"query_candidate_multiplier"`
}

// Default returns spec §6's defaults, mirroring colony.Default().
func Default() Config {
	d := colony.Default()
	return Config{
		SignalDecayRate:            d.SignalDecayRate,
		TraceDecayRate:             d.TraceDecayRate,
		FieldEpsilon:               d.FieldEpsilon,
		EdgeDecayRate:              d.EdgeDecayRate,
		EdgePruneThreshold:         d.EdgePruneThreshold,
		StalenessFactor:            d.StalenessFactor,
		MaturationTicks:            d.MaturationTicks,
		MaxEdgeDegree:              d.MaxEdgeDegree,
		QuorumThreshold:            d.QuorumThreshold,
		MutationRate:               d.MutationRate,
		BetweennessSampleSize:      d.BetweennessSampleSize,
		SynthesisTentativeWeight:   d.SynthesisTentativeWeight,
		SentinelDeviationThreshold: d.SentinelDeviationThreshold,
		QueryAlpha:                 d.QueryAlpha,
		QueryMaxResults:            d.QueryMaxResults,
		QueryCandidateMultiplier:   d.QueryCandidateMultiplier,
	}
}

// Load reads and parses a YAML file into a Config seeded with Default()
// values, so a partial file only overrides the knobs it names.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("phconfig: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("phconfig: parse %s: %w", path, err)
	}

	return cfg, nil
}

// ToColonyConfig converts to the in-process colony.Config the scheduler
// actually consumes.
func (c Config) ToColonyConfig() colony.Config {
	out := colony.Config{
		SignalDecayRate:            c.SignalDecayRate,
		TraceDecayRate:             c.TraceDecayRate,
		FieldEpsilon:               c.FieldEpsilon,
		EdgeDecayRate:              c.EdgeDecayRate,
		EdgePruneThreshold:         c.EdgePruneThreshold,
		StalenessFactor:            c.StalenessFactor,
		MaturationTicks:            c.MaturationTicks,
		MaxEdgeDegree:              c.MaxEdgeDegree,
		QuorumThreshold:            c.QuorumThreshold,
		MutationRate:               c.MutationRate,
		BetweennessSampleSize:      c.BetweennessSampleSize,
		SynthesisTentativeWeight:   c.SynthesisTentativeWeight,
		SentinelDeviationThreshold: c.SentinelDeviationThreshold,
		QueryAlpha:                 c.QueryAlpha,
		QueryMaxResults:            c.QueryMaxResults,
		QueryCandidateMultiplier:   c.QueryCandidateMultiplier,
	}
	if c.RNGSeed != nil {
		out.RNGSeed = *c.RNGSeed
		out.HasRNGSeed = true
	}

	return out
}
