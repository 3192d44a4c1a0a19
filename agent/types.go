// Package agent implements the three agent roles of spec §4.5/§4.6:
// Digester (primary, genome-driven extraction and wiring), Synthesizer and
// Sentinel (secondary, signal-level only).
//
// Dispatch is a small capability table keyed on Role (spec §9
// Polymorphism: "dispatch through a small capability table; no deep
// hierarchy is needed") rather than an interface-per-role hierarchy: Sense,
// Act, and DeathCheck are package-level functions that switch on a.Role and
// call the matching unexported role handler.
package agent

import (
	"math/rand"

	"github.com/clemens865/phago/genome"
	"github.com/clemens865/phago/spatial"
	"github.com/clemens865/phago/substrate"
)

// Role distinguishes the three agent kinds of spec §4.
type Role int

const (
	RoleDigester Role = iota
	RoleSynthesizer
	RoleSentinel
)

func (r Role) String() string {
	switch r {
	case RoleDigester:
		return "digester"
	case RoleSynthesizer:
		return "synthesizer"
	case RoleSentinel:
		return "sentinel"
	default:
		return "unknown"
	}
}

// Signal and trace field names shared by Sense (read) and Act (write). Kept
// here rather than in substrate since they are agent behavior, not
// substrate structure (spec §4.2: field labels are a colony-level naming
// convention, not part of the field model itself).
const (
	SignalConceptActivity = "concept_activity"
	TraceDigestion        = "digestion"
)

// Agent is the common envelope for all three roles. Role-specific state
// (currently only Digester's Genome) lives alongside it rather than behind
// an interface, per the capability-table design above.
type Agent struct {
	ID       uint64
	Role     Role
	Position spatial.Position
	Alive    bool

	SpawnedTick   uint64
	LastActedTick uint64
	IdleCounter   uint64

	// Genome is populated for Digesters only; zero-value for the other
	// two roles (spec §4.3: genome is a Digester-only concept).
	Genome genome.Genome

	// Vocabulary is the set of concept/insight node ids this agent has
	// extracted or acquired via Transfer (spec §4.6: "pairwise vocabulary
	// exchange between colocated agents").
	Vocabulary map[uint64]struct{}

	// digested marks documents this Digester has already processed, so
	// Sense never re-offers the same document (spec §4.4 step 1).
	digested map[uint64]struct{}

	fitness fitnessCounters

	// Sentinel's online self-model (spec §4.6): an EWMA mean of document
	// term-frequency signatures, and the set of documents already folded
	// into it.
	sentinelMean        map[string]float64
	sentinelInitialized bool
	sentinelSeen        map[uint64]struct{}
}

// New constructs a live agent of the given role at pos, spawned at tick.
// Digesters receive g; other roles ignore it.
func New(id uint64, role Role, pos spatial.Position, tick uint64, g genome.Genome) *Agent {
	return &Agent{
		ID:            id,
		Role:          role,
		Position:      pos,
		Alive:         true,
		SpawnedTick:   tick,
		LastActedTick: tick,
		Genome:        g,
		Vocabulary:    make(map[uint64]struct{}),
		digested:      make(map[uint64]struct{}),
		sentinelMean:  make(map[string]float64),
		sentinelSeen:  make(map[uint64]struct{}),
	}
}

// Params carries the colony-config values agent behavior needs but cannot
// get from its own Genome: Synthesizer and Sentinel have no genome (spec
// §4.3 genome is Digester-only), so their tunables come from Colony.Config
// instead and are threaded through Sense/Act each tick.
type Params struct {
	// QuorumMet reports whether alive agent count has reached
	// quorum_threshold; Synthesizer is dormant until it has (spec §4.5).
	QuorumMet bool
	// SynthesisTentativeWeight is the tentative_weight a Synthesizer wires
	// insight edges at (doubled per spec §4.5: "tentative_weight · 2").
	SynthesisTentativeWeight float64
	// SentinelDeviationThreshold is theta in spec §4.6 (default 0.5).
	SentinelDeviationThreshold float64
	// BridgeSampleSize bounds the cost of the BridgeNodes/Betweenness probe
	// a Synthesizer runs each time it acts.
	BridgeSampleSize int
}

// DefaultParams returns spec §6's defaults for the values agent.Params
// carries.
func DefaultParams() Params {
	return Params{
		SynthesisTentativeWeight:   0.1,
		SentinelDeviationThreshold: 0.5,
		BridgeSampleSize:           32,
	}
}

// Intent is what Sense decides to do, applied by the colony before Act runs
// (spec §5 phase ordering: Sense only observes and decides; the resulting
// move and idle bookkeeping are agent-private, not substrate mutation, so
// applying them between Sense and Act does not violate the read-only
// invariant).
type Intent struct {
	Move       spatial.Position
	DocumentID uint64 // 0 if no document was selected
}

// Sense dispatches to the role-specific sense handler. view is a read-only
// substrate snapshot (spec §5 phase 1).
func Sense(a *Agent, view substrate.View, rng *rand.Rand, params Params) Intent {
	switch a.Role {
	case RoleDigester:
		return senseDigester(a, view, rng)
	case RoleSynthesizer:
		return senseSynthesizer(a, view, params)
	case RoleSentinel:
		return senseSentinel(a, view)
	default:
		return Intent{Move: a.Position}
	}
}

// Apply updates the agent's own position and idle counter from a computed
// Intent. Called once per tick between Sense and Act.
func Apply(a *Agent, intent Intent) {
	a.Position = intent.Move
	if intent.DocumentID == 0 {
		a.IdleCounter++
	} else {
		a.IdleCounter = 0
	}
}

// Act dispatches to the role-specific act handler. sub is the full mutable
// substrate handle (spec §5 phase 2).
func Act(a *Agent, sub *substrate.Substrate, intent Intent, rng *rand.Rand, params Params) {
	a.LastActedTick = sub.Tick()
	switch a.Role {
	case RoleDigester:
		actDigester(a, sub, intent)
	case RoleSynthesizer:
		actSynthesizer(a, sub, rng, params)
	case RoleSentinel:
		actSentinel(a, sub, params)
	}
}

// DeathCheck reports whether the agent should apoptose this tick (spec
// §4.4 step 5). Only Digesters apoptose from idleness; Synthesizer and
// Sentinel have no documented death condition at the signal level the spec
// describes for them, so they live until explicitly killed by the colony.
func DeathCheck(a *Agent) bool {
	if a.Role != RoleDigester {
		return false
	}
	return float64(a.IdleCounter) >= a.Genome.MaxIdle
}

// Transfer exchanges vocabulary between two colocated agents (spec §4.6:
// "pairwise vocabulary exchange between colocated agents"). Colocation is
// defined as occupying the same spatial cell.
func Transfer(a, b *Agent) {
	if !sameCell(a.Position, b.Position) {
		return
	}
	for id := range b.Vocabulary {
		a.Vocabulary[id] = struct{}{}
	}
	for id := range a.Vocabulary {
		b.Vocabulary[id] = struct{}{}
	}
}

func sameCell(p, q spatial.Position) bool {
	const cell = spatial.CellSize
	return floorDiv(p.X, cell) == floorDiv(q.X, cell) && floorDiv(p.Y, cell) == floorDiv(q.Y, cell)
}

func floorDiv(v, size float64) int64 {
	f := v / size
	i := int64(f)
	if f < 0 && float64(i) != f {
		i--
	}
	return i
}
