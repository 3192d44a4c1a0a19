// Phago is a self-organizing knowledge-graph engine: a colony of
// autonomous agents that wanders a shared substrate — a concept graph plus
// signal and stigmergic trace fields — ingesting documents, wiring
// Hebbian-reinforced concept edges, and exposing the result through
// structural queries and a hybrid TF-IDF/graph-proximity search.
//
// A Colony owns a Substrate (graph + fields + documents) and a population
// of Digester/Synthesizer/Sentinel agents, and drives them through a
// six-phase cooperative tick: Sense, Act, Transfer/Dissolve, Death, Decay,
// Advance. See package colony for the scheduler, package agent for the
// per-role behaviors, and package query for hybrid_query.
package phago
