// File: fields.go
// Role: SignalField/TraceLayer mutation and read views exposed to agents
// during Sense (read-only) and Act (mutate), per spec §4.2.
package substrate

import "github.com/clemens865/phago/spatial"

// DepositSignal adds intensity to the named signal gradient at pos.
func (s *Substrate) DepositSignal(label string, pos spatial.Position, intensity float64) {
	s.Signals.Deposit(label, pos, intensity)
}

// SampleSignal sums the named signal's intensity within radius of pos.
func (s *Substrate) SampleSignal(label string, pos spatial.Position, radius float64) float64 {
	return s.Signals.Sample(label, pos, radius)
}

// PeakSignal returns the highest-intensity cell of the named signal within
// radius of pos, used by Digester.Sense's gradient-ascent blend.
func (s *Substrate) PeakSignal(label string, pos spatial.Position, radius float64) (spatial.Position, float64, bool) {
	return s.Signals.PeakNear(label, pos, radius)
}

// DepositTrace adds intensity to the named stigmergic trace at pos.
func (s *Substrate) DepositTrace(kind string, pos spatial.Position, intensity float64) {
	s.Traces.Deposit(kind, pos, intensity)
}

// SampleTrace sums the named trace's intensity within radius of pos.
func (s *Substrate) SampleTrace(kind string, pos spatial.Position, radius float64) float64 {
	return s.Traces.Sample(kind, pos, radius)
}

// DecayFields applies per-field decay rates to both signal and trace layers
// (spec §4.2 decay_fields), called once per tick by Colony's Decay phase.
func (s *Substrate) DecayFields(signalRate, traceRate, epsilon float64) {
	s.Signals.DecayAll(signalRate, epsilon)
	s.Traces.DecayAll(traceRate, epsilon)
}
