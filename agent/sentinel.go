// File: sentinel.go
// Role: the Sentinel role (spec §4.6): maintains an online self-model — an
// exponentially weighted mean of document term-frequency signatures — and
// flags documents that deviate from it beyond theta with an anomaly trace.
// Sentinel never creates edges. It has no position-driven sensing of its
// own in the spec, so Sense never moves it.
package agent

import (
	"math"

	"github.com/clemens865/phago/substrate"
)

// TraceAnomaly is the trace kind Sentinel deposits at a flagged document's
// position (spec §4.6: "flagged via a trace of kind anomaly").
const TraceAnomaly = "anomaly"

// sentinelEWMAAlpha weights new document signatures against the running
// mean (spec §4.6 "exponentially weighted mean vector"; the spec leaves the
// smoothing factor implementation-defined).
const sentinelEWMAAlpha = 0.2

func senseSentinel(a *Agent, view substrate.View) Intent {
	return Intent{Move: a.Position}
}

// actSentinel folds every not-yet-seen document into the self-model,
// flagging ones that deviate from the prior mean by more than theta.
func actSentinel(a *Agent, sub *substrate.Substrate, params Params) {
	for _, doc := range sub.Documents() {
		if _, seen := a.sentinelSeen[doc.ID]; seen {
			continue
		}
		a.sentinelSeen[doc.ID] = struct{}{}

		sig := signatureOf(doc.Content)

		if a.sentinelInitialized {
			d := vectorDistance(sig, a.sentinelMean)
			if d > params.SentinelDeviationThreshold {
				sub.DepositTrace(TraceAnomaly, doc.Position, d)
			}
		} else {
			a.sentinelInitialized = true
		}

		updateEWMA(a.sentinelMean, sig, sentinelEWMAAlpha)
	}
}

// signatureOf returns a document's normalized concept-frequency signature:
// token -> fraction of total tokens.
func signatureOf(content string) map[string]float64 {
	tf, total := substrate.TermFrequency(substrate.Tokenize(content))
	sig := make(map[string]float64, len(tf))
	if total == 0 {
		return sig
	}
	for tok, c := range tf {
		sig[tok] = float64(c) / float64(total)
	}
	return sig
}

// vectorDistance is Euclidean distance between two sparse frequency vectors
// over the union of their keys; a key absent from one vector contributes
// its value from the other as the full difference.
func vectorDistance(a, b map[string]float64) float64 {
	seen := make(map[string]struct{}, len(a)+len(b))
	var sumSq float64
	for tok, v := range a {
		seen[tok] = struct{}{}
		d := v - b[tok]
		sumSq += d * d
	}
	for tok, v := range b {
		if _, done := seen[tok]; done {
			continue
		}
		d := v - a[tok]
		sumSq += d * d
	}
	return math.Sqrt(sumSq)
}

// updateEWMA blends sig into mean in place: mean = (1-alpha)*mean + alpha*sig.
func updateEWMA(mean map[string]float64, sig map[string]float64, alpha float64) {
	for tok := range mean {
		mean[tok] *= 1 - alpha
	}
	for tok, v := range sig {
		mean[tok] += alpha * v
	}
	for tok, v := range mean {
		if v < 1e-9 {
			delete(mean, tok)
		}
	}
}
