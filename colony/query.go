// File: query.go
// Role: Colony.HybridQuery (spec §6 Read API "hybrid_query"), delegating to
// the query package the same way structural reads delegate to Graph.
package colony

import "github.com/clemens865/phago/query"

// QueryConfig is re-exported so callers configure hybrid_query without
// importing the query package directly.
type QueryConfig = query.Config

// DefaultQueryConfig returns hybrid_query's documented defaults.
func DefaultQueryConfig() QueryConfig { return query.Default() }

// QueryConfig returns a query.Config built from this colony's own
// configured hybrid-query defaults (spec §6 "Configuration (enumerated)"),
// for callers that want HybridQuery to follow whatever alpha/max_results/
// candidate_multiplier SetConfig last installed rather than the package
// defaults.
func (c *Colony) QueryConfig() QueryConfig {
	cfg := query.Default()
	cfg.Alpha = c.Config.QueryAlpha
	cfg.MaxResults = c.Config.QueryMaxResults
	cfg.CandidateMultiplier = c.Config.QueryCandidateMultiplier
	cfg.BetweennessSample = c.Config.BetweennessSampleSize
	return cfg
}

// HybridQuery runs spec §4.8's three-phase TF-IDF/graph blend against the
// colony's substrate. Guarded against mid-tick calls like every other
// structural read (spec §5 "calling them mid-tick is a programming error").
func (c *Colony) HybridQuery(text string, cfg QueryConfig) ([]query.Result, error) {
	if c.tickInProgress {
		return nil, ErrTickInProgress
	}
	return query.Run(c.Substrate, text, cfg, c.rng), nil
}
