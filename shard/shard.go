// Package shard implements the optional parallel-colony wrapper spec §5
// calls out ("If a distributed wrapper runs shards in parallel, each shard
// is still single-threaded internally and phases are barrier-synchronized
// across shards"). Pool is a purely in-process convenience: each shard is
// an independent colony.Colony with no shared state, scoped well short of
// the distributed-sharding system spec.md names as a non-goal.
package shard

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/clemens865/phago/colony"
)

// Pool holds N independently-configured colonies and ticks them
// concurrently, barrier-synchronized at tick granularity by waiting for
// every shard's Tick to return before the next call. The phases inside one
// tick are not synchronized across shards.
type Pool struct {
	shards []*colony.Colony
}

// New wraps the given colonies as a Pool. The Pool takes no ownership
// beyond holding the slice; callers retain direct access to each Colony for
// ingestion/spawning/snapshotting outside of Tick/Run.
func New(shards []*colony.Colony) *Pool {
	return &Pool{shards: shards}
}

// Shards returns the underlying colonies, ordered as given to New.
func (p *Pool) Shards() []*colony.Colony { return p.shards }

// Tick runs one Colony.Tick per shard concurrently, returning the first
// error encountered. Tick does not return until every shard's tick has
// completed.
func (p *Pool) Tick(ctx context.Context) error {
	g, _ := errgroup.WithContext(ctx)
	for _, c := range p.shards {
		c := c
		g.Go(func() error {
			return c.Tick()
		})
	}
	return g.Wait()
}

// Run calls Tick n times, stopping at the first tick that errors.
func (p *Pool) Run(ctx context.Context, n int) error {
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.Tick(ctx); err != nil {
			return err
		}
	}
	return nil
}
