// File: errors.go
// Role: Colony's sentinel errors for spec §7's InvalidArgument, NotFound and
// InvariantViolation kinds; CapacityExceeded is substrate.ErrContentTooLarge,
// which IngestDocument returns unchanged.
// Same convention as graph/substrate: package-level sentinels, %w wrapping,
// errors.Is at call sites — no generic catch-alls (see DESIGN.md for why
// this stays on the standard library rather than a third-party errors
// package).
package colony

import "errors"

var (
	// ErrInvalidConfig is spec §7 InvalidArgument for SetConfig/New.
	ErrInvalidConfig = errors.New("colony: invalid config")

	// ErrInvalidPosition is spec §7 InvalidArgument for non-finite
	// positions passed to SpawnAgent.
	ErrInvalidPosition = errors.New("colony: position must be finite")

	// ErrAgentNotFound is spec §7 NotFound for KillAgent/unknown agent ids.
	ErrAgentNotFound = errors.New("colony: agent not found")

	// ErrTickInProgress is spec §7 InvariantViolation: "calling [a query]
	// mid-tick is a programming error." Also guards re-entrant Tick calls,
	// since the scheduler is defined as non-reentrant (spec §5).
	ErrTickInProgress = errors.New("colony: operation not permitted while a tick is in progress")
)
