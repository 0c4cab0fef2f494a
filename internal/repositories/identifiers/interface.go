package identifiers

//go:generate mockgen -destination=mock/mock.go -package=mockidentifiers -source=interface.go

import (
	"context"
)

// Registry records the output identifiers claimed during a generation run.
// Claiming an identifier twice in the same run is a collision.
type Registry interface {
	// Claim reserves id for the run, failing with a collision error if it is taken
	Claim(ctx context.Context, runID, id string) error

	// Count returns how many identifiers the run has claimed
	Count(ctx context.Context, runID string) (int64, error)

	// Release forgets every identifier of the run
	Release(ctx context.Context, runID string) error
}
