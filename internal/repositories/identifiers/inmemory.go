package identifiers

import (
	"context"
	"sync"

	generr "github.com/KirkDiggler/laddercast-metadata/internal/errors"
)

// inMemoryRegistry implements Registry with a set per run
type inMemoryRegistry struct {
	mu   sync.Mutex
	runs map[string]map[string]struct{}
}

// NewInMemory creates a process-local registry
func NewInMemory() Registry {
	return &inMemoryRegistry{
		runs: make(map[string]map[string]struct{}),
	}
}

func (r *inMemoryRegistry) Claim(ctx context.Context, runID, id string) error {
	if err := checkArgs(runID, id); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ids, ok := r.runs[runID]
	if !ok {
		ids = make(map[string]struct{})
		r.runs[runID] = ids
	}
	if _, taken := ids[id]; taken {
		return generr.Collisionf("identifier %s claimed twice", id).
			WithMeta("id", id).
			WithMeta("run_id", runID)
	}
	ids[id] = struct{}{}

	return nil
}

func (r *inMemoryRegistry) Count(ctx context.Context, runID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return int64(len(r.runs[runID])), nil
}

func (r *inMemoryRegistry) Release(ctx context.Context, runID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.runs, runID)
	return nil
}

func checkArgs(runID, id string) error {
	if runID == "" {
		return generr.InvalidArgumentf("run id is required")
	}
	if id == "" {
		return generr.InvalidArgumentf("identifier is required")
	}
	return nil
}
