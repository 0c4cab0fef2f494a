package sink

import (
	"context"
	"sort"
	"sync"

	generr "github.com/KirkDiggler/laddercast-metadata/internal/errors"
)

// MemorySink keeps records in memory; used for dry runs and tests
type MemorySink struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewMemorySink creates an empty in-memory sink
func NewMemorySink() *MemorySink {
	return &MemorySink{
		records: make(map[string][]byte),
	}
}

// Write stores a copy of data. Writing the same id twice is a collision.
func (s *MemorySink) Write(ctx context.Context, id string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkID(id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[id]; exists {
		return generr.Collisionf("record %s already written", id).WithMeta("id", id)
	}

	copied := make([]byte, len(data))
	copy(copied, data)
	s.records[id] = copied

	return nil
}

// Get returns the stored data of a record
func (s *MemorySink) Get(id string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.records[id]
	return data, ok
}

// IDs lists the stored identifiers in sorted order
func (s *MemorySink) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.records))
	for id := range s.records {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len is the number of stored records
func (s *MemorySink) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
