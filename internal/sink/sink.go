package sink

//go:generate mockgen -destination=mock/mock_sink.go -package=mocksink -source=sink.go

import (
	"context"
	"strings"

	generr "github.com/KirkDiggler/laddercast-metadata/internal/errors"
)

// Extension is appended to every identifier to form the file name
const Extension = ".json"

// Sink persists encoded records under their identifier
type Sink interface {
	// Write stores data as the record named id
	Write(ctx context.Context, id string, data []byte) error
}

// checkID rejects identifiers that would escape the output directory
func checkID(id string) error {
	if id == "" {
		return generr.InvalidArgumentf("record id is required")
	}
	if strings.ContainsAny(id, `/\`) || strings.Contains(id, "..") {
		return generr.InvalidArgumentf("record id %q is not a plain file name", id).WithMeta("id", id)
	}
	return nil
}
