// Package uuid generates run identifiers; the interface allows fixed ids in tests
package uuid

import (
	"github.com/google/uuid"
)

// Generator is an interface for generating run ids
type Generator interface {
	New() string
}

// GoogleUUIDGenerator implements Generator with random v4 UUIDs
type GoogleUUIDGenerator struct{}

// New generates a new UUID string
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// StaticGenerator always returns the same id
type StaticGenerator string

// New returns the static id
func (s StaticGenerator) New() string {
	return string(s)
}
