package uuid_test

import (
	"testing"

	"github.com/KirkDiggler/laddercast-metadata/internal/uuid"
	googleuuid "github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoogleUUIDGenerator(t *testing.T) {
	gen := uuid.NewGoogleUUIDGenerator()

	first := gen.New()
	_, err := googleuuid.Parse(first)
	require.NoError(t, err)
	assert.NotEqual(t, first, gen.New())
}

func TestStaticGenerator(t *testing.T) {
	var gen uuid.Generator = uuid.StaticGenerator("run-1")
	assert.Equal(t, "run-1", gen.New())
}
