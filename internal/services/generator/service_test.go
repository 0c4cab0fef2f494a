package generator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/laddercast-metadata/internal/domain/asset"
	"github.com/KirkDiggler/laddercast-metadata/internal/enumerator"
	generr "github.com/KirkDiggler/laddercast-metadata/internal/errors"
	"github.com/KirkDiggler/laddercast-metadata/internal/images"
	"github.com/KirkDiggler/laddercast-metadata/internal/metadata"
	mockidentifiers "github.com/KirkDiggler/laddercast-metadata/internal/repositories/identifiers/mock"
	"github.com/KirkDiggler/laddercast-metadata/internal/services/generator"
	mockgenerator "github.com/KirkDiggler/laddercast-metadata/internal/services/generator/mock"
	"github.com/KirkDiggler/laddercast-metadata/internal/sink"
	mocksink "github.com/KirkDiggler/laddercast-metadata/internal/sink/mock"
	"github.com/KirkDiggler/laddercast-metadata/internal/testutils"
	"github.com/KirkDiggler/laddercast-metadata/internal/uuid"
)

func newEnumerator(t *testing.T) *enumerator.Enumerator {
	t.Helper()
	e, err := enumerator.New(testutils.SmallBounds())
	require.NoError(t, err)
	return e
}

func newBuilder(t *testing.T) *metadata.Builder {
	t.Helper()
	catalog, err := images.Default()
	require.NoError(t, err)

	b, err := metadata.NewBuilder(&metadata.BuilderConfig{
		Images:      catalog,
		Boilerplate: metadata.DefaultBoilerplate(),
	})
	require.NoError(t, err)
	return b
}

func newService(t *testing.T, cfg generator.ServiceConfig) generator.Service {
	t.Helper()
	if cfg.Enumerator == nil {
		cfg.Enumerator = newEnumerator(t)
	}
	if cfg.Builder == nil {
		cfg.Builder = newBuilder(t)
	}
	if cfg.UUIDGenerator == nil {
		cfg.UUIDGenerator = uuid.StaticGenerator("run-1")
	}

	svc, err := generator.NewService(&cfg)
	require.NoError(t, err)
	return svc
}

func TestRunWritesEveryRecord(t *testing.T) {
	ctx := context.Background()
	out := sink.NewMemorySink()
	svc := newService(t, generator.ServiceConfig{Sink: out})

	plan, err := svc.Plan(ctx, nil)
	require.NoError(t, err)

	summary, err := svc.Run(ctx, &generator.RunInput{})
	require.NoError(t, err)

	assert.Equal(t, "run-1", summary.RunID)
	assert.Equal(t, plan.Total, summary.Total)
	assert.Equal(t, plan.Counts, summary.Counts)
	assert.Equal(t, summary.Total, out.Len())
	for _, c := range asset.Categories() {
		assert.Positive(t, summary.Counts[c], c)
	}

	// Every file decodes back to the attribute set its name encodes
	for _, id := range out.IDs() {
		data, ok := out.Get(id)
		require.True(t, ok)

		record, err := metadata.Decode(data)
		require.NoError(t, err, id)

		decoded, err := record.AttributeSet()
		require.NoError(t, err, id)

		parsed, err := asset.ParseID(id)
		require.NoError(t, err, id)

		if parsed.Category == asset.CategoryCaster {
			parsed.Index = 0
		}
		if parsed.Category == asset.CategoryChest || parsed.Category == asset.CategoryCaster {
			decoded.Tier = parsed.Tier
		}
		assert.Equal(t, parsed, decoded, id)
	}
}

func TestRunParallelMatchesSequential(t *testing.T) {
	ctx := context.Background()

	sequential := sink.NewMemorySink()
	_, err := newService(t, generator.ServiceConfig{Sink: sequential}).Run(ctx, nil)
	require.NoError(t, err)

	parallel := sink.NewMemorySink()
	summary, err := newService(t, generator.ServiceConfig{Sink: parallel, Workers: 8}).Run(ctx, nil)
	require.NoError(t, err)

	require.Equal(t, sequential.IDs(), parallel.IDs())
	assert.Equal(t, sequential.Len(), summary.Total)
	for _, id := range sequential.IDs() {
		want, _ := sequential.Get(id)
		got, _ := parallel.Get(id)
		assert.Equal(t, string(want), string(got), id)
	}
}

func TestRunSelectedCategories(t *testing.T) {
	out := sink.NewMemorySink()
	svc := newService(t, generator.ServiceConfig{Sink: out})

	summary, err := svc.Run(context.Background(), &generator.RunInput{
		Categories: []asset.Category{asset.CategoryChest},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, []string{"chest_1_1", "chest_2_1"}, out.IDs())
}

func TestRunDryRun(t *testing.T) {
	svc := newService(t, generator.ServiceConfig{})

	summary, err := svc.Run(context.Background(), &generator.RunInput{DryRun: true})
	require.NoError(t, err)
	assert.True(t, summary.DryRun)
	assert.Positive(t, summary.Total)

	_, err = svc.Run(context.Background(), &generator.RunInput{})
	assert.True(t, generr.IsConfiguration(err))
}

func TestRunAbortsOnSinkFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	out := mocksink.NewMockSink(ctrl)

	diskFull := errors.New("disk full")
	out.EXPECT().Write(gomock.Any(), "chest_1_1", gomock.Any()).Return(diskFull).Times(1)

	svc := newService(t, generator.ServiceConfig{Sink: out})
	summary, err := svc.Run(context.Background(), &generator.RunInput{
		Categories: []asset.Category{asset.CategoryChest},
	})

	require.Error(t, err)
	assert.Nil(t, summary)
	assert.ErrorIs(t, err, diskFull)
	assert.Equal(t, "chest_1_1", generr.GetMeta(err)["id"])
}

func TestRunAbortsOnCollision(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := mockidentifiers.NewMockRegistry(ctrl)
	out := mocksink.NewMockSink(ctrl)

	registry.EXPECT().Claim(gomock.Any(), "run-1", "chest_1_1").
		Return(generr.Collisionf("identifier chest_1_1 claimed twice"))
	registry.EXPECT().Release(gomock.Any(), "run-1").Return(nil)

	svc := newService(t, generator.ServiceConfig{Sink: out, Registry: registry})
	_, err := svc.Run(context.Background(), &generator.RunInput{
		Categories: []asset.Category{asset.CategoryChest},
	})

	require.Error(t, err)
	assert.True(t, generr.IsCollision(err))
}

func TestRunAbortsOnBuildFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	builder := mockgenerator.NewMockRecordBuilder(ctrl)
	out := mocksink.NewMockSink(ctrl)

	builder.EXPECT().Build(gomock.Any()).Return(nil, generr.Lookupf("no image for chest tier 1"))

	svc := newService(t, generator.ServiceConfig{Builder: builder, Sink: out})
	_, err := svc.Run(context.Background(), &generator.RunInput{
		Categories: []asset.Category{asset.CategoryChest},
	})

	require.Error(t, err)
	assert.True(t, generr.IsLookup(err))
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := newService(t, generator.ServiceConfig{Sink: sink.NewMemorySink(), Workers: 4})
	_, err := svc.Run(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPlanCountsMatchEnumerator(t *testing.T) {
	e := newEnumerator(t)
	svc := newService(t, generator.ServiceConfig{Enumerator: e})

	plan, err := svc.Plan(context.Background(), []asset.Category{asset.CategorySpellbook, asset.CategoryCaster})
	require.NoError(t, err)

	spellbooks, err := e.Count(asset.CategorySpellbook)
	require.NoError(t, err)
	casters, err := e.Count(asset.CategoryCaster)
	require.NoError(t, err)

	assert.Equal(t, spellbooks, plan.Counts[asset.CategorySpellbook])
	assert.Equal(t, 4, plan.Counts[asset.CategoryCaster])
	assert.Equal(t, spellbooks+casters, plan.Total)
	assert.NotContains(t, plan.Counts, asset.CategoryChest)
}

func TestNewServiceRequiresDependencies(t *testing.T) {
	_, err := generator.NewService(nil)
	assert.True(t, generr.IsConfiguration(err))

	_, err = generator.NewService(&generator.ServiceConfig{Builder: newBuilder(t)})
	assert.True(t, generr.IsConfiguration(err))

	_, err = generator.NewService(&generator.ServiceConfig{Enumerator: newEnumerator(t)})
	assert.True(t, generr.IsConfiguration(err))
}
