package tournament

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justinjudd/tourney/models"
)

func TestStandardRegistry(t *testing.T) {
	registry := NewStandardRegistry()
	assert.Equal(t, models.FormatTypes, registry.Formats())

	players := roster(8)
	for _, format := range registry.Formats() {
		f := registry.MustGet(format)
		cfg := f.DefaultConfig(players)
		assert.Equal(t, format, cfg.Format)
		require.NotNil(t, cfg.Options, "%s", format)
		assert.Equal(t, format, cfg.Options.Format())

		result, err := registry.Validate(cfg)
		require.NoError(t, err)
		assert.True(t, result.Valid, "%s: %v", format, result.Errors)

		structure, err := registry.Generate(cfg)
		require.NoError(t, err, "%s", format)
		assert.Equal(t, format, structure.Format)
	}
}

func TestRegistryUnknownFormat(t *testing.T) {
	registry := NewRegistry()
	_, err := registry.Get(models.FormatSwiss)
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = registry.Generate(models.Config{Format: "bowling"})
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = registry.Validate(models.Config{Format: "bowling"})
	assert.ErrorIs(t, err, ErrUnknownFormat)

	assert.Panics(t, func() { registry.MustGet(models.FormatSwiss) })
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(Swiss{}))
	assert.Error(t, registry.Register(Swiss{}))
	assert.Equal(t, []models.FormatType{models.FormatSwiss}, registry.Formats())
}

func TestGenerateOptionsMismatch(t *testing.T) {
	registry := NewStandardRegistry()
	_, err := registry.Generate(models.Config{
		Format:       models.FormatSingleElimination,
		Participants: roster(4),
		Options:      &models.RoundRobinOptions{},
	})
	assert.ErrorIs(t, err, ErrOptionsMismatch)
}

func TestGenerateWithoutOptions(t *testing.T) {
	registry := NewStandardRegistry()
	structure, err := registry.Generate(models.Config{Format: models.FormatSingleElimination, Participants: roster(4)})
	require.NoError(t, err)
	assert.Len(t, structure.Bracket.Rounds, 2)
}
