package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigJSON(t *testing.T) {
	cfg := Config{
		Format: FormatSwiss,
		Name:   "Club night",
		Participants: []*Participant{
			{ID: "a", Name: "Alice", Seed: 1},
			{ID: "b", Name: "Bob"},
		},
		Options: &SwissOptions{Rounds: 3, Tiebreakers: []Tiebreaker{TiebreakWins}},
	}
	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"options":{"rounds":3`)

	var decoded Config
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, cfg, decoded)
	assert.IsType(t, &SwissOptions{}, decoded.Options)
}

func TestConfigJSONOptionsMismatch(t *testing.T) {
	_, err := json.Marshal(Config{Format: FormatFFA, Options: &SwissOptions{}})
	assert.Error(t, err)
}

func TestConfigJSONNoOptions(t *testing.T) {
	var cfg Config
	require.NoError(t, json.Unmarshal([]byte(`{"format":"fifa","participants":[],"options":null}`), &cfg))
	assert.Equal(t, FormatFIFA, cfg.Format)
	assert.Nil(t, cfg.Options)

	err := json.Unmarshal([]byte(`{"format":"bowling","options":{"lanes":4}}`), &cfg)
	assert.Error(t, err)
}

func TestNewOptionsMatchesFormat(t *testing.T) {
	for _, f := range FormatTypes {
		opts, err := NewOptions(f)
		require.NoError(t, err)
		assert.Equal(t, f, opts.Format())
		assert.True(t, f.Valid())
	}
	assert.False(t, FormatType("bowling").Valid())
}

func TestValidationResultErr(t *testing.T) {
	r := ValidationResult{Valid: true}
	assert.NoError(t, r.Err())

	r.Add("participants", CodeInsufficientParticipants, "need %d", 2)
	r.Add("rounds", CodeInvalidRange, "negative")
	assert.False(t, r.Valid)
	err := r.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 errors occurred")
	assert.Contains(t, err.Error(), "participants: need 2 (insufficient-participants)")
}

func TestScoringByePoints(t *testing.T) {
	assert.Equal(t, 3, DefaultScoring.ByePoints())

	var s Scoring
	require.NoError(t, json.Unmarshal([]byte(`{"win":2,"draw":1}`), &s))
	assert.Nil(t, s.Bye)
	assert.Equal(t, 2, s.ByePoints())

	require.NoError(t, json.Unmarshal([]byte(`{"win":2,"draw":1,"bye":0}`), &s))
	assert.Equal(t, 0, s.ByePoints())
}
