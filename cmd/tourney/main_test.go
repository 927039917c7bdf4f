package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justinjudd/tourney"
	"github.com/justinjudd/tourney/models"
)

const swissConfig = `
format: swiss
name: Thursday blitz
participants:
  - id: a
    name: Ann
    seed: 1
  - id: b
    name: Ben
  - id: c
    name: Cat
  - id: d
    name: Dan
options:
  rounds: 2
  tiebreakers: [wins, seed]
`

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(swissConfig))
	require.NoError(t, err)
	assert.Equal(t, models.FormatSwiss, cfg.Format)
	assert.Equal(t, "Thursday blitz", cfg.Name)
	require.Len(t, cfg.Participants, 4)
	assert.Equal(t, 1, cfg.Participants[0].Seed)
	opts, ok := cfg.Options.(*models.SwissOptions)
	require.True(t, ok)
	assert.Equal(t, 2, opts.Rounds)
	assert.Equal(t, []models.Tiebreaker{models.TiebreakWins, models.TiebreakSeed}, opts.Tiebreakers)

	_, err = ParseConfig([]byte("format: ["))
	assert.Error(t, err)
}

func testRun(t *testing.T, env *Env, args ...string) (string, error) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	var out bytes.Buffer
	err := run(args, env, &out, log)
	return out.String(), err
}

func TestRunFormats(t *testing.T) {
	out, err := testRun(t, &Env{}, "formats")
	require.NoError(t, err)
	lines := strings.Fields(out)
	assert.Len(t, lines, len(models.FormatTypes))
	assert.Equal(t, "single-elimination", lines[0])
}

func TestRunGenerateSaveShow(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "swiss.yaml")
	require.NoError(t, os.WriteFile(path, []byte(swissConfig), 0o600))
	env := &Env{StorePath: filepath.Join(dir, "tourney.db"), LogLevel: logrus.InfoLevel}

	out, err := testRun(t, env, "validate", "-config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "swiss config is valid")

	out, err = testRun(t, env, "generate", "-config", path, "-save")
	require.NoError(t, err)
	generated, err := tourney.Import([]byte(out))
	require.NoError(t, err)
	assert.Len(t, generated.Structure.League.Schedule, 1)

	out, err = testRun(t, env, "list", "-format", "swiss")
	require.NoError(t, err)
	assert.Contains(t, out, generated.ID)
	assert.Contains(t, out, "Thursday blitz")

	out, err = testRun(t, env, "show", "-id", generated.ID)
	require.NoError(t, err)
	shown, err := tourney.Import([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, generated.Structure, shown.Structure)

	_, err = testRun(t, env, "delete", "-id", generated.ID)
	require.NoError(t, err)
	out, err = testRun(t, env, "list")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRunInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ffa.yaml")
	config := "format: ffa\nparticipants:\n  - id: a\n"
	require.NoError(t, os.WriteFile(path, []byte(config), 0o600))

	_, err := testRun(t, &Env{}, "validate", "-config", path)
	assert.ErrorIs(t, err, errInvalidConfig)
}

func TestRunUnknownCommand(t *testing.T) {
	out, err := testRun(t, &Env{}, "bracketify")
	assert.Error(t, err)
	assert.Contains(t, out, "Usage")

	_, err = testRun(t, &Env{}, "show")
	assert.Error(t, err)
}
