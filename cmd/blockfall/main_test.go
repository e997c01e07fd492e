package main

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qnkhuat/blockfall/pkg/game"
)

func runTest(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	defer log.SetOutput(os.Stderr)
	defer log.SetPrefix("")

	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func TestRunReportsCorruptScores(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	require.NoError(t, os.WriteFile(path, []byte("{bad"), 0644))

	code, stdout, stderr := runTest(t, "-scores", "-scores-file", path)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "failed to open scores")
	assert.Contains(t, stderr, path)
}

func TestRunReportsUnknownTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")

	code, _, stderr := runTest(t, "-theme", "neon", "-scores-file", path)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, `no theme named "neon"`)
}

func TestRunReportsInvalidBoard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")

	code, _, stderr := runTest(t, "-width", "3", "-scores-file", path)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "invalid configuration")
}

func TestRunWritesErrorsToLogToo(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "blockfall.log")

	code, _, stderr := runTest(t, "-theme", "neon", "-scores-file", filepath.Join(dir, "scores.json"), "-log", logPath)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "neon")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "neon")
}

func TestRunPrintsScores(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	store, err := game.OpenFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(game.ScoresKey, "800,1200"))

	code, stdout, stderr := runTest(t, "-scores", "-scores-file", path)

	assert.Equal(t, 0, code)
	assert.Empty(t, stderr)
	assert.Contains(t, stdout, "High Scores")
	assert.Contains(t, stdout, " 1. 1200\n")
	assert.Contains(t, stdout, " 2. 800\n")
}

func TestRunBadFlag(t *testing.T) {
	code, _, stderr := runTest(t, "-nope")

	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "flag provided but not defined")
}

func TestOptionsConfig(t *testing.T) {
	o, err := parseFlags([]string{"-width", "12", "-height", "24", "-verbose"}, io.Discard)
	require.NoError(t, err)

	c := o.config()
	assert.Equal(t, 12, c.Width)
	assert.Equal(t, 5, c.Spawn.X)
	assert.Equal(t, 22, c.Spawn.Y)
	assert.Equal(t, game.LogVerbose, c.LogLevel)
	assert.NoError(t, c.Validate())
}
