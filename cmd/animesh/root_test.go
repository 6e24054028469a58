package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestScheduleCommandFromFile(t *testing.T) {
	input := filepath.Join("..", "..", "internal", "schedule", "testdata", "airing_page.json")

	out, err := runCLI(t, "schedule", "--input", input, "-t", "UTC", "-n", "2", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "Schedule (UTC)")
	assert.Contains(t, out, "Status")
}

func TestScheduleCommandTimezoneFromEnv(t *testing.T) {
	t.Setenv("ANIMESH_TIMEZONE", "jst")
	input := filepath.Join("..", "..", "internal", "schedule", "testdata", "airing_page.json")

	out, err := runCLI(t, "schedule", "--input", input, "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "Schedule (JST)")
}

func TestScheduleCommandRejectsUnknownOutput(t *testing.T) {
	_, err := runCLI(t, "schedule", "--output", "xml", "--input", "missing.json")
	require.Error(t, err)
}

func TestScheduleCommandMissingInput(t *testing.T) {
	_, err := runCLI(t, "schedule", "--input", filepath.Join("testdata", "nope.json"))
	require.Error(t, err)
}
