package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/touriq/internal/dataset"
	"github.com/leapstack-labs/touriq/internal/testutil"
)

func runGenerateCommand(t *testing.T, args ...string) (*GenerateOutput, string) {
	t.Helper()

	cmd := NewGenerateCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	require.NoError(t, cmd.Execute(), errOut.String())

	var parsed GenerateOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &parsed))
	return &parsed, out.String()
}

func TestGenerateCommand_WritesAllFiles(t *testing.T) {
	dir := t.TempDir()
	out, _ := runGenerateCommand(t, "--seed", "42", "--out-dir", dir, "-f", "json")

	assert.Equal(t, int64(42), out.Seed)
	assert.Equal(t, dir, out.OutDir)
	assert.Equal(t, 65, out.Summary.TotalCountries)
	assert.Equal(t, 65*5*12, out.Summary.TotalRecords)

	expected := []string{
		dataset.ArrivalsFile,
		dataset.HotelsFile,
		dataset.FlightsFile,
		dataset.RevenueFile,
		dataset.SummaryFile,
		dataset.ScriptFile,
	}
	require.Len(t, out.Files, len(expected))
	for i, name := range expected {
		assert.Equal(t, name, out.Files[i].Name)
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestGenerateCommand_DeterministicAcrossRuns(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()
	runGenerateCommand(t, "--seed", "7", "--out-dir", dirA, "-f", "json")
	runGenerateCommand(t, "--seed", "7", "--out-dir", dirB, "-f", "json")

	for _, name := range []string{dataset.ArrivalsFile, dataset.HotelsFile, dataset.FlightsFile, dataset.RevenueFile} {
		a, err := os.ReadFile(filepath.Join(dirA, name))
		require.NoError(t, err)
		b, err := os.ReadFile(filepath.Join(dirB, name))
		require.NoError(t, err)
		assert.Equal(t, a, b, "%s differs between identical runs", name)
	}
}

func TestGenerateCommand_DifferentSeedsDiffer(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()
	runGenerateCommand(t, "--seed", "1", "--out-dir", dirA, "-f", "json")
	runGenerateCommand(t, "--seed", "2", "--out-dir", dirB, "-f", "json")

	a, err := os.ReadFile(filepath.Join(dirA, dataset.ArrivalsFile))
	require.NoError(t, err)
	b, err := os.ReadFile(filepath.Join(dirB, dataset.ArrivalsFile))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestGenerateDataset_InvalidOutDir(t *testing.T) {
	cmdCtx := &CommandContext{Logger: testutil.NewTestLogger(t)}

	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	_, err := generateDataset(42, filepath.Join(blocker, "nested"), cmdCtx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output directory")
}

func TestGenerateCommand_RejectsArgs(t *testing.T) {
	cmd := NewGenerateCommand()
	cmd.SetArgs([]string{"unexpected"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	require.Error(t, cmd.Execute())
}
