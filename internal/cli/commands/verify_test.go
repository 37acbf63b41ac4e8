package commands

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/touriq/internal/dataset"
	"github.com/leapstack-labs/touriq/internal/verify"
)

func TestVerifyCommand_PassesOnGeneratedDataset(t *testing.T) {
	dir := t.TempDir()
	runGenerateCommand(t, "--seed", "42", "--out-dir", dir, "-f", "json")

	cmd := NewVerifyCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"--input", filepath.Join(dir, dataset.ArrivalsFile), "-f", "json"})

	require.NoError(t, cmd.Execute(), errOut.String())

	var report verify.Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))

	assert.True(t, report.OK())
	assert.Equal(t, 65*5*12, report.Records)
	assert.Equal(t, len(verify.Battery()), report.Passed)
	assert.Zero(t, report.Failed)
	assert.Zero(t, report.Skipped)
	assert.NotEmpty(t, report.ID)
}

func TestVerifyCommand_MissingDataset(t *testing.T) {
	cmd := NewVerifyCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"--input", filepath.Join(t.TempDir(), dataset.ArrivalsFile)})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run 'touriq generate' first")
}

func TestVerifyCommand_TextReport(t *testing.T) {
	dir := t.TempDir()
	runGenerateCommand(t, "--seed", "42", "--out-dir", dir, "-f", "json")

	cmd := NewVerifyCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"--input", filepath.Join(dir, dataset.ArrivalsFile), "-f", "text"})

	require.NoError(t, cmd.Execute(), errOut.String())

	text := out.String()
	assert.Contains(t, text, "SQL Compatibility Report")
	assert.Contains(t, text, "record count")
	assert.Contains(t, text, "10 passed")
}

func TestVerifyCommand_MarkdownReport(t *testing.T) {
	dir := t.TempDir()
	runGenerateCommand(t, "--seed", "42", "--out-dir", dir, "-f", "json")

	cmd := NewVerifyCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"--input", filepath.Join(dir, dataset.ArrivalsFile), "-f", "markdown"})

	require.NoError(t, cmd.Execute(), errOut.String())

	md := out.String()
	assert.Contains(t, md, "# SQL Compatibility Report")
	assert.Contains(t, md, "**[PASS]** record count")
}
