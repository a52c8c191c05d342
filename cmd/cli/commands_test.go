package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"frauddash/internal/config"
	"frauddash/internal/synth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, key := range []string{"DATA_FILE", "DATA_SHEET", "FLAG_COLUMN", "LOG_LEVEL", "NULL_POLICY"} {
		t.Setenv(key, "")
	}
	t.Setenv("LOG_LEVEL", "ERROR")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerateThenSummarize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Cleaned.csv")

	out, err := runCLI(t, "generate", "--out", path, "--rows", "200", "--seed", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote")
	assert.FileExists(t, path)

	out, err = runCLI(t, "summarize", "--file", path, "--numerical", "transaction_amount", "--categorical", "device_type")
	require.NoError(t, err)
	assert.Contains(t, out, "Number of rows: 200, Number of columns: 11")
	assert.Contains(t, out, "Density Plot for transaction_amount")
	assert.Contains(t, out, "device_type Distribution by Fraud Status")
	assert.Contains(t, out, "Feature Correlation Heatmap")
	assert.Contains(t, out, "Legitimate")
	assert.Contains(t, out, "Fraud")
}

func TestFeaturesCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	require.NoError(t, synth.WriteCSV(path, [][]string{
		{"flag", "session_duration", "device_type"},
		{"0", "10", "web"},
		{"1", "20", "mobile"},
	}))

	out, err := runCLI(t, "features", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "session_duration")
	assert.Contains(t, out, "missing")
}

func TestSummarizeErrors(t *testing.T) {
	_, err := runCLI(t, "summarize", "--file", filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "Cleaned.csv")
	_, err = runCLI(t, "generate", "--out", path, "--rows", "20")
	require.NoError(t, err)

	_, err = runCLI(t, "summarize", "--file", path, "--numerical", "device_type")
	assert.Error(t, err)
}

func TestGenerateRejectsUnknownExtension(t *testing.T) {
	_, err := runCLI(t, "generate", "--out", filepath.Join(t.TempDir(), "out.parquet"))
	assert.Error(t, err)
}

func TestRootOptionsApply(t *testing.T) {
	t.Setenv("DATA_FILE", "")
	t.Setenv("FLAG_COLUMN", "")
	cfg, err := config.Load()
	require.NoError(t, err)

	opts := &rootOptions{file: "export.xlsx", sheet: "Q3", flagColumn: "is_fraud"}
	require.NoError(t, opts.apply(cfg))
	assert.Equal(t, "export.xlsx", cfg.Data.File)
	assert.Equal(t, "Q3", cfg.Data.Sheet)
	assert.Equal(t, "is_fraud", cfg.Data.FlagColumn)
	assert.Empty(t, os.Getenv("DATA_FILE"))
	assert.Empty(t, os.Getenv("FLAG_COLUMN"))

	bad := &rootOptions{file: "export.json"}
	assert.Error(t, bad.apply(cfg))
}
