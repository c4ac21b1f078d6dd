package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "eca", cmd.Use)

	for _, name := range []string{"run", "sweep", "rule"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
}

func TestRootRejectsUnknownFormat(t *testing.T) {
	_, err := execute(t, NewRootCommand(), "--format", "xml", "rule", "30")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRuleCommandText(t *testing.T) {
	out, err := execute(t, NewRuleCommand(&RootOptions{Format: "text"}), "110")
	require.NoError(t, err)
	assert.Contains(t, out, "rule 110 = 01101110")
	assert.Contains(t, out, "111 110 101 100 011 010 001 000")
}

func TestRuleCommandJSON(t *testing.T) {
	out, err := execute(t, NewRuleCommand(&RootOptions{Format: "json"}), "30")
	require.NoError(t, err)

	var resp struct {
		Status string     `json:"status"`
		Data   RuleOutput `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "00011110", resp.Data.Binary)
	require.Len(t, resp.Data.Table, 8)
	assert.Equal(t, RuleEntry{Neighborhood: "100", Output: 1}, resp.Data.Table[3])
}

func TestRuleCommandRejectsOutOfRange(t *testing.T) {
	_, err := execute(t, NewRuleCommand(&RootOptions{Format: "text"}), "256")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRunCommandJSON(t *testing.T) {
	out, err := execute(t, NewRunCommand(&RootOptions{Format: "json"}),
		"--size", "16", "--rule", "0", "--steps", "1", "--seed", "3", "--show")
	require.NoError(t, err)

	var resp struct {
		Status string    `json:"status"`
		Data   RunOutput `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data.Trajectory, 2)
	assert.Equal(t, strings.Repeat("_", 16), resp.Data.Trajectory[1])
	require.NotNil(t, resp.Data.Metrics)
	assert.Zero(t, resp.Data.Metrics.Entropy)
	assert.Zero(t, resp.Data.Metrics.MutualInformation)
}

func TestRunCommandText(t *testing.T) {
	out, err := execute(t, NewRunCommand(&RootOptions{Format: "text"}),
		"--size", "32", "--rule", "30", "--steps", "8")
	require.NoError(t, err)
	assert.Contains(t, out, "rule 30  size 32  steps 8  seed 0")
	assert.Contains(t, out, "H(X)   =")
	assert.Contains(t, out, "I(X:Y) =")
}

func TestRunCommandInvalidRule(t *testing.T) {
	_, err := execute(t, NewRunCommand(&RootOptions{Format: "text"}), "--rule", "300")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRunCommandConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("size: 8\nrule: 30\nsteps: 2\n"), 0o644))

	out, err := execute(t, NewRunCommand(&RootOptions{Format: "json"}), "--config", path, "--rule", "90")
	require.NoError(t, err)

	var resp struct {
		Data RunOutput `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 8, resp.Data.Config.Size)
	assert.Equal(t, 90, resp.Data.Config.Rule, "explicit flag wins over file")
	assert.Equal(t, 2, resp.Data.Config.Steps)
}

func TestSweepCommandWritesResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.txt")
	out, err := execute(t, NewSweepCommand(&RootOptions{Format: "text"}),
		"--rules", "30,90,110", "--size", "16", "--steps", "4", "--workers", "2", "--out", path, "--top", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "evaluated 3 rules")
	assert.Contains(t, out, "top 2 by mutual")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"), line)
	}
}

func TestSweepCommandRejectsBadMetric(t *testing.T) {
	_, err := execute(t, NewSweepCommand(&RootOptions{Format: "text"}), "--rules", "1", "--size", "4", "--steps", "1", "--by", "variance")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(assert.AnError))
	assert.Equal(t, ExitCommandError, GetExitCode(WrapExitError(ExitCommandError, "x", assert.AnError)))
}
