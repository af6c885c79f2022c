package commands

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

	"github.com/s4lift/s4lift/pkg/remediate"
)

func TestNewRemediateCommand(t *testing.T) {
	cmd := NewRemediateCommand()

	assert.Equal(t, "remediate [path...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	for _, flag := range []string{"write", "format", "ext", "watch"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestCollectFiles(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, filepath.Join(dir, "a.abap"), "SELECT * FROM MARD.")
	mustWrite(t, filepath.Join(dir, "b.txt"), "SELECT * FROM MSEG.")
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.MkdirAll(sub, 0o750))
	mustWrite(t, filepath.Join(sub, "c.abap"), "SELECT * FROM MCHB.")

	t.Run("directory walk filters by extension", func(t *testing.T) {
		files, err := collectFiles([]string{dir}, []string{".abap"})
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "a.abap"),
			filepath.Join(sub, "c.abap"),
		}, files)
	})

	t.Run("extension without dot", func(t *testing.T) {
		files, err := collectFiles([]string{dir}, []string{"abap", "txt"})
		require.NoError(t, err)
		assert.Len(t, files, 3)
	})

	t.Run("explicit file always kept", func(t *testing.T) {
		files, err := collectFiles([]string{filepath.Join(dir, "b.txt")}, []string{".abap"})
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "b.txt")}, files)
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := collectFiles([]string{filepath.Join(dir, "nope")}, []string{".abap"})
		assert.Error(t, err)
	})
}

func TestRemediateCommandDryRun(t *testing.T) {
	dir := t.TempDir()
	src := "SELECT * FROM MARD."
	path := filepath.Join(dir, "zmm.abap")
	mustWrite(t, path, src)

	out, errOut := runCommand(t, NewRemediateCommand(), nil, dir)

	// Dry run: report only, file untouched.
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, src, string(content))

	assert.Contains(t, out, "MARD")
	assert.Contains(t, out, "NSDM_V_MARD")
	assert.Contains(t, out, "would rewrite 1 references in 1 of 1 files")
	assert.Empty(t, errOut)
}

func TestRemediateCommandWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "zmm.abap")
	mustWrite(t, path, "SELECT * FROM MARD.\nUPDATE MSEG SET menge = 0.")

	out, _ := runCommand(t, NewRemediateCommand(), nil, "--write", dir)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "SELECT * FROM NSDM_V_MARD\n\" Changed by PwC on ")
	assert.Contains(t, string(content), "UPDATE MSEG SET menge = 0.")
	assert.Contains(t, out, "rewrote 1 references in 1 of 1 files")

	t.Run("second run is a no-op", func(t *testing.T) {
		out, _ := runCommand(t, NewRemediateCommand(), nil, "--write", dir)
		assert.Contains(t, out, "No obsolete table references found")
	})
}

func TestRemediateCommandJSON(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, filepath.Join(dir, "zmm.abap"), "SELECT * FROM MARD.")
	mustWrite(t, filepath.Join(dir, "clean.abap"), "WRITE: / 'hello'.")

	out, _ := runCommand(t, NewRemediateCommand(), nil, "--format", "json", dir)

	var reports []struct {
		Path    string            `json:"path"`
		Changed bool              `json:"changed"`
		Issues  []remediate.Issue `json:"issues"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &reports))

	// Only changed files are reported.
	require.Len(t, reports, 1)
	assert.True(t, reports[0].Changed)
	require.Len(t, reports[0].Issues, 1)
	assert.Equal(t, "MARD", reports[0].Issues[0].Table)
}

func TestRemediateCommandStdin(t *testing.T) {
	in := strings.NewReader("SELECT * FROM MARD.")
	out, errOut := runCommand(t, NewRemediateCommand(), in)

	assert.Contains(t, out, "SELECT * FROM NSDM_V_MARD")
	assert.Contains(t, errOut, "Replaced MARD with NSDM_V_MARD.")
}

func TestRemediateCommandNoFiles(t *testing.T) {
	dir := t.TempDir()

	cmd := NewRemediateCommand()
	cmd.SetArgs([]string{dir})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no source files found")
}

// runCommand executes a command with the given stdin and args, returning
// stdout and stderr.
func runCommand(t *testing.T, cmd *cobra.Command, in *strings.Reader, args ...string) (string, string) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	if in != nil {
		cmd.SetIn(in)
	}
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String(), errOut.String()
}

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}
