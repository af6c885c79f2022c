package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) {
	cmd := NewRootCmd()

	assert.Equal(t, "s4lift", cmd.Use)
	assert.Equal(t, Version, cmd.Version)

	// All subcommands registered.
	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	for _, want := range []string{"remediate", "tables", "serve", "version", "completion"} {
		assert.Contains(t, names, want)
	}

	// Persistent flags exist.
	for _, flag := range []string{"config", "verbose", "output", "author"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestRootCmdVersion(t *testing.T) {
	cmd := NewRootCmd()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--version"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), Version)
}
