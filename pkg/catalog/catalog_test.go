package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	// 2 core document + 8 hybrid + 6 aggregate + 10 split hybrid + 19 history
	assert.Equal(t, 45, c.Len())

	e, ok := c.Lookup("MSEG")
	require.True(t, ok)
	assert.Equal(t, "MATDOC", e.Replacement)
	assert.Equal(t, GroupCoreDocument, e.Group)

	e, ok = c.Lookup("MARD")
	require.True(t, ok)
	assert.Equal(t, "NSDM_V_MARD", e.Replacement)
	assert.Equal(t, "Storage location data no longer persisted.", e.Note)
}

func TestLookupCaseInsensitive(t *testing.T) {
	c := Default()

	for _, name := range []string{"mseg", "Mseg", "MSEG", "mSeG"} {
		e, ok := c.Lookup(name)
		require.True(t, ok, "lookup %q should succeed", name)
		assert.Equal(t, "MATDOC", e.Replacement)
	}

	_, ok := c.Lookup("BSEG")
	assert.False(t, ok)
}

func TestNamesLengthOrdering(t *testing.T) {
	c := Default()
	names := c.Names()

	require.Len(t, names, 45)
	for i := 1; i < len(names); i++ {
		assert.GreaterOrEqual(t, len(names[i-1]), len(names[i]),
			"names must be sorted by length descending: %q before %q", names[i-1], names[i])
	}

	// MARCH must precede MARC so the matcher alternation prefers it.
	march, marc := -1, -1
	for i, n := range names {
		switch n {
		case "MARCH":
			march = i
		case "MARC":
			marc = i
		}
	}
	require.NotEqual(t, -1, march)
	require.NotEqual(t, -1, marc)
	assert.Less(t, march, marc)
}

func TestNewNormalizesAndOverrides(t *testing.T) {
	c := New(
		map[string]Entry{"mseg": {Replacement: "MATDOC"}},
		map[string]Entry{"MSEG": {Replacement: "MATDOC_V2", Note: "override"}},
	)

	require.Equal(t, 1, c.Len())
	e, ok := c.Lookup("MSEG")
	require.True(t, ok)
	assert.Equal(t, "MATDOC_V2", e.Replacement)
	assert.Equal(t, "override", e.Note)
}

func TestWithout(t *testing.T) {
	c := Default()
	trimmed := c.Without("marc", "MARD", "UNKNOWN")

	assert.Equal(t, 43, trimmed.Len())
	_, ok := trimmed.Lookup("MARC")
	assert.False(t, ok)
	_, ok = trimmed.Lookup("MARD")
	assert.False(t, ok)

	// Original catalog untouched.
	_, ok = c.Lookup("MARC")
	assert.True(t, ok)
}

func TestAll(t *testing.T) {
	c := New(map[string]Entry{
		"MSEG": {Replacement: "MATDOC"},
		"MARD": {Replacement: "NSDM_V_MARD"},
	})

	all := c.All()
	require.Len(t, all, 2)
	assert.Equal(t, "MARD", all[0].Name)
	assert.Equal(t, "MSEG", all[1].Name)
}

func TestLoad(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tables.yaml")
		content := `
ZMSEG:
  replacement: ZMATDOC
  note: Custom shadow table.
  group: custom
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		entries, err := Load(path)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "ZMATDOC", entries["ZMSEG"].Replacement)
		assert.Equal(t, "custom", entries["ZMSEG"].Group)
	})

	t.Run("missing replacement", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tables.yaml")
		require.NoError(t, os.WriteFile(path, []byte("ZMSEG:\n  note: no target\n"), 0o600))

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "replacement is required")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
