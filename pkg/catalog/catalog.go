// Package catalog holds the reference vocabulary of obsolete SAP MM-IM
// tables and their S/4HANA replacements.
//
// A Catalog is built once at startup and passed by reference into the
// remediation engine; it is never mutated afterwards and is safe for
// concurrent use. Site-specific vocabularies can be loaded from YAML and
// layered over the built-in set.
package catalog

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entry describes the replacement for one obsolete table.
type Entry struct {
	Replacement string `yaml:"replacement" json:"replacement"`
	Note        string `yaml:"note" json:"note"`
	Group       string `yaml:"group,omitempty" json:"group,omitempty"`
}

// Table is one catalog row with its legacy name attached, used for listings.
type Table struct {
	Name string `json:"name"`
	Entry
}

// Catalog maps obsolete table names (upper-case) to replacement entries.
type Catalog struct {
	entries map[string]Entry
	names   []string
}

// New builds a Catalog from one or more entry maps. Later maps override
// earlier ones. Keys are normalized to upper case.
func New(maps ...map[string]Entry) *Catalog {
	entries := make(map[string]Entry)
	for _, m := range maps {
		for name, e := range m {
			entries[strings.ToUpper(name)] = e
		}
	}

	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	// Longest names first so the matcher's alternation never lets a short
	// name pre-empt a longer one that contains it (MARC vs MARCH).
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})

	return &Catalog{entries: entries, names: names}
}

// Lookup returns the entry for a table name, matching case-insensitively.
func (c *Catalog) Lookup(name string) (Entry, bool) {
	e, ok := c.entries[strings.ToUpper(name)]
	return e, ok
}

// Names returns the vocabulary sorted by length descending, then lexically.
// The returned slice is a copy.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// All returns every table in the catalog, ordered lexically by name.
func (c *Catalog) All() []Table {
	out := make([]Table, 0, len(c.entries))
	for name, e := range c.entries {
		out = append(out, Table{Name: name, Entry: e})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Merge derives a Catalog with the overlay entries layered on top of the
// receiver's. Overlay keys are normalized to upper case and override
// existing entries.
func (c *Catalog) Merge(overlay map[string]Entry) *Catalog {
	if len(overlay) == 0 {
		return c
	}
	return New(c.entries, overlay)
}

// Without derives a Catalog with the given table names removed. Names are
// matched case-insensitively; unknown names are ignored.
func (c *Catalog) Without(names ...string) *Catalog {
	if len(names) == 0 {
		return c
	}
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		drop[strings.ToUpper(n)] = true
	}
	kept := make(map[string]Entry, len(c.entries))
	for name, e := range c.entries {
		if !drop[name] {
			kept[name] = e
		}
	}
	return New(kept)
}

// Load reads a vocabulary overlay from a YAML file mapping table names to
// entries:
//
//	MSEG:
//	  replacement: MATDOC
//	  note: Item + header + attributes merged.
func Load(path string) (map[string]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading vocabulary file: %w", err)
	}

	var entries map[string]Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing vocabulary file %s: %w", path, err)
	}

	for name, e := range entries {
		if e.Replacement == "" {
			return nil, fmt.Errorf("vocabulary entry %s: replacement is required", name)
		}
	}
	return entries, nil
}
