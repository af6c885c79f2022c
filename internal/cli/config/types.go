// Package config provides configuration management for the s4lift CLI.
//
// Configuration is layered from defaults, an optional s4lift.yaml file,
// S4LIFT_-prefixed environment variables, and CLI flags, in increasing
// order of precedence.
package config

// Config holds all CLI configuration options.
type Config struct {
	ListenAddr   string           `koanf:"listen_addr"`
	Verbose      bool             `koanf:"verbose"`
	OutputFormat string           `koanf:"output"`
	Annotation   AnnotationConfig `koanf:"annotation"`
	Remediate    RemediateConfig  `koanf:"remediate"`
	Tables       TablesConfig     `koanf:"tables"`
}

// AnnotationConfig controls the provenance comment appended after each
// rewritten identifier.
type AnnotationConfig struct {
	Author string `koanf:"author"`
}

// RemediateConfig holds rewrite-engine tuning.
type RemediateConfig struct {
	SnippetRadius int  `koanf:"snippet_radius"`
	InjectOrderBy bool `koanf:"inject_order_by"`
}

// TablesConfig adjusts the reference vocabulary.
type TablesConfig struct {
	// Extra is a path to a YAML file with additional or overriding
	// table entries.
	Extra string `koanf:"extra"`
	// Disabled lists legacy table names to exclude from rewriting.
	Disabled []string `koanf:"disabled"`
}

// Default configuration values.
const (
	DefaultListenAddr    = ":8180"
	DefaultOutput        = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultAuthor        = "PwC"
	DefaultSnippetRadius = 60
)
