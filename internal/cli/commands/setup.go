package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/s4lift/s4lift/internal/cli/config"
	"github.com/s4lift/s4lift/internal/cli/output"
	"github.com/s4lift/s4lift/pkg/catalog"
	"github.com/s4lift/s4lift/pkg/remediate"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Catalog  *catalog.Catalog
	Engine   *remediate.Engine
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext with the catalog, engine, and
// renderer built from the loaded configuration.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	cat, err := buildCatalog(cfg)
	if err != nil {
		return nil, err
	}

	eng, err := buildEngine(cfg, cat, logger)
	if err != nil {
		return nil, err
	}

	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Catalog:  cat,
		Engine:   eng,
		Renderer: r,
	}, nil
}

// getConfig returns the current configuration, falling back to environment
// variables with defaults when no config has been loaded.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	radius := config.DefaultSnippetRadius
	if v, err := strconv.Atoi(os.Getenv("S4LIFT_REMEDIATE_SNIPPET_RADIUS")); err == nil && v > 0 {
		radius = v
	}

	return &config.Config{
		ListenAddr:   getEnvOrDefault("S4LIFT_LISTEN_ADDR", config.DefaultListenAddr),
		Verbose:      os.Getenv("S4LIFT_VERBOSE") == "true",
		OutputFormat: getEnvOrDefault("S4LIFT_OUTPUT", config.DefaultOutput),
		Annotation: config.AnnotationConfig{
			Author: getEnvOrDefault("S4LIFT_ANNOTATION_AUTHOR", config.DefaultAuthor),
		},
		Remediate: config.RemediateConfig{SnippetRadius: radius},
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// buildCatalog assembles the reference vocabulary: built-in tables, plus an
// optional overlay file, minus any disabled names.
func buildCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	cat := catalog.Default()

	if cfg.Tables.Extra != "" {
		overlay, err := catalog.Load(cfg.Tables.Extra)
		if err != nil {
			return nil, fmt.Errorf("loading extra vocabulary: %w", err)
		}
		cat = cat.Merge(overlay)
	}

	if len(cfg.Tables.Disabled) > 0 {
		cat = cat.Without(cfg.Tables.Disabled...)
	}
	return cat, nil
}

func buildEngine(cfg *config.Config, cat *catalog.Catalog, logger *slog.Logger) (*remediate.Engine, error) {
	opts := []remediate.Option{
		remediate.WithLogger(logger),
	}
	if cfg.Annotation.Author != "" {
		opts = append(opts, remediate.WithAuthor(cfg.Annotation.Author))
	}
	if cfg.Remediate.SnippetRadius > 0 {
		opts = append(opts, remediate.WithSnippetRadius(cfg.Remediate.SnippetRadius))
	}
	if cfg.Remediate.InjectOrderBy {
		opts = append(opts, remediate.WithOrderByInjection())
	}

	return remediate.New(cat, opts...)
}
