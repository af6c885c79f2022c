package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/s4lift/s4lift/internal/cli/output"
)

// NewTablesCommand creates the tables command.
func NewTablesCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "List the obsolete tables and their replacements",
		Long: `Display the reference vocabulary: every obsolete MM-IM table the
remediate command detects, its S/4HANA replacement, and the migration note.

Entries added via tables.extra and removals via tables.disabled in
s4lift.yaml are reflected in the listing.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTables(cmd, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: text, markdown, json")
	return cmd
}

func runTables(cmd *cobra.Command, format string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	r := cmdCtx.Renderer
	if format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(format))
	}

	all := cmdCtx.Catalog.All()

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(all)
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.Out())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"GROUP", "TABLE", "REPLACEMENT", "NOTE"})
	for _, entry := range all {
		t.AppendRow(table.Row{entry.Group, entry.Name, entry.Replacement, entry.Note})
	}
	t.Render()

	r.Printf("%d tables\n", len(all))
	return nil
}
