package commands

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/s4lift/s4lift/internal/server"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the remediation HTTP API",
		Long: `Run the batch remediation service.

POST /remediate-mm-im accepts a JSON array of code units and returns the
same units with remediated_code added. Pass ?include_issues=1 to attach the
audit issue list to each unit. GET /tables returns the reference vocabulary.`,
		Example: `  # Listen on the configured address (default :8180)
  s4lift serve

  # Listen on a specific address
  s4lift serve --addr :9090`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd)
		},
	}

	cmd.Flags().String("addr", "", "Listen address (overrides listen_addr)")
	return cmd
}

func runServe(cmd *cobra.Command) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	addr := cmdCtx.Cfg.ListenAddr
	if flagAddr, _ := cmd.Flags().GetString("addr"); flagAddr != "" {
		addr = flagAddr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(server.Config{
		Addr:    addr,
		Engine:  cmdCtx.Engine,
		Catalog: cmdCtx.Catalog,
		Logger:  cmdCtx.Logger,
	})
	return srv.Serve(ctx)
}
