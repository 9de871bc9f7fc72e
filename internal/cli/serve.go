package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/symbolmod/pkg/observability"
	"github.com/matzehuels/symbolmod/pkg/server"
)

func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		redis   string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the modifier API over HTTP",
		Example: `  symbolmod serve --addr :8080
  curl 'localhost:8080/v1/modifiers?affiliation=hostile&reinforced=(%2B)&signature=!'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				c.cfg.Server.Addr = addr
			}
			if cmd.Flags().Changed("redis") {
				c.cfg.Cache.Redis = redis
			}

			ctx := cmd.Context()
			runner, err := c.newRunner(ctx, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			observability.SetHTTPHooks(observability.NewLogHooks(c.Logger))
			printInfo("Serving on %s", StyleValue.Render(c.cfg.Server.Addr))
			return server.New(runner, c.Logger).ListenAndServe(ctx, c.cfg.Server.Addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().StringVar(&redis, "redis", "", "Redis address for the shared artifact cache")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}
