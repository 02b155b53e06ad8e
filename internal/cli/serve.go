package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/mermaidkit/pkg/server"
	"github.com/matzehuels/mermaidkit/pkg/store"
)

// serveCommand runs the HTTP server until interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string
	var ephemeral bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP render and storage server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := c.config()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Server.Addr
			}

			client, cc, err := c.newClient(ctx, false)
			if err != nil {
				return err
			}
			defer cc.Close()

			var st store.Store
			if ephemeral {
				st = store.NewMemoryStore()
			} else if st, err = cfg.OpenStore(ctx); err != nil {
				return err
			}
			defer st.Close()

			srv, err := server.New(server.Config{Renderer: client, Store: st, Logger: c.Logger})
			if err != nil {
				return err
			}
			c.Logger.Info("starting server", "addr", addr, "render", client.Server(),
				"cache", cfg.Cache.Backend, "store", storeBackend(cfg.Store.Backend, ephemeral))
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&ephemeral, "ephemeral", false, "keep saved diagrams in memory only")
	return cmd
}

func storeBackend(configured string, ephemeral bool) string {
	if ephemeral {
		return "memory"
	}
	return configured
}
