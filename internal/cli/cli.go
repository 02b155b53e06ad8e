// Package cli implements the mermaidkit command-line interface.
//
// # Commands
//
//   - example: print, save or render the sample diagram of a family
//   - new: write a family sample to a .mmd file as a starting point
//   - render: render a .mmd file to SVG and/or PNG
//   - serve: run the HTTP server
//   - store: push, get, list, delete, export and import saved diagrams
//   - cache: clear or locate the render cache
//   - config: show or locate the configuration
//   - version, completion
//
// # Logging
//
// Commands log through one charmbracelet/log logger on stderr. --verbose
// selects debug level and --quiet selects warn level.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mermaidkit/pkg/buildinfo"
	"github.com/matzehuels/mermaidkit/pkg/cache"
	"github.com/matzehuels/mermaidkit/pkg/config"
	"github.com/matzehuels/mermaidkit/pkg/observability"
	"github.com/matzehuels/mermaidkit/pkg/render/ink"
)

const appName = "mermaidkit"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
	LogWarn  = log.WarnLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	verbose    bool
	quiet      bool
	cfg        *config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Build, render and store Mermaid diagrams",
		Long:         `mermaidkit builds Mermaid diagram definitions from code, renders them through a mermaid.ink compatible server and keeps saved diagrams in a local or MongoDB store.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case c.verbose:
				c.SetLogLevel(LogDebug)
				observability.NewLogHooks(c.Logger).Register()
			case c.quiet:
				c.SetLogLevel(LogWarn)
			}
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (.toml, .yaml or .yml)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVarP(&c.quiet, "quiet", "q", false, "only log warnings and errors")
	root.MarkFlagsMutuallyExclusive("verbose", "quiet")

	root.AddCommand(c.exampleCommand())
	root.AddCommand(c.newCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.storeCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.versionCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// config loads the configuration once per process.
func (c *CLI) config() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("config loaded", "path", c.configPath, "server", cfg.Render.Server,
		"cache", cfg.Cache.Backend, "store", cfg.Store.Backend)
	c.cfg = cfg
	return cfg, nil
}

// newClient builds a render client. The caller closes the returned cache.
func (c *CLI) newClient(ctx context.Context, noCache bool) (*ink.Client, cache.Cache, error) {
	cfg, err := c.config()
	if err != nil {
		return nil, nil, err
	}

	var cc cache.Cache = cache.NewNullCache()
	if !noCache {
		if cc, err = cfg.OpenCache(ctx); err != nil {
			c.Logger.Warn("cache unavailable, rendering without it", "err", err)
			cc = cache.NewNullCache()
		}
	}

	client, err := ink.New(cfg.InkConfig(cc, c.Logger))
	if err != nil {
		cc.Close()
		return nil, nil, err
	}
	return client, cc, nil
}
