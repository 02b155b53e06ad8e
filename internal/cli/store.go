package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mermaidkit/pkg/diagram"
	"github.com/matzehuels/mermaidkit/pkg/errors"
	mkio "github.com/matzehuels/mermaidkit/pkg/io"
	"github.com/matzehuels/mermaidkit/pkg/store"
)

// storeCommand manages saved diagrams.
func (c *CLI) storeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Manage saved diagrams",
	}

	cmd.AddCommand(c.storePushCommand())
	cmd.AddCommand(c.storeGetCommand())
	cmd.AddCommand(c.storeListCommand())
	cmd.AddCommand(c.storeDeleteCommand())
	cmd.AddCommand(c.storeExportCommand())
	cmd.AddCommand(c.storeImportCommand())

	return cmd
}

// withStore opens the configured store for the duration of fn.
func (c *CLI) withStore(ctx context.Context, fn func(store.Store) error) error {
	cfg, err := c.config()
	if err != nil {
		return err
	}
	st, err := cfg.OpenStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()
	return fn(st)
}

func (c *CLI) storePushCommand() *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "push [file.mmd]",
		Short: "Save a Mermaid file to the store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateExtension(args[0], diagram.Extensions); err != nil {
				return err
			}
			g, err := diagram.Load(args[0])
			if err != nil {
				return err
			}
			if title != "" {
				g.Title = title
			}
			doc, err := store.FromDiagram(g)
			if err != nil {
				return err
			}
			return c.withStore(cmd.Context(), func(st store.Store) error {
				if err := st.Put(cmd.Context(), doc); err != nil {
					return err
				}
				c.Logger.Debug("document stored", "id", doc.ID, "bytes", len(doc.Script))
				out := cmd.OutOrStdout()
				printSuccess(out, "Saved %s", StyleHighlight.Render(doc.Title))
				printKeyValue(out, "id", doc.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "document title (default: file name)")
	return cmd
}

func (c *CLI) storeGetCommand() *cobra.Command {
	var (
		flags  renderFlags
		output string
		render bool
	)

	cmd := &cobra.Command{
		Use:   "get [id]",
		Short: "Print, save or render a saved diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var doc *store.Document
			err := c.withStore(cmd.Context(), func(st store.Store) error {
				var err error
				doc, err = st.Get(cmd.Context(), args[0])
				return err
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case render:
				return c.renderToFiles(cmd, doc.Script, outputBase(output, doc.Title), &flags)
			case output != "":
				if err := doc.Graph().Save(output); err != nil {
					return err
				}
				printFile(out, output)
				return nil
			default:
				_, err := io.WriteString(out, doc.Script)
				return err
			}
		},
	}

	flags.register(cmd.Flags(), "svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "save the script (.mmd) or, with --render, the image base path")
	cmd.Flags().BoolVar(&render, "render", false, "render through the render server")
	return cmd
}

func (c *CLI) storeListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved diagrams",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withStore(cmd.Context(), func(st store.Store) error {
				docs, err := st.List(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(docs) == 0 {
					printInfo(out, "No saved diagrams")
					return nil
				}
				io.WriteString(out, documentTable(docs)+"\n")
				return nil
			})
		},
	}
}

func documentTable(docs []*store.Document) string {
	rows := make([][]string, len(docs))
	for i, d := range docs {
		rows[i] = []string{d.ID, d.Title, d.UpdatedAt.Local().Format(time.DateTime)}
	}
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("ID", "Title", "Updated").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle()
		}).
		Render()
}

func (c *CLI) storeDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "delete [id]",
		Aliases: []string{"rm"},
		Short:   "Delete a saved diagram",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withStore(cmd.Context(), func(st store.Store) error {
				if err := st.Delete(cmd.Context(), args[0]); err != nil {
					return err
				}
				printSuccess(cmd.OutOrStdout(), "Deleted %s", args[0])
				return nil
			})
		},
	}
}

func (c *CLI) storeExportCommand() *cobra.Command {
	var scriptsDir string

	cmd := &cobra.Command{
		Use:   "export [bundle.json]",
		Short: "Export saved diagrams to a JSON bundle or .mmd files",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && scriptsDir == "" {
				return errors.New(errors.ErrCodeInvalidInput, "give a bundle path or --scripts")
			}
			return c.withStore(cmd.Context(), func(st store.Store) error {
				docs, err := st.List(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(args) == 1 {
					if err := errors.ValidateExtension(args[0], []string{".json"}); err != nil {
						return err
					}
					if err := mkio.ExportJSON(docs, args[0]); err != nil {
						return err
					}
					printSuccess(out, "Exported %s", plural(len(docs), "diagram"))
					printFile(out, args[0])
				}
				if scriptsDir != "" {
					paths, err := mkio.ExportScripts(docs, scriptsDir)
					if err != nil {
						return err
					}
					printSuccess(out, "Wrote %s", plural(len(paths), "script"))
					printDetail(out, "Directory: %s", scriptsDir)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&scriptsDir, "scripts", "", "also write each diagram as <dir>/<title>.mmd")
	return cmd
}

func (c *CLI) storeImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import [bundle.json]",
		Short: "Import diagrams from a JSON bundle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := mkio.ImportJSON(args[0])
			if err != nil {
				return err
			}
			return c.withStore(cmd.Context(), func(st store.Store) error {
				for _, d := range docs {
					if err := st.Put(cmd.Context(), d); err != nil {
						return err
					}
				}
				printSuccess(cmd.OutOrStdout(), "Imported %s", plural(len(docs), "diagram"))
				return nil
			})
		},
	}
}
