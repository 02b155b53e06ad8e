package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mermaidkit/pkg/diagram/flowchart"
	"github.com/matzehuels/mermaidkit/pkg/errors"
	"github.com/matzehuels/mermaidkit/pkg/gallery"
	"github.com/matzehuels/mermaidkit/pkg/render/dot"
)

// exampleCommand prints, saves or renders a gallery sample.
func (c *CLI) exampleCommand() *cobra.Command {
	var (
		flags  renderFlags
		output string
		render bool
		local  bool
	)

	cmd := &cobra.Command{
		Use:   "example [family]",
		Short: "Show the sample diagram of a family",
		Long: `Show the sample diagram of a family.

Without a family argument an interactive picker is shown on terminals.

  mermaidkit example flowchart                 # print the script
  mermaidkit example mindmap -o mindmap.mmd    # save it
  mermaidkit example piechart --render -f png  # render piechart.png
  mermaidkit example flowchart --local         # render flowchart.svg with Graphviz`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: gallery.Families(),
		RunE: func(cmd *cobra.Command, args []string) error {
			family, err := resolveFamily(cmd.Context(), args)
			if err != nil {
				return err
			}
			d, err := gallery.Build(family)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			switch {
			case local:
				fc, ok := d.(*flowchart.FlowChart)
				if !ok {
					return errors.New(errors.ErrCodeUnsupported, "local rendering supports flowcharts only, not %s", family)
				}
				formats, _, _, err := flags.parse()
				if err != nil {
					return err
				}
				base := outputBase(output, family)
				for _, f := range formats {
					data, err := dot.Render(cmd.Context(), dot.FromFlowChart(fc), dot.Format(f))
					if err != nil {
						return err
					}
					path := base + "." + string(f)
					if err := os.WriteFile(path, data, 0o644); err != nil {
						return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
					}
					printFile(out, path)
				}
				return nil
			case render:
				return c.renderToFiles(cmd, d.String(), outputBase(output, family), &flags)
			case output != "":
				if err := d.Save(output); err != nil {
					return err
				}
				printSuccess(out, "Saved %s sample", family)
				printFile(out, output)
				return nil
			default:
				_, err := io.WriteString(out, d.String())
				return err
			}
		},
	}

	flags.register(cmd.Flags(), "svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "save the script (.mmd) or, with --render/--local, the image base path")
	cmd.Flags().BoolVar(&render, "render", false, "render through the render server")
	cmd.Flags().BoolVar(&local, "local", false, "render a flowchart locally with Graphviz")
	cmd.MarkFlagsMutuallyExclusive("render", "local")
	return cmd
}

func outputBase(output, fallback string) string {
	if output == "" {
		return fallback
	}
	return output[:len(output)-len(filepath.Ext(output))]
}

// newCommand writes a family sample to a file as a starting point.
func (c *CLI) newCommand() *cobra.Command {
	var output string
	var force bool

	cmd := &cobra.Command{
		Use:       "new [family]",
		Short:     "Create a .mmd file from a family sample",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: gallery.Families(),
		RunE: func(cmd *cobra.Command, args []string) error {
			family, err := resolveFamily(cmd.Context(), args)
			if err != nil {
				return err
			}
			d, err := gallery.Build(family)
			if err != nil {
				return err
			}
			path := output
			if path == "" {
				path = family + ".mmd"
			}
			if _, err := os.Stat(path); err == nil && !force {
				return errors.New(errors.ErrCodeInvalidInput, "%s already exists (use --force to overwrite)", path)
			}
			if err := d.Save(path); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printSuccess(out, "Created %s diagram", family)
			printFile(out, path)
			printNextStep(out, "Render it", appName+" render "+path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "file to create (default <family>.mmd)")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
