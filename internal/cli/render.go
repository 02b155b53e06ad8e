package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/mermaidkit/pkg/diagram"
	"github.com/matzehuels/mermaidkit/pkg/errors"
	"github.com/matzehuels/mermaidkit/pkg/render/ink"
)

// renderFlags are shared by the render, example and store get commands.
type renderFlags struct {
	formats  string
	width    int
	height   int
	scale    float64
	position string
	noCache  bool
}

func (f *renderFlags) register(fs *pflag.FlagSet, formatsDefault string) {
	fs.StringVarP(&f.formats, "format", "f", formatsDefault, "output format(s): svg, png (comma-separated)")
	fs.IntVar(&f.width, "width", 0, "image width in pixels")
	fs.IntVar(&f.height, "height", 0, "image height in pixels")
	fs.Float64Var(&f.scale, "scale", 0, "scale factor between 1 and 3 (needs --width or --height)")
	fs.StringVar(&f.position, "position", "", "wrap the SVG in an HTML div aligned left, center or right")
	fs.BoolVar(&f.noCache, "no-cache", false, "bypass the render cache")
}

// parse validates the flags before any request is made.
func (f *renderFlags) parse() ([]ink.Format, ink.Options, ink.Position, error) {
	formats, err := ink.ParseFormats(f.formats)
	if err != nil {
		return nil, ink.Options{}, "", err
	}
	opts := ink.Options{Width: f.width, Height: f.height, Scale: f.scale}
	if err := opts.Validate(); err != nil {
		return nil, ink.Options{}, "", err
	}
	pos, err := ink.ParsePosition(f.position)
	if err != nil {
		return nil, ink.Options{}, "", err
	}
	return formats, opts, pos, nil
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var flags renderFlags
	var output string

	cmd := &cobra.Command{
		Use:   "render [file.mmd]",
		Short: "Render a Mermaid file to SVG and/or PNG",
		Long: `Render a Mermaid file through the configured render server.

Output files are named after the input unless --output gives a base path:

  mermaidkit render flow.mmd -f svg,png          # flow.svg, flow.png
  mermaidkit render flow.mmd -o out/flow --width 800 --scale 2
  mermaidkit render flow.mmd --position center   # flow.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateExtension(args[0], diagram.Extensions); err != nil {
				return err
			}
			g, err := diagram.Load(args[0])
			if err != nil {
				return err
			}
			base := output
			if base == "" {
				base = strings.TrimSuffix(args[0], filepath.Ext(args[0]))
			}
			return c.renderToFiles(cmd, g.String(), base, &flags)
		},
	}

	flags.register(cmd.Flags(), "svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output base path without extension")
	return cmd
}

// renderToFiles renders script in every requested format and writes
// <base>.<ext> files.
func (c *CLI) renderToFiles(cmd *cobra.Command, script, base string, flags *renderFlags) error {
	formats, opts, pos, err := flags.parse()
	if err != nil {
		return err
	}
	base = strings.TrimSuffix(base, filepath.Ext(base))

	ctx := cmd.Context()
	client, cc, err := c.newClient(ctx, flags.noCache)
	if err != nil {
		return err
	}
	defer cc.Close()

	prog := newProgress(c.Logger)
	spinner := newSpinner(ctx, "Rendering via "+client.Server()+"...")
	spinner.Start()
	paths, err := writeArtifacts(ctx, client, script, base, formats, opts, pos)
	spinner.Stop()
	if err != nil {
		printError(cmd.ErrOrStderr(), "render failed")
		return err
	}

	prog.done("Rendered " + plural(len(paths), "file"))
	out := cmd.OutOrStdout()
	for _, p := range paths {
		printFile(out, p)
	}
	return nil
}

func writeArtifacts(ctx context.Context, client *ink.Client, script, base string, formats []ink.Format, opts ink.Options, pos ink.Position) ([]string, error) {
	var paths []string
	for _, f := range formats {
		data, err := client.Fetch(ctx, script, f, opts)
		if err != nil {
			return paths, err
		}
		var path string
		switch f {
		case ink.FormatPNG:
			path = base + ".png"
			err = ink.WritePNG(path, data)
		default:
			path = base + ".svg"
			if pos != ink.PositionNone {
				path = base + ".html"
			}
			err = ink.WriteSVG(path, string(data), pos)
		}
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}
