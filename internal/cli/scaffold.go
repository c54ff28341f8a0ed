package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lumenarts/cosmoglyph/pkg/errors"
	"github.com/lumenarts/cosmoglyph/pkg/geometry"
	"github.com/lumenarts/cosmoglyph/pkg/paletteio"
	"github.com/lumenarts/cosmoglyph/pkg/scaffoldviz"
)

// scaffoldCommand creates the tree scaffold inspection command.
func (c *CLI) scaffoldCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scaffold",
		Short: "Export and visualize the tree scaffold",
	}

	cmd.AddCommand(c.scaffoldExportCommand())
	cmd.AddCommand(c.scaffoldVizCommand())

	return cmd
}

// resolveScaffold loads an optional scaffold document and merges it over
// the built-in tree configuration.
func resolveScaffold(file string) (geometry.TreeConfig, error) {
	defaults := geometry.NormalizeGeometry(geometry.DefaultNumerology())
	if file == "" {
		return defaults.Tree, nil
	}
	patch, err := paletteio.ImportScaffold(file)
	if err != nil {
		return geometry.TreeConfig{}, err
	}
	return geometry.MergeTree(defaults.Tree, patch), nil
}

// scaffoldExportCommand creates the "scaffold export" subcommand. It
// writes the resolved scaffold as a JSON document that can be edited and
// fed back through --scaffold.
func (c *CLI) scaffoldExportCommand() *cobra.Command {
	var output, file string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the tree scaffold as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveScaffold(file)
			if err != nil {
				return err
			}

			out, err := openOutput(output)
			if err != nil {
				return err
			}
			defer out.Close()

			if err := paletteio.WriteScaffold(cfg, out); err != nil {
				return err
			}
			if output != "" {
				printSuccess("Exported scaffold: %d nodes, %d edges", len(cfg.Nodes), len(cfg.Edges))
				printFile(output)
				printNextStep("Render with it", fmt.Sprintf("%s render --scaffold %s", appName, output))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&file, "file", "", "scaffold document to resolve (default built-in)")
	return cmd
}

// scaffoldVizCommand creates the "scaffold viz" subcommand. It lays the
// scaffold out with Graphviz, one rank per level.
func (c *CLI) scaffoldVizCommand() *cobra.Command {
	var output, file, format string
	var detailed bool

	cmd := &cobra.Command{
		Use:   "viz",
		Short: "Render the tree scaffold as a diagram",
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(format)
			if format != "dot" {
				if err := errors.ValidateFormat(format); err != nil {
					return err
				}
			}

			cfg, err := resolveScaffold(file)
			if err != nil {
				return err
			}
			dot := scaffoldviz.ToDOT(cfg, scaffoldviz.Options{
				Detailed: detailed,
				Palette:  geometry.NormalizePalette(nil),
			})

			var data []byte
			if format == "dot" {
				data = []byte(dot)
			} else {
				sp := newSpinnerWithContext(cmd.Context(), "Laying out scaffold")
				sp.Start()
				switch format {
				case "svg":
					data, err = scaffoldviz.RenderSVG(dot)
				case "pdf":
					data, err = scaffoldviz.RenderPDF(dot)
				case "png":
					data, err = scaffoldviz.RenderPNG(dot, 2.0)
				}
				sp.Stop()
				if sp.Cancelled() {
					return cmd.Context().Err()
				}
			}
			if err != nil {
				return err
			}

			path := output
			if path == "" && format != "dot" {
				path = fmt.Sprintf("scaffold.%s", format)
			}
			out, err := openOutput(path)
			if err != nil {
				return err
			}
			defer out.Close()

			if _, err := out.Write(data); err != nil {
				return err
			}
			if path != "" {
				printSuccess("Rendered scaffold: %d nodes, %d edges", len(cfg.Nodes), len(cfg.Edges))
				printFile(path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default scaffold.<format>, stdout for dot)")
	cmd.Flags().StringVar(&file, "file", "", "scaffold document to resolve (default built-in)")
	cmd.Flags().StringVarP(&format, "format", "f", "svg", "output format: svg (default), png, pdf, dot")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include level and position in node labels")
	return cmd
}
