package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lumenarts/cosmoglyph/pkg/geometry"
	"github.com/lumenarts/cosmoglyph/pkg/paletteio"
)

// paletteCommand creates the palette inspection command.
func (c *CLI) paletteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Inspect, check, and export palette documents",
	}

	cmd.AddCommand(c.paletteShowCommand())
	cmd.AddCommand(c.paletteCheckCommand())
	cmd.AddCommand(c.paletteExportCommand())

	return cmd
}

// paletteShowCommand creates the "palette show" subcommand. It prints
// every palette role with a terminal color swatch.
func (c *CLI) paletteShowCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the resolved palette with color swatches",
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch *geometry.PalettePatch
			if file != "" {
				p, err := paletteio.ImportPalette(file)
				if err != nil {
					return err
				}
				patch = p
			}
			p := geometry.NormalizePalette(patch)

			source := "built-in"
			if file != "" {
				source = file
			}
			printKeyValue("source", source)
			printNewline()

			printSwatch("bg", p.BG)
			printSwatch("ink", p.Ink)
			printSwatch("muted", p.Muted)
			for i, layer := range p.Layers {
				printSwatch(fmt.Sprintf("layer %d", i), layer)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "palette document to resolve (default built-in)")
	return cmd
}

// paletteCheckCommand creates the "palette check" subcommand.
func (c *CLI) paletteCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [file]",
		Short: "Validate a palette document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := paletteio.ImportPalette(args[0]); err != nil {
				printError("Invalid palette: %v", err)
				return err
			}
			printSuccess("Palette %s is valid", args[0])
			return nil
		},
	}
}

// paletteExportCommand creates the "palette export" subcommand. It writes
// the built-in palette as a JSON document that can be edited and fed back
// through --palette.
func (c *CLI) paletteExportCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the built-in palette as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := openOutput(output)
			if err != nil {
				return err
			}
			defer out.Close()

			if err := paletteio.WritePalette(geometry.DefaultPalette(), out); err != nil {
				return err
			}
			if output != "" {
				printSuccess("Exported palette")
				printFile(output)
				printNextStep("Render with it", fmt.Sprintf("%s render --palette %s", appName, output))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}
