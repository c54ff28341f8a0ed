package cli

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lumenarts/cosmoglyph/pkg/cache"
	"github.com/lumenarts/cosmoglyph/pkg/config"
	"github.com/lumenarts/cosmoglyph/pkg/errors"
	"github.com/lumenarts/cosmoglyph/pkg/export"
	"github.com/lumenarts/cosmoglyph/pkg/geometry"
	"github.com/lumenarts/cosmoglyph/pkg/paletteio"
	"github.com/lumenarts/cosmoglyph/pkg/surface/raster"
	"github.com/lumenarts/cosmoglyph/pkg/surface/record"
	"github.com/lumenarts/cosmoglyph/pkg/surface/svg"
)

// renderOpts holds the command-line flags for the render command.
// Unset flags fall back to the loaded configuration file, which in turn
// falls back to built-in defaults.
type renderOpts struct {
	output     string // output file path; empty derives cosmoglyph.<format>
	format     string // output format: "svg", "png", "pdf"
	width      int    // render width in pixels
	height     int    // render height in pixels
	notice     string // status banner text drawn along the bottom edge
	palette    string // palette document path
	scaffold   string // scaffold document path
	configPath string // explicit configuration file path
	noCache    bool   // bypass the rendered artifact cache
}

// renderCommand creates the render command for painting the composition.
//
// Default settings come from the configuration file when present:
//   - width: 800px, height: 600px
//   - format: svg
//   - palette/scaffold: built-in documents
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the composition to SVG, PNG, or PDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			applyRenderConfig(cmd, &opts, cfg)

			opts.format = strings.ToLower(opts.format)
			if err := errors.ValidateFormat(opts.format); err != nil {
				return err
			}
			if opts.output != "" {
				if err := errors.ValidateOutputPath(opts.output); err != nil {
					return err
				}
			}
			return c.runRender(cmd.Context(), &opts, cfg)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default cosmoglyph.<format>)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "svg", "output format: svg (default), png, pdf")
	cmd.Flags().IntVar(&opts.width, "width", 800, "render width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", 600, "render height in pixels")
	cmd.Flags().StringVar(&opts.notice, "notice", "", "status banner text")
	cmd.Flags().StringVar(&opts.palette, "palette", "", "palette document (JSON)")
	cmd.Flags().StringVar(&opts.scaffold, "scaffold", "", "scaffold document (JSON)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "configuration file (TOML)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the rendered artifact cache")

	return cmd
}

// applyRenderConfig overlays configuration file values onto flags the user
// did not set explicitly.
func applyRenderConfig(cmd *cobra.Command, opts *renderOpts, cfg config.Config) {
	if !cmd.Flags().Changed("width") && cfg.Render.Width > 0 {
		opts.width = cfg.Render.Width
	}
	if !cmd.Flags().Changed("height") && cfg.Render.Height > 0 {
		opts.height = cfg.Render.Height
	}
	if !cmd.Flags().Changed("format") && cfg.Render.Format != "" {
		opts.format = cfg.Render.Format
	}
	if !cmd.Flags().Changed("notice") && cfg.Render.Notice != "" {
		opts.notice = cfg.Render.Notice
	}
	if !cmd.Flags().Changed("palette") && cfg.Render.Palette != "" {
		opts.palette = cfg.Render.Palette
	}
	if !cmd.Flags().Changed("scaffold") && cfg.Render.Scaffold != "" {
		opts.scaffold = cfg.Render.Scaffold
	}
}

// renderKeyFields captures every input that influences the rendered bytes.
// It is hashed into the artifact cache key.
type renderKeyFields struct {
	Notice   string
	Palette  *geometry.PalettePatch
	Scaffold *geometry.TreePatch
}

// runRender assembles geometry options from flags and documents, renders
// the composition, and writes the encoded artifact to the output path.
// Previously rendered artifacts are served from the cache when available.
func (c *CLI) runRender(ctx context.Context, opts *renderOpts, cfg config.Config) error {
	logger := loggerFromContext(ctx)
	p := newProgress(logger)

	ropts, err := buildGeometryOptions(opts)
	if err != nil {
		return err
	}
	if opts.palette != "" && ropts.Palette == nil {
		printWarning("Palette %s unavailable, using built-in colors", opts.palette)
	}

	store := newArtifactCache(opts.noCache, cfg.Cache.Dir)
	defer store.Close()

	keyer := cache.NewDefaultKeyer()
	key := keyer.RenderKey(opts.format, opts.width, opts.height, renderKeyFields{
		Notice:   ropts.Notice,
		Palette:  ropts.Palette,
		Scaffold: ropts.Geometry.TreeOfLife,
	})
	logger.Debugf("Artifact key %s", key)

	var (
		data   []byte
		res    geometry.Result
		cached bool
	)
	if hit, ok, _ := store.Get(ctx, key); ok {
		// Replay onto a recording surface for the stats line.
		data, cached = hit, true
		res = geometry.Render(record.New(opts.width, opts.height), ropts)
	} else {
		data, res, err = encodeArtifact(opts.format, opts.width, opts.height, ropts)
		if err != nil {
			return err
		}
		if err := store.Set(ctx, key, data, cfg.CacheTTL()); err != nil {
			logger.Debugf("Cache store failed: %v", err)
		}
	}
	if !res.OK {
		return renderFailure(res.Reason, opts.width, opts.height)
	}

	path := opts.output
	if path == "" {
		path = fmt.Sprintf("%s.%s", appName, opts.format)
	}
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return err
	}

	p.done(fmt.Sprintf("Rendered %dx%d %s", opts.width, opts.height, opts.format))
	printSuccess("Rendered composition")
	printStats(res.Stats, cached)
	printFile(path)
	printDetail("%s", res.Summary)
	return nil
}

// buildGeometryOptions loads the palette and scaffold documents and folds
// them into geometry options. A missing or malformed palette never fails
// the render; it falls back to the built-in colors and surfaces the
// problem through the notice banner.
func buildGeometryOptions(opts *renderOpts) (geometry.Options, error) {
	width := float64(opts.width)
	height := float64(opts.height)
	ropts := geometry.Options{
		Width:  &width,
		Height: &height,
		Notice: opts.notice,
	}

	palette, fallbackNotice := paletteio.LoadPaletteWithFallback(opts.palette)
	ropts.Palette = palette
	if ropts.Notice == "" {
		ropts.Notice = fallbackNotice
	}

	if opts.scaffold != "" {
		tree, err := paletteio.ImportScaffold(opts.scaffold)
		if err != nil {
			return geometry.Options{}, err
		}
		ropts.Geometry.TreeOfLife = tree
	}
	return ropts, nil
}

// encodeArtifact renders the composition onto a format-specific surface
// and returns the encoded bytes. PDF output renders to SVG first and
// converts through rsvg.
func encodeArtifact(format string, width, height int, opts geometry.Options) ([]byte, geometry.Result, error) {
	switch format {
	case "svg":
		s := svg.New(width, height)
		res := geometry.Render(s, opts)
		if !res.OK {
			return nil, res, nil
		}
		return s.Document(), res, nil
	case "png":
		s := raster.New(width, height)
		res := geometry.Render(s, opts)
		if !res.OK {
			return nil, res, nil
		}
		var buf bytes.Buffer
		if err := s.EncodePNG(&buf); err != nil {
			return nil, res, err
		}
		return buf.Bytes(), res, nil
	case "pdf":
		s := svg.New(width, height)
		res := geometry.Render(s, opts)
		if !res.OK {
			return nil, res, nil
		}
		data, err := export.ToPDF(s.Document())
		return data, res, err
	default:
		return nil, geometry.Result{}, errors.New(errors.ErrCodeInvalidFormat, "unknown format: %s", format)
	}
}

// renderFailure maps a render failure reason to a structured error.
func renderFailure(reason geometry.FailureReason, width, height int) error {
	switch reason {
	case geometry.ReasonInvalidDimensions:
		return errors.New(errors.ErrCodeInvalidDimensions, "%dx%d does not resolve to a drawable area", width, height)
	default:
		return errors.New(errors.ErrCodeMissingSurface, "no drawing surface available")
	}
}
