package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tessella/tessella/pkg/chartio"
	"github.com/tessella/tessella/pkg/render/block"
	"github.com/tessella/tessella/pkg/treemap"
)

const (
	splitLeft     = "left"     // left-biased splits, largest ratios hug the left edge
	splitBalanced = "balanced" // orientation flips at the square aspect ratio
)

// treemapOpts holds the command-line flags for the treemap command.
type treemapOpts struct {
	output    string   // output file path (or base path for multiple formats)
	formats   []string // output formats: "svg", "json", "pdf", "png"
	size      float64  // rendered side length in pixels
	seed      uint64   // palette seed
	split     string   // split policy: "left" or "balanced"
	normalize bool     // rescale raw weights to ratios summing to one
	title     string   // SVG document title
}

// newTreemapCmd creates the treemap command for rendering a ratio series
// as a proportionally tiled square.
//
// Default settings:
//   - split: left (largest ratios placed toward the left edge)
//   - size: 600px, seed: 42
//   - format: svg
func newTreemapCmd() *cobra.Command {
	var formatsStr string
	opts := treemapOpts{
		size:  block.DefaultSize,
		seed:  block.DefaultSeed,
		split: splitLeft,
	}

	cmd := &cobra.Command{
		Use:   "treemap [file]",
		Short: "Render a ratio series as a proportional block chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			if err := validateSplit(opts.split); err != nil {
				return err
			}
			return runTreemap(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, pdf, png (comma-separated)")
	cmd.Flags().Float64Var(&opts.size, "size", opts.size, "chart side length in pixels")
	cmd.Flags().Uint64Var(&opts.seed, "seed", opts.seed, "palette seed")
	cmd.Flags().StringVar(&opts.split, "split", opts.split, "split policy: left (default), balanced")
	cmd.Flags().BoolVar(&opts.normalize, "normalize", false, "treat input values as raw weights and rescale to ratios")
	cmd.Flags().StringVar(&opts.title, "title", "", "chart title (overrides the series title)")

	return cmd
}

// validateSplit checks that the policy is either "left" or "balanced".
func validateSplit(s string) error {
	if s != splitLeft && s != splitBalanced {
		return fmt.Errorf("invalid split policy: %s (must be 'left' or 'balanced')", s)
	}
	return nil
}

// splitPolicy maps the --split flag to a layout policy.
func splitPolicy(s string) treemap.SplitPolicy {
	if s == splitBalanced {
		return treemap.SplitBalanced
	}
	return treemap.SplitLeftBiased
}

// runTreemap loads the series from input, computes the tiling, and renders
// it to the requested formats.
func runTreemap(ctx context.Context, input string, opts *treemapOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", input)

	series, err := chartio.LoadSeries(input)
	if err != nil {
		return err
	}
	if err := series.Validate(); err != nil {
		return err
	}
	logger.Infof("Loaded series: %d items", len(series.Items))

	ratios := series.Ratios()
	if opts.normalize {
		ratios = treemap.Normalize(ratios)
		logger.Debug("Normalized raw weights to unit ratios")
	}

	p := newProgress(logger)
	rects, err := treemap.Layout(ratios, treemap.WithSplitPolicy(splitPolicy(opts.split)))
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Computed layout: %d rectangles", len(rects)))

	title := opts.title
	if title == "" {
		title = series.Title
	}
	// Layout output is positional, so labels stay in input order.
	labels := series.Labels()

	if len(opts.formats) == 1 {
		outputPath := opts.output
		if outputPath == "" {
			outputPath = basePath("", input) + "." + opts.formats[0]
		}
		return renderBlock(ctx, rects, labels, title, opts.formats[0], outputPath, opts)
	}

	base := basePath(opts.output, input)
	for _, format := range opts.formats {
		path := fmt.Sprintf("%s.%s", base, format)
		if err := renderBlock(ctx, rects, labels, title, format, path, opts); err != nil {
			return fmt.Errorf("%s: %w", format, err)
		}
	}
	return nil
}

// renderBlock renders a single format and writes it to path.
func renderBlock(ctx context.Context, rects []treemap.Rect, labels []string, title, format, path string, opts *treemapOpts) error {
	logger := loggerFromContext(ctx)

	svgOpts := []block.SVGOption{
		block.WithSize(opts.size),
		block.WithSeed(opts.seed),
	}
	if title != "" {
		svgOpts = append(svgOpts, block.WithTitle(title))
	}
	if labels != nil {
		svgOpts = append(svgOpts, block.WithLabels(labels))
	}

	var data []byte
	var err error
	switch format {
	case "svg":
		logger.Debug("Rendering block SVG")
		data, err = block.RenderSVG(rects, svgOpts...)
	case "json":
		logger.Debug("Rendering block layout as JSON")
		data, err = block.RenderJSON(rects, svgOpts...)
	case "png":
		spinner := newSpinnerWithContext(ctx, "Converting to PNG with rsvg-convert...")
		spinner.Start()
		data, err = block.RenderPNG(rects, block.WithPNGSVGOptions(svgOpts...))
		if err != nil {
			spinner.StopWithError("PNG conversion failed")
		} else {
			spinner.StopWithSuccess("Converted to PNG")
		}
	case "pdf":
		spinner := newSpinnerWithContext(ctx, "Converting to PDF with rsvg-convert...")
		spinner.Start()
		data, err = block.RenderPDF(rects, svgOpts...)
		if err != nil {
			spinner.StopWithError("PDF conversion failed")
		} else {
			spinner.StopWithSuccess("Converted to PDF")
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	if err != nil {
		return err
	}
	logger.Debugf("Generated %s: %d bytes", format, len(data))

	if err := writeOutput(path, data); err != nil {
		return err
	}
	logger.Infof("Generated %s", path)
	return nil
}
