package cli

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tessella/tessella/pkg/assoc"
	"github.com/tessella/tessella/pkg/chartio"
	"github.com/tessella/tessella/pkg/preview"
	"github.com/tessella/tessella/pkg/render/block"
	"github.com/tessella/tessella/pkg/render/bubble"
	"github.com/tessella/tessella/pkg/treemap"
	"github.com/tessella/tessella/pkg/watch"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	port         int    // HTTP listen port
	watch        bool   // re-render when the input file changes
	intervention string // assoc: intervention filter
	sheet        string // assoc: worksheet name
	seed         uint64 // palette seed
	size         float64
	cell         float64
	split        string
	normalize    bool
	title        string
}

// newServeCmd creates the serve command, which renders the input once and
// serves the SVG over HTTP. With --watch the chart re-renders whenever the
// input file is saved, so a browser refresh always shows the latest data.
//
// The chart type follows the input extension: .xlsx renders an association
// chart, everything else is loaded as a ratio series.
func newServeCmd() *cobra.Command {
	opts := serveOpts{
		port:  8080,
		seed:  block.DefaultSeed,
		size:  block.DefaultSize,
		cell:  bubble.DefaultCell,
		split: splitLeft,
	}

	cmd := &cobra.Command{
		Use:   "serve [file]",
		Short: "Serve a chart over HTTP with optional live reload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateSplit(opts.split); err != nil {
				return err
			}
			return runServe(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().IntVarP(&opts.port, "port", "p", opts.port, "HTTP listen port")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "re-render when the input file changes")
	cmd.Flags().StringVarP(&opts.intervention, "intervention", "i", "", "intervention filter (xlsx input)")
	cmd.Flags().StringVarP(&opts.sheet, "sheet", "s", "", "worksheet name (xlsx input)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", opts.seed, "palette seed")
	cmd.Flags().Float64Var(&opts.size, "size", opts.size, "block chart side length in pixels")
	cmd.Flags().Float64Var(&opts.cell, "cell", opts.cell, "association grid spacing in pixels")
	cmd.Flags().StringVar(&opts.split, "split", opts.split, "split policy: left (default), balanced")
	cmd.Flags().BoolVar(&opts.normalize, "normalize", false, "treat series values as raw weights")
	cmd.Flags().StringVar(&opts.title, "title", "", "chart title")

	return cmd
}

// runServe renders the input, starts the preview server, and optionally
// watches the input file for changes.
func runServe(ctx context.Context, input string, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	svg, err := renderInput(ctx, input, opts)
	if err != nil {
		return err
	}

	s := preview.New(opts.port, svg)

	if opts.watch {
		go func() {
			err := watch.File(ctx, input, watch.DefaultDebounceDuration, func() {
				logger.Infof("Change detected, re-rendering %s", input)
				svg, err := renderInput(ctx, input, opts)
				if err != nil {
					logger.Errorf("Re-render failed: %v", err)
					return
				}
				s.Update(svg)
				logger.Info("Preview updated")
			})
			if err != nil && ctx.Err() == nil {
				logger.Errorf("Watch failed: %v", err)
			}
		}()
		logger.Infof("Watching %s", input)
	}

	printSuccess("Serving %s at %s", input, StyleHighlight.Render(s.URL()))
	return s.Start(ctx)
}

// renderInput renders the input file to SVG, choosing the chart type from
// the file extension.
func renderInput(ctx context.Context, input string, opts *serveOpts) ([]byte, error) {
	if strings.EqualFold(filepath.Ext(input), ".xlsx") {
		return renderAssocInput(ctx, input, opts)
	}
	return renderSeriesInput(ctx, input, opts)
}

func renderSeriesInput(ctx context.Context, input string, opts *serveOpts) ([]byte, error) {
	logger := loggerFromContext(ctx)

	series, err := chartio.LoadSeries(input)
	if err != nil {
		return nil, err
	}
	if err := series.Validate(); err != nil {
		return nil, err
	}

	ratios := series.Ratios()
	if opts.normalize {
		ratios = treemap.Normalize(ratios)
	}

	rects, err := treemap.Layout(ratios, treemap.WithSplitPolicy(splitPolicy(opts.split)))
	if err != nil {
		return nil, err
	}
	logger.Debugf("Layout computed: %d rectangles", len(rects))

	title := opts.title
	if title == "" {
		title = series.Title
	}
	svgOpts := []block.SVGOption{
		block.WithSize(opts.size),
		block.WithSeed(opts.seed),
		block.WithLabels(series.Labels()),
	}
	if title != "" {
		svgOpts = append(svgOpts, block.WithTitle(title))
	}
	return block.RenderSVG(rects, svgOpts...)
}

func renderAssocInput(ctx context.Context, input string, opts *serveOpts) ([]byte, error) {
	logger := loggerFromContext(ctx)

	var loadOpts []assoc.LoadOption
	if opts.sheet != "" {
		loadOpts = append(loadOpts, assoc.WithSheet(opts.sheet))
	}
	records, err := assoc.LoadXLSX(input, loadOpts...)
	if err != nil {
		return nil, err
	}
	logger.Debugf("Loaded %d records", len(records))

	matrix := assoc.Count(assoc.Filter(records, opts.intervention))

	svgOpts := []bubble.SVGOption{
		bubble.WithCell(opts.cell),
		bubble.WithSeed(opts.seed),
	}
	if opts.title != "" {
		svgOpts = append(svgOpts, bubble.WithTitle(opts.title))
	}
	return bubble.RenderSVG(matrix, svgOpts...)
}
