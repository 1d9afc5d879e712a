package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tessella/tessella/pkg/assoc"
	"github.com/tessella/tessella/pkg/render/bubble"
)

// assocOpts holds the command-line flags for the assoc command.
type assocOpts struct {
	output       string   // output file path (or base path for multiple formats)
	formats      []string // output formats: "svg", "json", "pdf", "png"
	intervention string   // intervention filter; empty keeps every record
	sheet        string   // worksheet name; empty triggers the picker
	pick         bool     // force the interactive worksheet picker
	seed         uint64   // outline color seed
	cell         float64  // grid spacing in pixels
	title        string   // SVG document title
	scale        float64  // PNG scale factor
}

// newAssocCmd creates the assoc command for rendering spreadsheet records
// as an association chart.
//
// The input workbook needs three columns per row: intervention type,
// substance name, and pattern label. Rows are filtered by --intervention,
// then (pattern, substance) pairs are counted and drawn as hollow circles
// sized by count.
func newAssocCmd() *cobra.Command {
	var formatsStr string
	opts := assocOpts{
		seed:  bubble.DefaultSeed,
		cell:  bubble.DefaultCell,
		scale: 2.0,
	}

	cmd := &cobra.Command{
		Use:   "assoc [file.xlsx]",
		Short: "Render spreadsheet records as an association chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return runAssoc(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, pdf, png (comma-separated)")
	cmd.Flags().StringVarP(&opts.intervention, "intervention", "i", "", "intervention filter (empty keeps all records)")
	cmd.Flags().StringVarP(&opts.sheet, "sheet", "s", "", "worksheet name (default: first sheet)")
	cmd.Flags().BoolVar(&opts.pick, "pick", false, "pick the worksheet interactively")
	cmd.Flags().Uint64Var(&opts.seed, "seed", opts.seed, "outline color seed")
	cmd.Flags().Float64Var(&opts.cell, "cell", opts.cell, "grid spacing in pixels")
	cmd.Flags().StringVar(&opts.title, "title", "", "chart title")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")

	return cmd
}

// runAssoc loads the workbook, aggregates the records, and renders the
// chart to the requested formats.
func runAssoc(ctx context.Context, input string, opts *assocOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", input)

	sheet := opts.sheet
	if opts.pick && sheet == "" {
		var err error
		sheet, err = pickSheet(input)
		if err != nil {
			return err
		}
		if sheet == "" {
			printDetail("No worksheet selected")
			return nil
		}
		printInfo("Worksheet: %s", StyleHighlight.Render(sheet))
	}

	var loadOpts []assoc.LoadOption
	if sheet != "" {
		loadOpts = append(loadOpts, assoc.WithSheet(sheet))
	}
	records, err := assoc.LoadXLSX(input, loadOpts...)
	if err != nil {
		return err
	}
	logger.Infof("Loaded %d records", len(records))

	filtered := assoc.Filter(records, opts.intervention)
	if opts.intervention != "" {
		logger.Infof("Filtered to %d records for intervention %q", len(filtered), opts.intervention)
	}

	p := newProgress(logger)
	matrix := assoc.Count(filtered)
	p.done(fmt.Sprintf("Counted %d pattern/substance pairs", matrix.Len()))

	if len(opts.formats) == 1 {
		outputPath := opts.output
		if outputPath == "" {
			outputPath = basePath("", input) + "." + opts.formats[0]
		}
		return renderBubble(ctx, matrix, opts.formats[0], outputPath, opts)
	}

	base := basePath(opts.output, input)
	for _, format := range opts.formats {
		path := fmt.Sprintf("%s.%s", base, format)
		if err := renderBubble(ctx, matrix, format, path, opts); err != nil {
			return fmt.Errorf("%s: %w", format, err)
		}
	}
	return nil
}

// pickSheet runs the interactive worksheet picker and returns the chosen
// sheet name, or "" when the user quits without selecting.
func pickSheet(input string) (string, error) {
	spinner := newSpinner("Scanning worksheets...")
	spinner.Start()
	stats, err := assoc.SheetStats(input)
	spinner.Stop()
	if err != nil {
		return "", err
	}
	if len(stats) == 0 {
		return "", fmt.Errorf("no worksheets found in %s", input)
	}
	if len(stats) == 1 {
		return stats[0].Name, nil
	}

	sheets := make([]SheetInfo, len(stats))
	for i, s := range stats {
		sheets[i] = SheetInfo{Name: s.Name, Rows: s.Rows}
	}

	printInfo("Found %d worksheets", len(stats))
	printNewline()

	m := NewSheetListModel(sheets)
	finalModel, err := tea.NewProgram(m).Run()
	if err != nil {
		return "", err
	}

	fm, ok := finalModel.(SheetListModel)
	if !ok || fm.Selected == nil {
		return "", nil
	}
	return fm.Selected.Name, nil
}

// renderBubble renders a single format and writes it to path.
func renderBubble(ctx context.Context, m *assoc.Matrix, format, path string, opts *assocOpts) error {
	logger := loggerFromContext(ctx)

	svgOpts := []bubble.SVGOption{
		bubble.WithCell(opts.cell),
		bubble.WithSeed(opts.seed),
	}
	if opts.title != "" {
		svgOpts = append(svgOpts, bubble.WithTitle(opts.title))
	}

	var data []byte
	var err error
	switch format {
	case "svg":
		logger.Debug("Rendering association SVG")
		data, err = bubble.RenderSVG(m, svgOpts...)
	case "json":
		logger.Debug("Rendering association matrix as JSON")
		data, err = bubble.RenderJSON(m)
	case "png":
		spinner := newSpinnerWithContext(ctx, "Converting to PNG with rsvg-convert...")
		spinner.Start()
		data, err = bubble.RenderPNG(m, opts.scale, svgOpts...)
		if err != nil {
			spinner.StopWithError("PNG conversion failed")
		} else {
			spinner.StopWithSuccess("Converted to PNG")
		}
	case "pdf":
		spinner := newSpinnerWithContext(ctx, "Converting to PDF with rsvg-convert...")
		spinner.Start()
		data, err = bubble.RenderPDF(m, svgOpts...)
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
