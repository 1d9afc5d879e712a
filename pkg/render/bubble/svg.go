// Package bubble renders a pattern × substance co-occurrence matrix as an
// association chart: a labeled grid with one hollow circle per counted
// pair, the circle radius growing with the pair count.
package bubble

import (
	"bytes"
	"fmt"

	svg "github.com/ajstarks/svgo/float"

	"github.com/tessella/tessella/pkg/assoc"
	"github.com/tessella/tessella/pkg/errors"
	"github.com/tessella/tessella/pkg/palette"
)

// Layout constants, in pixels. The cell pitch is the grid spacing; margins
// leave room for the axis labels.
const (
	DefaultCell  = 80.0
	marginLeft   = 180.0
	marginBottom = 150.0
	marginTop    = 40.0
	marginRight  = 40.0
)

// DefaultSeed seeds the per-pair outline colors.
const DefaultSeed = 42

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	cell  float64
	seed  uint64
	title string
}

// WithCell sets the grid spacing in pixels.
func WithCell(px float64) SVGOption { return func(r *svgRenderer) { r.cell = px } }

// WithSeed sets the seed for the per-pair outline colors.
func WithSeed(seed uint64) SVGOption { return func(r *svgRenderer) { r.seed = seed } }

// WithTitle sets the SVG document title.
func WithTitle(t string) SVGOption { return func(r *svgRenderer) { r.title = t } }

// RenderSVG renders the matrix as an association chart. The canvas grows
// with the axis cardinalities so long label lists never clip.
func RenderSVG(m *assoc.Matrix, opts ...SVGOption) ([]byte, error) {
	if m == nil || m.Len() == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "empty matrix: nothing to draw")
	}

	r := svgRenderer{cell: DefaultCell, seed: DefaultSeed}
	for _, opt := range opts {
		opt(&r)
	}

	plotW := float64(len(m.Substances)) * r.cell
	plotH := float64(len(m.Patterns)) * r.cell
	width := marginLeft + plotW + marginRight
	height := marginTop + plotH + marginBottom

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(width, height)
	if r.title != "" {
		canvas.Title(r.title)
	}
	canvas.Rect(0, 0, width, height, "fill:white")

	r.renderGrid(canvas, m, plotW, plotH)
	r.renderAxisLabels(canvas, m, plotH)
	r.renderCircles(canvas, m)

	canvas.End()
	return buf.Bytes(), nil
}

// cellCenter maps a (column, row) grid position to canvas coordinates.
// Row 0 (the first pattern) sits at the top of the plot area.
func (r *svgRenderer) cellCenter(col, row int) (float64, float64) {
	x := marginLeft + (float64(col)+0.5)*r.cell
	y := marginTop + (float64(row)+0.5)*r.cell
	return x, y
}

func (r *svgRenderer) renderGrid(canvas *svg.SVG, m *assoc.Matrix, plotW, plotH float64) {
	canvas.Gstyle("stroke:gray;stroke-opacity:0.3;stroke-width:1")
	for col := range m.Substances {
		x, _ := r.cellCenter(col, 0)
		canvas.Line(x, marginTop, x, marginTop+plotH)
	}
	for row := range m.Patterns {
		_, y := r.cellCenter(0, row)
		canvas.Line(marginLeft, y, marginLeft+plotW, y)
	}
	canvas.Gend()
}

func (r *svgRenderer) renderAxisLabels(canvas *svg.SVG, m *assoc.Matrix, plotH float64) {
	for row, pattern := range m.Patterns {
		_, y := r.cellCenter(0, row)
		canvas.Text(marginLeft-10, y, pattern,
			"text-anchor:end;dominant-baseline:central;font-size:13px;fill:black")
	}

	// Substance labels run diagonally below the plot, matplotlib-style.
	for col, substance := range m.Substances {
		x, _ := r.cellCenter(col, 0)
		canvas.TranslateRotate(x, marginTop+plotH+14, -45)
		canvas.Text(0, 0, substance,
			"text-anchor:end;dominant-baseline:central;font-size:12px;fill:black")
		canvas.Gend()
	}
}

func (r *svgRenderer) renderCircles(canvas *svg.SVG, m *assoc.Matrix) {
	pairs := m.Pairs()
	colors := palette.Random(len(pairs), r.seed)
	minCount, maxCount := m.MinMax()

	colIndex := make(map[string]int, len(m.Substances))
	for i, s := range m.Substances {
		colIndex[s] = i
	}
	rowIndex := make(map[string]int, len(m.Patterns))
	for i, p := range m.Patterns {
		rowIndex[p] = i
	}

	for i, pair := range pairs {
		x, y := r.cellCenter(colIndex[pair.Substance], rowIndex[pair.Pattern])
		radius := assoc.Radius(pair.Count, minCount, maxCount) * r.cell

		canvas.Circle(x, y, radius,
			fmt.Sprintf("fill:none;stroke:%s;stroke-width:2", colors[i].Hex()))
		canvas.Text(x, y, fmt.Sprintf("%d", pair.Count),
			"text-anchor:middle;dominant-baseline:central;font-size:12px;fill:black")
	}
}
