// Package block renders a proportional rectangle tiling as a block chart.
//
// The sink consumes unit-square geometry from pkg/treemap and emits SVG;
// PNG and PDF output is produced by converting the SVG. Colors default to a
// seeded HSV palette and labels are drawn centered in each rectangle with a
// contrast-aware text color.
package block

import (
	"bytes"
	"fmt"

	svg "github.com/ajstarks/svgo/float"

	"github.com/tessella/tessella/pkg/errors"
	"github.com/tessella/tessella/pkg/palette"
	"github.com/tessella/tessella/pkg/treemap"
)

// DefaultSize is the rendered side length of the square chart in pixels.
const DefaultSize = 600.0

// DefaultSeed seeds the palette when the caller does not supply one.
const DefaultSeed = 42

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	size   float64
	seed   uint64
	title  string
	labels []string
	colors []palette.Color
}

// WithSize sets the side length of the chart in pixels.
func WithSize(px float64) SVGOption { return func(r *svgRenderer) { r.size = px } }

// WithSeed sets the palette seed used when no explicit colors are given.
func WithSeed(seed uint64) SVGOption { return func(r *svgRenderer) { r.seed = seed } }

// WithTitle sets the SVG document title.
func WithTitle(t string) SVGOption { return func(r *svgRenderer) { r.title = t } }

// WithLabels sets the per-rectangle display labels. Must match the
// rectangle count.
func WithLabels(labels []string) SVGOption {
	return func(r *svgRenderer) { r.labels = labels }
}

// WithColors sets an explicit per-rectangle fill palette, overriding the
// seeded default. Must match the rectangle count.
func WithColors(colors []palette.Color) SVGOption {
	return func(r *svgRenderer) { r.colors = colors }
}

func newSVGRenderer(n int, opts ...SVGOption) (svgRenderer, error) {
	r := svgRenderer{size: DefaultSize, seed: DefaultSeed}
	for _, opt := range opts {
		opt(&r)
	}

	if r.labels != nil && len(r.labels) != n {
		return r, errors.New(errors.ErrCodeLabelMismatch, "%d labels for %d rectangles", len(r.labels), n)
	}
	if r.colors != nil && len(r.colors) != n {
		return r, errors.New(errors.ErrCodeInvalidInput, "%d colors for %d rectangles", len(r.colors), n)
	}
	if r.colors == nil {
		r.colors = palette.HSV(n, r.seed)
	}
	return r, nil
}

// RenderSVG renders the tiling as a square SVG chart.
func RenderSVG(rects []treemap.Rect, opts ...SVGOption) ([]byte, error) {
	r, err := newSVGRenderer(len(rects), opts...)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(r.size, r.size)
	if r.title != "" {
		canvas.Title(r.title)
	}

	canvas.Rect(0, 0, r.size, r.size, "fill:white;stroke:black;stroke-width:2")

	for i, rect := range rects {
		if rect.Area() <= 0 {
			continue
		}
		r.renderRect(canvas, i, rect)
	}

	canvas.End()
	return buf.Bytes(), nil
}

// renderRect draws one filled rectangle with its centered label. The unit
// square maps to the pixel canvas with y flipped, since chart coordinates
// grow upward and SVG coordinates grow downward.
func (r *svgRenderer) renderRect(canvas *svg.SVG, i int, rect treemap.Rect) {
	px := rect.X * r.size
	py := (1 - rect.Y - rect.H) * r.size
	pw := rect.W * r.size
	ph := rect.H * r.size

	fill := r.colors[i]
	canvas.Rect(px, py, pw, ph, fmt.Sprintf("fill:%s;stroke:black;stroke-width:1", fill.Hex()))

	label := ""
	if r.labels != nil {
		label = r.labels[i]
	} else {
		label = fmt.Sprintf("%.2f", rect.Area())
	}
	if label == "" {
		return
	}

	fontSize := fontSizeFor(pw, ph, len(label))
	label = truncateLabel(label, pw, fontSize)

	textColor := "black"
	if palette.IsDark(fill) {
		textColor = "white"
	}

	canvas.Text(px+pw/2, py+ph/2, label,
		fmt.Sprintf("text-anchor:middle;dominant-baseline:central;font-size:%.1fpx;font-weight:bold;fill:%s", fontSize, textColor))
}
