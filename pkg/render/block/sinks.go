package block

import (
	"encoding/json"
	"fmt"

	"github.com/tessella/tessella/pkg/render"
	"github.com/tessella/tessella/pkg/treemap"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	svgOpts []SVGOption
	scale   float64
}

// WithPNGSVGOptions passes options through to the underlying SVG renderer.
func WithPNGSVGOptions(opts ...SVGOption) PNGOption {
	return func(r *pngRenderer) { r.svgOpts = opts }
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// RenderPNG renders the tiling as PNG via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(rects []treemap.Rect, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}
	svg, err := RenderSVG(rects, r.svgOpts...)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, r.scale)
}

// RenderPDF renders the tiling as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(rects []treemap.Rect, opts ...SVGOption) ([]byte, error) {
	svg, err := RenderSVG(rects, opts...)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

type jsonOutput struct {
	Size   float64     `json:"size"`
	Seed   uint64      `json:"seed"`
	Title  string      `json:"title,omitempty"`
	Blocks []jsonBlock `json:"blocks"`
}

type jsonBlock struct {
	Label string  `json:"label,omitempty"`
	Color string  `json:"color"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	W     float64 `json:"w"`
	H     float64 `json:"h"`
	Area  float64 `json:"area"`
}

// RenderJSON emits the tiling as machine-readable JSON: unit-square
// geometry plus the labels and hex colors the SVG sink would use.
func RenderJSON(rects []treemap.Rect, opts ...SVGOption) ([]byte, error) {
	r, err := newSVGRenderer(len(rects), opts...)
	if err != nil {
		return nil, err
	}

	out := jsonOutput{Size: r.size, Seed: r.seed, Title: r.title, Blocks: make([]jsonBlock, len(rects))}
	for i, rect := range rects {
		b := jsonBlock{
			Color: r.colors[i].Hex(),
			X:     rect.X,
			Y:     rect.Y,
			W:     rect.W,
			H:     rect.H,
			Area:  rect.Area(),
		}
		// Same defaulting as the SVG sink, so both describe one render.
		if r.labels != nil {
			b.Label = r.labels[i]
		} else {
			b.Label = fmt.Sprintf("%.2f", rect.Area())
		}
		out.Blocks[i] = b
	}
	return json.MarshalIndent(out, "", "  ")
}
