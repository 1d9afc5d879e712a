package bubble

import (
	"encoding/json"

	"github.com/tessella/tessella/pkg/assoc"
	"github.com/tessella/tessella/pkg/errors"
	"github.com/tessella/tessella/pkg/render"
)

// RenderPNG renders the chart as PNG via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(m *assoc.Matrix, scale float64, opts ...SVGOption) ([]byte, error) {
	svg, err := RenderSVG(m, opts...)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}

// RenderPDF renders the chart as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(m *assoc.Matrix, opts ...SVGOption) ([]byte, error) {
	svg, err := RenderSVG(m, opts...)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

type jsonOutput struct {
	Patterns   []string   `json:"patterns"`
	Substances []string   `json:"substances"`
	Pairs      []jsonPair `json:"pairs"`
}

type jsonPair struct {
	Pattern   string  `json:"pattern"`
	Substance string  `json:"substance"`
	Count     int     `json:"count"`
	Radius    float64 `json:"radius"`
}

// RenderJSON emits the aggregated matrix as machine-readable JSON,
// including the normalized radius each circle would be drawn with.
func RenderJSON(m *assoc.Matrix) ([]byte, error) {
	if m == nil || m.Len() == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "empty matrix: nothing to draw")
	}

	minCount, maxCount := m.MinMax()

	out := jsonOutput{Patterns: m.Patterns, Substances: m.Substances}
	for _, pair := range m.Pairs() {
		out.Pairs = append(out.Pairs, jsonPair{
			Pattern:   pair.Pattern,
			Substance: pair.Substance,
			Count:     pair.Count,
			Radius:    assoc.Radius(pair.Count, minCount, maxCount),
		})
	}
	return json.MarshalIndent(out, "", "  ")
}
