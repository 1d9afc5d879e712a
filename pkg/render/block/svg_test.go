package block

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/tessella/tessella/pkg/errors"
	"github.com/tessella/tessella/pkg/palette"
	"github.com/tessella/tessella/pkg/treemap"
)

func mustLayout(t *testing.T, ratios []float64) []treemap.Rect {
	t.Helper()
	rects, err := treemap.Layout(ratios)
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	return rects
}

func TestRenderSVGBasic(t *testing.T) {
	rects := mustLayout(t, []float64{0.5, 0.3, 0.2})

	data, err := RenderSVG(rects, WithLabels([]string{"a", "b", "c"}))
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	out := string(data)

	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Error("output is not an SVG document")
	}
	// Border plus one rect per ratio.
	if got := strings.Count(out, "<rect"); got != 4 {
		t.Errorf("output has %d <rect> elements, want 4", got)
	}
	for _, label := range []string{">a<", ">b<", ">c<"} {
		if !strings.Contains(out, label) {
			t.Errorf("output missing label text %q", label)
		}
	}
}

func TestRenderSVGDefaultLabels(t *testing.T) {
	rects := mustLayout(t, []float64{0.75, 0.25})

	data, err := RenderSVG(rects)
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	out := string(data)

	// Unlabeled rectangles show their area formatted to two decimals.
	if !strings.Contains(out, "0.75") || !strings.Contains(out, "0.25") {
		t.Errorf("output missing default ratio labels:\n%s", out)
	}
}

func TestRenderSVGTitle(t *testing.T) {
	rects := mustLayout(t, []float64{1.0})

	data, err := RenderSVG(rects, WithTitle("ages"))
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	if !strings.Contains(string(data), "<title>ages</title>") {
		t.Error("output missing document title")
	}
}

func TestRenderSVGDeterministic(t *testing.T) {
	rects := mustLayout(t, []float64{0.6, 0.4})

	a, err := RenderSVG(rects, WithSeed(7))
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	b, err := RenderSVG(rects, WithSeed(7))
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	if string(a) != string(b) {
		t.Error("same seed produced different SVG output")
	}
}

func TestRenderSVGLabelMismatch(t *testing.T) {
	rects := mustLayout(t, []float64{0.5, 0.5})

	_, err := RenderSVG(rects, WithLabels([]string{"only one"}))
	if !errors.Is(err, errors.ErrCodeLabelMismatch) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeLabelMismatch)
	}
}

func TestRenderSVGExplicitColors(t *testing.T) {
	rects := mustLayout(t, []float64{1.0})

	data, err := RenderSVG(rects, WithColors([]palette.Color{{R: 1}}))
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	if !strings.Contains(string(data), "#ff0000") {
		t.Error("output missing explicit fill color")
	}

	_, err = RenderSVG(rects, WithColors([]palette.Color{{R: 1}, {G: 1}}))
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("color mismatch error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidInput)
	}
}

func TestRenderSVGContrastText(t *testing.T) {
	rects := mustLayout(t, []float64{1.0})

	dark, err := RenderSVG(rects, WithLabels([]string{"x"}), WithColors([]palette.Color{{R: 0.1, G: 0.1, B: 0.1}}))
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	if !strings.Contains(string(dark), "fill:white") {
		t.Error("dark fill should get white label text")
	}

	light, err := RenderSVG(rects, WithLabels([]string{"x"}), WithColors([]palette.Color{{R: 1, G: 1, B: 0.9}}))
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	if !strings.Contains(string(light), "fill:black") {
		t.Error("light fill should get black label text")
	}
}

func TestRenderJSON(t *testing.T) {
	rects := mustLayout(t, []float64{0.5, 0.5})

	data, err := RenderJSON(rects, WithLabels([]string{"a", "b"}), WithSeed(3))
	if err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}

	if out.Seed != 3 {
		t.Errorf("Seed = %d, want 3", out.Seed)
	}
	if len(out.Blocks) != 2 {
		t.Fatalf("Blocks count = %d, want 2", len(out.Blocks))
	}
	if out.Blocks[0].Label != "a" || out.Blocks[1].Label != "b" {
		t.Errorf("labels = %q, %q; want a, b", out.Blocks[0].Label, out.Blocks[1].Label)
	}
	if out.Blocks[0].Area != 0.5 {
		t.Errorf("Blocks[0].Area = %v, want 0.5", out.Blocks[0].Area)
	}
	if !strings.HasPrefix(out.Blocks[0].Color, "#") {
		t.Errorf("Blocks[0].Color = %q, want hex color", out.Blocks[0].Color)
	}
}

func TestRenderJSONDefaultLabels(t *testing.T) {
	rects := mustLayout(t, []float64{0.75, 0.25})

	data, err := RenderJSON(rects)
	if err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}

	// Same formatted-area fallback the SVG sink draws.
	if out.Blocks[0].Label != "0.75" || out.Blocks[1].Label != "0.25" {
		t.Errorf("labels = %q, %q; want 0.75, 0.25", out.Blocks[0].Label, out.Blocks[1].Label)
	}
}

func TestFontSizeFor(t *testing.T) {
	tests := []struct {
		name        string
		w, h        float64
		textLen     int
		wantAtLeast float64
		wantAtMost  float64
	}{
		{name: "large box short text", w: 300, h: 300, textLen: 2, wantAtLeast: fontSizeMax, wantAtMost: fontSizeMax},
		{name: "tiny box", w: 8, h: 8, textLen: 10, wantAtLeast: fontSizeMin, wantAtMost: fontSizeMin},
		{name: "narrow box long text", w: 60, h: 200, textLen: 12, wantAtLeast: fontSizeMin, wantAtMost: fontSizeMax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fontSizeFor(tt.w, tt.h, tt.textLen)
			if got < tt.wantAtLeast || got > tt.wantAtMost {
				t.Errorf("fontSizeFor(%v, %v, %d) = %v, want in [%v, %v]",
					tt.w, tt.h, tt.textLen, got, tt.wantAtLeast, tt.wantAtMost)
			}
		})
	}
}

func TestTruncateLabel(t *testing.T) {
	tests := []struct {
		name  string
		label string
		avail float64
		size  float64
		want  string
	}{
		{name: "fits", label: "ok", avail: 200, size: 12, want: "ok"},
		{name: "truncated", label: "a very long label indeed", avail: 40, size: 12, want: "a ve.."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateLabel(tt.label, tt.avail, tt.size)
			if tt.name == "fits" && got != tt.want {
				t.Errorf("truncateLabel() = %q, want %q", got, tt.want)
			}
			if tt.name == "truncated" && !strings.HasSuffix(got, "..") {
				t.Errorf("truncateLabel() = %q, want truncated with ..", got)
			}
		})
	}
}
