package palette

import (
	"math"
	"testing"
)

func TestHSVCount(t *testing.T) {
	for _, n := range []int{1, 2, 7, 46} {
		colors := HSV(n, 42)
		if len(colors) != n {
			t.Errorf("HSV(%d) returned %d colors", n, len(colors))
		}
	}

	if colors := HSV(0, 42); colors != nil {
		t.Errorf("HSV(0) = %v, want nil", colors)
	}
}

func TestHSVChannelRange(t *testing.T) {
	for i, c := range HSV(20, 7) {
		for name, v := range map[string]float64{"R": c.R, "G": c.G, "B": c.B} {
			if v < 0 || v > 1 {
				t.Errorf("color %d channel %s = %v, want [0,1]", i, name, v)
			}
		}
	}
}

func TestHSVDeterministic(t *testing.T) {
	a := HSV(10, 42)
	b := HSV(10, 42)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("HSV not reproducible for same seed: %v != %v at %d", a[i], b[i], i)
		}
	}

	c := HSV(10, 43)
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("HSV produced identical palettes for different seeds")
	}
}

func TestRandomDeterministic(t *testing.T) {
	a := Random(5, 1)
	b := Random(5, 1)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Random not reproducible for same seed: %v != %v at %d", a[i], b[i], i)
		}
	}
}

func TestLuminance(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  float64
	}{
		{name: "black", color: Color{0, 0, 0}, want: 0},
		{name: "white", color: Color{1, 1, 1}, want: 1},
		{name: "pure red", color: Color{R: 1}, want: 0.299},
		{name: "pure green", color: Color{G: 1}, want: 0.587},
		{name: "pure blue", color: Color{B: 1}, want: 0.114},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Luminance(tt.color); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Luminance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsDark(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  bool
	}{
		{name: "black is dark", color: Color{0, 0, 0}, want: true},
		{name: "white is light", color: Color{1, 1, 1}, want: false},
		{name: "navy is dark", color: Color{R: 0.0, G: 0.0, B: 0.5}, want: true},
		{name: "yellow is light", color: Color{R: 1, G: 1, B: 0}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDark(tt.color); got != tt.want {
				t.Errorf("IsDark(%v) = %v, want %v", tt.color, got, tt.want)
			}
		})
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		color Color
		want  string
	}{
		{color: Color{0, 0, 0}, want: "#000000"},
		{color: Color{1, 1, 1}, want: "#ffffff"},
		{color: Color{R: 1}, want: "#ff0000"},
	}

	for _, tt := range tests {
		if got := tt.color.Hex(); got != tt.want {
			t.Errorf("Hex(%v) = %v, want %v", tt.color, got, tt.want)
		}
	}
}
