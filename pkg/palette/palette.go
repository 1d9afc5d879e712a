// Package palette generates chart colors and luminance-based contrast
// decisions.
//
// Colors are generated in HSV space with evenly spaced hues so adjacent
// chart elements stay distinguishable, then shuffled with a seeded source
// so the assignment looks natural while remaining reproducible for a given
// seed.
package palette

import (
	"fmt"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB color with channel values in [0,1].
type Color struct {
	R, G, B float64
}

// Hex returns the color as a #rrggbb string.
func (c Color) Hex() string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return fmt.Sprintf("rgb(%.3f, %.3f, %.3f)", c.R, c.G, c.B)
}

// Luminance returns the perceived brightness of c in [0,1] using the
// ITU-R BT.601 weights.
func Luminance(c Color) float64 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}

// IsDark reports whether c is dark enough that overlaid text should be
// rendered in white rather than black.
func IsDark(c Color) bool {
	return Luminance(c) < 0.5
}

// newRand returns a seeded PCG source so palettes are reproducible.
func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// HSV generates n distinct colors with evenly spaced hues.
//
// Saturation is drawn from [0.3, 0.5) and value from [0.6, 1.0), both from
// the seeded source, and the result is shuffled with the same source. The
// same (n, seed) pair always yields the same palette.
func HSV(n int, seed uint64) []Color {
	if n <= 0 {
		return nil
	}

	rng := newRand(seed)
	colors := make([]Color, n)
	for i := range colors {
		hue := 360 * float64(i) / float64(n)
		sat := 0.3 + rng.Float64()*0.2
		val := 0.6 + rng.Float64()*0.4
		c := colorful.Hsv(hue, sat, val)
		colors[i] = Color{R: c.R, G: c.G, B: c.B}
	}

	rng.Shuffle(n, func(i, j int) {
		colors[i], colors[j] = colors[j], colors[i]
	})
	return colors
}

// Random generates n uniformly random RGB colors from a seeded source.
// Used for association-chart circle outlines, where hue spacing matters
// less than cheap variety.
func Random(n int, seed uint64) []Color {
	if n <= 0 {
		return nil
	}

	rng := newRand(seed)
	colors := make([]Color, n)
	for i := range colors {
		colors[i] = Color{R: rng.Float64(), G: rng.Float64(), B: rng.Float64()}
	}
	return colors
}
