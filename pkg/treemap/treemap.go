// Package treemap computes proportional rectangle tilings of the unit square.
//
// Given an ordered list of positive area ratios summing to 1, [Layout]
// partitions the square [0,1]×[0,1] into axis-aligned, non-overlapping
// rectangles whose areas match the ratios. The i-th output rectangle
// corresponds to the i-th input ratio, so callers can pair rectangles with
// labels and colors positionally.
//
// The partition is a recursive bisection: indices are sorted by ratio
// descending, each region is split into two contiguous index groups whose
// ratio sums are as close to equal as possible, and the region is divided
// proportionally along one axis. The split orientation is a cosmetic policy,
// see [SplitPolicy].
//
// # Usage
//
//	rects, err := treemap.Layout([]float64{0.5, 0.3, 0.2})
//	if err != nil {
//	    return err
//	}
//	for i, r := range rects {
//	    fmt.Printf("item %d occupies %.2f at (%.2f, %.2f)\n", i, r.Area(), r.X, r.Y)
//	}
package treemap

import (
	"math"
	"slices"

	"github.com/tessella/tessella/pkg/errors"
)

// sumTolerance is the relative tolerance for the sum-to-one check.
const sumTolerance = 1e-9

// Rect is an axis-aligned rectangle inside the unit square, anchored at its
// lower-left corner.
type Rect struct {
	X, Y float64 // lower-left corner
	W, H float64 // width and height
}

// Area returns the rectangle's area.
func (r Rect) Area() float64 { return r.W * r.H }

// CenterX returns the horizontal center point of the rectangle.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center point of the rectangle.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Layout partitions the unit square into one rectangle per ratio.
//
// The ratios must all be positive and sum to 1 within a relative tolerance
// of 1e-9. Layout returns an error with code ErrCodeInvalidRatio when the
// sum is off, or ErrCodeDegenerateRatio when any ratio is zero or negative;
// no partial result is returned. Use [Normalize] first if the input is a raw
// (non-unit) weight vector.
//
// Layout is pure: it performs no I/O and is safe for concurrent use.
func Layout(ratios []float64, opts ...Option) ([]Rect, error) {
	cfg := defaultConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := validate(ratios); err != nil {
		return nil, err
	}

	indices := make([]int, len(ratios))
	for i := range indices {
		indices[i] = i
	}
	if cfg.sortDescending {
		slices.SortStableFunc(indices, func(a, b int) int {
			switch {
			case ratios[a] > ratios[b]:
				return -1
			case ratios[a] < ratios[b]:
				return 1
			default:
				return 0
			}
		})
	}

	out := make([]Rect, len(ratios))
	splitArea(out, ratios, cfg.policy, Rect{X: 0, Y: 0, W: 1, H: 1}, indices)
	return out, nil
}

// validate checks the Layout preconditions before any layout work begins.
func validate(ratios []float64) error {
	if len(ratios) == 0 {
		return errors.New(errors.ErrCodeInvalidRatio, "no ratios given")
	}

	var sum float64
	for i, r := range ratios {
		if r <= 0 {
			return errors.New(errors.ErrCodeDegenerateRatio, "ratio %d is %v; ratios must be positive", i, r)
		}
		sum += r
	}

	if math.Abs(sum-1) > sumTolerance {
		return errors.New(errors.ErrCodeInvalidRatio, "ratios must sum to 1, got %v", sum)
	}
	return nil
}

// splitArea recursively bisects region among indices, writing the terminal
// assignment for each index into out positionally.
func splitArea(out []Rect, ratios []float64, policy SplitPolicy, region Rect, indices []int) {
	if len(indices) == 1 {
		out[indices[0]] = region
		return
	}

	split := splitPoint(ratios, indices)
	left, right := indices[:split], indices[split:]

	var leftSum, rightSum float64
	for _, i := range left {
		leftSum += ratios[i]
	}
	for _, i := range right {
		rightSum += ratios[i]
	}
	frac := leftSum / (leftSum + rightSum)

	if vertical(policy, region) {
		leftW := region.W * frac
		splitArea(out, ratios, policy, Rect{X: region.X, Y: region.Y, W: leftW, H: region.H}, left)
		splitArea(out, ratios, policy, Rect{X: region.X + leftW, Y: region.Y, W: region.W - leftW, H: region.H}, right)
	} else {
		bottomH := region.H * frac
		splitArea(out, ratios, policy, Rect{X: region.X, Y: region.Y, W: region.W, H: bottomH}, left)
		splitArea(out, ratios, policy, Rect{X: region.X, Y: region.Y + bottomH, W: region.W, H: region.H - bottomH}, right)
	}
}

// splitPoint chooses the boundary that divides indices into two contiguous
// non-empty groups, splitting immediately after the index where the running
// ratio sum first reaches half the total. Extending further right can never
// get closer to the half-total, since every ratio is positive. When the sum
// never reaches half (the last index dominates), only the last index goes
// right.
func splitPoint(ratios []float64, indices []int) int {
	var total float64
	for _, i := range indices {
		total += ratios[i]
	}
	target := total / 2

	var cum float64
	for i := 0; i < len(indices)-1; i++ {
		cum += ratios[indices[i]]
		if cum >= target {
			return i + 1
		}
	}
	return len(indices) - 1
}

// vertical reports whether the region should be divided side by side rather
// than stacked.
func vertical(policy SplitPolicy, region Rect) bool {
	if policy == SplitLeftBiased {
		// Split vertically unless the region is markedly taller than wide,
		// which keeps the large entries grouped along the left edge.
		return region.W >= region.H*leftBiasThreshold
	}
	return region.W >= region.H
}

// Normalize rescales weights so they sum to 1, returning a new slice.
// Non-positive entries are preserved as-is; the caller is expected to feed
// the result to [Layout], which rejects them. A zero-sum input is returned
// unchanged.
func Normalize(weights []float64) []float64 {
	var sum float64
	for _, w := range weights {
		sum += w
	}

	out := make([]float64, len(weights))
	if sum == 0 {
		copy(out, weights)
		return out
	}
	for i, w := range weights {
		out[i] = w / sum
	}
	return out
}
