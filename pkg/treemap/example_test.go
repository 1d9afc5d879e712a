package treemap_test

import (
	"fmt"

	"github.com/tessella/tessella/pkg/treemap"
)

func ExampleLayout() {
	// Tile the unit square with three proportional rectangles.
	rects, err := treemap.Layout([]float64{0.5, 0.3, 0.2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for i, r := range rects {
		fmt.Printf("rect %d: area %.2f\n", i, r.Area())
	}
	// Output:
	// rect 0: area 0.50
	// rect 1: area 0.30
	// rect 2: area 0.20
}

func ExampleNormalize() {
	// Raw frequency counts become ratios that sum to 1.
	ratios := treemap.Normalize([]float64{3, 1, 1})
	fmt.Printf("%.2f %.2f %.2f\n", ratios[0], ratios[1], ratios[2])
	// Output:
	// 0.60 0.20 0.20
}

func ExampleLayout_splitPolicy() {
	// A balanced split always divides the wider dimension.
	rects, err := treemap.Layout(
		[]float64{0.5, 0.5},
		treemap.WithSplitPolicy(treemap.SplitBalanced),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("first: %.1f×%.1f at (%.1f, %.1f)\n", rects[0].W, rects[0].H, rects[0].X, rects[0].Y)
	fmt.Printf("second: %.1f×%.1f at (%.1f, %.1f)\n", rects[1].W, rects[1].H, rects[1].X, rects[1].Y)
	// Output:
	// first: 0.5×1.0 at (0.0, 0.0)
	// second: 0.5×1.0 at (0.5, 0.0)
}
