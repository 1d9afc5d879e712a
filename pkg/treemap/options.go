package treemap

// SplitPolicy selects how each region chooses its split orientation.
// Either policy yields a valid tiling; they differ only in where the
// rectangles end up.
type SplitPolicy int

const (
	// SplitLeftBiased prefers vertical (side by side) splits unless the
	// region is markedly taller than wide, keeping the largest rectangles
	// grouped along the left edge. This is the default.
	SplitLeftBiased SplitPolicy = iota

	// SplitBalanced always divides the wider dimension, producing squarer
	// rectangles.
	SplitBalanced
)

// leftBiasThreshold is the width/height factor below which SplitLeftBiased
// falls back to a horizontal split.
const leftBiasThreshold = 0.7

// Option configures Layout.
type Option func(*config)

type config struct {
	policy         SplitPolicy
	sortDescending bool
}

var defaultConfig = config{
	policy:         SplitLeftBiased,
	sortDescending: true,
}

// WithSplitPolicy sets the split orientation policy.
func WithSplitPolicy(p SplitPolicy) Option {
	return func(c *config) { c.policy = p }
}

// WithSortDescending controls whether indices are laid out largest-first.
// Sorting is on by default; disabling it preserves the caller's order in the
// traversal, which still tiles correctly but scatters large rectangles.
func WithSortDescending(sort bool) Option {
	return func(c *config) { c.sortDescending = sort }
}
