// Package assoc aggregates tabular intervention records into the
// pattern × substance co-occurrence matrix behind the association chart.
//
// The input is a three-column table: an intervention type, a specific
// substance name, and a pattern/category label. Records are filtered by
// intervention, then each (pattern, substance) pair is counted. The chart
// draws one circle per pair, its radius a power-law function of the count
// normalized between the observed minimum and maximum.
package assoc

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// Record is one row of the source table.
type Record struct {
	Intervention string // treatment category used for filtering
	Substance    string // specific substance name (chart columns)
	Pattern      string // pattern/category label (chart rows)
}

// Pair is one counted (pattern, substance) combination.
type Pair struct {
	Pattern   string
	Substance string
	Count     int
}

type pairKey struct {
	pattern   string
	substance string
}

// Matrix is the aggregated co-occurrence matrix. Patterns and Substances
// hold the sorted unique axis values; counts are queried per pair.
type Matrix struct {
	Patterns   []string
	Substances []string
	counts     map[pairKey]int
}

// Filter returns the records whose Intervention equals intervention.
// An empty intervention keeps every record.
func Filter(records []Record, intervention string) []Record {
	if intervention == "" {
		return slices.Clone(records)
	}
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if r.Intervention == intervention {
			out = append(out, r)
		}
	}
	return out
}

// Count aggregates records into a Matrix. Axis values are deduplicated and
// sorted so the chart layout is deterministic regardless of row order.
func Count(records []Record) *Matrix {
	counts := make(map[pairKey]int, len(records))
	for _, r := range records {
		counts[pairKey{pattern: r.Pattern, substance: r.Substance}]++
	}

	patternSet := make(map[string]struct{})
	substanceSet := make(map[string]struct{})
	for k := range counts {
		patternSet[k.pattern] = struct{}{}
		substanceSet[k.substance] = struct{}{}
	}

	m := &Matrix{counts: counts}
	for p := range patternSet {
		m.Patterns = append(m.Patterns, p)
	}
	for s := range substanceSet {
		m.Substances = append(m.Substances, s)
	}
	slices.Sort(m.Patterns)
	slices.Sort(m.Substances)
	return m
}

// CountAt returns the count for a (pattern, substance) pair, zero when the
// pair never occurred.
func (m *Matrix) CountAt(pattern, substance string) int {
	return m.counts[pairKey{pattern: pattern, substance: substance}]
}

// Pairs returns all non-zero pairs ordered by pattern then substance.
func (m *Matrix) Pairs() []Pair {
	out := make([]Pair, 0, len(m.counts))
	for _, p := range m.Patterns {
		for _, s := range m.Substances {
			if c := m.CountAt(p, s); c > 0 {
				out = append(out, Pair{Pattern: p, Substance: s, Count: c})
			}
		}
	}
	return out
}

// Len returns the number of distinct non-zero pairs.
func (m *Matrix) Len() int { return len(m.counts) }

// MinMax returns the smallest and largest pair counts. Both are zero for an
// empty matrix.
func (m *Matrix) MinMax() (minCount, maxCount int) {
	if len(m.counts) == 0 {
		return 0, 0
	}
	vals := make([]float64, 0, len(m.counts))
	for _, c := range m.counts {
		vals = append(vals, float64(c))
	}
	return int(floats.Min(vals)), int(floats.Max(vals))
}

// Radius maps a pair count to a circle radius in cell units.
//
// When all counts are equal every circle gets a fixed radius; otherwise the
// count is normalized between the observed extremes and raised to the 1.5
// power so the frequent pairs stand out.
func Radius(count, minCount, maxCount int) float64 {
	if maxCount == minCount {
		return 0.4
	}
	normalized := float64(count-minCount) / float64(maxCount-minCount)
	return 0.15 + 0.6*math.Pow(normalized, 1.5)
}
