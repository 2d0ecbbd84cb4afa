package render

import (
	"fmt"
	"sort"
	"strings"
)

// sparkLevels are the ordered glyphs a bin count maps to, lowest to highest.
var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// NoData is the sentinel rendered for a distribution with nothing to show:
// an all-missing column or an empty group.
const NoData = "<none>"

// Spark maps pre-computed bin counts to a fixed-width glyph string, one glyph
// per bin. The mapping is relative and monotonic: the largest count gets the
// highest glyph, a zero count the lowest, so the output is independent of the
// data's absolute scale. Degenerate input (no bins, or all counts zero)
// returns NoData.
func Spark(counts []float64) string {
	if len(counts) == 0 {
		return NoData
	}

	max := 0.0
	for _, c := range counts {
		if c > max {
			max = c
		}
	}
	if max <= 0 {
		return NoData
	}

	top := float64(len(sparkLevels) - 1)
	var b strings.Builder
	for _, c := range counts {
		if c < 0 {
			c = 0
		}
		level := int(c / max * top)
		b.WriteRune(sparkLevels[level])
	}
	return b.String()
}

// TopCounts renders the k most frequent labels as "label: count" pairs in
// descending frequency, ties broken by first-seen order. Labels and counts
// are parallel slices in first-seen order.
func TopCounts(labels []string, counts []int, k int) string {
	if len(labels) == 0 {
		return NoData
	}

	order := make([]int, len(labels))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return counts[order[a]] > counts[order[b]]
	})

	if k > len(order) {
		k = len(order)
	}
	parts := make([]string, 0, k)
	for _, i := range order[:k] {
		parts = append(parts, fmt.Sprintf("%s: %d", truncateLabel(labels[i]), counts[i]))
	}
	return strings.Join(parts, ", ")
}

// truncateLabel keeps top-counts cells bounded regardless of level names.
func truncateLabel(s string) string {
	const maxRunes = 8
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes-1]) + "…"
}
