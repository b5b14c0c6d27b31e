package eval

import (
	"fmt"
	"math"
	"sort"

	"github.com/jknowles/opensdp-predictive-analytics-sub000/internal/stats"
)

// StandardizedMeanDiff is the difference of the two group means divided by
// the sample standard deviation of the full combined sample.
// The overall-SD denominator is the source convention; it is deliberately
// not the variance-weighted pooled SD of Cohen's d.
// Groups are ordered by the sort order of their labels, so the result is
// mean(second) - mean(first). NaN values are skipped.
func StandardizedMeanDiff(values []float64, groups []string) (float64, error) {
	if len(values) != len(groups) {
		return 0, fmt.Errorf("%w: %d values vs %d group labels", ShapeMismatchErr, len(values), len(groups))
	}

	labels := make([]string, 0, 2)
	seen := make(map[string]struct{})
	for _, g := range groups {
		if _, ok := seen[g]; !ok {
			seen[g] = struct{}{}
			labels = append(labels, g)
		}
	}
	if len(labels) != 2 {
		return 0, fmt.Errorf("%w: %d distinct group labels, need 2", InvalidInputErr, len(labels))
	}
	sort.Strings(labels)

	collector := stats.NewCollector()
	overall := stats.New()
	for i, v := range values {
		if math.IsNaN(v) {
			continue
		}
		collector.Push(groups[i], v)
		overall.Push(v)
	}

	g0 := collector.Get(labels[0])
	g1 := collector.Get(labels[1])
	if g0.Count() == 0 || g1.Count() == 0 || overall.Count() < 2 {
		return 0, fmt.Errorf("%w: empty group after dropping missing values", InsufficientDataErr)
	}

	return (g1.Mean() - g0.Mean()) / overall.SampleStDev(), nil
}
