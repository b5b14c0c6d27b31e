package eval

import (
	"fmt"
	"math"
	"sort"
)

// sample is the cleaned-up view of an (outcomes, predictions) pair.
// values are NaN-free, neg and pos are the two distinct outcome values
// in sort order.
type sample struct {
	outcomes    []float64
	predictions []float64
	neg, pos    float64
	nNeg, nPos  int
}

// clean drops NaN entries pairwise and resolves the two outcome classes.
func clean(outcomes, predictions []float64) (sample, error) {
	if len(outcomes) != len(predictions) {
		return sample{}, fmt.Errorf("%w: %d outcomes vs %d predictions", ShapeMismatchErr, len(outcomes), len(predictions))
	}

	s := sample{
		outcomes:    make([]float64, 0, len(outcomes)),
		predictions: make([]float64, 0, len(predictions)),
	}
	for i, o := range outcomes {
		if math.IsNaN(o) || math.IsNaN(predictions[i]) {
			continue
		}
		s.outcomes = append(s.outcomes, o)
		s.predictions = append(s.predictions, predictions[i])
	}

	values := distinct(s.outcomes)
	switch len(values) {
	case 2:
		s.neg, s.pos = values[0], values[1]
	case 0, 1:
		return sample{}, fmt.Errorf("%w: %d outcome classes", InsufficientDataErr, len(values))
	default:
		return sample{}, fmt.Errorf("%w: %d distinct outcome values", InvalidInputErr, len(values))
	}

	for _, o := range s.outcomes {
		if o == s.pos {
			s.nPos++
		} else {
			s.nNeg++
		}
	}
	if s.nPos == 0 || s.nNeg == 0 {
		return sample{}, fmt.Errorf("%w: empty outcome class", InsufficientDataErr)
	}
	return s, nil
}

// distinct returns the sorted distinct non-NaN values of the vector.
func distinct(values []float64) []float64 {
	seen := make(map[float64]struct{})
	out := make([]float64, 0, 2)
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	sort.Float64s(out)
	return out
}

// AUC computes the area under the ROC curve with the rank-based formula.
// It is the probability that a randomly chosen positive case is ranked above
// a randomly chosen negative one, ties counting one half.
// NaN entries in either vector are dropped pairwise.
func AUC(outcomes, predictions []float64) (float64, error) {
	s, err := clean(outcomes, predictions)
	if err != nil {
		return 0, err
	}

	n := len(s.predictions)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool {
		return s.predictions[idx[i]] < s.predictions[idx[j]]
	})

	// mid-ranks for tie groups
	ranks := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j < n && s.predictions[idx[j]] == s.predictions[idx[i]] {
			j++
		}
		r := float64(i+j+1) / 2
		for k := i; k < j; k++ {
			ranks[idx[k]] = r
		}
		i = j
	}

	var rankSum float64
	for i, o := range s.outcomes {
		if o == s.pos {
			rankSum += ranks[i]
		}
	}

	nPos := float64(s.nPos)
	nNeg := float64(s.nNeg)
	return (rankSum - nPos*(nPos+1)/2) / (nPos * nNeg), nil
}

// PseudoR2 is the likelihood-ratio pseudo R-squared, 1 - llFull/llNull.
func PseudoR2(llFull, llNull float64) (float64, error) {
	if llNull == 0 {
		return 0, fmt.Errorf("%w: zero null log-likelihood", InvalidModelErr)
	}
	return 1 - llFull/llNull, nil
}

// Weights is the (negative, positive) class weight pair used by the
// threshold search.
type Weights struct {
	Neg float64
	Pos float64
}

// costMultiplier scales the negative-class weight in DefaultWeights.
// Carried over from the source convention; use OptimalThreshold with
// explicit Weights to override.
const costMultiplier = 0.3

// DefaultWeights derives threshold weights from class prevalence.
func DefaultWeights(outcomes []float64) (Weights, error) {
	p, err := Prevalence(outcomes)
	if err != nil {
		return Weights{}, err
	}
	return Weights{
		Neg: costMultiplier * (1 - p),
		Pos: p,
	}, nil
}

// OptimalThreshold finds the prediction cutoff minimising the weighted
// squared distance to the ROC top-left corner,
// w.Neg*(1-specificity)^2 + w.Pos*(1-sensitivity)^2.
// Candidates are the distinct observed prediction values; the smallest
// threshold achieving the minimum wins. A prediction counts as positive
// iff it is strictly greater than the threshold.
func OptimalThreshold(outcomes, predictions []float64, w Weights) (float64, error) {
	s, err := clean(outcomes, predictions)
	if err != nil {
		return 0, err
	}

	type pair struct {
		p   float64
		pos bool
	}
	pairs := make([]pair, len(s.predictions))
	for i, p := range s.predictions {
		pairs[i] = pair{p: p, pos: s.outcomes[i] == s.pos}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].p < pairs[j].p })

	nPos := float64(s.nPos)
	nNeg := float64(s.nNeg)

	best := math.Inf(1)
	threshold := pairs[0].p

	// walk ascending, tracking counts with prediction <= candidate
	var cumPos, cumNeg float64
	for i := 0; i < len(pairs); {
		t := pairs[i].p
		for i < len(pairs) && pairs[i].p == t {
			if pairs[i].pos {
				cumPos++
			} else {
				cumNeg++
			}
			i++
		}
		sensitivity := (nPos - cumPos) / nPos
		specificity := cumNeg / nNeg
		d := w.Neg*math.Pow(1-specificity, 2) + w.Pos*math.Pow(1-sensitivity, 2)
		if d < best {
			best = d
			threshold = t
		}
	}
	return threshold, nil
}

// MeanThreshold is the default classification cutoff, the mean of the
// non-NaN predictions.
func MeanThreshold(predictions []float64) float64 {
	var sum float64
	var n int
	for _, p := range predictions {
		if math.IsNaN(p) {
			continue
		}
		sum += p
		n++
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}
