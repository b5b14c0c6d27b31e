package eval

import (
	"fmt"
	"math"
)

// Prevalence is the proportion of the second distinct outcome value in sort
// order, e.g. the share of ones in a 0/1 vector. NaN entries are ignored.
func Prevalence(outcomes []float64) (float64, error) {
	values := distinct(outcomes)
	if len(values) != 2 {
		return 0, fmt.Errorf("%w: %d distinct outcome values, need 2", InvalidInputErr, len(values))
	}
	pos := values[1]

	var n, nPos int
	for _, o := range outcomes {
		if math.IsNaN(o) {
			continue
		}
		n++
		if o == pos {
			nPos++
		}
	}
	return float64(nPos) / float64(n), nil
}
