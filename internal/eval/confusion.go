package eval

import (
	"fmt"
	"math"
	"strings"
)

// Confusion is a 2x2 cross-tabulation of predicted against observed classes
// at a given threshold, with a per-predicted-row error rate.
type Confusion struct {
	Threshold float64
	// Counts[predicted][observed] with 0 = negative, 1 = positive.
	Counts [2][2]int
	// ClassError[predicted] = 1 - correct / rowTotal.
	// NaN for an empty predicted row.
	ClassError [2]float64
}

// Total is the number of paired observations counted in the table.
func (c Confusion) Total() int {
	return c.Counts[0][0] + c.Counts[0][1] + c.Counts[1][0] + c.Counts[1][1]
}

// Accuracy is the share of observations on the table diagonal.
func (c Confusion) Accuracy() float64 {
	total := c.Total()
	if total == 0 {
		return 0
	}
	return float64(c.Counts[0][0]+c.Counts[1][1]) / float64(total)
}

func (c Confusion) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("threshold=%.4f\n", c.Threshold))
	sb.WriteString("            obs=0   obs=1   class.error\n")
	for p := 0; p < 2; p++ {
		sb.WriteString(fmt.Sprintf("pred=%d    %7d %7d       %.4f\n",
			p, c.Counts[p][0], c.Counts[p][1], c.ClassError[p]))
	}
	return sb.String()
}

// ConfusionMatrix tabulates predictions against observed outcomes,
// counting a prediction as positive iff it is strictly greater than the
// threshold. NaN entries are dropped pairwise. Use MeanThreshold for the
// default cutoff when none was chosen explicitly.
func ConfusionMatrix(outcomes, predictions []float64, threshold float64) (Confusion, error) {
	s, err := clean(outcomes, predictions)
	if err != nil {
		return Confusion{}, err
	}

	c := Confusion{Threshold: threshold}
	for i, p := range s.predictions {
		pred := 0
		if p > threshold {
			pred = 1
		}
		obs := 0
		if s.outcomes[i] == s.pos {
			obs = 1
		}
		c.Counts[pred][obs]++
	}

	for pred := 0; pred < 2; pred++ {
		correct := c.Counts[pred][pred]
		total := c.Counts[pred][0] + c.Counts[pred][1]
		if total == 0 {
			c.ClassError[pred] = math.NaN()
			continue
		}
		c.ClassError[pred] = 1 - float64(correct)/float64(total)
	}
	return c, nil
}
