package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModelSummary_Evaluate(t *testing.T) {

	m := ModelSummary{
		Predictions:       []float64{0.1, 0.4, 0.35, 0.6, 0.8, 0.9},
		Outcomes:          []float64{0, 0, 0, 1, 1, 1},
		LogLikelihood:     -40,
		NullLogLikelihood: -80,
		Rank:              2,
	}

	r, err := m.Evaluate()
	assert.NoError(t, err)
	assert.InDelta(t, 1.0, r.AUC, 1e-12)
	assert.InDelta(t, 0.5, r.PseudoR2, 1e-12)
	assert.InDelta(t, 0.5, r.Prevalence, 1e-12)
	assert.InDelta(t, 0.4, r.Threshold, 1e-12)
	assert.Equal(t, 3, r.Confusion.Counts[0][0])
	assert.Equal(t, 3, r.Confusion.Counts[1][1])
	assert.InDelta(t, 1.0, r.Confusion.Accuracy(), 1e-12)

}

func TestModelSummary_Evaluate_Errors(t *testing.T) {

	m := ModelSummary{
		Predictions:       []float64{0.1, 0.9},
		Outcomes:          []float64{1, 1},
		LogLikelihood:     -40,
		NullLogLikelihood: -80,
	}
	_, err := m.Evaluate()
	assert.ErrorIs(t, err, InsufficientDataErr)

	m = ModelSummary{
		Predictions:       []float64{0.1, 0.9},
		Outcomes:          []float64{0, 1},
		LogLikelihood:     -40,
		NullLogLikelihood: 0,
	}
	_, err = m.Evaluate()
	assert.ErrorIs(t, err, InvalidModelErr)

}
