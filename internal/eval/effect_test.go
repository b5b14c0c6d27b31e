package eval

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStandardizedMeanDiff(t *testing.T) {

	values := []float64{1, 2, 3, 4, 5, 6}
	groups := []string{"a", "a", "a", "b", "b", "b"}

	d, err := StandardizedMeanDiff(values, groups)
	assert.NoError(t, err)
	// mean(b)-mean(a) = 3, overall sample variance of 1..6 is 3.5
	assert.InDelta(t, 3/math.Sqrt(3.5), d, 1e-12)

}

func TestStandardizedMeanDiff_LabelOrderNotPosition(t *testing.T) {

	values := []float64{4, 5, 6, 1, 2, 3}
	groups := []string{"b", "b", "b", "a", "a", "a"}

	d, err := StandardizedMeanDiff(values, groups)
	assert.NoError(t, err)
	// still mean(b)-mean(a), groups are ordered by label sort order
	assert.InDelta(t, 3/math.Sqrt(3.5), d, 1e-12)

}

func TestStandardizedMeanDiff_SkipsMissing(t *testing.T) {

	values := []float64{1, 2, 3, math.NaN(), 4, 5, 6}
	groups := []string{"a", "a", "a", "a", "b", "b", "b"}

	d, err := StandardizedMeanDiff(values, groups)
	assert.NoError(t, err)
	assert.InDelta(t, 3/math.Sqrt(3.5), d, 1e-12)

}

func TestStandardizedMeanDiff_Errors(t *testing.T) {

	_, err := StandardizedMeanDiff([]float64{1, 2}, []string{"a"})
	assert.ErrorIs(t, err, ShapeMismatchErr)

	_, err = StandardizedMeanDiff([]float64{1, 2, 3}, []string{"a", "b", "c"})
	assert.ErrorIs(t, err, InvalidInputErr)

	_, err = StandardizedMeanDiff([]float64{1, 2}, []string{"a", "a"})
	assert.ErrorIs(t, err, InvalidInputErr)

	_, err = StandardizedMeanDiff([]float64{math.NaN(), 2}, []string{"a", "b"})
	assert.ErrorIs(t, err, InsufficientDataErr)

}
