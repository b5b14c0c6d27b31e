package model

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {

	xx := [][]float64{{0}, {1}, {2}, {3}, {4}, {5}, {6}, {7}}
	yy := []int{0, 1, 2, 3, 4, 5, 6, 7}

	trainX, trainY, testX, testY := Split(xx, yy, 0.75, rand.New(rand.NewSource(1)))

	assert.Equal(t, 6, len(trainX))
	assert.Equal(t, 2, len(testX))

	// pairing survives the shuffle
	for i, x := range trainX {
		assert.Equal(t, int(x[0]), trainY[i])
	}
	for i, x := range testX {
		assert.Equal(t, int(x[0]), testY[i])
	}

}

func TestForest_SeparableData(t *testing.T) {

	rng := rand.New(rand.NewSource(7))
	var xx [][]float64
	var yy []int
	for i := 0; i < 400; i++ {
		v := rng.Float64()
		x := []float64{v, rng.Float64(), rng.Float64()}
		y := 0
		if v > 0.5 {
			y = 1
		}
		xx = append(xx, x)
		yy = append(yy, y)
	}

	forest := NewForest(50)
	importance := forest.Train(xx, yy)
	assert.Equal(t, 3, len(importance))

	high := forest.Score([]float64{0.9, 0.5, 0.5})
	low := forest.Score([]float64{0.1, 0.5, 0.5})
	assert.Greater(t, high, low)
	assert.Greater(t, high, 0.5)
	assert.Less(t, low, 0.5)

}
