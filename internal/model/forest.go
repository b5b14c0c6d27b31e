// Package model wraps the external classifiers used in the worked
// prediction examples. The package only fits and scores; all evaluation
// lives in internal/eval.
package model

import (
	"math/rand"

	randomforest "github.com/malaschitz/randomForest"
	"github.com/rs/zerolog/log"
)

// Forest is a random forest binary classifier.
type Forest struct {
	trees  int
	forest *randomforest.Forest
}

// NewForest creates an untrained forest with the given number of trees.
func NewForest(trees int) *Forest {
	return &Forest{
		trees: trees,
	}
}

// Train fits the forest on the features and 0/1 labels and returns the
// feature importances.
func (f *Forest) Train(xx [][]float64, yy []int) []float64 {
	forest := &randomforest.Forest{}
	forest.Data = randomforest.ForestData{X: xx, Class: yy}
	forest.Train(f.trees)
	f.forest = forest
	log.Debug().Int("samples", len(xx)).Int("trees", f.trees).Msg("trained forest")
	return forest.FeatureImportance
}

// Score returns the predicted probability of the positive class.
func (f *Forest) Score(x []float64) float64 {
	votes := f.forest.Vote(x)
	if len(votes) < 2 {
		return 0
	}
	return votes[1]
}

// ScoreAll scores each row of the feature matrix.
func (f *Forest) ScoreAll(xx [][]float64) []float64 {
	scores := make([]float64, len(xx))
	for i, x := range xx {
		scores[i] = f.Score(x)
	}
	return scores
}

// Split shuffles and splits features and labels into a train and a test
// set, with ratio the train share. Deterministic for a given rng.
func Split(xx [][]float64, yy []int, ratio float64, rng *rand.Rand) (trainX [][]float64, trainY []int, testX [][]float64, testY []int) {
	idx := rng.Perm(len(xx))
	cut := int(ratio * float64(len(xx)))
	for i, j := range idx {
		if i < cut {
			trainX = append(trainX, xx[j])
			trainY = append(trainY, yy[j])
		} else {
			testX = append(testX, xx[j])
			testY = append(testY, yy[j])
		}
	}
	return trainX, trainY, testX, testY
}
