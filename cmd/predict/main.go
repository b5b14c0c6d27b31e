package main

import (
	"flag"
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jknowles/opensdp-predictive-analytics-sub000/internal/dataset"
	"github.com/jknowles/opensdp-predictive-analytics-sub000/internal/eval"
	"github.com/jknowles/opensdp-predictive-analytics-sub000/internal/model"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func main() {

	in := flag.String("in", "students.csv", "input csv path")
	trees := flag.Int("trees", 100, "number of forest trees")
	split := flag.Float64("split", 0.6, "train share of the sample")
	seed := flag.Int64("seed", 44111342, "split shuffle seed")
	flag.Parse()

	students, err := dataset.Read(*in)
	if err != nil {
		log.Fatal().Err(err).Str("in", *in).Msg("could not load dataset")
	}
	log.Info().Int("students", len(students)).Str("in", *in).Msg("loaded dataset")

	xx, yy := dataset.Matrix(students)
	trainX, trainY, testX, testY := model.Split(xx, yy, *split, rand.New(rand.NewSource(*seed)))

	forest := model.NewForest(*trees)
	importance := forest.Train(trainX, trainY)
	log.Info().
		Int("train", len(trainX)).
		Int("test", len(testX)).
		Str("importance", fmt.Sprintf("%.3f", importance)).
		Msg("trained forest")

	predictions := forest.ScoreAll(testX)
	outcomes := make([]float64, len(testY))
	for i, y := range testY {
		outcomes[i] = float64(y)
	}

	auc, err := eval.AUC(outcomes, predictions)
	if err != nil {
		log.Fatal().Err(err).Msg("could not compute auc")
	}
	prevalence, err := eval.Prevalence(outcomes)
	if err != nil {
		log.Fatal().Err(err).Msg("could not compute prevalence")
	}
	weights, err := eval.DefaultWeights(outcomes)
	if err != nil {
		log.Fatal().Err(err).Msg("could not derive weights")
	}
	threshold, err := eval.OptimalThreshold(outcomes, predictions, weights)
	if err != nil {
		log.Fatal().Err(err).Msg("could not find threshold")
	}
	confusion, err := eval.ConfusionMatrix(outcomes, predictions, threshold)
	if err != nil {
		log.Fatal().Err(err).Msg("could not build confusion matrix")
	}

	log.Info().
		Float64("auc", auc).
		Float64("prevalence", prevalence).
		Float64("threshold", threshold).
		Float64("accuracy", confusion.Accuracy()).
		Msg("evaluation")
	fmt.Println(confusion)
}
