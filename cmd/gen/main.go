package main

import (
	"flag"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jknowles/opensdp-predictive-analytics-sub000/infra/config"
	"github.com/jknowles/opensdp-predictive-analytics-sub000/internal/dataset"
	"github.com/jknowles/opensdp-predictive-analytics-sub000/internal/gen"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func main() {

	configDir := flag.String("config", config.DefaultDir, "config directory")
	out := flag.String("out", "students.csv", "output csv path")
	seed := flag.Uint64("seed", 0, "override the config seed, 0 keeps it")
	flag.Parse()

	var cfg gen.Config
	config.MustLoad(*configDir, "generator", &cfg)
	if *seed != 0 {
		cfg.Seed = *seed
	}

	students := gen.New(cfg).Generate()

	summary := gen.Summarize(students)
	for _, name := range summary.Names() {
		s := summary.Get(name)
		log.Info().
			Str("column", name).
			Float64("mean", s.Mean()).
			Float64("sd", s.SampleStDev()).
			Float64("min", s.Min()).
			Float64("max", s.Max()).
			Msg("column summary")
	}

	if err := dataset.Write(*out, students); err != nil {
		log.Fatal().Err(err).Str("out", *out).Msg("could not write dataset")
	}
	log.Info().Int("students", len(students)).Str("out", *out).Msg("wrote dataset")
}
