package eval

// ModelSummary carries the outputs of an externally fitted binary classifier
// that the evaluator needs. The caller extracts these from whatever fitting
// library it used; the evaluator never touches model objects directly.
type ModelSummary struct {
	// Predictions are the fitted probabilities, one per observation.
	Predictions []float64
	// Outcomes are the observed binary responses, aligned with Predictions.
	Outcomes []float64
	// LogLikelihood of the fitted model.
	LogLikelihood float64
	// NullLogLikelihood of the intercept-only model.
	NullLogLikelihood float64
	// Rank is the number of estimated parameters.
	Rank int
}

// Report bundles the evaluation output for one fitted model.
type Report struct {
	AUC        float64
	PseudoR2   float64
	Prevalence float64
	Threshold  float64
	Confusion  Confusion
}

// AUC evaluates the model's discrimination.
func (m ModelSummary) AUC() (float64, error) {
	return AUC(m.Outcomes, m.Predictions)
}

// PseudoR2 is the likelihood-ratio pseudo R-squared of the model.
func (m ModelSummary) PseudoR2() (float64, error) {
	return PseudoR2(m.LogLikelihood, m.NullLogLikelihood)
}

// Evaluate runs the full evaluation: AUC, pseudo R-squared, prevalence,
// prevalence-weighted optimal threshold and the confusion matrix at that
// threshold.
func (m ModelSummary) Evaluate() (Report, error) {
	var r Report
	var err error

	if r.AUC, err = AUC(m.Outcomes, m.Predictions); err != nil {
		return r, err
	}
	if r.PseudoR2, err = PseudoR2(m.LogLikelihood, m.NullLogLikelihood); err != nil {
		return r, err
	}
	if r.Prevalence, err = Prevalence(m.Outcomes); err != nil {
		return r, err
	}
	w, err := DefaultWeights(m.Outcomes)
	if err != nil {
		return r, err
	}
	if r.Threshold, err = OptimalThreshold(m.Outcomes, m.Predictions, w); err != nil {
		return r, err
	}
	if r.Confusion, err = ConfusionMatrix(m.Outcomes, m.Predictions, r.Threshold); err != nil {
		return r, err
	}
	return r, nil
}
