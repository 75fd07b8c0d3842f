package criteria

import (
	"errors"
	"fmt"
)

// ErrNoCriteriaSelected is returned when aggregation is asked to score an
// empty criterion set. An empty run is not a meaningful score.
var ErrNoCriteriaSelected = errors.New("no criteria selected for evaluation")

// Report is the final aggregate of one validation run.
type Report struct {
	Results    []Outcome
	TotalScore float64
	Threshold  float64
	Passed     bool
}

// Summarize combines the outcomes into a 0-100 weighted score and the
// pass/fail verdict against threshold.
func Summarize(outcomes []Outcome, threshold float64) (*Report, error) {
	if len(outcomes) == 0 {
		return nil, ErrNoCriteriaSelected
	}

	var totalWeight, earned float64
	for _, o := range outcomes {
		totalWeight += o.Result.Weight
		earned += o.Result.Weight * o.Result.effective()
	}
	if totalWeight <= 0 {
		return nil, fmt.Errorf("total criterion weight must be positive, got %v", totalWeight)
	}

	score := 100 * earned / totalWeight
	return &Report{
		Results:    outcomes,
		TotalScore: score,
		Threshold:  threshold,
		Passed:     score >= threshold,
	}, nil
}
