package criteria

import (
	"fmt"

	"github.com/da-luce/cvlint/internal/extract"
	"go.uber.org/zap"
)

// Outcome pairs a criterion with its evaluation result.
type Outcome struct {
	Criterion Criterion
	Result    Result
}

// Engine runs a selected list of criteria against one Facts snapshot.
// Criteria are pure, so given the same Facts and selection the engine is
// deterministic.
type Engine struct {
	logger *zap.Logger
}

// NewEngine creates an engine. A nil logger disables step logging.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

// Run evaluates the selected criteria sequentially, preserving selection
// order. One criterion's internal fault never aborts the run for the rest.
func (e *Engine) Run(facts *extract.Facts, selected []Criterion) []Outcome {
	outcomes := make([]Outcome, 0, len(selected))
	for _, c := range selected {
		result := e.evaluate(c, facts)

		e.logger.Info("criterion evaluated",
			zap.String("name", c.Name()),
			zap.String("category", c.Category()),
			zap.String("status", result.Status.String()),
			zap.Float64("weight", result.Weight),
		)
		if result.Status == StatusError {
			e.logger.Warn("criterion could not be evaluated",
				zap.String("name", c.Name()),
				zap.String("message", result.Message),
			)
		}

		outcomes = append(outcomes, Outcome{Criterion: c, Result: result})
	}
	return outcomes
}

// evaluate invokes one criterion inside a failure boundary. A panic inside
// the criterion becomes an Error result instead of taking down the run.
func (e *Engine) evaluate(c Criterion, facts *extract.Facts) (result Result) {
	defer func() {
		if rec := recover(); rec != nil {
			result = Result{
				Status:  StatusError,
				Message: fmt.Sprintf("criterion fault: %v", rec),
				Weight:  c.Weight(),
			}
		}
	}()

	result = c.Evaluate(facts)
	result.Weight = c.Weight()
	if result.Status == StatusPartial {
		result.Score = clamp01(result.Score)
	}
	return result
}
