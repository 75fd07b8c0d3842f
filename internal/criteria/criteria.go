// Package criteria contains the evaluation core: the criterion contract, the
// built-in rule set, the registry, the engine, and score aggregation.
package criteria

import (
	"fmt"

	"github.com/da-luce/cvlint/internal/extract"
)

// Criterion categories used by the built-in rules.
const (
	CategoryFormat    = "format"
	CategoryContent   = "content"
	CategoryStructure = "structure"
)

// Criterion is a single named, weighted quality rule. Implementations are
// stateless: Evaluate must be idempotent, must not mutate the Facts, and may
// fail only by returning an Error result.
type Criterion interface {
	Name() string
	Category() string
	Weight() float64
	Description() string
	Evaluate(facts *extract.Facts) Result
}

// Status is the outcome kind of one criterion.
type Status int

const (
	StatusPass Status = iota
	StatusFail
	StatusPartial
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusFail:
		return "fail"
	case StatusPartial:
		return "partial"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Result is the outcome of evaluating one criterion. Score is meaningful only
// for StatusPartial and is always within [0, 1]. Weight is copied from the
// criterion by the engine.
type Result struct {
	Status  Status
	Score   float64
	Message string
	Weight  float64
}

// effective returns the [0,1] contribution of the result before weighting.
// Error counts as zero but is reported distinctly from Fail.
func (r Result) effective() float64 {
	switch r.Status {
	case StatusPass:
		return 1
	case StatusPartial:
		return clamp01(r.Score)
	default:
		return 0
	}
}

// Pass builds a passing result.
func Pass(message string) Result {
	return Result{Status: StatusPass, Score: 1, Message: message}
}

// Fail builds a failing result.
func Fail(message string) Result {
	return Result{Status: StatusFail, Message: message}
}

// Partial builds a partial-credit result with score clamped to [0, 1].
func Partial(score float64, message string) Result {
	return Result{Status: StatusPartial, Score: clamp01(score), Message: message}
}

// Errorf builds an Error result for a criterion whose precondition could not
// be evaluated.
func Errorf(format string, args ...any) Result {
	return Result{Status: StatusError, Message: fmt.Sprintf(format, args...)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
