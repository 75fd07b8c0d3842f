package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/da-luce/cvlint/internal/criteria"
)

const (
	outputText = "text"
	outputJSON = "json"
)

// jsonReport is the wire shape of the JSON report.
type jsonReport struct {
	Score     float64      `json:"score"`
	Passed    bool         `json:"passed"`
	Threshold float64      `json:"threshold"`
	Results   []jsonResult `json:"results"`
}

type jsonResult struct {
	Name    string  `json:"name"`
	Status  string  `json:"status"`
	Weight  float64 `json:"weight"`
	Message string  `json:"message"`
}

func renderReport(report *criteria.Report, path, format string) (string, error) {
	switch format {
	case outputJSON:
		return renderJSON(report)
	case outputText:
		return renderText(report, path), nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
}

func renderJSON(report *criteria.Report) (string, error) {
	out := jsonReport{
		Score:     report.TotalScore,
		Passed:    report.Passed,
		Threshold: report.Threshold,
		Results:   make([]jsonResult, 0, len(report.Results)),
	}

	for _, o := range report.Results {
		out.Results = append(out.Results, jsonResult{
			Name:    o.Criterion.Name(),
			Status:  o.Result.Status.String(),
			Weight:  o.Result.Weight,
			Message: o.Result.Message,
		})
	}

	pretty, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding report: %w", err)
	}
	return string(pretty), nil
}

func renderText(report *criteria.Report, path string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Validation report for %s\n\n", path)

	for _, o := range report.Results {
		fmt.Fprintf(&b, "  [%s] %s (%.1f): %s\n",
			statusLabel(o.Result.Status), o.Criterion.Name(), o.Result.Weight, o.Result.Message)
	}

	verdict := "FAILED"
	if report.Passed {
		verdict = "PASSED"
	}
	fmt.Fprintf(&b, "\nScore: %.1f/100 (passing score %.1f) - %s", report.TotalScore, report.Threshold, verdict)

	return b.String()
}

// statusLabel keeps the text column aligned.
func statusLabel(status criteria.Status) string {
	switch status {
	case criteria.StatusPass:
		return "PASS"
	case criteria.StatusFail:
		return "FAIL"
	case criteria.StatusPartial:
		return "PART"
	case criteria.StatusError:
		return "ERR "
	default:
		return "????"
	}
}
