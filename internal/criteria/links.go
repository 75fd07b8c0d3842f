package criteria

import (
	"fmt"
	"strings"

	"github.com/da-luce/cvlint/internal/extract"
)

type secureLinks struct {
	requireHTTPS bool
}

// NewSecureLinks creates the criterion that rejects empty hyperlinks and,
// when requireHTTPS is set, links that do not use https.
func NewSecureLinks(requireHTTPS bool) Criterion {
	return &secureLinks{requireHTTPS: requireHTTPS}
}

func (c *secureLinks) Name() string     { return "Secure Links" }
func (c *secureLinks) Category() string { return CategoryStructure }
func (c *secureLinks) Weight() float64  { return 10 }

func (c *secureLinks) Description() string {
	if c.requireHTTPS {
		return "All hyperlinks are non-empty and use HTTPS"
	}
	return "All hyperlinks are non-empty"
}

func (c *secureLinks) Evaluate(facts *extract.Facts) Result {
	if len(facts.Links) == 0 {
		return Pass("document contains no hyperlinks")
	}

	var offenders []string
	for _, link := range facts.Links {
		trimmed := strings.TrimSpace(link)
		if trimmed == "" {
			offenders = append(offenders, "(empty link)")
			continue
		}
		if c.requireHTTPS && !strings.HasPrefix(trimmed, "https://") {
			offenders = append(offenders, trimmed)
		}
	}

	if len(offenders) > 0 {
		return Fail(fmt.Sprintf("%d offending link(s): %s", len(offenders), strings.Join(offenders, ", ")))
	}
	return Pass(fmt.Sprintf("all %d link(s) are valid", len(facts.Links)))
}
