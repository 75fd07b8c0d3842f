package criteria

import (
	"fmt"
	"strings"

	"github.com/da-luce/cvlint/internal/extract"
)

type requiredSections struct {
	sections []string
}

// NewRequiredSections creates the criterion that looks for section keywords in
// the document text. Credit is proportional to the number of sections found.
func NewRequiredSections(sections []string) Criterion {
	if len(sections) == 0 {
		sections = DefaultRequiredSections()
	}
	return &requiredSections{sections: sections}
}

func (c *requiredSections) Name() string     { return "Required Sections" }
func (c *requiredSections) Category() string { return CategoryContent }
func (c *requiredSections) Weight() float64  { return 15 }

func (c *requiredSections) Description() string {
	return fmt.Sprintf("Document mentions the sections: %s", strings.Join(c.sections, ", "))
}

func (c *requiredSections) Evaluate(facts *extract.Facts) Result {
	if strings.TrimSpace(facts.FullText) == "" {
		return Errorf("no text available to search for sections")
	}

	text := strings.ToLower(facts.FullText)
	var missing []string
	for _, section := range c.sections {
		if !strings.Contains(text, strings.ToLower(section)) {
			missing = append(missing, section)
		}
	}

	if len(missing) == 0 {
		return Pass("all required sections present")
	}

	found := len(c.sections) - len(missing)
	return Partial(float64(found)/float64(len(c.sections)),
		fmt.Sprintf("missing section(s): %s", strings.Join(missing, ", ")))
}
