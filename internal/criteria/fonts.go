package criteria

import (
	"fmt"
	"strings"

	"github.com/da-luce/cvlint/internal/extract"
)

type consistentFonts struct {
	max int
}

// NewConsistentFonts creates the criterion that caps the number of distinct
// fonts.
func NewConsistentFonts(max int) Criterion {
	if max <= 0 {
		max = DefaultMaxFonts
	}
	return &consistentFonts{max: max}
}

func (c *consistentFonts) Name() string     { return "Consistent Fonts" }
func (c *consistentFonts) Category() string { return CategoryFormat }
func (c *consistentFonts) Weight() float64  { return 10 }

func (c *consistentFonts) Description() string {
	return fmt.Sprintf("Document uses at most %d distinct fonts", c.max)
}

func (c *consistentFonts) Evaluate(facts *extract.Facts) Result {
	if len(facts.Fonts) == 0 {
		return Errorf("no font information available")
	}
	if len(facts.Fonts) > c.max {
		return Fail(fmt.Sprintf("document uses %d distinct fonts (limit %d): %s",
			len(facts.Fonts), c.max, strings.Join(facts.Fonts, ", ")))
	}
	return Pass(fmt.Sprintf("document uses %d distinct font(s)", len(facts.Fonts)))
}
