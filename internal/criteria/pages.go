package criteria

import (
	"fmt"

	"github.com/da-luce/cvlint/internal/extract"
)

type pageLimit struct {
	max int
}

// NewPageLimit creates the criterion that caps the page count.
func NewPageLimit(max int) Criterion {
	if max <= 0 {
		max = DefaultMaxPages
	}
	return &pageLimit{max: max}
}

func (c *pageLimit) Name() string     { return "Single Page Limit" }
func (c *pageLimit) Category() string { return CategoryFormat }
func (c *pageLimit) Weight() float64  { return 10 }

func (c *pageLimit) Description() string {
	return fmt.Sprintf("Document is at most %d page(s) long", c.max)
}

func (c *pageLimit) Evaluate(facts *extract.Facts) Result {
	if facts.PageCount <= 0 {
		return Errorf("document reports no pages")
	}
	if facts.PageCount > c.max {
		return Fail(fmt.Sprintf("document has %d pages (limit %d)", facts.PageCount, c.max))
	}
	return Pass(fmt.Sprintf("document has %d page(s)", facts.PageCount))
}
