package criteria

import (
	"fmt"
	"strings"

	"github.com/da-luce/cvlint/internal/extract"
)

type readableText struct{}

// NewReadableText creates the criterion that requires extractable text on
// every page.
func NewReadableText() Criterion {
	return &readableText{}
}

func (c *readableText) Name() string     { return "Readable Text" }
func (c *readableText) Category() string { return CategoryStructure }
func (c *readableText) Weight() float64  { return 5 }

func (c *readableText) Description() string {
	return "Every page contains extractable text"
}

func (c *readableText) Evaluate(facts *extract.Facts) Result {
	if len(facts.PageText) == 0 {
		return Errorf("no page text available")
	}

	var empty []string
	for i, text := range facts.PageText {
		if strings.TrimSpace(text) == "" {
			empty = append(empty, fmt.Sprintf("%d", i+1))
		}
	}

	if len(empty) > 0 {
		return Fail(fmt.Sprintf("page(s) without readable text: %s", strings.Join(empty, ", ")))
	}
	return Pass(fmt.Sprintf("all %d page(s) contain readable text", len(facts.PageText)))
}
