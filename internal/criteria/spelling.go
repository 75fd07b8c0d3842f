package criteria

import (
	"fmt"
	"strings"

	"github.com/da-luce/cvlint/internal/dictionary"
	"github.com/da-luce/cvlint/internal/extract"
)

// spellingPenalty is the credit lost per distinct misspelled word.
const spellingPenalty = 0.2

type spelling struct {
	dict *dictionary.Dictionary
}

// NewSpelling creates the criterion that spell-checks the document text
// against the supplied dictionary.
func NewSpelling(dict *dictionary.Dictionary) Criterion {
	return &spelling{dict: dict}
}

func (c *spelling) Name() string     { return "Spelling" }
func (c *spelling) Category() string { return CategoryContent }
func (c *spelling) Weight() float64  { return 20 }

func (c *spelling) Description() string {
	return "Document text contains no misspelled words"
}

func (c *spelling) Evaluate(facts *extract.Facts) Result {
	if c.dict == nil {
		return Errorf("no dictionary configured")
	}
	if strings.TrimSpace(facts.FullText) == "" {
		return Errorf("no text available to spell-check")
	}

	misspelled := c.dict.Misspelled(facts.FullText)
	if len(misspelled) == 0 {
		return Pass("no misspelled words found")
	}

	return Partial(1-spellingPenalty*float64(len(misspelled)),
		fmt.Sprintf("%d misspelled word(s): %s", len(misspelled), strings.Join(misspelled, ", ")))
}
