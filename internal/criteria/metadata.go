package criteria

import (
	"fmt"
	"strings"

	"github.com/da-luce/cvlint/internal/extract"
)

type documentMetadata struct{}

// NewDocumentMetadata creates the criterion that requires Title and Author
// metadata fields.
func NewDocumentMetadata() Criterion {
	return &documentMetadata{}
}

func (c *documentMetadata) Name() string     { return "Document Metadata" }
func (c *documentMetadata) Category() string { return CategoryStructure }
func (c *documentMetadata) Weight() float64  { return 5 }

func (c *documentMetadata) Description() string {
	return "Document metadata declares a title and an author"
}

func (c *documentMetadata) Evaluate(facts *extract.Facts) Result {
	if facts.Metadata == nil {
		return Errorf("no metadata available")
	}

	info, err := facts.Info()
	if err != nil {
		return Errorf("reading metadata: %v", err)
	}

	var missing []string
	if strings.TrimSpace(info.Title) == "" {
		missing = append(missing, "Title")
	}
	if strings.TrimSpace(info.Author) == "" {
		missing = append(missing, "Author")
	}

	if len(missing) > 0 {
		return Fail(fmt.Sprintf("missing metadata field(s): %s", strings.Join(missing, ", ")))
	}
	return Pass("title and author metadata present")
}
