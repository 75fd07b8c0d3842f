package criteria

import (
	"testing"

	"github.com/da-luce/cvlint/internal/dictionary"
	"github.com/da-luce/cvlint/internal/extract"
)

// NewRegistryForTest builds the built-in registry with default rules and a
// base dictionary.
func NewRegistryForTest(t *testing.T) *Registry {
	t.Helper()
	return NewRegistry(DefaultRules(), dictionary.New(nil))
}

// passingFacts fabricates a Facts snapshot that satisfies every built-in
// criterion under the default rules.
func passingFacts(pages int) *extract.Facts {
	text := "Experience Education Skills team@work.com +1 (555) 123-4567"

	pageText := make([]string, pages)
	for i := range pageText {
		pageText[i] = text
	}

	return &extract.Facts{
		Path:      "resume.pdf",
		PageCount: pages,
		ByteSize:  50000,
		FullText:  text,
		PageText:  pageText,
		Fonts:     []string{"Helvetica"},
		Links:     []string{"https://work.com"},
		Metadata:  map[string]string{"Title": "Resume", "Author": "Jane Doe"},
	}
}
