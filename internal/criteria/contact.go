package criteria

import (
	"regexp"

	"github.com/da-luce/cvlint/internal/extract"
)

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phonePattern = regexp.MustCompile(`\+?\d[\d\s().-]{7,}\d`)
)

type contactInfo struct{}

// NewContactInfo creates the criterion that looks for an email address and a
// phone number. Half credit is given when only one of the two is present.
func NewContactInfo() Criterion {
	return &contactInfo{}
}

func (c *contactInfo) Name() string     { return "Contact Information" }
func (c *contactInfo) Category() string { return CategoryContent }
func (c *contactInfo) Weight() float64  { return 15 }

func (c *contactInfo) Description() string {
	return "Document contains an email address and a phone number"
}

func (c *contactInfo) Evaluate(facts *extract.Facts) Result {
	hasEmail := emailPattern.MatchString(facts.FullText)
	hasPhone := phonePattern.MatchString(facts.FullText)

	switch {
	case hasEmail && hasPhone:
		return Pass("email address and phone number found")
	case hasEmail:
		return Partial(0.5, "email address found, but no phone number")
	case hasPhone:
		return Partial(0.5, "phone number found, but no email address")
	default:
		return Fail("no email address or phone number found")
	}
}
