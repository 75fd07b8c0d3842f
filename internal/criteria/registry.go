package criteria

import (
	"fmt"
	"strings"

	"github.com/da-luce/cvlint/internal/dictionary"
)

// UnknownCriterionError is returned when a requested criterion name does not
// match any registered criterion. Silently skipping the name would mask user
// typos, so every offender is listed.
type UnknownCriterionError struct {
	Names []string
}

func (e *UnknownCriterionError) Error() string {
	return fmt.Sprintf("unknown criterion name(s): %s", strings.Join(e.Names, ", "))
}

// Registry owns the full ordered set of criteria for one run. It is built
// once at startup and never mutated.
type Registry struct {
	items []Criterion
}

// NewRegistry builds the built-in criterion set with the supplied rule
// thresholds. Registry order is fixed and determines report order.
func NewRegistry(rules *Rules, dict *dictionary.Dictionary) *Registry {
	rules = rules.normalized()
	return &Registry{items: []Criterion{
		NewPageLimit(rules.MaxPages),
		NewFileSizeLimit(rules.MaxFileSizeKB),
		NewConsistentFonts(rules.MaxFonts),
		NewRequiredSections(rules.RequiredSections),
		NewContactInfo(),
		NewSpelling(dict),
		NewSecureLinks(rules.RequireHTTPS),
		NewDocumentMetadata(),
		NewReadableText(),
	}}
}

// List returns all criteria in registry order.
func (r *Registry) List() []Criterion {
	out := make([]Criterion, len(r.items))
	copy(out, r.items)
	return out
}

// TotalWeight returns the summed weight of every registered criterion.
func (r *Registry) TotalWeight() float64 {
	var total float64
	for _, c := range r.items {
		total += c.Weight()
	}
	return total
}

// FilterByNames returns the criteria whose names appear in names, preserving
// registry order regardless of the order the names were supplied in. Names
// matching no criterion produce an UnknownCriterionError.
func (r *Registry) FilterByNames(names []string) ([]Criterion, error) {
	requested := make(map[string]bool, len(names))
	for _, name := range names {
		requested[name] = false
	}

	var selected []Criterion
	for _, c := range r.items {
		if _, ok := requested[c.Name()]; ok {
			requested[c.Name()] = true
			selected = append(selected, c)
		}
	}

	var unknown []string
	for _, name := range names {
		if found, ok := requested[name]; ok && !found {
			unknown = append(unknown, name)
			// report duplicates once
			delete(requested, name)
		}
	}
	if len(unknown) > 0 {
		return nil, &UnknownCriterionError{Names: unknown}
	}

	return selected, nil
}

// FilterByCategory returns the criteria in the given category, preserving
// registry order. A category matching no criterion is an error.
func (r *Registry) FilterByCategory(category string) ([]Criterion, error) {
	var selected []Criterion
	for _, c := range r.items {
		if strings.EqualFold(c.Category(), category) {
			selected = append(selected, c)
		}
	}
	if len(selected) == 0 {
		return nil, fmt.Errorf("unknown criterion category: %s", category)
	}
	return selected, nil
}
