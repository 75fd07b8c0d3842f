// Package dictionary is the spell-check collaborator used by the spelling
// criterion. It checks words against an embedded base vocabulary plus any
// custom words supplied through configuration.
package dictionary

import (
	_ "embed"
	"regexp"
	"strings"
)

//go:embed words.txt
var baseWords string

// minWordLength mirrors the original rule: very short words are almost always
// abbreviations and are not spell-checked.
const minWordLength = 3

var wordPattern = regexp.MustCompile(`[a-zA-Z]+`)

// techFragments mark words that embed a technology name (ReactJS, PostgreSQL)
// and are skipped rather than flagged.
var techFragments = []string{"js", "sql", "xml", "json"}

// Dictionary holds the known vocabulary. Safe for concurrent reads after
// construction; never modified afterwards.
type Dictionary struct {
	known map[string]struct{}
	// exact maps the lowercase form of custom words that carry a specific
	// capitalization to the required spelling.
	exact map[string]string
}

// New builds a dictionary from the embedded base list and the provided custom
// words. A custom word given in lowercase is accepted in lowercase or
// title-case; a custom word with any other capitalization must appear exactly
// as configured.
func New(custom []string) *Dictionary {
	d := &Dictionary{
		known: make(map[string]struct{}),
		exact: make(map[string]string),
	}

	for _, line := range strings.Split(baseWords, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		for _, word := range strings.Fields(line) {
			d.known[strings.ToLower(word)] = struct{}{}
		}
	}

	for _, word := range custom {
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		lower := strings.ToLower(word)
		d.known[lower] = struct{}{}
		if word != lower {
			d.exact[lower] = word
		}
	}

	return d
}

// Misspelled returns the distinct words in text that are neither in the
// vocabulary nor correctly capitalized custom words, in first-appearance
// order. Wrongly capitalized custom words are reported as
// "Word (should be Word)".
func (d *Dictionary) Misspelled(text string) []string {
	var flagged []string
	seen := make(map[string]struct{})

	for _, word := range wordPattern.FindAllString(text, -1) {
		if len(word) < minWordLength {
			continue
		}

		lower := strings.ToLower(word)
		if hasTechFragment(lower) {
			continue
		}

		if required, ok := d.exact[lower]; ok {
			if word == required {
				continue
			}
			report := word + " (should be " + required + ")"
			if _, dup := seen[report]; !dup {
				seen[report] = struct{}{}
				flagged = append(flagged, report)
			}
			continue
		}

		if _, ok := d.known[lower]; ok {
			continue
		}

		if _, dup := seen[word]; !dup {
			seen[word] = struct{}{}
			flagged = append(flagged, word)
		}
	}

	return flagged
}

func hasTechFragment(lower string) bool {
	for _, fragment := range techFragments {
		if strings.Contains(lower, fragment) {
			return true
		}
	}
	return false
}
