package dictionary

import (
	"reflect"
	"testing"
)

func TestMisspelledKnownWords(t *testing.T) {
	d := New(nil)

	if got := d.Misspelled("Experienced software engineer with strong skills"); len(got) != 0 {
		t.Fatalf("expected no misspellings, got %v", got)
	}
}

func TestMisspelledFlagsUnknownWordsOnce(t *testing.T) {
	d := New(nil)

	got := d.Misspelled("strong skills and strnog skills and strnog work")
	want := []string{"strnog"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestMisspelledSkipsShortAndTechWords(t *testing.T) {
	d := New(nil)

	got := d.Misspelled("qt ReactJS PostgreSQL JSONSchema ab")
	if len(got) != 0 {
		t.Fatalf("expected short and tech-fragment words to be skipped, got %v", got)
	}
}

func TestCustomLowercaseWordAllowsTitleCase(t *testing.T) {
	d := New([]string{"cvlint"})

	if got := d.Misspelled("cvlint and Cvlint"); len(got) != 0 {
		t.Fatalf("expected lowercase custom word in any title case, got %v", got)
	}
}

func TestCustomWordCapitalizationEnforced(t *testing.T) {
	d := New([]string{"PyTorch"})

	if got := d.Misspelled("built models with PyTorch"); len(got) != 0 {
		t.Fatalf("expected exact capitalization to pass, got %v", got)
	}

	got := d.Misspelled("built models with pytorch")
	want := []string{"pytorch (should be PyTorch)"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestMisspelledPreservesFirstAppearanceOrder(t *testing.T) {
	d := New(nil)

	got := d.Misspelled("zzyzx experience aardwolfz")
	want := []string{"zzyzx", "aardwolfz"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
