// Package extract turns a PDF file into the immutable Facts snapshot consumed
// by the criteria engine. It is the only place that touches the PDF library.
package extract

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/mitchellh/mapstructure"
)

// Facts is a read-only snapshot of one document. It is created once per run
// and never mutated afterwards.
type Facts struct {
	Path      string
	PageCount int
	ByteSize  int64
	FullText  string
	PageText  []string
	Fonts     []string
	Links     []string
	Metadata  map[string]string
}

// Info is the typed view of the metadata fields the criteria care about.
type Info struct {
	Title    string `mapstructure:"Title"`
	Author   string `mapstructure:"Author"`
	Subject  string `mapstructure:"Subject"`
	Creator  string `mapstructure:"Creator"`
	Producer string `mapstructure:"Producer"`
}

// Info decodes the raw metadata mapping into its typed view.
func (f *Facts) Info() (*Info, error) {
	var info Info
	if err := mapstructure.Decode(f.Metadata, &info); err != nil {
		return nil, fmt.Errorf("decoding document info: %w", err)
	}
	return &info, nil
}

// UnreadableDocumentError indicates the file could not be opened or parsed as
// a PDF. It is fatal: no criterion runs against an unreadable document.
type UnreadableDocumentError struct {
	Path string
	Err  error
}

func (e *UnreadableDocumentError) Error() string {
	return fmt.Sprintf("unreadable document %q: %v", e.Path, e.Err)
}

func (e *UnreadableDocumentError) Unwrap() error { return e.Err }

// Extract reads the PDF at path and returns its Facts.
func Extract(path string) (*Facts, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &UnreadableDocumentError{Path: path, Err: err}
	}

	file, reader, err := pdf.Open(path)
	if err != nil {
		return nil, &UnreadableDocumentError{Path: path, Err: err}
	}
	defer file.Close()

	facts := &Facts{
		Path:     path,
		ByteSize: info.Size(),
		Metadata: map[string]string{},
	}

	if err := readDocument(reader, facts); err != nil {
		return nil, &UnreadableDocumentError{Path: path, Err: err}
	}

	return facts, nil
}

// readDocument walks the parsed PDF. The pdf reader panics on malformed
// structures, so the whole walk runs behind a recover boundary.
func readDocument(reader *pdf.Reader, facts *Facts) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("parsing pdf: %v", rec)
		}
	}()

	facts.PageCount = reader.NumPage()

	fonts := make(map[string]struct{})
	for i := 1; i <= facts.PageCount; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			facts.PageText = append(facts.PageText, "")
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Pages without extractable text still count; the readability
			// criterion reports them.
			text = ""
		}
		facts.PageText = append(facts.PageText, text)

		for _, name := range page.Fonts() {
			if name != "" {
				fonts[name] = struct{}{}
			}
		}

		facts.Links = append(facts.Links, pageLinks(page)...)
	}

	facts.FullText = strings.Join(facts.PageText, "\n")
	facts.Fonts = sortedKeys(fonts)
	facts.Metadata = documentInfo(reader)

	return nil
}

// pageLinks collects URI actions from the page's link annotations.
func pageLinks(page pdf.Page) []string {
	annots := page.V.Key("Annots")
	if annots.Kind() != pdf.Array {
		return nil
	}

	var links []string
	for i := 0; i < annots.Len(); i++ {
		uri := annots.Index(i).Key("A").Key("URI")
		if uri.Kind() == pdf.String {
			links = append(links, uri.RawString())
		}
	}
	return links
}

// documentInfo reads the trailer Info dictionary (Title, Author, Creator, ...).
func documentInfo(reader *pdf.Reader) map[string]string {
	meta := map[string]string{}

	info := reader.Trailer().Key("Info")
	if info.Kind() != pdf.Dict {
		return meta
	}

	for _, key := range info.Keys() {
		value := info.Key(key)
		if value.Kind() == pdf.String {
			meta[key] = value.Text()
		}
	}
	return meta
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
