package summary

import (
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strings"

	"github.com/Semior001/newsreader/app/store"
	"github.com/go-shiori/go-readability"
)

// Extractor extracts article from HTML page.
type Extractor struct{}

// NewExtractor creates new Extractor.
func NewExtractor() Extractor { return Extractor{} }

// Extract extracts article from an HTML page.
func (e Extractor) Extract(rd io.Reader, pageURL *url.URL) (store.Article, error) {
	doc, err := readability.FromReader(rd, pageURL)
	if err != nil {
		return store.Article{}, fmt.Errorf("parse html: %w", err)
	}

	return store.Article{
		Headline:   doc.Title,
		Standfirst: doc.Excerpt,
		BodyText:   sanitize(doc.TextContent),
		Byline:     doc.Byline,
		Thumbnail:  doc.Image,
	}, nil
}

var spaces = regexp.MustCompile(`\s+`)

func sanitize(s string) string {
	// nbsp
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.TrimSpace(spaces.ReplaceAllString(s, " "))
}
