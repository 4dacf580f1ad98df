// Package store holds article snapshots, the in-memory set of the last
// loaded articles and the on-disk archive of generated summaries.
package store

import (
	"errors"
	"sync"
)

// ErrNotFound is an error that is returned when the requested entity is not found.
var ErrNotFound = errors.New("not found")

// Article is a normalized snapshot of a single news item.
// WebURL is the stable key of the article.
type Article struct {
	WebURL     string `json:"web_url"`
	Headline   string `json:"headline"`
	Thumbnail  string `json:"thumbnail,omitempty"`
	Standfirst string `json:"standfirst"`
	Byline     string `json:"byline,omitempty"`
	BodyText   string `json:"body_text,omitempty"`
}

// News holds the last fetched list of articles.
// The list is only ever replaced as a whole.
type News struct {
	mu       sync.RWMutex
	articles []Article
}

// Get returns the current list of articles, never nil.
func (n *News) Get() []Article {
	n.mu.RLock()
	defer n.mu.RUnlock()

	res := make([]Article, len(n.articles))
	copy(res, n.articles)
	return res
}

// Set replaces the list of articles.
func (n *News) Set(articles []Article) {
	cp := make([]Article, len(articles))
	copy(cp, articles)

	n.mu.Lock()
	n.articles = cp
	n.mu.Unlock()
}

// Find returns the article with the given web url.
func (n *News) Find(webURL string) (Article, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	for _, a := range n.articles {
		if a.WebURL == webURL {
			return a, true
		}
	}
	return Article{}, false
}
