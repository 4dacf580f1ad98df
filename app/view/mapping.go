package view

import (
	"html/template"

	"github.com/Semior001/newsreader/app/guardian"
	"github.com/Semior001/newsreader/app/store"
	"github.com/microcosm-cc/bluemonday"
	"github.com/samber/lo"
)

// Section is an editorial category available as a filter.
type Section struct {
	ID    string
	Title string
}

// Sections lists the sections offered to the user, in display order.
var Sections = []Section{
	{ID: "business", Title: "Business"},
	{ID: "uk-news", Title: "UK"},
	{ID: "politics", Title: "Politics"},
	{ID: "commentisfree", Title: "Opinion"},
	{ID: "sport", Title: "Sport"},
	{ID: "culture", Title: "Culture"},
}

// IsSection reports whether id is one of the offered sections.
func IsSection(id string) bool {
	return lo.ContainsBy(Sections, func(s Section) bool { return s.ID == id })
}

// MapResponseToArticles projects search results to articles, keeping
// the order of the response. Missing fields are left empty.
func MapResponseToArticles(env guardian.Envelope) []store.Article {
	return lo.Map(env.Response.Results, func(r guardian.Result, _ int) store.Article {
		return store.Article{
			WebURL:     r.WebURL,
			Headline:   r.Fields.Headline,
			Thumbnail:  r.Fields.Thumbnail,
			Standfirst: r.Fields.Standfirst,
			Byline:     r.Fields.Byline,
			BodyText:   r.Fields.BodyText,
		}
	})
}

// policy sanitizes html fragments received from the content api.
var policy = bluemonday.UGCPolicy()

// NewCard makes a card for the article with a sanitized standfirst.
func NewCard(a store.Article) Card {
	return Card{
		WebURL:     a.WebURL,
		Headline:   a.Headline,
		Thumbnail:  a.Thumbnail,
		Standfirst: template.HTML(policy.Sanitize(a.Standfirst)),
	}
}
