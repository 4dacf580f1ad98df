package web

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Semior001/newsreader/app/view"
	"github.com/andybalholm/cascadia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

var cards = []view.Card{
	{
		WebURL:     "https://www.theguardian.com/business/live/2023/feb/01/uk-house-prices",
		Headline:   "UK house price growth slows to lowest rate since mid-2020",
		Thumbnail:  "https://media.guim.co.uk/4eb07f2f4bbd086197aa76ca2de731ad7fefc9fd/0_228_4500_2700/500.jpg",
		Standfirst: "<p>UK annual house price growth slows to 1.1%</p>",
	},
	{
		WebURL:     "https://www.theguardian.com/world/2023/feb/01/ukraine-war-at-a-glance",
		Headline:   "Russia-Ukraine war at a glance",
		Thumbnail:  "https://media.guim.co.uk/1f3a5b7c9d/0_0_5000_3000/500.jpg",
		Standfirst: "<p>Ukraine says Russian forces are pressing in the east</p>",
	},
}

func render(t *testing.T, p *Page) *html.Node {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, p.Render(buf, ""))
	doc, err := html.Parse(buf)
	require.NoError(t, err)
	return doc
}

func query(doc *html.Node, sel string) []*html.Node {
	return cascadia.MustCompile(sel).MatchAll(doc)
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func text(n *html.Node) string {
	sb := &strings.Builder{}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func TestPage_Articles(t *testing.T) {
	p := &Page{}
	assert.Empty(t, query(render(t, p), ".news"))

	for _, c := range cards {
		p.AppendArticle(c)
	}

	doc := render(t, p)
	assert.Len(t, query(doc, ".news"), 2)
	assert.Len(t, query(doc, ".news_thumbnail"), 2)

	links := query(doc, ".headline_link")
	require.Len(t, links, 2)
	for i, link := range links {
		assert.Equal(t, cards[i].WebURL, attr(link, "href"))
	}

	thumbs := query(doc, ".news_thumbnail")
	assert.Equal(t, cards[0].Thumbnail, attr(thumbs[0], "src"))

	standfirst := query(doc, ".news .standfirst p")
	require.Len(t, standfirst, 2, "sanitized standfirst is rendered as html")
	assert.Equal(t, "UK annual house price growth slows to 1.1%", text(standfirst[0]))

	assert.Contains(t, text(query(doc, ".news")[0]), "UK house price growth slows")

	p.ClearArticles()
	assert.Empty(t, query(render(t, p), ".news"))
}

func TestPage_EscapesHeadline(t *testing.T) {
	p := &Page{}
	p.AppendArticle(view.Card{WebURL: "https://example.com/1", Headline: `<script>alert("x")</script>`})

	doc := render(t, p)
	assert.Empty(t, query(doc, ".news script"))
	assert.Equal(t, `<script>alert("x")</script>`, text(query(doc, ".news_headline")[0]))
}

func TestPage_Errors(t *testing.T) {
	p := &Page{}
	p.AppendArticle(cards[0])
	p.AppendError("Oops! Looks like something went wrong...")
	p.AppendError(view.APIDownMessage)

	doc := render(t, p)
	errs := query(doc, "h2.error")
	require.Len(t, errs, 2)
	assert.Equal(t, "Oops! Looks like something went wrong...", text(errs[0]))
	assert.Equal(t, view.APIDownMessage, text(errs[1]))
	assert.Len(t, query(doc, ".news"), 1)
}

func TestPage_Overlay(t *testing.T) {
	p := &Page{}

	overlay := query(render(t, p), "#overlay")
	require.Len(t, overlay, 1)
	assert.Contains(t, attr(overlay[0], "style"), "display: none")

	closed := 0
	p.ShowOverlay(view.Overlay{
		WebURL:    cards[0].WebURL,
		Headline:  cards[0].Headline,
		Thumbnail: cards[0].Thumbnail,
		Summary:   view.SummaryPending,
		Pending:   true,
	}, func() {
		closed++
		p.HideOverlay()
	})

	doc := render(t, p)
	overlay = query(doc, "#overlay")
	require.Len(t, overlay, 1)
	assert.Equal(t, "display: block; visibility: visible; opacity: 1", attr(overlay[0], "style"))
	assert.Equal(t, cards[0].Thumbnail, attr(query(doc, "#overlay img")[0], "src"))
	assert.Equal(t, cards[0].WebURL, attr(query(doc, "#full-article-link")[0], "href"))
	assert.Equal(t, "Read Full Article", text(query(doc, "#full-article-link")[0]))
	assert.Equal(t, view.SummaryPending, text(query(doc, "p.article-summary")[0]))
	assert.Len(t, query(doc, "#close-button"), 1)
	assert.Len(t, query(doc, `meta[http-equiv="refresh"]`), 1, "pending summary refreshes the page")

	p.SetSummary("Summary Text")
	doc = render(t, p)
	assert.Equal(t, "Summary Text", text(query(doc, "p.article-summary")[0]))
	assert.Empty(t, query(doc, `meta[http-equiv="refresh"]`))

	p.Close()
	assert.Equal(t, 1, closed)
	assert.Contains(t, attr(query(render(t, p), "#overlay")[0], "style"), "display: none")

	p.Close()
	assert.Equal(t, 1, closed, "close control of a hidden overlay does nothing")
}

func TestPage_Controls(t *testing.T) {
	doc := render(t, &Page{})

	assert.Equal(t, "/feed", attr(query(doc, "#header-button-logo")[0], "href"))
	for _, s := range view.Sections {
		btn := query(doc, "#header-button-"+s.ID)
		require.Len(t, btn, 1, s.ID)
		assert.Equal(t, "/section/"+s.ID, attr(btn[0], "href"))
	}

	form := query(doc, "form.searchbar")
	require.Len(t, form, 1)
	assert.Equal(t, "/search", attr(form[0], "action"))
	assert.Equal(t, "q", attr(query(doc, "#search-input")[0], "name"))
}
