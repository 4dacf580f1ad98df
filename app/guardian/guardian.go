// Package guardian contains a client for the Guardian content-search API.
package guardian

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Semior001/newsreader/pkg/logx"
	"github.com/go-pkgz/requester"
	"github.com/go-pkgz/requester/middleware"
	"golang.org/x/exp/slog"
)

// DefaultURL is the content-search endpoint.
const DefaultURL = "https://content.guardianapis.com/search"

const (
	pageSize       = 40
	defaultSection = "world"
	orderNewest    = "newest"
)

// showFields lists the fields requested for every article.
var showFields = []string{"thumbnail", "headline", "byline", "standfirst"}

// Query describes a single request to the search endpoint.
type Query struct {
	// Search makes the query a free-text search, q is sent even if Term is empty.
	Search      bool
	Term        string
	Section     string
	QueryFields []string
	OrderBy     string
}

// Values returns query parameters for the request, without the api key.
func (q Query) Values() url.Values {
	v := url.Values{}
	if q.Search || q.Term != "" {
		v.Set("q", q.Term)
	}
	if q.Section != "" {
		v.Set("section", q.Section)
	}
	v.Set("page-size", strconv.Itoa(pageSize))
	if len(q.QueryFields) > 0 {
		v.Set("query-fields", strings.Join(q.QueryFields, ","))
	}
	v.Set("show-fields", strings.Join(showFields, ","))
	if q.OrderBy != "" {
		v.Set("order-by", q.OrderBy)
	}
	return v
}

// FeedQuery is the query for the default feed.
func FeedQuery() Query { return Query{Section: defaultSection} }

// SearchQuery is the query for a free-text search against headlines.
func SearchQuery(term string) Query {
	return Query{Search: true, Term: term, QueryFields: []string{"headline"}, OrderBy: orderNewest}
}

// SectionQuery is the query for a single section.
func SectionQuery(section string) Query {
	return Query{Section: section, OrderBy: orderNewest}
}

// Client makes requests to the content-search API.
type Client struct {
	log    *slog.Logger
	cl     *requester.Requester
	url    string
	apiKey string
}

// Params defines parameters for the client.
type Params struct {
	Logger *slog.Logger
	HTTP   http.Client
	URL    string
	APIKey string
}

// NewClient makes a new Client.
func NewClient(p Params) *Client {
	if p.Logger == nil {
		p.Logger = slog.New(logx.NoOp())
	}
	if p.URL == "" {
		p.URL = DefaultURL
	}

	return &Client{
		log: p.Logger,
		cl: requester.New(p.HTTP,
			middleware.Header("Accept", "application/json"),
			logx.LoggingRoundTripper(p.Logger, logx.RoundTripperOpts{
				Level:             slog.LevelDebug,
				SecretQueryParams: []string{"api-key"},
			}),
		),
		url:    p.URL,
		apiKey: p.APIKey,
	}
}

// DefaultFeed requests the default feed.
func (c *Client) DefaultFeed(ctx context.Context) (Envelope, error) {
	return c.Fetch(ctx, FeedQuery())
}

// Search requests articles whose headlines match the term.
func (c *Client) Search(ctx context.Context, term string) (Envelope, error) {
	return c.Fetch(ctx, SearchQuery(term))
}

// Section requests the newest articles of the section.
func (c *Client) Section(ctx context.Context, section string) (Envelope, error) {
	return c.Fetch(ctx, SectionQuery(section))
}

// Fetch issues exactly one request for the query and decodes the response.
// The body is decoded regardless of the status code, non-2xx statuses are
// only reported in the envelope.
func (c *Client) Fetch(ctx context.Context, q Query) (Envelope, error) {
	u, err := url.Parse(c.url)
	if err != nil {
		return Envelope{}, fmt.Errorf("parse endpoint url: %w", err)
	}

	vals := q.Values()
	vals.Set("api-key", c.apiKey)
	u.RawQuery = vals.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return Envelope{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.cl.Do(req)
	if err != nil {
		return Envelope{}, fmt.Errorf("do request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.log.WarnCtx(ctx, "failed to close response body", slog.Any("err", err))
		}
	}()

	ok := resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices
	if !ok {
		c.log.WarnCtx(ctx, "content api responded with non-2xx status",
			slog.Int("status_code", resp.StatusCode),
			slog.Any("query", q))
	}

	var env Envelope
	if err = json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return Envelope{}, fmt.Errorf("decode response: %w", err)
	}
	env.StatusCode = resp.StatusCode

	return env, nil
}
