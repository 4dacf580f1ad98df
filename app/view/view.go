// Package view maps fetched articles to a rendering surface and binds
// user actions to content requests.
package view

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"sync"
	"time"

	"github.com/Semior001/newsreader/app/guardian"
	"github.com/Semior001/newsreader/app/store"
	"golang.org/x/exp/slog"
)

// Messages rendered to the user.
const (
	APIDownMessage     = "Oops - API appears to be down!"
	SummaryPending     = "Generating summary..."
	SummaryUnavailable = "Summary unavailable."
)

// ErrSuperseded is returned by load operations whose result was discarded
// because a newer action had started before they completed.
var ErrSuperseded = errors.New("superseded by a newer request")

//go:generate moq -out mock_content_client.go . ContentClient
//go:generate moq -out mock_summarizer.go . Summarizer

// ContentClient requests articles from the content api.
type ContentClient interface {
	DefaultFeed(ctx context.Context) (guardian.Envelope, error)
	Search(ctx context.Context, term string) (guardian.Envelope, error)
	Section(ctx context.Context, section string) (guardian.Envelope, error)
}

// Summarizer makes a short summary of the article.
type Summarizer interface {
	Summarize(ctx context.Context, article store.Article) (string, error)
}

// Surface is a rendering target for the controller.
type Surface interface {
	ClearArticles()
	AppendArticle(card Card)
	AppendError(msg string)
	// ShowOverlay shows the overlay, onClose must be called
	// when the user activates the close control.
	ShowOverlay(o Overlay, onClose func())
	SetSummary(text string)
	HideOverlay()
}

// Card is a rendered article in the list.
type Card struct {
	WebURL     string
	Headline   string
	Thumbnail  string
	Standfirst template.HTML
}

// Overlay is a detail view of a single article.
type Overlay struct {
	WebURL    string
	Headline  string
	Thumbnail string
	Summary   string
	Pending   bool
}

// Ctrl loads articles and renders them on the surface.
// Store and surface updates are applied under a single lock, and only
// the latest started action may update them.
type Ctrl struct {
	Logger         *slog.Logger
	Client         ContentClient
	Store          *store.News
	Surface        Surface
	Summarizer     Summarizer
	SummaryTimeout time.Duration

	mu            sync.Mutex
	gen           uint64
	cancel        context.CancelFunc
	overlayGen    uint64
	overlayCancel context.CancelFunc
	wg            sync.WaitGroup
}

// LoadDefaultFeed loads and renders the default feed.
func (c *Ctrl) LoadDefaultFeed(ctx context.Context) error {
	return c.load(ctx, c.Client.DefaultFeed)
}

// LoadBySearch loads and renders articles matching the term.
func (c *Ctrl) LoadBySearch(ctx context.Context, term string) error {
	return c.load(ctx, func(ctx context.Context) (guardian.Envelope, error) {
		return c.Client.Search(ctx, term)
	})
}

// LoadBySection loads and renders articles of the section.
func (c *Ctrl) LoadBySection(ctx context.Context, section string) error {
	return c.load(ctx, func(ctx context.Context) (guardian.Envelope, error) {
		return c.Client.Section(ctx, section)
	})
}

// RenderList replaces rendered cards with the articles from the store.
func (c *Ctrl) RenderList() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.renderList()
}

// RenderError appends an error banner to the surface.
func (c *Ctrl) RenderError(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Surface.AppendError(msg)
}

// Wait waits for all outstanding summary requests.
func (c *Ctrl) Wait() { c.wg.Wait() }

func (c *Ctrl) load(parent context.Context, fetch func(context.Context) (guardian.Envelope, error)) error {
	ctx, gen := c.begin(parent)

	env, err := fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		c.Logger.DebugCtx(parent, "discarding superseded result", slog.Uint64("gen", gen))
		return ErrSuperseded
	}

	c.cancel()
	c.cancel = nil

	if err != nil {
		if errors.Is(parent.Err(), context.Canceled) {
			return fmt.Errorf("load articles: %w", parent.Err())
		}
		c.Surface.AppendError(APIDownMessage)
		return fmt.Errorf("load articles: %w", err)
	}

	c.Store.Set(MapResponseToArticles(env))
	c.renderList()

	return nil
}

// begin starts a new generation and cancels the in-flight request, if any.
func (c *Ctrl) begin(parent context.Context) (context.Context, uint64) {
	ctx, cancel := context.WithCancel(parent)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		c.cancel()
	}
	c.gen++
	c.cancel = cancel

	return ctx, c.gen
}

func (c *Ctrl) renderList() {
	c.Surface.ClearArticles()
	for _, a := range c.Store.Get() {
		c.Surface.AppendArticle(NewCard(a))
	}
}
