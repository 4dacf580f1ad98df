package view

import (
	"context"
	"time"

	"github.com/Semior001/newsreader/app/store"
	"golang.org/x/exp/slog"
)

const defaultSummaryTimeout = time.Minute

// ShowOverlay shows the article in the overlay and requests its summary
// in background. The summary is injected only if the overlay was neither
// closed nor replaced by another article in the meantime.
func (c *Ctrl) ShowOverlay(article store.Article) {
	timeout := c.SummaryTimeout
	if timeout <= 0 {
		timeout = defaultSummaryTimeout
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.overlayCancel != nil {
		c.overlayCancel()
	}
	c.overlayGen++
	gen := c.overlayGen

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	c.overlayCancel = cancel

	c.Surface.ShowOverlay(Overlay{
		WebURL:    article.WebURL,
		Headline:  article.Headline,
		Thumbnail: article.Thumbnail,
		Summary:   SummaryPending,
		Pending:   true,
	}, func() { c.closeOverlay(gen) })

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer cancel()

		text := c.summarize(ctx, article)

		c.mu.Lock()
		defer c.mu.Unlock()

		if gen != c.overlayGen {
			return
		}
		c.Surface.SetSummary(text)
	}()
}

func (c *Ctrl) summarize(ctx context.Context, article store.Article) string {
	if c.Summarizer == nil {
		return SummaryUnavailable
	}

	text, err := c.Summarizer.Summarize(ctx, article)
	if err != nil {
		c.Logger.WarnCtx(ctx, "failed to summarize article",
			slog.String("url", article.WebURL), slog.Any("err", err))
		return SummaryUnavailable
	}

	return text
}

func (c *Ctrl) closeOverlay(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.overlayGen {
		return
	}

	c.overlayGen++
	if c.overlayCancel != nil {
		c.overlayCancel()
		c.overlayCancel = nil
	}
	c.Surface.HideOverlay()
}
