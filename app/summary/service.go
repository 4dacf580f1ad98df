// Package summary contains services for generating article summaries.
package summary

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Semior001/newsreader/app/store"
	cache "github.com/go-pkgz/expirable-cache/v2"
	"golang.org/x/exp/slog"
)

// Archive keeps generated summaries between restarts.
type Archive interface {
	GetSummary(ctx context.Context, webURL string) (store.Summary, error)
	PutSummary(ctx context.Context, s store.Summary) error
}

// Service is a main summaries service.
type Service struct {
	log       *slog.Logger
	cl        *http.Client
	chatGPT   *ChatGPT
	extractor Extractor
	archive   Archive
}

// NewService creates new service, archive may be nil.
func NewService(lg *slog.Logger, cl *http.Client, chatGPT *ChatGPT, extractor Extractor, archive Archive) *Service {
	return &Service{
		log:       lg,
		cl:        cl,
		chatGPT:   chatGPT,
		extractor: extractor,
		archive:   archive,
	}
}

// CacheStat returns cache stats.
func (s *Service) CacheStat() cache.Stats { return s.chatGPT.CacheStat() }

// Summarize returns a summary of the article. If the article has no body
// text, it is downloaded from the article's web url.
func (s *Service) Summarize(ctx context.Context, article store.Article) (string, error) {
	if s.archive != nil {
		sum, err := s.archive.GetSummary(ctx, article.WebURL)
		switch {
		case err == nil:
			return sum.Text, nil
		case !errors.Is(err, store.ErrNotFound):
			s.log.WarnCtx(ctx, "failed to get archived summary",
				slog.String("url", article.WebURL), slog.Any("err", err))
		}
	}

	if article.BodyText == "" {
		body, err := s.bodyText(ctx, article.WebURL)
		if err != nil {
			return "", fmt.Errorf("get body text: %w", err)
		}
		article.BodyText = body
	}

	text, err := s.chatGPT.Summarize(ctx, article)
	if err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}

	if s.archive != nil {
		err = s.archive.PutSummary(ctx, store.Summary{
			WebURL:    article.WebURL,
			Text:      text,
			CreatedAt: time.Now(),
		})
		if err != nil {
			s.log.WarnCtx(ctx, "failed to archive summary",
				slog.String("url", article.WebURL), slog.Any("err", err))
		}
	}

	return text, nil
}

func (s *Service) bodyText(ctx context.Context, u string) (string, error) {
	s.log.DebugCtx(ctx, "downloading article", slog.String("url", u))

	pageURL, err := url.Parse(u)
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	resp, err := s.cl.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			s.log.WarnCtx(ctx, "failed to close response body", slog.Any("err", err))
		}
	}()

	ok := resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices
	if !ok {
		return "", fmt.Errorf("bad status code: %d", resp.StatusCode)
	}

	article, err := s.extractor.Extract(resp.Body, pageURL)
	if err != nil {
		return "", fmt.Errorf("extract article: %w", err)
	}

	return article.BodyText, nil
}
