package summary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Semior001/newsreader/app/store"
	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestService_Summarize(t *testing.T) {
	downloads := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		downloads++
		w.WriteHeader(http.StatusOK)
		_, err := w.Write(articleHTML)
		require.NoError(t, err)
	}))
	defer ts.Close()

	mock := &OpenAIClientMock{
		CreateChatCompletionFunc: func(
			ctx context.Context,
			req openai.ChatCompletionRequest,
		) (openai.ChatCompletionResponse, error) {
			require.Len(t, req.Messages, 1)
			assert.Contains(t, req.Messages[0].Content, "UK annual house price growth slowed to 1.1% in January")
			return openai.ChatCompletionResponse{
				Choices: []openai.ChatCompletionChoice{{
					Message: openai.ChatCompletionMessage{Content: "shortened content"},
				}},
			}, nil
		},
	}

	archive, err := store.NewBolt(t.TempDir())
	require.NoError(t, err)
	defer archive.Close()

	svc := NewService(slog.Default(), ts.Client(),
		&ChatGPT{log: slog.Default(), cl: mock, maxTokens: 1000, cache: newCache()},
		NewExtractor(),
		archive,
	)

	article := store.Article{WebURL: ts.URL + "/business/house-prices", Headline: "House prices"}

	sum, err := svc.Summarize(context.Background(), article)
	require.NoError(t, err)
	assert.Equal(t, "shortened content", sum)
	assert.Equal(t, 1, downloads)

	archived, err := archive.GetSummary(context.Background(), article.WebURL)
	require.NoError(t, err)
	assert.Equal(t, "shortened content", archived.Text)

	sum, err = svc.Summarize(context.Background(), article)
	require.NoError(t, err)
	assert.Equal(t, "shortened content", sum)
	assert.Equal(t, 1, downloads, "archived summary must not trigger download")
	assert.Len(t, mock.CreateChatCompletionCalls(), 1)
}

func TestService_SummarizeWithBodyText(t *testing.T) {
	mock := &OpenAIClientMock{
		CreateChatCompletionFunc: func(
			ctx context.Context,
			req openai.ChatCompletionRequest,
		) (openai.ChatCompletionResponse, error) {
			assert.Contains(t, req.Messages[0].Content, "body provided by the api")
			return openai.ChatCompletionResponse{
				Choices: []openai.ChatCompletionChoice{{
					Message: openai.ChatCompletionMessage{Content: "summary"},
				}},
			}, nil
		},
	}

	svc := NewService(slog.Default(), &http.Client{Transport: failingTransport{}},
		&ChatGPT{log: slog.Default(), cl: mock, maxTokens: 1000, cache: newCache()},
		NewExtractor(), nil)

	sum, err := svc.Summarize(context.Background(), store.Article{
		WebURL:   "https://example.com/1",
		BodyText: "body provided by the api",
	})
	require.NoError(t, err)
	assert.Equal(t, "summary", sum)
}

func TestService_SummarizeBadStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	svc := NewService(slog.Default(), ts.Client(),
		&ChatGPT{log: slog.Default(), cl: &OpenAIClientMock{}, maxTokens: 1000, cache: newCache()},
		NewExtractor(), nil)

	_, err := svc.Summarize(context.Background(), store.Article{WebURL: ts.URL})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad status code: 404")
}

type failingTransport struct{}

func (failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	panic("unexpected request")
}
