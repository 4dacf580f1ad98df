// Package cmd contains commands for the application.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Semior001/newsreader/app/guardian"
	"github.com/Semior001/newsreader/app/store"
	"github.com/Semior001/newsreader/app/summary"
	"github.com/Semior001/newsreader/app/view"
	"github.com/Semior001/newsreader/app/web"
	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"
)

// Run is a command to run the news reader.
type Run struct {
	Server struct {
		Addr    string        `long:"addr" env:"ADDR" default:":8080" description:"address to listen on"`
		Timeout time.Duration `long:"timeout" env:"TIMEOUT" default:"30s" description:"timeout for handling requests"`
	} `group:"server" namespace:"server" env-namespace:"SERVER"`

	Guardian struct {
		APIKey  string        `long:"api-key" env:"API_KEY" default:"test" description:"content api key"`
		URL     string        `long:"url" env:"URL" default:"https://content.guardianapis.com/search" description:"content search endpoint"`
		Timeout time.Duration `long:"timeout" env:"TIMEOUT" default:"0s" description:"timeout for content api calls, zero for none"`
	} `group:"guardian" namespace:"guardian" env-namespace:"GUARDIAN"`

	Summary struct {
		Timeout time.Duration `long:"timeout" env:"TIMEOUT" default:"1m" description:"timeout for making a single summary"`

		OpenAI struct {
			Token     string        `long:"token" env:"TOKEN" description:"OpenAI token, summaries are disabled if empty"`
			MaxTokens int           `long:"max-tokens" env:"MAX_TOKENS" default:"1000" description:"max tokens for OpenAI"`
			Timeout   time.Duration `long:"timeout" env:"TIMEOUT" default:"5m" description:"timeout for OpenAI calls"`
		} `group:"openai" namespace:"openai" env-namespace:"OPENAI"`
	} `group:"summary" namespace:"summary" env-namespace:"SUMMARY"`

	StorePath string `long:"store-path" env:"STORE_PATH" description:"parent dir for bolt files, summaries are not archived if empty"`
}

// Execute runs the command.
func (r Run) Execute(_ []string) error {
	lg := slog.Default()

	client := guardian.NewClient(guardian.Params{
		Logger: lg.With(slog.String("prefix", "guardian")),
		HTTP:   http.Client{Timeout: r.Guardian.Timeout},
		URL:    r.Guardian.URL,
		APIKey: r.Guardian.APIKey,
	})

	news := &store.News{}
	page := &web.Page{}

	ctrl := &view.Ctrl{
		Logger:         lg.With(slog.String("prefix", "view")),
		Client:         client,
		Store:          news,
		Surface:        page,
		SummaryTimeout: r.Summary.Timeout,
	}

	srv := &web.Server{
		Addr:           r.Server.Addr,
		Logger:         lg.With(slog.String("prefix", "web")),
		Ctrl:           ctrl,
		Store:          news,
		Page:           page,
		HandlerTimeout: r.Server.Timeout,
	}

	if r.Summary.OpenAI.Token != "" {
		var archive summary.Archive
		if r.StorePath != "" {
			b, err := store.NewBolt(r.StorePath)
			if err != nil {
				return fmt.Errorf("make store: %w", err)
			}

			defer func() {
				if err := b.Close(); err != nil {
					lg.Error("close bolt store", slog.Any("err", err))
				}
			}()

			archive = b
		}

		svc := summary.NewService(
			lg.With(slog.String("prefix", "summary")),
			&http.Client{Timeout: 5 * time.Second},
			summary.NewChatGPT(
				lg.With(slog.String("prefix", "chatgpt")),
				&http.Client{Timeout: r.Summary.OpenAI.Timeout},
				r.Summary.OpenAI.Token,
				r.Summary.OpenAI.MaxTokens,
			),
			summary.NewExtractor(),
			archive,
		)

		ctrl.Summarizer = svc
		srv.Stats = svc
	} else {
		lg.Warn("openai token is not set, summaries are disabled")
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	ewg, ctx := errgroup.WithContext(ctx)
	ewg.Go(func() error {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
		select {
		case sig := <-sig:
			slog.Warn("caught signal, stopping", slog.String("signal", sig.String()))
			stop()
			return ctx.Err()
		case <-ctx.Done():
			return ctx.Err()
		}
	})
	ewg.Go(func() error {
		lg.Info("starting server")
		err := srv.Run(ctx)
		lg.Warn("server stopped")
		return err
	})

	err := ewg.Wait()

	lg.Info("waiting for pending summaries")
	ctrl.Wait()

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}
