// Package web serves the news page and binds user actions to the view
// controller.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/Semior001/newsreader/app/store"
	"github.com/Semior001/newsreader/app/view"
	"github.com/go-chi/chi/v5"
	cache "github.com/go-pkgz/expirable-cache/v2"
	"golang.org/x/exp/slog"
)

// StatsProvider provides summary cache statistics.
type StatsProvider interface {
	CacheStat() cache.Stats
}

// Server serves the page and translates requests into view actions.
type Server struct {
	Addr           string
	Logger         *slog.Logger
	Ctrl           *view.Ctrl
	Store          *store.News
	Page           *Page
	Stats          StatsProvider
	HandlerTimeout time.Duration

	readyMu sync.Mutex
	ready   bool
}

// Run starts the server and blocks until the context is done.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.Addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.Logger.InfoCtx(ctx, "starting http server", slog.String("addr", s.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen and serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}

	return ctx.Err()
}

// Routes returns the http handler of the server.
func (s *Server) Routes() http.Handler {
	rtr := chi.NewRouter()

	rtr.Use(
		RequestID,
		Recover(s.Logger),
		Logger(s.Logger),
		Timeout(s.HandlerTimeout),
	)

	rtr.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("pong"))
	})

	rtr.Get("/", s.index)
	rtr.Get("/feed", s.feed)
	rtr.Get("/search", s.search)
	rtr.Get("/section/{section}", s.section)
	rtr.Get("/article", s.article)
	rtr.Get("/overlay/close", s.closeOverlay)

	if s.Stats != nil {
		rtr.Get("/api/v1/stats", s.stats)
	}

	return rtr
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	s.pageReady(r.Context())
	s.render(w, r, "")
}

func (s *Server) feed(w http.ResponseWriter, r *http.Request) {
	s.pageReady(r.Context())
	s.logLoad(r.Context(), s.Ctrl.LoadDefaultFeed(r.Context()))
	s.render(w, r, "")
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	s.pageReady(r.Context())
	term := r.URL.Query().Get("q")
	s.logLoad(r.Context(), s.Ctrl.LoadBySearch(r.Context(), term))
	s.render(w, r, term)
}

func (s *Server) section(w http.ResponseWriter, r *http.Request) {
	section := chi.URLParam(r, "section")
	if !view.IsSection(section) {
		http.NotFound(w, r)
		return
	}

	s.pageReady(r.Context())
	s.logLoad(r.Context(), s.Ctrl.LoadBySection(r.Context(), section))
	s.render(w, r, "")
}

func (s *Server) article(w http.ResponseWriter, r *http.Request) {
	s.pageReady(r.Context())

	a, ok := s.Store.Find(r.URL.Query().Get("url"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	s.Ctrl.ShowOverlay(a)
	s.render(w, r, "")
}

func (s *Server) closeOverlay(w http.ResponseWriter, r *http.Request) {
	s.Page.Close()
	s.render(w, r, "")
}

func (s *Server) stats(w http.ResponseWriter, _ *http.Request) {
	st := s.Stats.CacheStat()
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]int{
		"hits":      st.Hits,
		"misses":    st.Misses,
		"added":     st.Added,
		"evictions": st.Evicted,
	})
}

// pageReady loads the default feed on the first page view. A load
// abandoned by its visitor leaves the page unready for the next one.
func (s *Server) pageReady(ctx context.Context) {
	s.readyMu.Lock()
	defer s.readyMu.Unlock()

	if s.ready {
		return
	}

	s.logLoad(ctx, s.Ctrl.LoadDefaultFeed(ctx))
	s.ready = !errors.Is(ctx.Err(), context.Canceled)
}

func (s *Server) logLoad(ctx context.Context, err error) {
	switch {
	case err == nil:
	case errors.Is(err, view.ErrSuperseded):
		s.Logger.DebugCtx(ctx, "request superseded by a newer one")
	default:
		s.Logger.WarnCtx(ctx, "failed to load articles", slog.Any("err", err))
	}
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, term string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.Page.Render(w, term); err != nil {
		s.Logger.ErrorCtx(r.Context(), "failed to render page", slog.Any("err", err))
	}
}
