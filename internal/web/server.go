// Package web hosts the task list in a browser. The server owns the only
// controller; the browser sends intents and receives list and count patches
// over a datastar SSE stream.
package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/idilsaglam/tasklist/internal/app"
	"github.com/idilsaglam/tasklist/internal/model"
	"github.com/idilsaglam/tasklist/internal/todo"
	"github.com/idilsaglam/tasklist/internal/view"
)

type ServerConfig struct {
	Addr      string
	KeepAlive time.Duration
}

// Server serializes every call into the host behind mu; the core is
// single-threaded and SSE streams only read what was rendered under it.
type Server struct {
	cfg  ServerConfig
	log  *slog.Logger
	hub  *hub
	mu   sync.Mutex
	host *app.Host

	// done closes when the http server starts shutting down, ending SSE streams.
	done     chan struct{}
	stopOnce sync.Once
}

func NewServer(cfg ServerConfig, h *app.Host, log *slog.Logger) (*Server, error) {
	if strings.TrimSpace(cfg.Addr) == "" {
		return nil, errors.New("web: missing addr")
	}
	if h == nil {
		return nil, errors.New("web: missing host")
	}
	if cfg.KeepAlive <= 0 {
		cfg.KeepAlive = 25 * time.Second
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Server{cfg: cfg, log: log, hub: newHub(), host: h, done: make(chan struct{})}, nil
}

func (s *Server) Addr() string { return s.cfg.Addr }

// HTTPServer builds the http.Server for ListenAndServe. Shutdown on it
// also ends open event streams.
func (s *Server) HTTPServer() *http.Server {
	hs := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	hs.RegisterOnShutdown(s.Close)
	return hs
}

// Close ends every open event stream. Safe to call more than once.
func (s *Server) Close() {
	s.stopOnce.Do(func() { close(s.done) })
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/", s.handleIndex)
	r.Get("/events", s.handleEvents)
	r.Post("/submit", s.handleSubmit)
	r.Post("/dispatch/{ref}/{event}", s.handleDispatch)
	r.Get("/api/items", s.handleItems)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	doc, err := view.HTMLString(page(s.host), htmlOpts)
	s.mu.Unlock()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = io.WriteString(w, "<!DOCTYPE html>\n"+doc)
}

type submitSignals struct {
	Title string `json:"title"`
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var sig submitSignals
	if err := datastar.ReadSignals(r, &sig); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.host.Submit(sig.Title)
	left := s.host.Input.Value()
	s.mu.Unlock()
	s.hub.publish()

	sse := datastar.NewSSE(w, r)
	_ = sse.MarshalAndPatchSignals(submitSignals{Title: left})
}

func (s *Server) handleDispatch(w http.ResponseWriter, r *http.Request) {
	ref, event := chi.URLParam(r, "ref"), chi.URLParam(r, "event")

	if err := s.dispatch(ref, event); err != nil {
		// stale page: the node was replaced before the click arrived
		s.log.Debug("dispatch failed", "error", err)
		status := http.StatusInternalServerError
		if errors.Is(err, todo.ErrNotFound) {
			status = http.StatusNotFound
		}
		http.Error(w, err.Error(), status)
		return
	}
	s.hub.publish()
	w.WriteHeader(http.StatusNoContent)
}

// dispatch fires event on the displayed node with the given ref.
func (s *Server) dispatch(ref, event string) error {
	s.mu.Lock()
	ok := s.host.List.Dispatch(ref, event)
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: binding %s/%s", todo.ErrNotFound, ref, event)
	}
	return nil
}

func (s *Server) handleItems(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	items := s.host.Items.Items()
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(struct {
		Count int          `json:"count"`
		Items []model.Item `json:"items"`
	}{Count: len(items), Items: items})
}

// fragments renders the list mount point and count label as they are displayed now.
func (s *Server) fragments() (list, count string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if list, err = view.HTMLString(listMount(s.host.List), htmlOpts); err != nil {
		return "", "", err
	}
	if count, err = view.HTMLString(countLabel(s.host.Count.Text()), htmlOpts); err != nil {
		return "", "", err
	}
	return list, count, nil
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	ch, cancel := s.hub.subscribe()
	defer cancel()

	keepAlive := time.NewTicker(s.cfg.KeepAlive)
	defer keepAlive.Stop()

	// the page may have missed changes made before this stream connected
	if err := s.patchFragments(sse); err != nil {
		return
	}
	for {
		select {
		case <-sse.Context().Done():
			return
		case <-s.done:
			return
		case <-keepAlive.C:
			_ = sse.PatchSignals([]byte(`{}`))
		case <-ch:
			if err := s.patchFragments(sse); err != nil {
				return
			}
		}
	}
}

// patchFragments sends the displayed list and count. Only write errors are
// returned; a render error is logged and skipped.
func (s *Server) patchFragments(sse *datastar.ServerSentEventGenerator) error {
	list, count, err := s.fragments()
	if err != nil {
		s.log.Error("render fragments", "error", err)
		return nil
	}
	if err := sse.PatchElements(list, datastar.WithSelector("#"+app.ListMountID), datastar.WithMode(datastar.ElementPatchModeOuter)); err != nil {
		return err
	}
	return sse.PatchElements(count, datastar.WithSelector("#"+app.CountID), datastar.WithMode(datastar.ElementPatchModeOuter))
}
