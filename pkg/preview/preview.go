// Package preview serves a rendered chart over HTTP for live viewing.
//
// The server holds the latest rendered SVG in memory; [Server.Update]
// swaps it atomically, so a file watcher can re-render on change and the
// browser picks the new chart up on refresh. Responses carry no-cache
// headers to keep refreshes honest.
package preview

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"
)

// Server serves the most recently rendered chart.
type Server struct {
	addr   string
	server *http.Server

	mu  sync.RWMutex
	svg []byte
}

// New creates a preview server listening on the given port with an initial
// chart.
func New(port int, svg []byte) *Server {
	return &Server{
		addr: fmt.Sprintf(":%d", port),
		svg:  svg,
	}
}

// Update replaces the served chart.
func (s *Server) Update(svg []byte) {
	s.mu.Lock()
	s.svg = svg
	s.mu.Unlock()
}

// URL returns the local address the server listens on.
func (s *Server) URL() string {
	return fmt.Sprintf("http://localhost%s", s.addr)
}

// Start runs the server until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:    s.addr,
		Handler: s.routes(),
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	errChan := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.server.Shutdown(shutdownCtx)
	case err := <-errChan:
		return err
	}
}

func (s *Server) chartHandler(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	svg := s.svg
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(svg)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "ok")
}

// noCache disables client and proxy caching so every refresh shows the
// latest render.
func noCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		next.ServeHTTP(w, r)
	})
}
