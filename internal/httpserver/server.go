package httpserver

import (
	"context"
	"net/http"
	"time"
)

// Server wraps the HTTP server setup.
type Server struct {
	httpServer *http.Server
}

// New builds a Server with the full route table.
func New(addr string, corsOrigins []string, deps Deps) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           buildRouter(corsOrigins, deps),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
