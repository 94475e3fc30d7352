// Package server exposes the analysis pipeline, compliance catalog,
// reporting post-processors, chatbot and report registry over HTTP.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/phuslu/log"

	"github.com/greenstamp/greenstamp/internal/chatbot"
	"github.com/greenstamp/greenstamp/internal/model"
	"github.com/greenstamp/greenstamp/internal/pipeline"
	"github.com/greenstamp/greenstamp/internal/provenance"
)

// Server manages the HTTP server and routes
type Server struct {
	config    *model.Config
	pipeline  *pipeline.Pipeline
	bot       *chatbot.Bot
	registrar *provenance.Registrar
	router    *http.ServeMux
	server    *http.Server
}

// New creates the HTTP server around an already-constructed pipeline,
// chatbot and registrar
func New(cfg *model.Config, p *pipeline.Pipeline, bot *chatbot.Bot, registrar *provenance.Registrar) *Server {
	s := &Server{
		config:    cfg,
		pipeline:  p,
		bot:       bot,
		registrar: registrar,
	}

	s.router = s.setupRoutes()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.withMiddleware(s.router),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return s
}

// Start starts the HTTP server and blocks until it stops
func (s *Server) Start() error {
	log.Info().
		Str("address", s.server.Addr).
		Str("provider", s.pipeline.Engine().Name()).
		Msg("HTTP server starting")

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	log.Info().Msg("shutting down HTTP server")

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}

// Handler exposes the middleware-wrapped handler for tests
func (s *Server) Handler() http.Handler {
	return s.withMiddleware(s.router)
}
