// Package server exposes the Gemini generator over the JSON API consumed by
// the pipeline's service client.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/nguyentantai21042004/caption-studio/internal/config"
	"github.com/nguyentantai21042004/caption-studio/internal/logger"
	"github.com/nguyentantai21042004/caption-studio/internal/subtitle"
	"github.com/nguyentantai21042004/caption-studio/pkg/models"
)

const shutdownTimeout = 10 * time.Second

// Generator is the backend behind both endpoints.
type Generator interface {
	GenerateTranscript(ctx context.Context, videoURL string) ([]models.Cue, error)
	GenerateCaptions(ctx context.Context, cues []models.Cue, params models.GenerationParams) ([]string, error)
}

// Server serves /generate_transcript and /generate_caption.
type Server struct {
	cfg     config.ServerConfig
	gen     Generator
	srtOpts subtitle.Options
	logger  logger.Logger
	handler http.Handler
}

// New builds a Server. srtOpts drives the format=srt transcript response.
func New(cfg config.ServerConfig, gen Generator, srtOpts subtitle.Options, log logger.Logger) *Server {
	s := &Server{
		cfg:     cfg,
		gen:     gen,
		srtOpts: srtOpts,
		logger:  log,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleHealth)
	mux.HandleFunc("POST /generate_transcript", s.handleTranscript)
	mux.HandleFunc("POST /generate_caption", s.handleCaption)

	s.handler = s.withRequestID(s.withCORS(s.withLogging(mux)))
	return s
}

// Handler returns the root handler with middleware applied.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run listens on cfg.Addr until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "Listening on %s", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("caption service is running"))
}
