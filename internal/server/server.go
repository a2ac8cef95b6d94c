// Package server exposes the card lookup API over HTTP. It is glue around
// the Scryfall client: routing, schema binding, and error translation.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/McManusDaniel/mtg-commander-app/internal/config"
	"github.com/McManusDaniel/mtg-commander-app/pkg/batch"
	"github.com/McManusDaniel/mtg-commander-app/pkg/logging"
	"github.com/McManusDaniel/mtg-commander-app/pkg/scryfall"
)

// Server wires the HTTP routes to the shared Scryfall client.
type Server struct {
	router  *gin.Engine
	client  *scryfall.Client
	batcher *batch.Fetcher
	cfg     config.ServerConfig
	logger  zerolog.Logger
}

// New creates a server around an existing client. The client is injected,
// not constructed here; the caller owns its lifecycle.
func New(client *scryfall.Client, cfg config.ServerConfig) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		router:  gin.New(),
		client:  client,
		batcher: batch.NewFetcher(client, batch.Config{}),
		cfg:     cfg,
		logger:  logging.NewLogger("server"),
	}
	s.routes()

	return s
}

func (s *Server) routes() {
	r := s.router
	r.Use(gin.Recovery())
	r.Use(s.requestLogger())

	limiter := rate.NewLimiter(rate.Limit(s.cfg.RequestsPerSecond), s.cfg.Burst)
	r.Use(rateLimit(limiter))

	r.GET("/", s.root)
	r.GET("/healthz", s.health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	cards := r.Group("/cards")
	cards.GET("/ping", s.ping)
	cards.GET("/search", s.searchCard)
	cards.POST("/bulk", s.bulkCards)
}

// Handler returns the HTTP handler (for tests).
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.cfg.Port),
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", srv.Addr).Msg("Starting HTTP server")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		s.logger.Info().Msg("Shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// requestLogger logs one line per handled request.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		s.logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("Request handled")
	}
}

// rateLimit enforces a single global inbound token bucket. It is deliberately
// not per-client: it exists to keep the upstream pacing gate's queue bounded,
// not to arbitrate fairness between callers.
func rateLimit(limiter *rate.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow() {
			respondError(c, http.StatusTooManyRequests, "rate limit exceeded, slow down", "RATE_LIMITED")
			c.Abort()
			return
		}
		c.Next()
	}
}
