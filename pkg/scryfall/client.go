// Package scryfall provides the core Scryfall fetch client with caching,
// outbound pacing, and typed error handling.
package scryfall

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/McManusDaniel/mtg-commander-app/pkg/cache"
	"github.com/McManusDaniel/mtg-commander-app/pkg/ratelimit"
)

// Prometheus metrics for Scryfall client operations.
var (
	scryfallRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scryfall_requests_total",
		Help: "Total Scryfall requests by endpoint and status",
	}, []string{"endpoint", "status"})

	scryfallRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "scryfall_request_duration_seconds",
		Help:    "Scryfall request duration in seconds by endpoint, including gate wait",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"endpoint"})

	scryfallErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scryfall_errors_total",
		Help: "Total Scryfall lookup errors by class",
	}, []string{"class"})
)

// Error classes used for metrics labels.
const (
	errClassNotFound   = "not_found"
	errClassTransport  = "transport"
	errClassValidation = "validation"
)

// Endpoint labels.
const (
	endpointNamedCard = "/cards/named"
	endpointRulings   = "/cards/{id}/rulings"
)

// DefaultBaseURL is the public Scryfall API.
const DefaultBaseURL = "https://api.scryfall.com"

// Config holds the client configuration.
type Config struct {
	// BaseURL of the Scryfall API, without trailing slash.
	BaseURL string

	// UserAgent sent with every request.
	UserAgent string

	// RateLimitDelay is the fixed pacing delay paid per outbound request.
	RateLimitDelay time.Duration

	// RequestTimeout bounds each outbound request.
	RequestTimeout time.Duration
}

// DefaultConfig returns a safe default configuration.
func DefaultConfig() Config {
	return Config{
		BaseURL:        DefaultBaseURL,
		UserAgent:      "mtg-commander-app/1.0",
		RateLimitDelay: ratelimit.DefaultDelay,
		RequestTimeout: 10 * time.Second,
	}
}

// Client resolves card names and IDs to structured data from Scryfall.
//
// It exclusively owns two in-memory caches (name -> card, id -> rulings) and
// the single-slot pacing gate; one instance is constructed per process and
// shared by the API surface, the batch orchestrator, and the CLI.
type Client struct {
	httpClient *http.Client
	gate       *ratelimit.Gate
	cards      *cache.Store[Card]
	rulings    *cache.Store[[]Ruling]
	config     Config
	logger     zerolog.Logger
	closeOnce  sync.Once
}

// New creates a new Scryfall client.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if cfg.RateLimitDelay < 0 {
		return nil, fmt.Errorf("rate limit delay must not be negative (got %v)", cfg.RateLimitDelay)
	}
	if cfg.RequestTimeout <= 0 {
		return nil, fmt.Errorf("request timeout must be positive (got %v)", cfg.RequestTimeout)
	}

	logger := log.With().Str("component", "scryfall-client").Logger()

	return &Client{
		httpClient: &http.Client{},
		gate:       ratelimit.NewGate(cfg.RateLimitDelay, logger),
		cards:      cache.NewStore[Card]("cards"),
		rulings:    cache.NewStore[[]Ruling]("rulings"),
		config:     cfg,
		logger:     logger,
	}, nil
}

// FetchCard resolves a card name to its metadata record, without rulings.
// The name is matched fuzzily by Scryfall; the cache is keyed by the name
// exactly as given. A cache hit returns immediately with no network call.
func (c *Client) FetchCard(ctx context.Context, name string) (*Card, error) {
	if strings.TrimSpace(name) == "" {
		scryfallErrorsTotal.WithLabelValues(errClassValidation).Inc()
		return nil, &ValidationError{Field: "name", Reason: "must not be empty"}
	}

	if card, ok := c.cards.Get(name); ok {
		c.logger.Debug().Str("name", name).Msg("Card cache hit")
		return &card, nil
	}

	query := url.Values{"fuzzy": {name}}
	body, status, err := c.get(ctx, endpointNamedCard, c.config.BaseURL+"/cards/named?"+query.Encode())
	if err != nil {
		return nil, err
	}

	if status != http.StatusOK {
		scryfallErrorsTotal.WithLabelValues(errClassNotFound).Inc()
		c.logger.Warn().
			Str("name", name).
			Int("status", status).
			Msg("Card not found")
		return nil, &NotFoundError{Query: name, Kind: QueryByName, StatusCode: status}
	}

	var payload cardPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		scryfallErrorsTotal.WithLabelValues(errClassTransport).Inc()
		return nil, &TransportError{Endpoint: endpointNamedCard, Err: fmt.Errorf("decode response: %w", err)}
	}

	card := payload.toCard()
	c.cards.Set(name, card)

	c.logger.Debug().
		Str("name", name).
		Str("resolved", card.Name).
		Str("id", card.ID).
		Msg("Card fetched and cached")

	return &card, nil
}

// FetchRulings resolves a Scryfall card ID to its rulings, formatted as
// "[date] comment" pairs in upstream order. A card with zero rulings yields
// an empty list, not an error.
func (c *Client) FetchRulings(ctx context.Context, id string) ([]Ruling, error) {
	if strings.TrimSpace(id) == "" {
		scryfallErrorsTotal.WithLabelValues(errClassValidation).Inc()
		return nil, &ValidationError{Field: "id", Reason: "must not be empty"}
	}

	if rulings, ok := c.rulings.Get(id); ok {
		c.logger.Debug().Str("id", id).Msg("Rulings cache hit")
		return rulings, nil
	}

	body, status, err := c.get(ctx, endpointRulings, c.config.BaseURL+"/cards/"+url.PathEscape(id)+"/rulings")
	if err != nil {
		return nil, err
	}

	if status != http.StatusOK {
		scryfallErrorsTotal.WithLabelValues(errClassNotFound).Inc()
		c.logger.Warn().
			Str("id", id).
			Int("status", status).
			Msg("Rulings not found")
		return nil, &NotFoundError{Query: id, Kind: QueryByID, StatusCode: status}
	}

	var payload rulingsPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		scryfallErrorsTotal.WithLabelValues(errClassTransport).Inc()
		return nil, &TransportError{Endpoint: endpointRulings, Err: fmt.Errorf("decode response: %w", err)}
	}

	rulings := payload.toRulings()
	c.rulings.Set(id, rulings)

	c.logger.Debug().
		Str("id", id).
		Int("count", len(rulings)).
		Msg("Rulings fetched and cached")

	return rulings, nil
}

// FetchFullCard composes FetchCard and FetchRulings, attaching the rulings
// to a copy of the record. On failure of either sub-call no partial record
// is returned. An uncached card costs up to two round trips; cached rulings
// reduce that to one.
func (c *Client) FetchFullCard(ctx context.Context, name string) (*Card, error) {
	card, err := c.FetchCard(ctx, name)
	if err != nil {
		return nil, err
	}

	rulings, err := c.FetchRulings(ctx, card.ID)
	if err != nil {
		return nil, err
	}

	// FetchCard returned a copy, so the cached record stays rulings-free.
	card.Rulings = rulings
	return card, nil
}

// get acquires the pacing gate, performs one GET request, and returns the
// response body and status. Network, timeout, and body-read failures are
// wrapped in TransportError.
func (c *Client) get(ctx context.Context, endpoint, rawURL string) ([]byte, int, error) {
	start := time.Now()
	defer func() {
		scryfallRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}()

	if err := c.gate.Acquire(ctx); err != nil {
		scryfallErrorsTotal.WithLabelValues(errClassTransport).Inc()
		return nil, 0, &TransportError{Endpoint: endpoint, Err: err}
	}
	defer c.gate.Release()

	reqCtx, cancel := context.WithTimeout(ctx, c.config.RequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, rawURL, nil)
	if err != nil {
		scryfallErrorsTotal.WithLabelValues(errClassTransport).Inc()
		return nil, 0, &TransportError{Endpoint: endpoint, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().
		Str("endpoint", endpoint).
		Msg("Executing Scryfall request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		scryfallErrorsTotal.WithLabelValues(errClassTransport).Inc()
		scryfallRequestsTotal.WithLabelValues(endpoint, "network_error").Inc()
		c.logger.Error().Err(err).Str("endpoint", endpoint).Msg("HTTP request failed")
		return nil, 0, &TransportError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		scryfallErrorsTotal.WithLabelValues(errClassTransport).Inc()
		return nil, 0, &TransportError{Endpoint: endpoint, Err: fmt.Errorf("read response body: %w", err)}
	}

	scryfallRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()
	return body, resp.StatusCode, nil
}

// Close releases the outbound connection pool. It is safe to call multiple
// times but must only be called after all in-flight operations complete.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		c.httpClient.CloseIdleConnections()
		c.logger.Debug().Msg("Client closed")
	})
}

// SetHTTPClient sets a custom HTTP client (for testing).
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}
