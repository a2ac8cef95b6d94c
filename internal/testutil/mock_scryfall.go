// Package testutil provides testing utilities for the MTG Commander backend.
package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"
)

// MockResponse defines the behavior of a mock Scryfall endpoint.
type MockResponse struct {
	StatusCode int
	Body       string
	Delay      time.Duration
}

// MockScryfall is a configurable mock Scryfall server for testing.
type MockScryfall struct {
	server   *httptest.Server
	mu       sync.RWMutex
	handlers map[string]func(w http.ResponseWriter, r *http.Request)

	// Tracking
	RequestCount  int
	requestsByURL map[string]int
}

// NewMockScryfall creates a new mock Scryfall server.
func NewMockScryfall() *MockScryfall {
	mock := &MockScryfall{
		handlers:      make(map[string]func(w http.ResponseWriter, r *http.Request)),
		requestsByURL: make(map[string]int),
	}

	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mock.mu.Lock()
		mock.RequestCount++
		mock.requestsByURL[r.URL.Path]++
		mock.mu.Unlock()

		mock.mu.RLock()
		handler, exists := mock.handlers[r.URL.Path]
		mock.mu.RUnlock()

		if exists {
			handler(w, r)
			return
		}

		// Unknown paths behave like Scryfall misses.
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"object": "error", "code": "not_found", "details": "No card found."}`)
	}))

	return mock
}

// URL returns the mock server URL.
func (m *MockScryfall) URL() string {
	return m.server.URL
}

// Close shuts down the mock server.
func (m *MockScryfall) Close() {
	m.server.Close()
}

// Reset clears all tracking counters.
func (m *MockScryfall) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RequestCount = 0
	m.requestsByURL = make(map[string]int)
}

// SetHandler sets a custom handler for a specific path.
func (m *MockScryfall) SetHandler(path string, handler func(w http.ResponseWriter, r *http.Request)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[path] = handler
}

// SetResponse configures a canned response for a path.
func (m *MockScryfall) SetResponse(path string, resp MockResponse) {
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		if resp.Delay > 0 {
			time.Sleep(resp.Delay)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(resp.StatusCode)
		if resp.Body != "" {
			fmt.Fprint(w, resp.Body)
		}
	})
}

// SetNamedCardResponse configures the fuzzy named-card endpoint. Every named
// lookup hits /cards/named regardless of the name, so tests that care about
// which card was asked for should use SetHandler and inspect the fuzzy query
// parameter.
func (m *MockScryfall) SetNamedCardResponse(resp MockResponse) {
	m.SetResponse("/cards/named", resp)
}

// SetRulingsResponse configures the rulings endpoint for a card ID.
func (m *MockScryfall) SetRulingsResponse(cardID string, resp MockResponse) {
	m.SetResponse("/cards/"+cardID+"/rulings", resp)
}

// GetRequestCount returns the total number of requests made to the server.
func (m *MockScryfall) GetRequestCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.RequestCount
}

// GetRequestCountForPath returns the number of requests for one path.
func (m *MockScryfall) GetRequestCountForPath(path string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.requestsByURL[path]
}

// CardJSON renders a minimal named-card payload for a card.
func CardJSON(name, id string) string {
	return fmt.Sprintf(`{
		"name": %q,
		"id": %q,
		"image_uris": {
			"small": "https://cards.example/%s/small.jpg",
			"normal": "https://cards.example/%s/normal.jpg",
			"border_crop": "https://cards.example/%s/border.jpg"
		},
		"mana_cost": "{R}",
		"cmc": 1,
		"type_line": "Instant",
		"colors": ["R"],
		"oracle_text": "Deal 3 damage to any target.",
		"keywords": [],
		"legalities": {"commander": "legal"}
	}`, name, id, id, id, id)
}

// RulingsJSON renders a rulings payload from (date, comment) pairs.
func RulingsJSON(pairs ...[2]string) string {
	body := `{"object": "list", "data": [`
	for i, p := range pairs {
		if i > 0 {
			body += ","
		}
		body += fmt.Sprintf(`{"published_at": %q, "comment": %q}`, p[0], p[1])
	}
	return body + `]}`
}

// NewNotFoundResponse creates a Scryfall-style 404 response.
func NewNotFoundResponse() MockResponse {
	return MockResponse{
		StatusCode: http.StatusNotFound,
		Body:       `{"object": "error", "code": "not_found", "details": "No card found."}`,
	}
}
