package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/McManusDaniel/mtg-commander-app/pkg/scryfall"
)

// BulkRequest is the body of POST /cards/bulk.
type BulkRequest struct {
	Names []string `json:"names" binding:"required,min=1"`
}

// BulkEntry is one per-name outcome in a bulk response. Exactly one of Card
// and Error is set; entries are positionally aligned with the request names.
type BulkEntry struct {
	Name  string         `json:"name"`
	Card  *scryfall.Card `json:"card,omitempty"`
	Error string         `json:"error,omitempty"`
}

// BulkResponse is the body of a successful bulk lookup.
type BulkResponse struct {
	Results []BulkEntry `json:"results"`
	Count   int         `json:"count"`
}

func (s *Server) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "MTG Commander API is live!"})
}

func (s *Server) health(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func (s *Server) ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "Card router is working"})
}

// searchCard handles GET /cards/search?name=<card name>.
func (s *Server) searchCard(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		respondError(c, http.StatusBadRequest, "name query parameter is required", "BAD_REQUEST")
		return
	}

	card, err := s.client.FetchFullCard(c.Request.Context(), name)
	if err != nil {
		s.respondLookupError(c, name, err)
		return
	}

	c.JSON(http.StatusOK, card)
}

// bulkCards handles POST /cards/bulk. Lookups run concurrently through the
// batch orchestrator; per-name failures land in their result entry instead of
// failing the whole request.
func (s *Server) bulkCards(c *gin.Context) {
	var req BulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: names list is required", "BAD_REQUEST")
		return
	}

	results := s.batcher.FetchAll(c.Request.Context(), req.Names)

	entries := make([]BulkEntry, len(results))
	for i, r := range results {
		entries[i] = BulkEntry{Name: r.Name, Card: r.Card}
		if r.Err != nil {
			entries[i].Error = r.Err.Error()
		}
	}

	c.JSON(http.StatusOK, BulkResponse{Results: entries, Count: len(entries)})
}

// respondLookupError translates the client error taxonomy to HTTP statuses:
// not found -> 404, invalid input -> 400, transport -> 502.
func (s *Server) respondLookupError(c *gin.Context, name string, err error) {
	switch {
	case scryfall.IsNotFound(err):
		respondError(c, http.StatusNotFound, fmt.Sprintf("'%s' was not found", name), "NOT_FOUND")
	case scryfall.IsValidation(err):
		respondError(c, http.StatusBadRequest, err.Error(), "VALIDATION_ERROR")
	default:
		s.logger.Error().Err(err).Str("name", name).Msg("Card lookup failed")
		respondError(c, http.StatusBadGateway, "card lookup failed upstream", "UPSTREAM_ERROR")
	}
}
