package api

import (
	"errors"
	"log/slog"
	"net/url"

	"github.com/gofiber/fiber/v3"

	"pokecard/internal/catalog"
	"pokecard/internal/metrics"
	"pokecard/internal/models"
	"pokecard/internal/render"
	"pokecard/internal/validation"
)

// LookupHandler handles creature lookups via JSON API. It is stateless and
// never touches an open page.
type LookupHandler struct {
	catalog catalog.Client
}

// NewLookupHandler creates a new API lookup handler.
func NewLookupHandler(client catalog.Client) *LookupHandler {
	return &LookupHandler{catalog: client}
}

// Lookup normalizes the path query, fetches it and returns the record and its card.
func (h *LookupHandler) Lookup(c fiber.Ctx) error {
	raw := c.Params("query")
	if unescaped, err := url.PathUnescape(raw); err == nil {
		raw = unescaped
	}

	query, err := validation.NormalizeQuery(raw)
	if err != nil {
		metrics.RecordLookup(models.OutcomeRejected)
		return jsonError(c, fiber.StatusBadRequest, "query is empty")
	}

	creature, err := h.catalog.Fetch(c.Context(), query)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			metrics.RecordLookup(models.OutcomeNotFound)
			return jsonError(c, fiber.StatusNotFound, "creature not found")
		case errors.Is(err, catalog.ErrUpstream):
			metrics.RecordLookup(models.OutcomeFetchFailed)
			return jsonError(c, fiber.StatusBadGateway, "catalog fetch failed")
		default:
			slog.Warn("catalog request failed", "query", query, "error", err)
			metrics.RecordLookup(models.OutcomeNetworkError)
			return jsonError(c, fiber.StatusServiceUnavailable, "catalog unreachable")
		}
	}

	metrics.RecordLookup(models.OutcomeRendered)
	return jsonSuccess(c, models.LookupResponse{
		Query:    query,
		Creature: creature,
		Card:     render.Card(creature),
	})
}
