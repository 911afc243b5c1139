package handlers

import (
	"github.com/gofiber/fiber/v3"
)

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	storage fiber.Storage
}

// NewProbeHandler creates a new probe handler. storage may be nil when the
// rate limiter keeps its counters in memory.
func NewProbeHandler(storage fiber.Storage) *ProbeHandler {
	return &ProbeHandler{storage: storage}
}

// Liveness handles the /healthz endpoint for Kubernetes liveness probes.
// Returns 200 OK if the application is running.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles the /readyz endpoint for Kubernetes readiness probes.
// Returns 200 OK if the limiter storage is reachable.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	if h.storage != nil {
		if _, err := h.storage.Get("readyz"); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "error",
				"error":  "limiter storage unavailable",
			})
		}
	}

	return c.JSON(fiber.Map{
		"status": "ok",
	})
}
