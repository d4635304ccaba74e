package stats

import (
	"file-storage/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for statistics.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the stats routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/stats", h.HandleGetStats)
}

// HandleGetStats returns the aggregate statistics.
// @Summary Aggregate Statistics
// @Description Returns site-wide totals, or 204 when no statistics provider is configured.
// @Tags stats
// @Produce json
// @Success 200 {object} stats.AggregateStats "Statistics"
// @Success 204 "No statistics available"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /stats [get]
func (h *Handler) HandleGetStats(c *fiber.Ctx) error {
	result, err := h.service.GetAggregateStats(c.Context())
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Stats lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if result == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(result)
}
