package inventory

import (
	"cardstock/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the inventory snapshot.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the inventory routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/inventory")
	group.Get("/summary", h.HandleGetSummary)
	group.Get("/listings", h.HandleSearchListings)
}

// HandleGetSummary returns aggregate stats over the current snapshot.
func (h *Handler) HandleGetSummary(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	summary, err := h.service.Summary(c.Context())
	if err != nil {
		l.Error("Snapshot summary failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(summary)
}

// HandleSearchListings returns the listings matching the name query,
// in snapshot order.
func (h *Handler) HandleSearchListings(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	name := c.Query("name")
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "missing name query parameter",
		})
	}

	listings, err := h.service.Search(c.Context(), name)
	if err != nil {
		l.Error("Listing search failed", zap.Error(err), zap.String("name", name))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"name":     name,
		"listings": listings,
	})
}
