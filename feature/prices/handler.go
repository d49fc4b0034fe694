package prices

import (
	"errors"

	"cardstock/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler handles HTTP requests for collected prices.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the price routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/prices")
	group.Get("/latest", h.HandleGetLatest)
}

// HandleGetLatest returns the most recent snapshot for the card named in
// the query. Card names carry spaces and commas, hence a query parameter
// instead of a path segment.
func (h *Handler) HandleGetLatest(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	name := c.Query("name")
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "missing name query parameter",
		})
	}

	snapshot, err := h.service.Latest(c.Context(), name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "no price recorded for this card",
			})
		}
		l.Error("Latest price lookup failed", zap.Error(err), zap.String("name", name))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(snapshot)
}
