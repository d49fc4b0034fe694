package wantlist

import (
	"strings"

	"cardstock/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ReconcileRequest is the request body for the reconcile endpoint.
type ReconcileRequest struct {
	// Content is the raw want-list text.
	Content string `json:"content"`
}

// Handler handles HTTP requests for want-list reconciliation.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the want-list routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/wantlist")
	group.Post("/reconcile", h.HandleReconcile)
}

// HandleReconcile reconciles the posted want-list against the current
// inventory snapshot and returns the full report.
func (h *Handler) HandleReconcile(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var req ReconcileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if strings.TrimSpace(req.Content) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "empty want-list",
		})
	}

	report, err := h.service.Reconcile(c.Context(), strings.NewReader(req.Content))
	if err != nil {
		l.Error("Want-list reconciliation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(report)
}
