package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/profboard/profboard-go-api/internal/service"
	"github.com/profboard/profboard-go-api/internal/utils"
)

// DashboardHandler wires the aggregated stats endpoint.
type DashboardHandler struct {
	service service.DashboardService
	logger  zerolog.Logger
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(service service.DashboardService, logger zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		logger:  logger.With().Str("component", "dashboard_handler").Logger(),
	}
}

// Register attaches dashboard endpoints to the router group.
func (h *DashboardHandler) Register(router fiber.Router) {
	router.Get("/stats", h.stats)
}

func (h *DashboardHandler) stats(c *fiber.Ctx) error {
	email := professorEmail(c)
	if email == "" {
		return utils.SendError(c, fiber.StatusBadRequest, "professor email required")
	}

	stats, err := h.service.GetStats(c.Context(), email)
	if err != nil {
		h.logger.Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}

	return utils.SendSuccess(c, "dashboard stats retrieved", stats)
}
