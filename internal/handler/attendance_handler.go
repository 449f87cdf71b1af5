package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/profboard/profboard-go-api/internal/service"
	"github.com/profboard/profboard-go-api/internal/utils"
)

// AttendanceHandler wires attendance HTTP routes.
type AttendanceHandler struct {
	service service.AttendanceService
	logger  zerolog.Logger
}

// NewAttendanceHandler constructs the handler.
func NewAttendanceHandler(service service.AttendanceService, logger zerolog.Logger) *AttendanceHandler {
	return &AttendanceHandler{
		service: service,
		logger:  logger.With().Str("component", "attendance_handler").Logger(),
	}
}

// Register attaches attendance endpoints to the router group.
func (h *AttendanceHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/chart", h.chart)
}

func (h *AttendanceHandler) list(c *fiber.Ctx) error {
	email := professorEmail(c)
	if email == "" {
		return utils.SendError(c, fiber.StatusBadRequest, "professor email required")
	}

	records, err := h.service.List(c.Context(), email)
	if err != nil {
		h.logger.Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}

	return utils.SendSuccess(c, "attendance retrieved", records)
}

func (h *AttendanceHandler) chart(c *fiber.Ctx) error {
	email := professorEmail(c)
	if email == "" {
		return utils.SendError(c, fiber.StatusBadRequest, "professor email required")
	}

	points, err := h.service.WeeklyChart(c.Context(), email)
	if err != nil {
		h.logger.Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}

	return utils.SendSuccess(c, "attendance chart retrieved", points)
}
