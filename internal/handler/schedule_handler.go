package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/profboard/profboard-go-api/internal/service"
	"github.com/profboard/profboard-go-api/internal/utils"
)

// ScheduleHandler wires class schedule HTTP routes.
type ScheduleHandler struct {
	service service.ScheduleService
	logger  zerolog.Logger
}

// NewScheduleHandler constructs the handler.
func NewScheduleHandler(service service.ScheduleService, logger zerolog.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		service: service,
		logger:  logger.With().Str("component", "schedule_handler").Logger(),
	}
}

// Register attaches schedule endpoints to the router group.
func (h *ScheduleHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/today", h.today)
}

func (h *ScheduleHandler) list(c *fiber.Ctx) error {
	email := professorEmail(c)
	if email == "" {
		return utils.SendError(c, fiber.StatusBadRequest, "professor email required")
	}

	sessions, err := h.service.List(c.Context(), email)
	if err != nil {
		h.logger.Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}

	return utils.SendSuccess(c, "schedule retrieved", sessions)
}

func (h *ScheduleHandler) today(c *fiber.Ctx) error {
	email := professorEmail(c)
	if email == "" {
		return utils.SendError(c, fiber.StatusBadRequest, "professor email required")
	}

	sessions, err := h.service.Today(c.Context(), email)
	if err != nil {
		h.logger.Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}

	return utils.SendSuccess(c, "today's classes retrieved", sessions)
}
