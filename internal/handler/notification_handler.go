package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/profboard/profboard-go-api/internal/dto"
	"github.com/profboard/profboard-go-api/internal/service"
	"github.com/profboard/profboard-go-api/internal/utils"
)

// NotificationHandler wires notification HTTP routes.
type NotificationHandler struct {
	service   service.NotificationService
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewNotificationHandler constructs the handler.
func NewNotificationHandler(service service.NotificationService, validator *validator.Validate, logger zerolog.Logger) *NotificationHandler {
	return &NotificationHandler{
		service:   service,
		validator: validator,
		logger:    logger.With().Str("component", "notification_handler").Logger(),
	}
}

// Register attaches notification endpoints to the router group.
func (h *NotificationHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.send)
}

func (h *NotificationHandler) list(c *fiber.Ctx) error {
	email := professorEmail(c)
	if email == "" {
		return utils.SendError(c, fiber.StatusBadRequest, "professor email required")
	}

	limit, err := parseQueryInt(c, "limit")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid limit")
	}

	offset, err := parseQueryInt(c, "offset")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid offset")
	}

	notifications, err := h.service.List(c.Context(), email, limit, offset)
	if err != nil {
		h.logger.Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}

	return utils.SendSuccess(c, "notifications retrieved", notifications)
}

func (h *NotificationHandler) send(c *fiber.Ctx) error {
	var payload dto.NotificationCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	notification, err := h.service.Send(c.Context(), payload)
	if err != nil {
		if isValidationError(err) {
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		}
		h.logger.Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}

	return utils.SendSuccess(c, "notification recorded", notification)
}
