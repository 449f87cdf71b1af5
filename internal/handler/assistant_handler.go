package handler

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/profboard/profboard-go-api/internal/dto"
	"github.com/profboard/profboard-go-api/internal/middleware"
	"github.com/profboard/profboard-go-api/internal/service"
)

// AssistantHandler wires the conversational assistant endpoint.
//
// Unlike the dashboard CRUD routes this endpoint answers with the flat
// {response}/{error} shapes the frontend assistant widget already speaks.
type AssistantHandler struct {
	service   service.AssistantService
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewAssistantHandler constructs the handler.
func NewAssistantHandler(service service.AssistantService, validator *validator.Validate, logger zerolog.Logger) *AssistantHandler {
	return &AssistantHandler{
		service:   service,
		validator: validator,
		logger:    logger.With().Str("component", "assistant_handler").Logger(),
	}
}

// Register attaches the assistant endpoint to the router group.
func (h *AssistantHandler) Register(router fiber.Router) {
	router.Post("", h.respond)
}

func (h *AssistantHandler) respond(c *fiber.Ctx) error {
	var request dto.AssistantRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.AssistantError{Error: "invalid request body"})
	}

	if strings.TrimSpace(request.Message) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.AssistantError{Error: "Message is required"})
	}

	if err := h.validator.Struct(request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.AssistantError{Error: err.Error()})
	}

	ctx := c.UserContext()
	if ctx == nil {
		ctx = context.Background()
	}

	response, err := h.service.Respond(ctx, request)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyMessage):
			return c.Status(fiber.StatusBadRequest).JSON(dto.AssistantError{Error: "Message is required"})
		default:
			h.logger.Error().Err(err).
				Str("correlation_id", middleware.GetCorrelationID(c)).
				Msg("assistant request failed")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.AssistantError{Error: err.Error()})
		}
	}

	return c.Status(fiber.StatusOK).JSON(response)
}
