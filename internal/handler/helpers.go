package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/profboard/profboard-go-api/internal/middleware"
)

func parseUintParam(c *fiber.Ctx, name string) (uint, error) {
	value := c.Params(name)
	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, errors.New("invalid identifier")
	}
	return uint(parsed), nil
}

func parseQueryInt(c *fiber.Ctx, key string) (int, error) {
	value := strings.TrimSpace(c.Query(key))
	if value == "" {
		return 0, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	return parsed, nil
}

// professorEmail resolves the scoping email for dashboard routes: the JWT claim
// when present, a query parameter otherwise (the frontend passes it explicitly
// while the auth migration is in flight).
func professorEmail(c *fiber.Ctx) string {
	if email := middleware.ProfessorEmailFromContext(c); email != "" {
		return email
	}
	return strings.ToLower(strings.TrimSpace(c.Query("professor_email")))
}

func isValidationError(err error) bool {
	var validationErrors validator.ValidationErrors
	return errors.As(err, &validationErrors)
}
