package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/profboard/profboard-go-api/internal/utils"
)

// JWTProtected returns a middleware that validates JWT bearer tokens issued by the
// external auth service. Token issuance is not our concern; we only verify and
// extract the professor's email for scoping.
func JWTProtected(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authorization := c.Get("Authorization")
		if authorization == "" {
			return utils.SendError(c, fiber.StatusUnauthorized, "authorization header missing")
		}

		const bearer = "Bearer "
		if !strings.HasPrefix(strings.ToLower(authorization), strings.ToLower(bearer)) {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid authorization header")
		}

		tokenString := strings.TrimSpace(authorization[len(bearer):])
		if tokenString == "" {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid token")
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid token claims")
		}

		if email := extractEmailFromClaims(claims); email != "" {
			c.Locals("professor_email", email)
		}

		return c.Next()
	}
}

func extractEmailFromClaims(claims jwt.MapClaims) string {
	keys := []string{"email", "sub"}
	for _, key := range keys {
		if value, ok := claims[key]; ok {
			if email, ok := value.(string); ok && strings.Contains(email, "@") {
				return strings.ToLower(strings.TrimSpace(email))
			}
		}
	}

	return ""
}

// ProfessorEmailFromContext returns the authenticated professor's email, if any.
func ProfessorEmailFromContext(c *fiber.Ctx) string {
	if v := c.Locals("professor_email"); v != nil {
		if email, ok := v.(string); ok {
			return email
		}
	}
	return ""
}
