package middleware

import (
	"log"
	"strings"

	"house-competition-system/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired validates the Bearer token and attaches the user
// identity to the request context for downstream handlers.
func AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "authorization token missing",
			})
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader {
			// no "Bearer " prefix — try the raw header value
			token = authHeader
		}

		claims, err := utils.ParseToken(token)
		if err != nil {
			log.Printf("🚫 [AUTH] Rejected token for %s: %v", c.Path(), err)
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "invalid or expired token",
			})
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("user_email", claims.Email)
		return c.Next()
	}
}
