package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// LocalsOrganizerID is where the auth middleware stores the verified
// subject claim for downstream handlers.
const LocalsOrganizerID = "organizerID"

// RequireRole verifies the Bearer access token and rejects callers whose
// role claim does not match.
func (h *AuthHandler) RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":   "Unauthorized",
				"message": "missing bearer token",
			})
		}

		claims, err := h.tokenService.Verify(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":   "Unauthorized",
				"message": "invalid or expired token",
			})
		}

		if claims.Role != role {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error":   "Forbidden",
				"message": "insufficient role",
			})
		}

		c.Locals(LocalsOrganizerID, claims.Subject)

		return c.Next()
	}
}
