package middleware

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// UserContextMiddleware attaches the session's current-user identity to the
// request context. The whole state belongs to a single logical session, so
// unlike a multi-tenant gateway there is nothing to authenticate — handlers
// just need to know who the acting user is.
func UserContextMiddleware(currentUserID string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("user_id", currentUserID)
		log.Printf("👤 [USER_CTX] UserID=%s | %s %s", currentUserID, c.Method(), c.Path())
		return c.Next()
	}
}
