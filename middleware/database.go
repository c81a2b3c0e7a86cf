// middleware/database.go
package middleware

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RequireDatabase guards data routes when DATABASE_URL was never set:
// the service stays up but every data-dependent request is refused,
// instead of crashing at startup.
func RequireDatabase(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if db == nil {
			log.Printf("[DB] Rejecting %s %s: database not configured", c.Method(), c.Path())
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Database not configured",
			})
		}
		return c.Next()
	}
}
