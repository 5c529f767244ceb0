package middleware

import (
	"log"

	"house-competition-system/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminRequired gates a route to users holding the admin role.
// Must run after AuthRequired (relies on user_id in locals).
func AdminRequired(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "authentication required",
			})
		}

		var count int64
		if err := db.Model(&models.UserRole{}).
			Where("user_id = ? AND role = ?", userID, "admin").
			Count(&count).Error; err != nil {
			log.Printf("❌ [ADMIN] Role lookup failed for user %s: %v", userID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "role lookup failed",
			})
		}
		if count == 0 {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "admin access required",
			})
		}
		return c.Next()
	}
}
