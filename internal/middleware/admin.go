package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sweetshop/sweet-shop-backend/internal/dto"
	"github.com/sweetshop/sweet-shop-backend/internal/models"
)

// AdminRequired allows the request through only when the verified token
// carries the admin role. Must be mounted after JWTProtected.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := Claims(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Access token required",
			})
		}

		role, _ := claims["role"].(string)
		if role != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Admin access required",
			})
		}

		return c.Next()
	}
}
