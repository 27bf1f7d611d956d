package middleware

import (
	"strconv"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sweetshop/sweet-shop-backend/internal/config"
	"github.com/sweetshop/sweet-shop-backend/internal/dto"
)

// JWTProtected guards a route with bearer-token authentication.
// A missing Authorization header is 401; a present but invalid or expired
// token is 403, so the two cases stay distinguishable to the client.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if c.Get(fiber.HeaderAuthorization) == "" {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
					Error: true, Message: "Access token required",
				})
			}
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid or expired token",
			})
		},
	})
}

// Claims returns the verified claim set attached by JWTProtected.
func Claims(c *fiber.Ctx) (jwt.MapClaims, bool) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return nil, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	return claims, ok
}

// UserID extracts the numeric subject id from the request's claims.
func UserID(c *fiber.Ctx) (uint, error) {
	claims, ok := Claims(c)
	if !ok {
		return 0, fiber.ErrUnauthorized
	}
	sub, _ := claims["sub"].(string)
	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return 0, fiber.ErrUnauthorized
	}
	return uint(id), nil
}
