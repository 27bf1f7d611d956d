package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sweetshop/sweet-shop-backend/internal/database"
	"github.com/sweetshop/sweet-shop-backend/internal/dto"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "ok"
	if err := database.Ping(); err != nil {
		dbStatus = "unhealthy: " + err.Error()
	}

	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
		DB:        dbStatus,
	})
}
