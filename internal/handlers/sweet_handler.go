package handlers

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sweetshop/sweet-shop-backend/internal/dto"
	"github.com/sweetshop/sweet-shop-backend/internal/middleware"
	"github.com/sweetshop/sweet-shop-backend/internal/services"
)

type SweetHandler struct {
	sweetService *services.SweetService
}

func NewSweetHandler(sweetService *services.SweetService) *SweetHandler {
	return &SweetHandler{sweetService: sweetService}
}

// Create handles POST /sweets (admin only).
func (h *SweetHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateSweetRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Category = strings.TrimSpace(req.Category)
	if req.Name == "" {
		return badRequest(c, "Name is required")
	}
	if req.Category == "" {
		return badRequest(c, "Category is required")
	}
	if req.Price < 0 {
		return badRequest(c, "Price must be a non-negative number")
	}
	if req.Quantity != nil && *req.Quantity < 0 {
		return badRequest(c, "Quantity must be a non-negative integer")
	}

	sweet, err := h.sweetService.Create(&req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(sweet)
}

// GetAll handles GET /sweets.
func (h *SweetHandler) GetAll(c *fiber.Ctx) error {
	sweets, err := h.sweetService.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(sweets)
}

// Search handles GET /sweets/search with optional name, category, minPrice
// and maxPrice query parameters.
func (h *SweetHandler) Search(c *fiber.Ctx) error {
	filters := dto.SearchFilters{
		Name:     c.Query("name"),
		Category: c.Query("category"),
	}

	if raw := c.Query("minPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return badRequest(c, "minPrice must be a number")
		}
		filters.MinPrice = &v
	}
	if raw := c.Query("maxPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return badRequest(c, "maxPrice must be a number")
		}
		filters.MaxPrice = &v
	}

	sweets, err := h.sweetService.Search(&filters)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(sweets)
}

// GetByID handles GET /sweets/:id.
func (h *SweetHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Invalid sweet ID")
	}

	sweet, err := h.sweetService.GetByID(id)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(sweet)
}

// Update handles PUT /sweets/:id with a partial field set.
func (h *SweetHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Invalid sweet ID")
	}

	var req dto.UpdateSweetRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return badRequest(c, "Name cannot be empty")
	}
	if req.Category != nil && strings.TrimSpace(*req.Category) == "" {
		return badRequest(c, "Category cannot be empty")
	}
	if req.Price != nil && *req.Price < 0 {
		return badRequest(c, "Price must be a non-negative number")
	}
	if req.Quantity != nil && *req.Quantity < 0 {
		return badRequest(c, "Quantity must be a non-negative integer")
	}

	sweet, err := h.sweetService.Update(id, &req)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(sweet)
}

// Delete handles DELETE /sweets/:id (admin only).
func (h *SweetHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Invalid sweet ID")
	}

	if err := h.sweetService.Delete(id); err != nil {
		return h.mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Purchase handles POST /sweets/:id/purchase.
func (h *SweetHandler) Purchase(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Invalid sweet ID")
	}

	quantity, ok := parseQuantity(c)
	if !ok {
		return badRequest(c, "Valid quantity is required")
	}

	sweet, err := h.sweetService.Purchase(id, quantity)
	if err != nil {
		return h.mapError(c, err)
	}

	if userID, err := middleware.UserID(c); err == nil {
		slog.Info("sweet purchased",
			"action", "purchase", "sweet_id", sweet.ID,
			"quantity", quantity, "user_id", userID)
	}
	return c.JSON(sweet)
}

// Restock handles POST /sweets/:id/restock (admin only).
func (h *SweetHandler) Restock(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "Invalid sweet ID")
	}

	quantity, ok := parseQuantity(c)
	if !ok {
		return badRequest(c, "Valid quantity is required")
	}

	sweet, err := h.sweetService.Restock(id, quantity)
	if err != nil {
		return h.mapError(c, err)
	}

	if userID, err := middleware.UserID(c); err == nil {
		slog.Info("sweet restocked",
			"action", "restock", "sweet_id", sweet.ID,
			"quantity", quantity, "user_id", userID)
	}
	return c.JSON(sweet)
}

func (h *SweetHandler) mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrSweetNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrInsufficientQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
}

func parseID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func parseQuantity(c *fiber.Ctx) (int, bool) {
	var req dto.StockRequest
	if err := c.BodyParser(&req); err != nil {
		return 0, false
	}
	if req.Quantity <= 0 {
		return 0, false
	}
	return req.Quantity, true
}
