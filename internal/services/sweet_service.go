package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sweetshop/sweet-shop-backend/internal/dto"
	"github.com/sweetshop/sweet-shop-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrSweetNotFound        = errors.New("sweet not found")
	ErrInsufficientQuantity = errors.New("insufficient quantity")
)

// SweetService owns the inventory state transitions. Every operation
// re-reads authoritative state from the store; nothing is held in memory
// between calls.
type SweetService struct {
	db *gorm.DB
}

func NewSweetService(db *gorm.DB) *SweetService {
	return &SweetService{db: db}
}

func (s *SweetService) Create(req *dto.CreateSweetRequest) (*models.Sweet, error) {
	quantity := 0
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	sweet := models.Sweet{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Quantity: quantity,
	}

	if err := s.db.Create(&sweet).Error; err != nil {
		return nil, fmt.Errorf("failed to create sweet: %w", err)
	}

	return &sweet, nil
}

// GetAll returns the catalog newest first.
func (s *SweetService) GetAll() ([]models.Sweet, error) {
	var sweets []models.Sweet
	if err := s.db.Order("created_at DESC").Find(&sweets).Error; err != nil {
		return nil, fmt.Errorf("failed to list sweets: %w", err)
	}
	return sweets, nil
}

func (s *SweetService) GetByID(id uint) (*models.Sweet, error) {
	var sweet models.Sweet
	if err := s.db.First(&sweet, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSweetNotFound
		}
		return nil, fmt.Errorf("failed to load sweet: %w", err)
	}
	return &sweet, nil
}

// Update applies only the fields present in the request. An empty patch is
// a plain read: no write, no updated_at refresh.
func (s *SweetService) Update(id uint, req *dto.UpdateSweetRequest) (*models.Sweet, error) {
	changes := map[string]interface{}{}
	if req.Name != nil {
		changes["name"] = *req.Name
	}
	if req.Category != nil {
		changes["category"] = *req.Category
	}
	if req.Price != nil {
		changes["price"] = *req.Price
	}
	if req.Quantity != nil {
		changes["quantity"] = *req.Quantity
	}

	if len(changes) == 0 {
		return s.GetByID(id)
	}

	result := s.db.Model(&models.Sweet{}).Where("id = ?", id).Updates(changes)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update sweet: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrSweetNotFound
	}

	return s.GetByID(id)
}

// Delete removes the row and reports not-found from the affected-row count
// rather than pre-checking existence.
func (s *SweetService) Delete(id uint) error {
	result := s.db.Delete(&models.Sweet{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete sweet: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSweetNotFound
	}
	return nil
}

// Purchase decrements stock with a single conditional update so concurrent
// purchases cannot oversell: the WHERE clause bounds the decrement by the
// current quantity and a zero-row result means the guard rejected it.
func (s *SweetService) Purchase(id uint, quantity int) (*models.Sweet, error) {
	result := s.db.Model(&models.Sweet{}).
		Where("id = ? AND quantity >= ?", id, quantity).
		Updates(map[string]interface{}{"quantity": gorm.Expr("quantity - ?", quantity)})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to purchase sweet: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		// Disambiguate: missing row vs not enough stock.
		if _, err := s.GetByID(id); err != nil {
			return nil, err
		}
		return nil, ErrInsufficientQuantity
	}

	return s.GetByID(id)
}

// Restock is a blind increment; it is commutative, so concurrent restocks
// need no guard.
func (s *SweetService) Restock(id uint, quantity int) (*models.Sweet, error) {
	result := s.db.Model(&models.Sweet{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"quantity": gorm.Expr("quantity + ?", quantity)})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to restock sweet: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrSweetNotFound
	}

	return s.GetByID(id)
}

// Search applies the optional filters with logical AND. Name and category
// are case-insensitive substring matches; the price bounds are inclusive.
// LOWER/LIKE keeps the query portable across postgres and sqlite.
func (s *SweetService) Search(filters *dto.SearchFilters) ([]models.Sweet, error) {
	query := s.db.Model(&models.Sweet{})

	if filters.Name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filters.Name)+"%")
	}
	if filters.Category != "" {
		query = query.Where("LOWER(category) LIKE ?", "%"+strings.ToLower(filters.Category)+"%")
	}
	if filters.MinPrice != nil {
		query = query.Where("price >= ?", *filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		query = query.Where("price <= ?", *filters.MaxPrice)
	}

	var sweets []models.Sweet
	if err := query.Order("created_at DESC").Find(&sweets).Error; err != nil {
		return nil, fmt.Errorf("failed to search sweets: %w", err)
	}
	return sweets, nil
}
