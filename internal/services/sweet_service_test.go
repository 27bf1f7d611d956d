package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sweetshop/sweet-shop-backend/internal/dto"
	"github.com/sweetshop/sweet-shop-backend/internal/models"
)

func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }
func floatPtr(v float64) *float64 { return &v }

func createSweet(t *testing.T, svc *SweetService, name, category string, price float64, quantity int) *models.Sweet {
	t.Helper()
	sweet, err := svc.Create(&dto.CreateSweetRequest{
		Name: name, Category: category, Price: price, Quantity: intPtr(quantity),
	})
	require.NoError(t, err)
	return sweet
}

func TestCreateAndGetByID(t *testing.T) {
	svc := NewSweetService(newTestDB(t))

	created := createSweet(t, svc, "Chocolate Bar", "Chocolate", 50, 100)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Chocolate Bar", got.Name)
	assert.Equal(t, "Chocolate", got.Category)
	assert.Equal(t, 50.0, got.Price)
	assert.Equal(t, 100, got.Quantity)
}

func TestCreateDefaultsQuantityToZero(t *testing.T) {
	svc := NewSweetService(newTestDB(t))

	sweet, err := svc.Create(&dto.CreateSweetRequest{
		Name: "Lollipop", Category: "Candy", Price: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, sweet.Quantity)
}

func TestGetByIDNotFound(t *testing.T) {
	svc := NewSweetService(newTestDB(t))

	_, err := svc.GetByID(999)
	require.ErrorIs(t, err, ErrSweetNotFound)
}

func TestGetAllNewestFirst(t *testing.T) {
	svc := NewSweetService(newTestDB(t))

	createSweet(t, svc, "First", "A", 10, 1)
	time.Sleep(5 * time.Millisecond)
	createSweet(t, svc, "Second", "B", 20, 2)
	time.Sleep(5 * time.Millisecond)
	createSweet(t, svc, "Third", "C", 30, 3)

	sweets, err := svc.GetAll()
	require.NoError(t, err)
	require.Len(t, sweets, 3)
	assert.Equal(t, "Third", sweets[0].Name)
	assert.Equal(t, "Second", sweets[1].Name)
	assert.Equal(t, "First", sweets[2].Name)
}

func TestUpdatePartialFields(t *testing.T) {
	svc := NewSweetService(newTestDB(t))
	sweet := createSweet(t, svc, "Barfi", "Milk Sweets", 350, 70)

	time.Sleep(5 * time.Millisecond)
	updated, err := svc.Update(sweet.ID, &dto.UpdateSweetRequest{
		Price: floatPtr(375),
	})
	require.NoError(t, err)

	// Only the supplied field changed; the rest kept their prior values.
	assert.Equal(t, 375.0, updated.Price)
	assert.Equal(t, "Barfi", updated.Name)
	assert.Equal(t, "Milk Sweets", updated.Category)
	assert.Equal(t, 70, updated.Quantity)
	assert.True(t, updated.UpdatedAt.After(sweet.UpdatedAt))
}

func TestUpdateEmptyPatchIsNoOp(t *testing.T) {
	svc := NewSweetService(newTestDB(t))
	sweet := createSweet(t, svc, "Jalebi", "Traditional", 200, 40)

	before, err := svc.GetByID(sweet.ID)
	require.NoError(t, err)

	updated, err := svc.Update(sweet.ID, &dto.UpdateSweetRequest{})
	require.NoError(t, err)

	assert.Equal(t, before.Name, updated.Name)
	assert.Equal(t, before.Price, updated.Price)
	assert.Equal(t, before.Quantity, updated.Quantity)
	assert.True(t, updated.UpdatedAt.Equal(before.UpdatedAt))
}

func TestUpdateNotFound(t *testing.T) {
	svc := NewSweetService(newTestDB(t))

	_, err := svc.Update(12345, &dto.UpdateSweetRequest{Name: strPtr("Ghost")})
	require.ErrorIs(t, err, ErrSweetNotFound)
}

func TestDelete(t *testing.T) {
	svc := NewSweetService(newTestDB(t))
	sweet := createSweet(t, svc, "Rasgulla", "Traditional", 40, 80)

	require.NoError(t, svc.Delete(sweet.ID))

	_, err := svc.GetByID(sweet.ID)
	require.ErrorIs(t, err, ErrSweetNotFound)

	// Second delete reports not-found from the affected-row count.
	require.ErrorIs(t, svc.Delete(sweet.ID), ErrSweetNotFound)
}

func TestPurchaseAndRestockScenario(t *testing.T) {
	svc := NewSweetService(newTestDB(t))
	sweet := createSweet(t, svc, "Ladoo", "Traditional", 50, 10)

	got, err := svc.Purchase(sweet.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Quantity)

	_, err = svc.Purchase(sweet.ID, 8)
	require.ErrorIs(t, err, ErrInsufficientQuantity)

	// The failed purchase left the stock untouched.
	got, err = svc.GetByID(sweet.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Quantity)

	got, err = svc.Restock(sweet.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 12, got.Quantity)
}

func TestPurchaseExactStock(t *testing.T) {
	svc := NewSweetService(newTestDB(t))
	sweet := createSweet(t, svc, "Kaju Katli", "Premium", 800, 5)

	got, err := svc.Purchase(sweet.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Quantity)

	_, err = svc.Purchase(sweet.ID, 1)
	require.ErrorIs(t, err, ErrInsufficientQuantity)
}

func TestPurchaseNotFound(t *testing.T) {
	svc := NewSweetService(newTestDB(t))

	_, err := svc.Purchase(4242, 1)
	require.ErrorIs(t, err, ErrSweetNotFound)
}

func TestPurchaseRefreshesUpdatedAt(t *testing.T) {
	svc := NewSweetService(newTestDB(t))
	sweet := createSweet(t, svc, "Mysore Pak", "Regional", 400, 60)

	time.Sleep(5 * time.Millisecond)
	got, err := svc.Purchase(sweet.ID, 1)
	require.NoError(t, err)
	assert.True(t, got.UpdatedAt.After(sweet.UpdatedAt))
}

func TestRestockNotFound(t *testing.T) {
	svc := NewSweetService(newTestDB(t))

	_, err := svc.Restock(4242, 5)
	require.ErrorIs(t, err, ErrSweetNotFound)
}

func TestSearch(t *testing.T) {
	svc := NewSweetService(newTestDB(t))

	createSweet(t, svc, "Gulaab Jamun", "Traditional", 50, 100)
	createSweet(t, svc, "Kaju Katli", "Premium", 800, 50)
	createSweet(t, svc, "Rasgulla", "Traditional", 40, 80)
	createSweet(t, svc, "Jalebi", "Traditional", 100, 40)

	t.Run("name substring is case-insensitive", func(t *testing.T) {
		sweets, err := svc.Search(&dto.SearchFilters{Name: "KATLI"})
		require.NoError(t, err)
		require.Len(t, sweets, 1)
		assert.Equal(t, "Kaju Katli", sweets[0].Name)
	})

	t.Run("category filter", func(t *testing.T) {
		sweets, err := svc.Search(&dto.SearchFilters{Category: "traditional"})
		require.NoError(t, err)
		assert.Len(t, sweets, 3)
	})

	t.Run("price bounds are inclusive", func(t *testing.T) {
		sweets, err := svc.Search(&dto.SearchFilters{
			MinPrice: floatPtr(100), MaxPrice: floatPtr(100),
		})
		require.NoError(t, err)
		require.Len(t, sweets, 1)
		assert.Equal(t, "Jalebi", sweets[0].Name)
	})

	t.Run("filters compose with AND", func(t *testing.T) {
		sweets, err := svc.Search(&dto.SearchFilters{
			Category: "Traditional", MinPrice: floatPtr(45),
		})
		require.NoError(t, err)
		assert.Len(t, sweets, 2)
	})

	t.Run("empty filter set returns everything", func(t *testing.T) {
		sweets, err := svc.Search(&dto.SearchFilters{})
		require.NoError(t, err)
		assert.Len(t, sweets, 4)
	})
}

func TestQuantityNeverNegative(t *testing.T) {
	svc := NewSweetService(newTestDB(t))
	sweet := createSweet(t, svc, "Soan Papdi", "Flaky", 120, 2)

	for i := 0; i < 5; i++ {
		if _, err := svc.Purchase(sweet.ID, 1); err != nil {
			require.ErrorIs(t, err, ErrInsufficientQuantity)
		}
		got, err := svc.GetByID(sweet.ID)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got.Quantity, 0)
	}
}
