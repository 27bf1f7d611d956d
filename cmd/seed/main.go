package main

import (
	"log/slog"
	"os"

	"github.com/sweetshop/sweet-shop-backend/internal/config"
	"github.com/sweetshop/sweet-shop-backend/internal/database"
	"github.com/sweetshop/sweet-shop-backend/internal/logging"
	"github.com/sweetshop/sweet-shop-backend/internal/models"
)

var catalog = []models.Sweet{
	{Name: "Gulaab Jamun", Category: "Traditional", Price: 50.00, Quantity: 100},
	{Name: "Kaju Katli", Category: "Premium", Price: 800.00, Quantity: 50},
	{Name: "Rasgulla", Category: "Traditional", Price: 40.00, Quantity: 80},
	{Name: "Mysore Pak", Category: "Regional", Price: 400.00, Quantity: 60},
	{Name: "Jalebi", Category: "Traditional", Price: 200.00, Quantity: 40},
	{Name: "Barfi", Category: "Milk Sweets", Price: 350.00, Quantity: 70},
}

// Replaces the sweets table with the demo catalog.
func main() {
	logging.Setup()

	cfg := config.Load()
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	if err := database.DB.Where("1 = 1").Delete(&models.Sweet{}).Error; err != nil {
		slog.Error("failed to clear sweets", "error", err)
		os.Exit(1)
	}
	slog.Info("cleared existing sweets")

	for i := range catalog {
		if err := database.DB.Create(&catalog[i]).Error; err != nil {
			slog.Error("failed to seed sweet", "name", catalog[i].Name, "error", err)
			os.Exit(1)
		}
		slog.Info("seeded sweet", "name", catalog[i].Name)
	}

	slog.Info("seeding completed", "count", len(catalog))
}
