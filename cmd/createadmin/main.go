package main

import (
	"log/slog"
	"os"

	"github.com/sweetshop/sweet-shop-backend/internal/config"
	"github.com/sweetshop/sweet-shop-backend/internal/database"
	"github.com/sweetshop/sweet-shop-backend/internal/logging"
	"github.com/sweetshop/sweet-shop-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Creates an admin user. Usage: createadmin [email] [password] [name]
func main() {
	logging.Setup()

	email := "admin@example.com"
	password := "admin123"
	name := "Admin User"
	if len(os.Args) > 1 {
		email = os.Args[1]
	}
	if len(os.Args) > 2 {
		password = os.Args[2]
	}
	if len(os.Args) > 3 {
		name = os.Args[3]
	}

	cfg := config.Load()
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	var existing models.User
	if err := database.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		slog.Info("admin user already exists with this email", "email", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		os.Exit(1)
	}

	admin := models.User{
		Email:    email,
		Password: string(hash),
		Name:     name,
		Role:     models.RoleAdmin,
	}
	if err := database.DB.Create(&admin).Error; err != nil {
		slog.Error("failed to create admin user", "error", err)
		os.Exit(1)
	}

	slog.Info("admin user created", "id", admin.ID, "email", admin.Email, "role", admin.Role)
}
