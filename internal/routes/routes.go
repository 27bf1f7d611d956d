package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/sweetshop/sweet-shop-backend/internal/config"
	"github.com/sweetshop/sweet-shop-backend/internal/handlers"
	"github.com/sweetshop/sweet-shop-backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	sweetHandler *handlers.SweetHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// Sweets — bearer token required throughout; create, delete and restock
	// additionally require the admin role.
	sweets := api.Group("/sweets", middleware.JWTProtected(cfg))
	sweets.Get("/", sweetHandler.GetAll)
	sweets.Get("/search", sweetHandler.Search)
	sweets.Post("/", middleware.AdminRequired(), sweetHandler.Create)
	sweets.Get("/:id", sweetHandler.GetByID)
	sweets.Put("/:id", sweetHandler.Update)
	sweets.Delete("/:id", middleware.AdminRequired(), sweetHandler.Delete)
	sweets.Post("/:id/purchase", sweetHandler.Purchase)
	sweets.Post("/:id/restock", middleware.AdminRequired(), sweetHandler.Restock)
}
