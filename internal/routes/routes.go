package routes

import (
	"time"

	"github.com/alumconnect/directory-backend/internal/config"
	"github.com/alumconnect/directory-backend/internal/handlers"
	"github.com/alumconnect/directory-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	directoryHandler *handlers.DirectoryHandler,
	statsHandler *handlers.StatsHandler,
	profileHandler *handlers.ProfileHandler,
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

	// Directory + stats (public reads)
	api.Get("/directory", directoryHandler.List)
	api.Get("/directory/options", statsHandler.FilterOptions)
	api.Get("/stats", statsHandler.Directory)

	// Profile reads are public, writes require a JWT plus self-or-admin
	api.Get("/profiles/:id", profileHandler.Get)

	authed := middleware.JWTProtected(cfg)
	selfOrAdmin := middleware.SelfOrAdmin(db, cfg)
	api.Put("/profiles/:id/basic", authed, selfOrAdmin, profileHandler.UpdateBasic)
	api.Put("/profiles/:id/:collection", authed, selfOrAdmin, profileHandler.ReplaceCollection)
	api.Put("/profiles/:id", authed, selfOrAdmin, profileHandler.ReplaceComplete)
}
