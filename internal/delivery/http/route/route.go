package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/quivia/quivia-be/internal/delivery/http/handler"
	"github.com/quivia/quivia-be/internal/delivery/http/middleware"
	"gorm.io/gorm"
)

type RouteConfig struct {
	Api         *fiber.App
	Middleware  *middleware.Middleware
	DB          *gorm.DB
	QuizHandler handler.QuizHandler
}

func Setup(c *RouteConfig) {
	c.Api.Use(recover.New())
	c.Api.Use(logger.New(logger.Config{
		Format: "[${ip}]:${port} ${status} - ${method} ${path}\n",
	}))
	c.Api.Use(c.Middleware.CorsMiddleware())

	c.Api.Get("/health", healthCheck(c.DB))

	SetupQuizRoute(c.Api, c.QuizHandler, c.Middleware)
}

func healthCheck(db *gorm.DB) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if db != nil {
			sqlDB, err := db.DB()
			if err == nil {
				err = sqlDB.PingContext(ctx.UserContext())
			}
			if err != nil {
				return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
					"status":   "degraded",
					"database": "unreachable",
				})
			}
		}
		return ctx.JSON(fiber.Map{
			"status":   "healthy",
			"database": "connected",
		})
	}
}
