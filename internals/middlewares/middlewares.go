package middlewares

import (
	"github.com/gofiber/fiber/v2"

	mwlogger "schoolku_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the global middleware chain. Order matters:
// recovery first so panics in later handlers still produce a response.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(RateLimiterMiddleware())
	app.Use(mwlogger.RequestLogger())
}
