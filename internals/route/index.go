// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	billingRoute "schoolku_backend/internals/features/finance/billings/route"
	feeRoute "schoolku_backend/internals/features/finance/fees/route"
	paymentRoute "schoolku_backend/internals/features/finance/payments/route"
	statsRoute "schoolku_backend/internals/features/finance/stats/route"
	studentRoute "schoolku_backend/internals/features/school/students/route"

	"schoolku_backend/internals/configs"
	authmw "schoolku_backend/internals/middlewares/auth_school"
)

// SetupRoutes mounts the admin API. Everything under /api/a requires a
// verified token; tenant scoping is then derived per request from the
// token, never from query params.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	admin := api.Group("/a", authmw.AuthJWT(authmw.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	}))

	studentRoute.StudentAdminRoutes(admin, db)
	feeRoute.FeeTemplateAdminRoutes(admin, db)
	billingRoute.StudentFeeAdminRoutes(admin, db)
	paymentRoute.PaymentAdminRoutes(admin, db)
	statsRoute.CollectionStatsAdminRoutes(admin, db)
}
