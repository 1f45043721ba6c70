// file: internals/features/finance/stats/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/finance/stats/controller"
)

func CollectionStatsAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := &controller.CollectionStatsHandler{DB: db}
	r.Get("/finance/stats", h.Get)
}
