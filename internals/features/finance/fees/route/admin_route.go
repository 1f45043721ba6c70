// file: internals/features/finance/fees/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/finance/fees/controller"
)

func FeeTemplateAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := &controller.FeeTemplateHandler{DB: db}

	grp := r.Group("/fee-templates")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Patch("/:id", h.Update)
}
