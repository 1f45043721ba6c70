// file: internals/features/finance/payments/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/finance/payments/controller"
	"schoolku_backend/internals/features/finance/payments/service"
)

func PaymentAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := &controller.PaymentHandler{
		DB:      db,
		Service: &service.PaymentService{DB: db},
	}

	grp := r.Group("/payments")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
}
