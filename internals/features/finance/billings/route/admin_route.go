// file: internals/features/finance/billings/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/finance/billings/controller"
	"schoolku_backend/internals/features/finance/billings/service"
)

// StudentFeeAdminRoutes mounts the obligation ledger + bulk assignment
// surface under the admin group.
func StudentFeeAdminRoutes(r fiber.Router, db *gorm.DB) {
	fees := &controller.StudentFeeHandler{DB: db}
	assign := &controller.AssignHandler{Service: &service.AssignService{DB: db}}

	grp := r.Group("/student-fees")
	grp.Get("/", fees.List)
	grp.Post("/", fees.Create)
	grp.Put("/:id", fees.Update)
	grp.Delete("/:id", fees.Delete)
	grp.Post("/assign-by-grade", assign.AssignByGrade)
}
