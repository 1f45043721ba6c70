// file: internals/features/school/students/controller/student_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/students/dto"
	"schoolku_backend/internals/features/school/students/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

// StudentHandler is the read-only directory surface the fee features and
// their UIs consume. Student lifecycle management lives elsewhere.
type StudentHandler struct {
	DB *gorm.DB
}

// -----------------------------------------
// List (GET /students?grade_id=)
// -----------------------------------------
func (h *StudentHandler) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.ResolveSchoolIDFromContext(c)
	if err != nil {
		return err
	}

	p := helper.ParseFiber(c, "name", "asc", helper.ExportOpts)

	q := h.DB.Model(&model.Student{}).
		Where("student_school_id = ? AND student_is_active = TRUE", schoolID)

	if v := c.Query("grade_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("student_grade_id = ?", id)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	order, _ := p.SafeOrderClause(map[string]string{
		"name":       "student_name",
		"created_at": "student_created_at",
	}, "name")

	var list []model.Student
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.ToStudentResponses(list), helper.BuildMeta(total, p))
}
