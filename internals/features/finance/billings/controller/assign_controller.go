// file: internals/features/finance/billings/controller/assign_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	"schoolku_backend/internals/features/finance/billings/dto"
	"schoolku_backend/internals/features/finance/billings/service"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type AssignHandler struct {
	Service *service.AssignService
}

// =======================================================
// ASSIGN BY GRADE
// POST /student-fees/assign-by-grade
// Expands active templates × students in the grade into student fees.
// Safe to re-run: duplicates are skipped, never overwritten.
// =======================================================
func (h *AssignHandler) AssignByGrade(c *fiber.Ctx) error {
	schoolID, err := helperAuth.ResolveSchoolIDFromContext(c)
	if err != nil {
		return err
	}
	if err := helperAuth.EnsureStaffSchool(c, schoolID); err != nil {
		return err
	}

	var in dto.AssignByGradeDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fieldErrs := helper.ValidateStruct(in); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}
	due, ok := dto.ParseDueDate(in.DueDate)
	if !ok {
		return helper.JsonValidationError(c, map[string][]string{
			"due_date": {"must be an ISO date (YYYY-MM-DD)"},
		})
	}

	result, err := h.Service.AssignByGrade(service.AssignByGradeInput{
		SchoolID:     schoolID,
		GradeID:      in.GradeID,
		DueDate:      due,
		AcademicYear: in.AcademicYear,
		Term:         in.Term,
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "student fees assigned", result)
}
