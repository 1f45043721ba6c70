// file: internals/features/finance/billings/controller/student_fee_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schoolku_backend/internals/features/finance/billings/dto"
	"schoolku_backend/internals/features/finance/billings/model"
	"schoolku_backend/internals/features/finance/billings/service"
	feemodel "schoolku_backend/internals/features/finance/fees/model"
	paymodel "schoolku_backend/internals/features/finance/payments/model"
	studentmodel "schoolku_backend/internals/features/school/students/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type StudentFeeHandler struct {
	DB *gorm.DB
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(name))
}

// studentFeeEditableColumns is everything an administrator correction may
// write. student_fee_paid_to_date is deliberately absent: only the payment
// path moves it, through its guarded atomic increment, so an admin edit can
// never write back a stale balance it read before a concurrent payment.
var studentFeeEditableColumns = []string{
	"student_fee_amount_owed",
	"student_fee_due_date",
	"student_fee_status",
	"student_fee_academic_year",
	"student_fee_term",
	"student_fee_note",
	"student_fee_updated_at",
}

var studentFeeSortable = map[string]string{
	"created_at": "student_fee_created_at",
	"updated_at": "student_fee_updated_at",
	"due_date":   "student_fee_due_date",
	"amount":     "student_fee_amount_owed",
	"status":     "student_fee_status",
}

// -----------------------------------------
// List (GET /student-fees)
// Query filters (optional):
// - student_id, fee_template_id, status
// - academic_year, term
// - due_from, due_to (ISO dates)
// - sort_by (created_at|updated_at|due_date|amount|status), order, page, per_page
// -----------------------------------------
func (h *StudentFeeHandler) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.ResolveSchoolIDFromContext(c)
	if err != nil {
		return err
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := h.DB.Model(&model.StudentFee{}).
		Where("student_fee_school_id = ?", schoolID)

	if v := c.Query("student_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("student_fee_student_id = ?", id)
		}
	}
	if v := c.Query("fee_template_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("student_fee_fee_template_id = ?", id)
		}
	}
	if v := c.Query("status"); v != "" {
		q = q.Where("student_fee_status = ?", strings.ToLower(v))
	}
	if v := c.Query("academic_year"); v != "" {
		q = q.Where("student_fee_academic_year = ?", v)
	}
	if v := c.Query("term"); v != "" {
		q = q.Where("student_fee_term = ?", v)
	}
	if v := c.Query("due_from"); v != "" {
		if t, ok := dto.ParseDueDate(v); ok {
			q = q.Where("student_fee_due_date >= ?", t)
		}
	}
	if v := c.Query("due_to"); v != "" {
		if t, ok := dto.ParseDueDate(v); ok {
			q = q.Where("student_fee_due_date <= ?", t)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	order, _ := p.SafeOrderClause(studentFeeSortable, "created_at")

	var list []model.StudentFee
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.ToStudentFeeResponses(list), helper.BuildMeta(total, p))
}

// -----------------------------------------
// Create (POST /student-fees) — direct one-off assignment
// -----------------------------------------
func (h *StudentFeeHandler) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.ResolveSchoolIDFromContext(c)
	if err != nil {
		return err
	}
	if err := helperAuth.EnsureStaffSchool(c, schoolID); err != nil {
		return err
	}

	var in dto.StudentFeeCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fieldErrs := helper.ValidateStruct(in); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}
	if !in.StudentFeeAmountOwed.IsPositive() {
		return helper.JsonValidationError(c, map[string][]string{
			"student_fee_amount_owed": {"must be greater than 0"},
		})
	}
	due, ok := dto.ParseDueDate(in.StudentFeeDueDate)
	if !ok {
		return helper.JsonValidationError(c, map[string][]string{
			"student_fee_due_date": {"must be an ISO date (YYYY-MM-DD)"},
		})
	}

	// reference checks, tenant-scoped
	var student studentmodel.Student
	if err := h.DB.First(&student,
		"student_id = ? AND student_school_id = ?", in.StudentFeeStudentID, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	var tpl feemodel.FeeTemplate
	if err := h.DB.First(&tpl,
		"fee_template_id = ? AND fee_template_school_id = ?", in.StudentFeeFeeTemplateID, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "fee template not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	m := model.StudentFee{
		StudentFeeSchoolID:      schoolID,
		StudentFeeStudentID:     in.StudentFeeStudentID,
		StudentFeeFeeTemplateID: in.StudentFeeFeeTemplateID,
		StudentFeeAmountOwed:    in.StudentFeeAmountOwed,
		StudentFeeDueDate:       datatypes.Date(due),
		StudentFeeAcademicYear:  strings.TrimSpace(in.StudentFeeAcademicYear),
		StudentFeeTerm:          strings.TrimSpace(in.StudentFeeTerm),
		StudentFeeNote:          in.StudentFeeNote,
	}
	service.Reconcile(&m, time.Now())

	if err := h.DB.Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			// single creation surfaces the duplicate, unlike bulk which skips
			return helper.JsonError(c, fiber.StatusConflict, "student fee already assigned for this template and period")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "student fee created", dto.ToStudentFeeResponse(m))
}

// -----------------------------------------
// Update (PUT /student-fees/:id) — administrator correction
// -----------------------------------------
func (h *StudentFeeHandler) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.ResolveSchoolIDFromContext(c)
	if err != nil {
		return err
	}
	if err := helperAuth.EnsureStaffSchool(c, schoolID); err != nil {
		return err
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var in dto.StudentFeeUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}

	// Lock the row for the whole edit: the amount-vs-paid check and the
	// status derivation must see a balance no concurrent allocation can
	// move underneath them.
	var m model.StudentFee
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&m,
			"student_fee_id = ? AND student_fee_school_id = ?", id, schoolID).Error; err != nil {
			return err
		}

		inputsChanged, err := dto.ApplyStudentFeeUpdate(&m, in)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if inputsChanged {
			// status can never be pinned against its own inputs
			service.Reconcile(&m, time.Now())
		}

		return tx.Model(&m).Select(studentFeeEditableColumns).Updates(&m).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student fee not found")
		}
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "student fee updated", dto.ToStudentFeeResponse(m))
}

// -----------------------------------------
// Delete (DELETE /student-fees/:id) — hard delete; allocation rows
// referencing the fee go with it so no dangling joins remain.
// -----------------------------------------
func (h *StudentFeeHandler) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.ResolveSchoolIDFromContext(c)
	if err != nil {
		return err
	}
	if err := helperAuth.EnsureStaffSchool(c, schoolID); err != nil {
		return err
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m model.StudentFee
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m,
			"student_fee_id = ? AND student_fee_school_id = ?", id, schoolID).Error; err != nil {
			return err
		}
		if err := tx.Where("payment_allocation_student_fee_id = ?", id).
			Delete(&paymodel.PaymentAllocation{}).Error; err != nil {
			return err
		}
		return tx.Delete(&m).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student fee not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "student fee deleted", fiber.Map{"student_fee_id": id})
}
