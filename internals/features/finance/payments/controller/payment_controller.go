// file: internals/features/finance/payments/controller/payment_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/finance/payments/dto"
	"schoolku_backend/internals/features/finance/payments/model"
	"schoolku_backend/internals/features/finance/payments/service"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type PaymentHandler struct {
	DB      *gorm.DB
	Service *service.PaymentService
}

var paymentSortable = map[string]string{
	"created_at": "payment_created_at",
	"date":       "payment_date",
	"amount":     "payment_amount",
	"method":     "payment_method",
}

// -----------------------------------------
// List (GET /payments)
// Query filters (optional): student_id, method, date_from, date_to
// -----------------------------------------
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.ResolveSchoolIDFromContext(c)
	if err != nil {
		return err
	}

	p := helper.ParseFiber(c, "date", "desc", helper.DefaultOpts)

	q := h.DB.Model(&model.Payment{}).
		Where("payment_school_id = ?", schoolID)

	if v := c.Query("student_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("payment_student_id = ?", id)
		}
	}
	if v := c.Query("method"); v != "" {
		q = q.Where("payment_method = ?", strings.ToLower(v))
	}
	if v := c.Query("date_from"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			q = q.Where("payment_date >= ?", t)
		}
	}
	if v := c.Query("date_to"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			q = q.Where("payment_date <= ?", t)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	order, _ := p.SafeOrderClause(paymentSortable, "date")

	var list []model.Payment
	if err := q.Preload("PaymentAllocations").
		Order(order).Limit(p.Limit()).Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.ToPaymentResponses(list), helper.BuildMeta(total, p))
}

// -----------------------------------------
// Create (POST /payments) — record a receipt, optionally with an
// allocation breakdown. Invalid breakdowns reject before any write.
// -----------------------------------------
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.ResolveSchoolIDFromContext(c)
	if err != nil {
		return err
	}
	if err := helperAuth.EnsureStaffSchool(c, schoolID); err != nil {
		return err
	}

	in, ok := h.parseAndValidate(c)
	if !ok {
		return nil
	}

	payment, err := h.Service.RecordPayment(service.RecordPaymentInput{
		SchoolID:    schoolID,
		StudentID:   in.PaymentStudentID,
		Amount:      in.PaymentAmount,
		Date:        paymentDateOrNow(in.PaymentDate),
		Method:      in.PaymentMethod,
		Reference:   in.PaymentReference,
		Note:        in.PaymentNote,
		Meta:        in.PaymentMeta,
		Allocations: in.PaymentAllocations,
	})
	if err != nil {
		return mapServiceError(c, err)
	}
	return helper.JsonCreated(c, "payment recorded", dto.ToPaymentResponse(payment))
}

// -----------------------------------------
// Update (PUT /payments/:id) — administrative correction. The original
// allocations are reversed and the new breakdown applied in one
// transaction, so the ledger never reflects a stale breakdown.
// -----------------------------------------
func (h *PaymentHandler) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.ResolveSchoolIDFromContext(c)
	if err != nil {
		return err
	}
	if err := helperAuth.EnsureStaffSchool(c, schoolID); err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	in, ok := h.parseAndValidate(c)
	if !ok {
		return nil
	}

	payment, err := h.Service.UpdatePayment(schoolID, id, service.RecordPaymentInput{
		SchoolID:    schoolID,
		StudentID:   in.PaymentStudentID,
		Amount:      in.PaymentAmount,
		Date:        paymentDateOrNow(in.PaymentDate),
		Method:      in.PaymentMethod,
		Reference:   in.PaymentReference,
		Note:        in.PaymentNote,
		Meta:        in.PaymentMeta,
		Allocations: in.PaymentAllocations,
	})
	if err != nil {
		return mapServiceError(c, err)
	}
	return helper.JsonUpdated(c, "payment updated", dto.ToPaymentResponse(payment))
}

// -----------------------------------------
// Delete (DELETE /payments/:id) — reverses allocations first.
// -----------------------------------------
func (h *PaymentHandler) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.ResolveSchoolIDFromContext(c)
	if err != nil {
		return err
	}
	if err := helperAuth.EnsureStaffSchool(c, schoolID); err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	if err := h.Service.DeletePayment(schoolID, id); err != nil {
		return mapServiceError(c, err)
	}
	return helper.JsonDeleted(c, "payment deleted", fiber.Map{"payment_id": id})
}

// parseAndValidate reads the body and runs every check that does not need
// the database: struct tags, amount positivity, allocation sum cap. On
// failure the error response has already been written.
func (h *PaymentHandler) parseAndValidate(c *fiber.Ctx) (dto.PaymentCreateDTO, bool) {
	var in dto.PaymentCreateDTO
	if err := c.BodyParser(&in); err != nil {
		_ = helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
		return in, false
	}
	if fieldErrs := helper.ValidateStruct(in); fieldErrs != nil {
		_ = helper.JsonValidationError(c, fieldErrs)
		return in, false
	}
	if !in.PaymentAmount.IsPositive() {
		_ = helper.JsonValidationError(c, map[string][]string{
			"payment_amount": {"must be greater than 0"},
		})
		return in, false
	}
	if err := dto.ValidateAllocations(in.PaymentAmount, in.PaymentAllocations); err != nil {
		_ = helper.JsonValidationError(c, map[string][]string{
			"payment_allocations": {err.Error()},
		})
		return in, false
	}
	return in, true
}

func paymentDateOrNow(t *time.Time) time.Time {
	if t != nil {
		return *t
	}
	return time.Now()
}

func mapServiceError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
}
