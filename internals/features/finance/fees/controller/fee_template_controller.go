// file: internals/features/finance/fees/controller/fee_template_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/finance/fees/dto"
	"schoolku_backend/internals/features/finance/fees/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type FeeTemplateHandler struct {
	DB *gorm.DB
}

var feeTemplateSortable = map[string]string{
	"created_at": "fee_template_created_at",
	"updated_at": "fee_template_updated_at",
	"name":       "fee_template_name",
	"amount":     "fee_template_amount",
}

// -----------------------------------------
// List (GET /fee-templates)
// Query filters (optional): is_active=true|false, grade_id, frequency, q
// -----------------------------------------
func (h *FeeTemplateHandler) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.ResolveSchoolIDFromContext(c)
	if err != nil {
		return err
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := h.DB.Model(&model.FeeTemplate{}).
		Where("fee_template_school_id = ?", schoolID)

	if v := c.Query("is_active"); v != "" {
		if strings.EqualFold(v, "true") {
			q = q.Where("fee_template_is_active = TRUE")
		} else if strings.EqualFold(v, "false") {
			q = q.Where("fee_template_is_active = FALSE")
		}
	}
	if v := c.Query("grade_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("fee_template_grade_id = ?", id)
		}
	}
	if v := c.Query("frequency"); v != "" {
		q = q.Where("fee_template_frequency = ?", strings.ToLower(v))
	}
	if v := strings.TrimSpace(c.Query("q")); v != "" {
		q = q.Where("fee_template_name ILIKE ?", "%"+v+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	order, _ := p.SafeOrderClause(feeTemplateSortable, "created_at")

	var list []model.FeeTemplate
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.ToFeeTemplateResponses(list), helper.BuildMeta(total, p))
}

// -----------------------------------------
// Create (POST /fee-templates)
// -----------------------------------------
func (h *FeeTemplateHandler) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.ResolveSchoolIDFromContext(c)
	if err != nil {
		return err
	}
	if err := helperAuth.EnsureStaffSchool(c, schoolID); err != nil {
		return err
	}

	var in dto.FeeTemplateCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fieldErrs := helper.ValidateStruct(in); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	m, err := dto.FeeTemplateCreateDTOToModel(in, schoolID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "fee template created", dto.ToFeeTemplateResponse(m))
}

// -----------------------------------------
// Update (PATCH /fee-templates/:id) — partial; deactivation happens here.
// No delete endpoint exists for templates.
// -----------------------------------------
func (h *FeeTemplateHandler) Update(c *fiber.Ctx) error {
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
	var in dto.FeeTemplateUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}

	var m model.FeeTemplate
	if err := h.DB.First(&m,
		"fee_template_id = ? AND fee_template_school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "fee template not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := dto.ApplyFeeTemplateUpdate(&m, in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "fee template updated", dto.ToFeeTemplateResponse(m))
}
