// file: internals/features/finance/fees/dto/fee_template_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"schoolku_backend/internals/features/finance/fees/model"
)

////////////////////////////////////////////////////////////////////////////////
// FEE TEMPLATES — DTO
////////////////////////////////////////////////////////////////////////////////

type FeeTemplateCreateDTO struct {
	FeeTemplateName      string          `json:"fee_template_name" validate:"required,max=120"`
	FeeTemplateAmount    decimal.Decimal `json:"fee_template_amount" validate:"required"`
	FeeTemplateFrequency string          `json:"fee_template_frequency" validate:"required,oneof=one_time monthly quarterly yearly"`
	FeeTemplateGradeID   *uuid.UUID      `json:"fee_template_grade_id,omitempty"`
}

// Update (partial). There is no delete: retiring a template is
// fee_template_is_active=false so historical fees keep their reference.
type FeeTemplateUpdateDTO struct {
	FeeTemplateName      *string          `json:"fee_template_name,omitempty"`
	FeeTemplateAmount    *decimal.Decimal `json:"fee_template_amount,omitempty"`
	FeeTemplateFrequency *string          `json:"fee_template_frequency,omitempty"`
	FeeTemplateGradeID   *uuid.UUID       `json:"fee_template_grade_id,omitempty"`
	FeeTemplateIsActive  *bool            `json:"fee_template_is_active,omitempty"`
}

type FeeTemplateResponse struct {
	FeeTemplateID        uuid.UUID       `json:"fee_template_id"`
	FeeTemplateSchoolID  uuid.UUID       `json:"fee_template_school_id"`
	FeeTemplateName      string          `json:"fee_template_name"`
	FeeTemplateAmount    decimal.Decimal `json:"fee_template_amount"`
	FeeTemplateFrequency string          `json:"fee_template_frequency"`
	FeeTemplateGradeID   *uuid.UUID      `json:"fee_template_grade_id,omitempty"`
	FeeTemplateIsActive  bool            `json:"fee_template_is_active"`
	FeeTemplateCreatedAt time.Time       `json:"fee_template_created_at"`
	FeeTemplateUpdatedAt time.Time       `json:"fee_template_updated_at"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

var (
	ErrEmptyName    = errors.New("fee_template_name cannot be empty")
	ErrBadAmount    = errors.New("fee_template_amount must be greater than 0")
	ErrBadFrequency = errors.New("fee_template_frequency must be one of: one_time, monthly, quarterly, yearly")
)

func ToFeeTemplateResponse(m model.FeeTemplate) FeeTemplateResponse {
	return FeeTemplateResponse{
		FeeTemplateID:        m.FeeTemplateID,
		FeeTemplateSchoolID:  m.FeeTemplateSchoolID,
		FeeTemplateName:      m.FeeTemplateName,
		FeeTemplateAmount:    m.FeeTemplateAmount,
		FeeTemplateFrequency: string(m.FeeTemplateFrequency),
		FeeTemplateGradeID:   m.FeeTemplateGradeID,
		FeeTemplateIsActive:  m.FeeTemplateIsActive,
		FeeTemplateCreatedAt: m.FeeTemplateCreatedAt,
		FeeTemplateUpdatedAt: m.FeeTemplateUpdatedAt,
	}
}

func ToFeeTemplateResponses(list []model.FeeTemplate) []FeeTemplateResponse {
	out := make([]FeeTemplateResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToFeeTemplateResponse(m))
	}
	return out
}

func FeeTemplateCreateDTOToModel(d FeeTemplateCreateDTO, schoolID uuid.UUID) (model.FeeTemplate, error) {
	name := strings.TrimSpace(d.FeeTemplateName)
	if name == "" {
		return model.FeeTemplate{}, ErrEmptyName
	}
	if !d.FeeTemplateAmount.IsPositive() {
		return model.FeeTemplate{}, ErrBadAmount
	}
	freq := model.FeeFrequency(d.FeeTemplateFrequency)
	if !freq.Valid() {
		return model.FeeTemplate{}, ErrBadFrequency
	}
	return model.FeeTemplate{
		FeeTemplateSchoolID:  schoolID,
		FeeTemplateName:      name,
		FeeTemplateAmount:    d.FeeTemplateAmount,
		FeeTemplateFrequency: freq,
		FeeTemplateGradeID:   d.FeeTemplateGradeID,
		FeeTemplateIsActive:  true,
	}, nil
}

// ApplyFeeTemplateUpdate applies the partial update in place.
func ApplyFeeTemplateUpdate(m *model.FeeTemplate, d FeeTemplateUpdateDTO) error {
	if d.FeeTemplateName != nil {
		name := strings.TrimSpace(*d.FeeTemplateName)
		if name == "" {
			return ErrEmptyName
		}
		m.FeeTemplateName = name
	}
	if d.FeeTemplateAmount != nil {
		if !d.FeeTemplateAmount.IsPositive() {
			return ErrBadAmount
		}
		m.FeeTemplateAmount = *d.FeeTemplateAmount
	}
	if d.FeeTemplateFrequency != nil {
		freq := model.FeeFrequency(*d.FeeTemplateFrequency)
		if !freq.Valid() {
			return ErrBadFrequency
		}
		m.FeeTemplateFrequency = freq
	}
	if d.FeeTemplateGradeID != nil {
		m.FeeTemplateGradeID = d.FeeTemplateGradeID
	}
	if d.FeeTemplateIsActive != nil {
		m.FeeTemplateIsActive = *d.FeeTemplateIsActive
	}
	return nil
}
