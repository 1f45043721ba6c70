// file: internals/features/finance/fees/model/fee_template_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// =========================================================
// ENUM — recurrence frequency
// =========================================================

type FeeFrequency string

const (
	FeeFrequencyOneTime   FeeFrequency = "one_time"
	FeeFrequencyMonthly   FeeFrequency = "monthly"
	FeeFrequencyQuarterly FeeFrequency = "quarterly"
	FeeFrequencyYearly    FeeFrequency = "yearly"
)

func (f FeeFrequency) Valid() bool {
	switch f {
	case FeeFrequencyOneTime, FeeFrequencyMonthly, FeeFrequencyQuarterly, FeeFrequencyYearly:
		return true
	}
	return false
}

// =========================================================
// MODEL — fee_templates
// =========================================================

// FeeTemplate is a reusable chargeable item. Templates are never hard
// deleted: historical student fees keep referencing them for display, so
// retirement is fee_template_is_active=false only.
type FeeTemplate struct {
	// PK
	FeeTemplateID uuid.UUID `gorm:"column:fee_template_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"fee_template_id"`

	// Tenant
	FeeTemplateSchoolID uuid.UUID `gorm:"column:fee_template_school_id;type:uuid;not null;index:ix_fee_template_school" json:"fee_template_school_id"`

	FeeTemplateName      string          `gorm:"column:fee_template_name;type:varchar(120);not null" json:"fee_template_name"`
	FeeTemplateAmount    decimal.Decimal `gorm:"column:fee_template_amount;type:numeric(12,2);not null;check:fee_template_amount >= 0" json:"fee_template_amount"`
	FeeTemplateFrequency FeeFrequency    `gorm:"column:fee_template_frequency;type:varchar(20);not null;default:'one_time'" json:"fee_template_frequency"`

	// Optional scope; NULL = applies to every grade in the school
	FeeTemplateGradeID *uuid.UUID `gorm:"column:fee_template_grade_id;type:uuid;index:ix_fee_template_grade" json:"fee_template_grade_id,omitempty"`

	FeeTemplateIsActive bool `gorm:"column:fee_template_is_active;not null;default:true;index:ix_fee_template_active" json:"fee_template_is_active"`

	// Timestamps
	FeeTemplateCreatedAt time.Time      `gorm:"column:fee_template_created_at;not null;default:now()" json:"fee_template_created_at"`
	FeeTemplateUpdatedAt time.Time      `gorm:"column:fee_template_updated_at;not null;default:now()" json:"fee_template_updated_at"`
	FeeTemplateDeletedAt gorm.DeletedAt `gorm:"column:fee_template_deleted_at;index" json:"-"`
}

func (FeeTemplate) TableName() string {
	return "fee_templates"
}

// =========================================================
// HOOKS — explicit timestamps
// =========================================================

func (m *FeeTemplate) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.FeeTemplateCreatedAt.IsZero() {
		m.FeeTemplateCreatedAt = now
	}
	m.FeeTemplateUpdatedAt = now
	return nil
}

func (m *FeeTemplate) BeforeUpdate(tx *gorm.DB) (err error) {
	m.FeeTemplateUpdatedAt = time.Now()
	return nil
}
