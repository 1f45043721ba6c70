// file: internals/features/finance/payments/model/payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* ===================== Enums (string) ===================== */

const (
	PaymentMethodCash         = "cash"
	PaymentMethodCard         = "card"
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodCheque       = "cheque"
	PaymentMethodOther        = "other"
)

func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodBankTransfer, PaymentMethodCheque, PaymentMethodOther:
		return true
	}
	return false
}

/* ===================== Model ===================== */

// Payment is a receipt from a student. It may carry zero allocations (a
// general receipt that only feeds collection totals) or a breakdown of
// which student fees it pays down.
type Payment struct {
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`

	PaymentSchoolID  uuid.UUID `gorm:"column:payment_school_id;type:uuid;not null;index:ix_payment_school" json:"payment_school_id"`
	PaymentStudentID uuid.UUID `gorm:"column:payment_student_id;type:uuid;not null;index:ix_payment_student" json:"payment_student_id"`

	PaymentAmount decimal.Decimal `gorm:"column:payment_amount;type:numeric(12,2);not null;check:payment_amount > 0" json:"payment_amount"`
	PaymentDate   time.Time       `gorm:"column:payment_date;not null;index:ix_payment_date" json:"payment_date"`
	PaymentMethod string          `gorm:"column:payment_method;type:varchar(20);not null" json:"payment_method"`

	PaymentReference *string           `gorm:"column:payment_reference;type:varchar(80)" json:"payment_reference,omitempty"`
	PaymentNote      *string           `gorm:"column:payment_note;type:text" json:"payment_note,omitempty"`
	PaymentMeta      datatypes.JSONMap `gorm:"column:payment_meta;type:jsonb" json:"payment_meta,omitempty"`

	PaymentCreatedAt time.Time `gorm:"column:payment_created_at;not null;default:now()" json:"payment_created_at"`
	PaymentUpdatedAt time.Time `gorm:"column:payment_updated_at;not null;default:now()" json:"payment_updated_at"`

	// loaded with Preload("PaymentAllocations")
	PaymentAllocations []PaymentAllocation `gorm:"foreignKey:PaymentAllocationPaymentID;references:PaymentID" json:"payment_allocations,omitempty"`
}

func (Payment) TableName() string {
	return "payments"
}

func (m *Payment) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.PaymentCreatedAt.IsZero() {
		m.PaymentCreatedAt = now
	}
	m.PaymentUpdatedAt = now
	return nil
}

func (m *Payment) BeforeUpdate(tx *gorm.DB) (err error) {
	m.PaymentUpdatedAt = time.Now()
	return nil
}
