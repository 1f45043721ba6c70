// file: internals/features/finance/payments/model/payment_allocation_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentAllocation is the portion of one payment applied to one student
// fee. Across a payment its allocations sum to at most the payment amount;
// applying one bumps the fee's paid_to_date by exactly this amount.
type PaymentAllocation struct {
	PaymentAllocationID uuid.UUID `gorm:"column:payment_allocation_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_allocation_id"`

	PaymentAllocationSchoolID     uuid.UUID `gorm:"column:payment_allocation_school_id;type:uuid;not null;index:ix_payment_allocation_school" json:"payment_allocation_school_id"`
	PaymentAllocationPaymentID    uuid.UUID `gorm:"column:payment_allocation_payment_id;type:uuid;not null;index:ix_payment_allocation_payment" json:"payment_allocation_payment_id"`
	PaymentAllocationStudentFeeID uuid.UUID `gorm:"column:payment_allocation_student_fee_id;type:uuid;not null;index:ix_payment_allocation_student_fee" json:"payment_allocation_student_fee_id"`

	PaymentAllocationAmount decimal.Decimal `gorm:"column:payment_allocation_amount;type:numeric(12,2);not null;check:payment_allocation_amount > 0" json:"payment_allocation_amount"`

	PaymentAllocationCreatedAt time.Time `gorm:"column:payment_allocation_created_at;not null;default:now()" json:"payment_allocation_created_at"`
}

func (PaymentAllocation) TableName() string {
	return "payment_allocations"
}
