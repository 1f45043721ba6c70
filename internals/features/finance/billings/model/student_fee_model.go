// file: internals/features/finance/billings/model/student_fee_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// =========================================================
// ENUM — derived student fee status
// =========================================================

type StudentFeeStatus string

const (
	StudentFeeStatusPending StudentFeeStatus = "pending"
	StudentFeeStatusPartial StudentFeeStatus = "partial"
	StudentFeeStatusPaid    StudentFeeStatus = "paid"
	StudentFeeStatusOverdue StudentFeeStatus = "overdue"
)

func (s StudentFeeStatus) Valid() bool {
	switch s {
	case StudentFeeStatusPending, StudentFeeStatusPartial, StudentFeeStatusPaid, StudentFeeStatusOverdue:
		return true
	}
	return false
}

// =========================================================
// MODEL — student_fees
// =========================================================

// StudentFee is one student's obligation against one fee template. The
// amount is captured at assignment time; later template edits never touch
// it. Status is always recomputed from (amount_owed, paid_to_date,
// due_date) — it is stored for filtering, never trusted across writes.
//
// Academic year/term are stored as '' (not NULL) so the composite unique
// index actually deduplicates untagged assignments too.
type StudentFee struct {
	// PK
	StudentFeeID uuid.UUID `gorm:"column:student_fee_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"student_fee_id"`

	// Tenant
	StudentFeeSchoolID uuid.UUID `gorm:"column:student_fee_school_id;type:uuid;not null;index:ix_student_fee_school" json:"student_fee_school_id"`

	// FK → students / fee_templates
	StudentFeeStudentID     uuid.UUID `gorm:"column:student_fee_student_id;type:uuid;not null;index;uniqueIndex:uniq_student_fee_assignment,priority:1" json:"student_fee_student_id"`
	StudentFeeFeeTemplateID uuid.UUID `gorm:"column:student_fee_fee_template_id;type:uuid;not null;index;uniqueIndex:uniq_student_fee_assignment,priority:2" json:"student_fee_fee_template_id"`

	// Money (fixed-point, two decimals on the wire)
	StudentFeeAmountOwed decimal.Decimal `gorm:"column:student_fee_amount_owed;type:numeric(12,2);not null;check:student_fee_amount_owed >= 0" json:"student_fee_amount_owed"`
	StudentFeePaidToDate decimal.Decimal `gorm:"column:student_fee_paid_to_date;type:numeric(12,2);not null;default:0;check:student_fee_paid_to_date >= 0 AND student_fee_paid_to_date <= student_fee_amount_owed" json:"student_fee_paid_to_date"`

	// Due date is calendar-date only
	StudentFeeDueDate datatypes.Date `gorm:"column:student_fee_due_date;type:date;not null" json:"student_fee_due_date"`

	// Derived status (see service.DeriveStatus)
	StudentFeeStatus StudentFeeStatus `gorm:"column:student_fee_status;type:varchar(20);not null;default:'pending';index:ix_student_fee_status" json:"student_fee_status"`

	// Optional tags
	StudentFeeAcademicYear string  `gorm:"column:student_fee_academic_year;type:varchar(20);not null;default:'';uniqueIndex:uniq_student_fee_assignment,priority:3" json:"student_fee_academic_year,omitempty"`
	StudentFeeTerm         string  `gorm:"column:student_fee_term;type:varchar(20);not null;default:'';uniqueIndex:uniq_student_fee_assignment,priority:4" json:"student_fee_term,omitempty"`
	StudentFeeNote         *string `gorm:"column:student_fee_note;type:text" json:"student_fee_note,omitempty"`

	// Timestamps (hard delete only, per the admin contract)
	StudentFeeCreatedAt time.Time `gorm:"column:student_fee_created_at;not null;default:now();index:ix_student_fee_created_at" json:"student_fee_created_at"`
	StudentFeeUpdatedAt time.Time `gorm:"column:student_fee_updated_at;not null;default:now()" json:"student_fee_updated_at"`
}

func (StudentFee) TableName() string {
	return "student_fees"
}

// RemainingBalance is amount_owed - paid_to_date (never negative given the
// check constraint).
func (m *StudentFee) RemainingBalance() decimal.Decimal {
	return m.StudentFeeAmountOwed.Sub(m.StudentFeePaidToDate)
}

// DueDateTime unwraps the date column for status derivation.
func (m *StudentFee) DueDateTime() time.Time {
	return time.Time(m.StudentFeeDueDate)
}

// =========================================================
// HOOKS
// =========================================================

func (m *StudentFee) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.StudentFeeCreatedAt.IsZero() {
		m.StudentFeeCreatedAt = now
	}
	m.StudentFeeUpdatedAt = now
	return nil
}

func (m *StudentFee) BeforeUpdate(tx *gorm.DB) (err error) {
	m.StudentFeeUpdatedAt = time.Now()
	return nil
}
