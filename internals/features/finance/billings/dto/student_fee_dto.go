// file: internals/features/finance/billings/dto/student_fee_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"schoolku_backend/internals/features/finance/billings/model"
)

////////////////////////////////////////////////////////////////////////////////
// STUDENT FEES — DTO
////////////////////////////////////////////////////////////////////////////////

// Create (direct one-off assignment)
type StudentFeeCreateDTO struct {
	StudentFeeStudentID     uuid.UUID       `json:"student_fee_student_id" validate:"required"`
	StudentFeeFeeTemplateID uuid.UUID       `json:"student_fee_fee_template_id" validate:"required"`
	StudentFeeAmountOwed    decimal.Decimal `json:"student_fee_amount_owed" validate:"required"`
	StudentFeeDueDate       string          `json:"student_fee_due_date" validate:"required"` // ISO date, no time
	StudentFeeAcademicYear  string          `json:"student_fee_academic_year,omitempty" validate:"max=20"`
	StudentFeeTerm          string          `json:"student_fee_term,omitempty" validate:"max=20"`
	StudentFeeNote          *string         `json:"student_fee_note,omitempty"`
}

// Update (administrator correction; partial). An explicit status is
// accepted but recomputed whenever amount/due date changed in the same
// call — status cannot be pinned against its inputs.
type StudentFeeUpdateDTO struct {
	StudentFeeAmountOwed   *decimal.Decimal `json:"student_fee_amount_owed,omitempty"`
	StudentFeeDueDate      *string          `json:"student_fee_due_date,omitempty"`
	StudentFeeStatus       *string          `json:"student_fee_status,omitempty"`
	StudentFeeAcademicYear *string          `json:"student_fee_academic_year,omitempty"`
	StudentFeeTerm         *string          `json:"student_fee_term,omitempty"`
	StudentFeeNote         *string          `json:"student_fee_note,omitempty"`
}

// Bulk assignment request
type AssignByGradeDTO struct {
	GradeID      uuid.UUID `json:"grade_id" validate:"required"`
	DueDate      string    `json:"due_date" validate:"required"` // ISO date
	AcademicYear string    `json:"academic_year,omitempty" validate:"max=20"`
	Term         string    `json:"term,omitempty" validate:"max=20"`
}

// Response
type StudentFeeResponse struct {
	StudentFeeID            uuid.UUID `json:"student_fee_id"`
	StudentFeeSchoolID      uuid.UUID `json:"student_fee_school_id"`
	StudentFeeStudentID     uuid.UUID `json:"student_fee_student_id"`
	StudentFeeFeeTemplateID uuid.UUID `json:"student_fee_fee_template_id"`

	StudentFeeAmountOwed       decimal.Decimal `json:"student_fee_amount_owed"`
	StudentFeePaidToDate       decimal.Decimal `json:"student_fee_paid_to_date"`
	StudentFeeRemainingBalance decimal.Decimal `json:"student_fee_remaining_balance"`

	StudentFeeDueDate string `json:"student_fee_due_date"`
	StudentFeeStatus  string `json:"student_fee_status"`

	StudentFeeAcademicYear string  `json:"student_fee_academic_year,omitempty"`
	StudentFeeTerm         string  `json:"student_fee_term,omitempty"`
	StudentFeeNote         *string `json:"student_fee_note,omitempty"`

	StudentFeeCreatedAt time.Time `json:"student_fee_created_at"`
	StudentFeeUpdatedAt time.Time `json:"student_fee_updated_at"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS — Model <-> DTO
////////////////////////////////////////////////////////////////////////////////

const dueDateLayout = "2006-01-02"

// ParseDueDate accepts a bare ISO calendar date.
func ParseDueDate(s string) (time.Time, bool) {
	t, err := time.Parse(dueDateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func ToStudentFeeResponse(m model.StudentFee) StudentFeeResponse {
	return StudentFeeResponse{
		StudentFeeID:               m.StudentFeeID,
		StudentFeeSchoolID:         m.StudentFeeSchoolID,
		StudentFeeStudentID:        m.StudentFeeStudentID,
		StudentFeeFeeTemplateID:    m.StudentFeeFeeTemplateID,
		StudentFeeAmountOwed:       m.StudentFeeAmountOwed,
		StudentFeePaidToDate:       m.StudentFeePaidToDate,
		StudentFeeRemainingBalance: m.RemainingBalance(),
		StudentFeeDueDate:          m.DueDateTime().Format(dueDateLayout),
		StudentFeeStatus:           string(m.StudentFeeStatus),
		StudentFeeAcademicYear:     m.StudentFeeAcademicYear,
		StudentFeeTerm:             m.StudentFeeTerm,
		StudentFeeNote:             m.StudentFeeNote,
		StudentFeeCreatedAt:        m.StudentFeeCreatedAt,
		StudentFeeUpdatedAt:        m.StudentFeeUpdatedAt,
	}
}

func ToStudentFeeResponses(list []model.StudentFee) []StudentFeeResponse {
	out := make([]StudentFeeResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToStudentFeeResponse(m))
	}
	return out
}

// ApplyStudentFeeUpdate applies the partial update in place and reports
// whether any status input (amount/due date) changed. The caller must
// re-derive status when it did.
func ApplyStudentFeeUpdate(m *model.StudentFee, d StudentFeeUpdateDTO) (inputsChanged bool, err error) {
	if d.StudentFeeAmountOwed != nil {
		if d.StudentFeeAmountOwed.IsNegative() {
			return false, errNegativeAmount
		}
		// amount edits do not rescale paid_to_date, but must not undercut it
		if d.StudentFeeAmountOwed.LessThan(m.StudentFeePaidToDate) {
			return false, errAmountBelowPaid
		}
		m.StudentFeeAmountOwed = *d.StudentFeeAmountOwed
		inputsChanged = true
	}
	if d.StudentFeeDueDate != nil {
		t, ok := ParseDueDate(*d.StudentFeeDueDate)
		if !ok {
			return false, errBadDueDate
		}
		m.StudentFeeDueDate = datatypes.Date(t)
		inputsChanged = true
	}
	if d.StudentFeeStatus != nil {
		st := model.StudentFeeStatus(strings.ToLower(strings.TrimSpace(*d.StudentFeeStatus)))
		if !st.Valid() {
			return false, errBadStatus
		}
		m.StudentFeeStatus = st
	}
	if d.StudentFeeAcademicYear != nil {
		m.StudentFeeAcademicYear = strings.TrimSpace(*d.StudentFeeAcademicYear)
	}
	if d.StudentFeeTerm != nil {
		m.StudentFeeTerm = strings.TrimSpace(*d.StudentFeeTerm)
	}
	if d.StudentFeeNote != nil {
		m.StudentFeeNote = d.StudentFeeNote
	}
	return inputsChanged, nil
}
