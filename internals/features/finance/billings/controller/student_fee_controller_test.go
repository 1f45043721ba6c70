// file: internals/features/finance/billings/controller/student_fee_controller_test.go
package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// An administrator correction writes only its own columns. The paid
// balance is owned by the payment path's guarded increment; if the edit
// wrote it too, a concurrent allocation's bump could be overwritten with
// the stale value loaded before the edit.
func TestStudentFeeEditableColumnsExcludeLedgerAndIdentity(t *testing.T) {
	for _, locked := range []string{
		"student_fee_paid_to_date",
		"student_fee_id",
		"student_fee_school_id",
		"student_fee_student_id",
		"student_fee_fee_template_id",
		"student_fee_created_at",
	} {
		assert.NotContains(t, studentFeeEditableColumns, locked)
	}
}

func TestStudentFeeEditableColumnsCoverTheUpdateDTO(t *testing.T) {
	for _, col := range []string{
		"student_fee_amount_owed",
		"student_fee_due_date",
		"student_fee_status",
		"student_fee_academic_year",
		"student_fee_term",
		"student_fee_note",
	} {
		assert.Contains(t, studentFeeEditableColumns, col)
	}
}
