// file: internals/features/finance/billings/dto/student_fee_dto_test.go
package dto

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"schoolku_backend/internals/features/finance/billings/model"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func strPtr(s string) *string { return &s }

func decPtr(s string) *decimal.Decimal {
	v := d(s)
	return &v
}

func TestParseDueDate(t *testing.T) {
	got, ok := ParseDueDate("2025-09-01")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), got)

	_, ok = ParseDueDate(" 2025-09-01 ")
	assert.True(t, ok, "surrounding whitespace is tolerated")

	for _, bad := range []string{"", "2025-9-1", "01-09-2025", "2025-09-01T00:00:00Z", "next tuesday"} {
		_, ok := ParseDueDate(bad)
		assert.False(t, ok, "should reject %q", bad)
	}
}

func baseFee() model.StudentFee {
	return model.StudentFee{
		StudentFeeAmountOwed: d("1000.00"),
		StudentFeePaidToDate: d("400.00"),
		StudentFeeDueDate:    datatypes.Date(time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)),
		StudentFeeStatus:     model.StudentFeeStatusPartial,
	}
}

func TestApplyStudentFeeUpdate(t *testing.T) {
	t.Run("amount change flags inputs changed", func(t *testing.T) {
		fee := baseFee()
		changed, err := ApplyStudentFeeUpdate(&fee, StudentFeeUpdateDTO{
			StudentFeeAmountOwed: decPtr("1500.00"),
		})
		require.NoError(t, err)
		assert.True(t, changed)
		assert.True(t, fee.StudentFeeAmountOwed.Equal(d("1500.00")))
		// paid-to-date is never rescaled by an amount edit
		assert.True(t, fee.StudentFeePaidToDate.Equal(d("400.00")))
	})

	t.Run("due date change flags inputs changed", func(t *testing.T) {
		fee := baseFee()
		changed, err := ApplyStudentFeeUpdate(&fee, StudentFeeUpdateDTO{
			StudentFeeDueDate: strPtr("2025-12-01"),
		})
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, "2025-12-01", fee.DueDateTime().Format("2006-01-02"))
	})

	t.Run("status only does not flag inputs changed", func(t *testing.T) {
		fee := baseFee()
		changed, err := ApplyStudentFeeUpdate(&fee, StudentFeeUpdateDTO{
			StudentFeeStatus: strPtr("paid"),
		})
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, model.StudentFeeStatusPaid, fee.StudentFeeStatus)
	})

	t.Run("metadata only does not flag inputs changed", func(t *testing.T) {
		fee := baseFee()
		changed, err := ApplyStudentFeeUpdate(&fee, StudentFeeUpdateDTO{
			StudentFeeAcademicYear: strPtr(" 2025/2026 "),
			StudentFeeTerm:         strPtr("1"),
			StudentFeeNote:         strPtr("sibling discount applied"),
		})
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, "2025/2026", fee.StudentFeeAcademicYear)
		assert.Equal(t, "1", fee.StudentFeeTerm)
		require.NotNil(t, fee.StudentFeeNote)
		assert.Equal(t, "sibling discount applied", *fee.StudentFeeNote)
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		fee := baseFee()
		_, err := ApplyStudentFeeUpdate(&fee, StudentFeeUpdateDTO{
			StudentFeeAmountOwed: decPtr("-1"),
		})
		assert.ErrorIs(t, err, errNegativeAmount)
	})

	t.Run("rejects amount below what was already paid", func(t *testing.T) {
		fee := baseFee()
		_, err := ApplyStudentFeeUpdate(&fee, StudentFeeUpdateDTO{
			StudentFeeAmountOwed: decPtr("399.99"),
		})
		assert.ErrorIs(t, err, errAmountBelowPaid)
		assert.True(t, fee.StudentFeeAmountOwed.Equal(d("1000.00")), "row must be untouched on error")
	})

	t.Run("rejects malformed due date", func(t *testing.T) {
		fee := baseFee()
		_, err := ApplyStudentFeeUpdate(&fee, StudentFeeUpdateDTO{
			StudentFeeDueDate: strPtr("tomorrow"),
		})
		assert.ErrorIs(t, err, errBadDueDate)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		fee := baseFee()
		_, err := ApplyStudentFeeUpdate(&fee, StudentFeeUpdateDTO{
			StudentFeeStatus: strPtr("cancelled"),
		})
		assert.ErrorIs(t, err, errBadStatus)
	})

	t.Run("status is normalized to lowercase", func(t *testing.T) {
		fee := baseFee()
		_, err := ApplyStudentFeeUpdate(&fee, StudentFeeUpdateDTO{
			StudentFeeStatus: strPtr("  OVERDUE "),
		})
		require.NoError(t, err)
		assert.Equal(t, model.StudentFeeStatusOverdue, fee.StudentFeeStatus)
	})
}

func TestToStudentFeeResponse(t *testing.T) {
	fee := baseFee()
	resp := ToStudentFeeResponse(fee)

	assert.Equal(t, "2025-09-01", resp.StudentFeeDueDate)
	assert.Equal(t, "partial", resp.StudentFeeStatus)
	assert.True(t, resp.StudentFeeRemainingBalance.Equal(d("600.00")))
}
