// file: internals/features/finance/billings/service/reconcile_test.go
package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
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

func day(y int, m time.Month, dd int) time.Time {
	return time.Date(y, m, dd, 0, 0, 0, 0, time.UTC)
}

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name       string
		amountOwed string
		paidToDate string
		dueDate    time.Time
		now        time.Time
		want       model.StudentFeeStatus
	}{
		{"unpaid before due date", "1000.00", "0", day(2025, 9, 1), day(2025, 8, 15), model.StudentFeeStatusPending},
		{"unpaid on the due date", "1000.00", "0", day(2025, 9, 1), day(2025, 9, 1), model.StudentFeeStatusPending},
		{"unpaid after due date", "200.00", "0", day(2025, 1, 1), day(2025, 6, 1), model.StudentFeeStatusOverdue},
		{"partially paid before due", "1000.00", "400.00", day(2025, 9, 1), day(2025, 8, 15), model.StudentFeeStatusPartial},
		{"partially paid after due stays partial", "1000.00", "400.00", day(2025, 9, 1), day(2025, 10, 1), model.StudentFeeStatusPartial},
		{"fully paid", "1000.00", "1000.00", day(2025, 9, 1), day(2025, 8, 15), model.StudentFeeStatusPaid},
		{"paid above owed still paid", "1000.00", "1200.00", day(2025, 9, 1), day(2026, 1, 1), model.StudentFeeStatusPaid},
		{"zero owed counts as paid", "0", "0", day(2025, 9, 1), day(2025, 8, 15), model.StudentFeeStatusPaid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveStatus(d(tt.amountOwed), d(tt.paidToDate), tt.dueDate, tt.now)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeriveStatusIsPure(t *testing.T) {
	owed, paid := d("150.50"), d("150.50")
	due, now := day(2025, 3, 1), day(2025, 5, 1)

	first := DeriveStatus(owed, paid, due, now)
	second := DeriveStatus(owed, paid, due, now)
	assert.Equal(t, first, second)
	assert.Equal(t, model.StudentFeeStatusPaid, first)
}

// A fee fully paid before its due date must not demote once the date
// passes.
func TestDeriveStatusPaidNeverDemotes(t *testing.T) {
	owed, paid := d("1000.00"), d("1000.00")
	due := day(2025, 9, 1)

	beforeDue := DeriveStatus(owed, paid, due, day(2025, 8, 1))
	longAfterDue := DeriveStatus(owed, paid, due, day(2030, 1, 1))

	assert.Equal(t, model.StudentFeeStatusPaid, beforeDue)
	assert.Equal(t, model.StudentFeeStatusPaid, longAfterDue)
}

func TestDeriveStatusOverdueFlipsAtMidnight(t *testing.T) {
	owed := d("200.00")
	due := day(2025, 1, 1)

	lateOnDueDay := time.Date(2025, 1, 1, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, model.StudentFeeStatusPending, DeriveStatus(owed, decimal.Zero, due, lateOnDueDay))

	nextMorning := time.Date(2025, 1, 2, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, model.StudentFeeStatusOverdue, DeriveStatus(owed, decimal.Zero, due, nextMorning))
}

func TestReconcileWritesStatus(t *testing.T) {
	fee := model.StudentFee{
		StudentFeeAmountOwed: d("1000.00"),
		StudentFeePaidToDate: d("400.00"),
		StudentFeeDueDate:    datatypes.Date(day(2025, 9, 1)),
		StudentFeeStatus:     model.StudentFeeStatusPending, // stale on purpose
	}
	Reconcile(&fee, day(2025, 8, 15))
	assert.Equal(t, model.StudentFeeStatusPartial, fee.StudentFeeStatus)

	fee.StudentFeePaidToDate = d("1000.00")
	Reconcile(&fee, day(2025, 12, 1))
	assert.Equal(t, model.StudentFeeStatusPaid, fee.StudentFeeStatus)
}
