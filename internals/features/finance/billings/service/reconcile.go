// file: internals/features/finance/billings/service/reconcile.go
package service

import (
	"time"

	"github.com/shopspring/decimal"

	"schoolku_backend/internals/features/finance/billings/model"
)

// DeriveStatus is the single source of truth for a student fee's status.
// It is a pure function of (amountOwed, paidToDate, dueDate, now) and is
// re-applied after every write that touches any of those inputs; the stored
// status column is never trusted across writes.
//
// A fee fully paid before its due date stays paid once the date passes:
// the paid branch wins before the date is even looked at.
func DeriveStatus(amountOwed, paidToDate decimal.Decimal, dueDate, now time.Time) model.StudentFeeStatus {
	switch {
	case paidToDate.GreaterThanOrEqual(amountOwed):
		return model.StudentFeeStatusPaid
	case paidToDate.IsPositive():
		return model.StudentFeeStatusPartial
	case dateOnly(now).After(dateOnly(dueDate)):
		return model.StudentFeeStatusOverdue
	default:
		return model.StudentFeeStatusPending
	}
}

// Reconcile recomputes and stores the status on the given row (in memory;
// the caller persists).
func Reconcile(fee *model.StudentFee, now time.Time) {
	fee.StudentFeeStatus = DeriveStatus(
		fee.StudentFeeAmountOwed,
		fee.StudentFeePaidToDate,
		fee.DueDateTime(),
		now,
	)
}

// dateOnly truncates to the calendar date; due dates carry no time
// component, so "overdue" flips at midnight after the due date.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
