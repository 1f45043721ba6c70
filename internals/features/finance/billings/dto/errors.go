package dto

import "errors"

var (
	errNegativeAmount  = errors.New("student_fee_amount_owed cannot be negative")
	errAmountBelowPaid = errors.New("student_fee_amount_owed cannot be lower than the amount already paid")
	errBadDueDate      = errors.New("student_fee_due_date must be an ISO date (YYYY-MM-DD)")
	errBadStatus       = errors.New("student_fee_status must be one of: pending, partial, paid, overdue")
)
