// file: internals/features/finance/payments/dto/payment_dto.go
package dto

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"schoolku_backend/internals/features/finance/payments/model"
)

////////////////////////////////////////////////////////////////////////////////
// PAYMENTS — DTO
////////////////////////////////////////////////////////////////////////////////

type AllocationInputDTO struct {
	StudentFeeID uuid.UUID       `json:"student_fee_id" validate:"required"`
	Amount       decimal.Decimal `json:"amount" validate:"required"`
}

type PaymentCreateDTO struct {
	PaymentStudentID uuid.UUID       `json:"payment_student_id" validate:"required"`
	PaymentAmount    decimal.Decimal `json:"payment_amount" validate:"required"`
	PaymentDate      *time.Time      `json:"payment_date,omitempty"` // defaults to now
	PaymentMethod    string          `json:"payment_method" validate:"required,oneof=cash card bank_transfer cheque other"`

	PaymentReference *string           `json:"payment_reference,omitempty" validate:"omitempty,max=80"`
	PaymentNote      *string           `json:"payment_note,omitempty"`
	PaymentMeta      datatypes.JSONMap `json:"payment_meta,omitempty"`

	PaymentAllocations []AllocationInputDTO `json:"payment_allocations,omitempty"`
}

// Update replaces the payment's own fields and its allocation breakdown.
// The service first reverses the original allocations' effects, then
// reapplies the new breakdown, all in one transaction.
type PaymentUpdateDTO = PaymentCreateDTO

// Responses

type AllocationResponse struct {
	PaymentAllocationID           uuid.UUID       `json:"payment_allocation_id"`
	PaymentAllocationStudentFeeID uuid.UUID       `json:"payment_allocation_student_fee_id"`
	PaymentAllocationAmount       decimal.Decimal `json:"payment_allocation_amount"`
}

type PaymentResponse struct {
	PaymentID        uuid.UUID       `json:"payment_id"`
	PaymentSchoolID  uuid.UUID       `json:"payment_school_id"`
	PaymentStudentID uuid.UUID       `json:"payment_student_id"`
	PaymentAmount    decimal.Decimal `json:"payment_amount"`
	PaymentDate      time.Time       `json:"payment_date"`
	PaymentMethod    string          `json:"payment_method"`

	PaymentReference *string           `json:"payment_reference,omitempty"`
	PaymentNote      *string           `json:"payment_note,omitempty"`
	PaymentMeta      datatypes.JSONMap `json:"payment_meta,omitempty"`

	PaymentAllocations []AllocationResponse `json:"payment_allocations"`

	PaymentCreatedAt time.Time `json:"payment_created_at"`
	PaymentUpdatedAt time.Time `json:"payment_updated_at"`
}

////////////////////////////////////////////////////////////////////////////////
// VALIDATION — allocation invariants checkable without the database
////////////////////////////////////////////////////////////////////////////////

var (
	ErrAllocationNotPositive = errors.New("each allocation amount must be greater than 0")
	ErrAllocationSumExceeds  = errors.New("total allocated amount cannot exceed payment amount")
)

// ValidateAllocations enforces the payment-level invariants: every
// allocation positive, and sum(allocations) <= payment amount. Per-fee
// balance checks need the ledger and live in the service.
func ValidateAllocations(paymentAmount decimal.Decimal, allocs []AllocationInputDTO) error {
	sum := decimal.Zero
	for _, a := range allocs {
		if !a.Amount.IsPositive() {
			return ErrAllocationNotPositive
		}
		sum = sum.Add(a.Amount)
	}
	if sum.GreaterThan(paymentAmount) {
		return ErrAllocationSumExceeds
	}
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func ToAllocationResponse(m model.PaymentAllocation) AllocationResponse {
	return AllocationResponse{
		PaymentAllocationID:           m.PaymentAllocationID,
		PaymentAllocationStudentFeeID: m.PaymentAllocationStudentFeeID,
		PaymentAllocationAmount:       m.PaymentAllocationAmount,
	}
}

func ToPaymentResponse(m model.Payment) PaymentResponse {
	allocs := make([]AllocationResponse, 0, len(m.PaymentAllocations))
	for _, a := range m.PaymentAllocations {
		allocs = append(allocs, ToAllocationResponse(a))
	}
	return PaymentResponse{
		PaymentID:          m.PaymentID,
		PaymentSchoolID:    m.PaymentSchoolID,
		PaymentStudentID:   m.PaymentStudentID,
		PaymentAmount:      m.PaymentAmount,
		PaymentDate:        m.PaymentDate,
		PaymentMethod:      m.PaymentMethod,
		PaymentReference:   m.PaymentReference,
		PaymentNote:        m.PaymentNote,
		PaymentMeta:        m.PaymentMeta,
		PaymentAllocations: allocs,
		PaymentCreatedAt:   m.PaymentCreatedAt,
		PaymentUpdatedAt:   m.PaymentUpdatedAt,
	}
}

func ToPaymentResponses(list []model.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToPaymentResponse(m))
	}
	return out
}
