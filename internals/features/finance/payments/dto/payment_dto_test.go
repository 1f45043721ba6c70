// file: internals/features/finance/payments/dto/payment_dto_test.go
package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolku_backend/internals/features/finance/payments/model"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func alloc(amount string) AllocationInputDTO {
	return AllocationInputDTO{StudentFeeID: uuid.New(), Amount: d(amount)}
}

func TestValidateAllocations(t *testing.T) {
	tests := []struct {
		name          string
		paymentAmount string
		allocs        []AllocationInputDTO
		wantErr       error
	}{
		{"no allocations", "500.00", nil, nil},
		{"single allocation below amount", "500.00", []AllocationInputDTO{alloc("300.00")}, nil},
		{"sum exactly equals amount", "500.00", []AllocationInputDTO{alloc("300.00"), alloc("200.00")}, nil},
		{"sum exceeds amount", "500.00", []AllocationInputDTO{alloc("300.00"), alloc("300.00")}, ErrAllocationSumExceeds},
		{"single allocation above amount", "100.00", []AllocationInputDTO{alloc("100.01")}, ErrAllocationSumExceeds},
		{"zero allocation", "500.00", []AllocationInputDTO{alloc("0")}, ErrAllocationNotPositive},
		{"negative allocation", "500.00", []AllocationInputDTO{alloc("-10.00")}, ErrAllocationNotPositive},
		{"negative hidden among valid ones", "500.00", []AllocationInputDTO{alloc("50.00"), alloc("-10.00")}, ErrAllocationNotPositive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAllocations(d(tt.paymentAmount), tt.allocs)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestToPaymentResponse(t *testing.T) {
	ref := "RCPT-0042"
	paidAt := time.Date(2025, 9, 10, 8, 30, 0, 0, time.UTC)
	feeID := uuid.New()

	p := model.Payment{
		PaymentID:        uuid.New(),
		PaymentSchoolID:  uuid.New(),
		PaymentStudentID: uuid.New(),
		PaymentAmount:    d("750.00"),
		PaymentDate:      paidAt,
		PaymentMethod:    model.PaymentMethodBankTransfer,
		PaymentReference: &ref,
		PaymentAllocations: []model.PaymentAllocation{
			{
				PaymentAllocationID:           uuid.New(),
				PaymentAllocationStudentFeeID: feeID,
				PaymentAllocationAmount:       d("750.00"),
			},
		},
	}

	resp := ToPaymentResponse(p)
	assert.Equal(t, p.PaymentID, resp.PaymentID)
	assert.Equal(t, p.PaymentStudentID, resp.PaymentStudentID)
	assert.True(t, resp.PaymentAmount.Equal(d("750.00")))
	assert.Equal(t, paidAt, resp.PaymentDate)
	assert.Equal(t, &ref, resp.PaymentReference)
	require.Len(t, resp.PaymentAllocations, 1)
	assert.Equal(t, feeID, resp.PaymentAllocations[0].PaymentAllocationStudentFeeID)
	assert.True(t, resp.PaymentAllocations[0].PaymentAllocationAmount.Equal(d("750.00")))
}

func TestToPaymentResponseEmptyAllocations(t *testing.T) {
	resp := ToPaymentResponse(model.Payment{PaymentID: uuid.New()})
	// Never nil: the wire format always carries an array.
	assert.NotNil(t, resp.PaymentAllocations)
	assert.Len(t, resp.PaymentAllocations, 0)
}
