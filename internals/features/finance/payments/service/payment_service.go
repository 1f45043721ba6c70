// file: internals/features/finance/payments/service/payment_service.go
package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	billmodel "schoolku_backend/internals/features/finance/billings/model"
	billservice "schoolku_backend/internals/features/finance/billings/service"
	"schoolku_backend/internals/features/finance/payments/dto"
	"schoolku_backend/internals/features/finance/payments/model"
	studentmodel "schoolku_backend/internals/features/school/students/model"
)

// PaymentService owns every mutation of payments and their allocation
// effects on the ledger. All multi-row flows run in one transaction;
// paid_to_date is only ever moved by a guarded atomic UPDATE so two
// concurrent recorders can never lose each other's increment.
type PaymentService struct {
	DB *gorm.DB
}

type RecordPaymentInput struct {
	SchoolID  uuid.UUID
	StudentID uuid.UUID
	Amount    decimal.Decimal
	Date      time.Time
	Method    string
	Reference *string
	Note      *string
	Meta      datatypes.JSONMap

	Allocations []dto.AllocationInputDTO
}

// RecordPayment creates the payment and applies its allocations. With no
// allocations the payment is an unallocated receipt: it feeds collection
// totals but touches no student fee.
func (s *PaymentService) RecordPayment(in RecordPaymentInput) (model.Payment, error) {
	var out model.Payment

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := ensureStudentInSchool(tx, in.SchoolID, in.StudentID); err != nil {
			return err
		}

		p := model.Payment{
			PaymentSchoolID:  in.SchoolID,
			PaymentStudentID: in.StudentID,
			PaymentAmount:    in.Amount,
			PaymentDate:      in.Date,
			PaymentMethod:    in.Method,
			PaymentReference: in.Reference,
			PaymentNote:      in.Note,
			PaymentMeta:      in.Meta,
		}
		if err := tx.Create(&p).Error; err != nil {
			return err
		}

		if err := s.applyAllocations(tx, &p, in.Allocations); err != nil {
			return err
		}

		out = p
		return nil
	})
	return out, err
}

// UpdatePayment reverses the original allocations' ledger effects, applies
// the new payment fields and breakdown, all atomically. An edit therefore
// never leaves paid_to_date reflecting a breakdown that no longer exists.
func (s *PaymentService) UpdatePayment(schoolID, paymentID uuid.UUID, in RecordPaymentInput) (model.Payment, error) {
	var out model.Payment

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var p model.Payment
		if err := tx.Preload("PaymentAllocations").First(&p,
			"payment_id = ? AND payment_school_id = ?", paymentID, schoolID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "payment not found")
			}
			return err
		}

		if err := s.reverseAllocations(tx, &p); err != nil {
			return err
		}

		// an edit may re-point the payment; the new student must exist in
		// the same school just like on record
		if err := ensureStudentInSchool(tx, in.SchoolID, in.StudentID); err != nil {
			return err
		}

		p.PaymentStudentID = in.StudentID
		p.PaymentAmount = in.Amount
		p.PaymentDate = in.Date
		p.PaymentMethod = in.Method
		p.PaymentReference = in.Reference
		p.PaymentNote = in.Note
		p.PaymentMeta = in.Meta
		p.PaymentAllocations = nil
		if err := tx.Save(&p).Error; err != nil {
			return err
		}

		if err := s.applyAllocations(tx, &p, in.Allocations); err != nil {
			return err
		}

		out = p
		return nil
	})
	return out, err
}

// DeletePayment removes the payment after reversing its allocations.
func (s *PaymentService) DeletePayment(schoolID, paymentID uuid.UUID) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var p model.Payment
		if err := tx.Preload("PaymentAllocations").First(&p,
			"payment_id = ? AND payment_school_id = ?", paymentID, schoolID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "payment not found")
			}
			return err
		}
		if err := s.reverseAllocations(tx, &p); err != nil {
			return err
		}
		return tx.Delete(&p).Error
	})
}

func ensureStudentInSchool(tx *gorm.DB, schoolID, studentID uuid.UUID) error {
	var student studentmodel.Student
	if err := tx.First(&student,
		"student_id = ? AND student_school_id = ?", studentID, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "student not found")
		}
		return err
	}
	return nil
}

// =======================================================
// ALLOCATION MECHANICS
// =======================================================

// applyAllocations pays the given breakdown into the ledger. Per
// allocation: one conditional atomic UPDATE bumps paid_to_date only when
// the result stays within amount_owed — the read-add-write happens inside
// the database, so a racing writer either sees the bump or fails the
// guard, never a stale read. Status is re-derived after each bump.
func (s *PaymentService) applyAllocations(tx *gorm.DB, p *model.Payment, allocs []dto.AllocationInputDTO) error {
	now := time.Now()
	for _, a := range allocs {
		res := tx.Model(&billmodel.StudentFee{}).
			Where("student_fee_id = ? AND student_fee_school_id = ? AND student_fee_student_id = ?",
				a.StudentFeeID, p.PaymentSchoolID, p.PaymentStudentID).
			Where("student_fee_paid_to_date + ? <= student_fee_amount_owed", a.Amount).
			Updates(map[string]any{
				"student_fee_paid_to_date": gorm.Expr("student_fee_paid_to_date + ?", a.Amount),
				"student_fee_updated_at":   now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// guard failed: tell the caller which way
			var fee billmodel.StudentFee
			err := tx.First(&fee,
				"student_fee_id = ? AND student_fee_school_id = ?", a.StudentFeeID, p.PaymentSchoolID).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "student fee not found: "+a.StudentFeeID.String())
			}
			if err != nil {
				return err
			}
			if fee.StudentFeeStudentID != p.PaymentStudentID {
				return fiber.NewError(fiber.StatusUnprocessableEntity, "allocation references a fee of a different student")
			}
			return fiber.NewError(fiber.StatusUnprocessableEntity, "allocation exceeds the fee's remaining balance")
		}

		row := model.PaymentAllocation{
			PaymentAllocationSchoolID:     p.PaymentSchoolID,
			PaymentAllocationPaymentID:    p.PaymentID,
			PaymentAllocationStudentFeeID: a.StudentFeeID,
			PaymentAllocationAmount:       a.Amount,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		p.PaymentAllocations = append(p.PaymentAllocations, row)

		if err := s.reconcileFee(tx, p.PaymentSchoolID, a.StudentFeeID, now); err != nil {
			return err
		}
	}
	return nil
}

// reverseAllocations undoes the paid_to_date effect of every allocation on
// the payment and drops the allocation rows. A fee deleted since the
// payment was recorded is skipped — there is nothing left to reverse.
func (s *PaymentService) reverseAllocations(tx *gorm.DB, p *model.Payment) error {
	now := time.Now()
	for _, a := range p.PaymentAllocations {
		res := tx.Model(&billmodel.StudentFee{}).
			Where("student_fee_id = ? AND student_fee_school_id = ?",
				a.PaymentAllocationStudentFeeID, p.PaymentSchoolID).
			Where("student_fee_paid_to_date >= ?", a.PaymentAllocationAmount).
			Updates(map[string]any{
				"student_fee_paid_to_date": gorm.Expr("student_fee_paid_to_date - ?", a.PaymentAllocationAmount),
				"student_fee_updated_at":   now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			if err := s.reconcileFee(tx, p.PaymentSchoolID, a.PaymentAllocationStudentFeeID, now); err != nil {
				return err
			}
		}
	}
	return tx.Where("payment_allocation_payment_id = ?", p.PaymentID).
		Delete(&model.PaymentAllocation{}).Error
}

// reconcileFee re-derives the status of one fee from its freshly written
// amounts. Runs inside the same transaction as the increment, so the row
// is still locked against other writers.
func (s *PaymentService) reconcileFee(tx *gorm.DB, schoolID, feeID uuid.UUID, now time.Time) error {
	var fee billmodel.StudentFee
	if err := tx.First(&fee,
		"student_fee_id = ? AND student_fee_school_id = ?", feeID, schoolID).Error; err != nil {
		return err
	}
	newStatus := billservice.DeriveStatus(
		fee.StudentFeeAmountOwed, fee.StudentFeePaidToDate, fee.DueDateTime(), now)
	if newStatus == fee.StudentFeeStatus {
		return nil
	}
	return tx.Model(&billmodel.StudentFee{}).
		Where("student_fee_id = ?", feeID).
		Update("student_fee_status", newStatus).Error
}
