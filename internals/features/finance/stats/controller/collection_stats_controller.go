// file: internals/features/finance/stats/controller/collection_stats_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	billmodel "schoolku_backend/internals/features/finance/billings/model"
	paymodel "schoolku_backend/internals/features/finance/payments/model"
	"schoolku_backend/internals/features/finance/stats/dto"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type CollectionStatsHandler struct {
	DB *gorm.DB
}

const isoDate = "2006-01-02"

// statsRange resolves the reporting window. Defaults to the current
// calendar year. toExcl is the first instant AFTER the window, so the
// query uses payment_date < toExcl and a payment at 23:59:59.5 on the
// last day still counts. Unparseable inputs fall back to the defaults.
func statsRange(fromRaw, toRaw string, now time.Time) (from, toExcl time.Time) {
	from = time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	toExcl = from.AddDate(1, 0, 0)
	if t, err := time.Parse(isoDate, fromRaw); err == nil {
		from = t
	}
	if t, err := time.Parse(isoDate, toRaw); err == nil {
		toExcl = t.AddDate(0, 0, 1) // inclusive end date
	}
	return from, toExcl
}

// -----------------------------------------
// GET /finance/stats?from=YYYY-MM-DD&to=YYYY-MM-DD
//
// Everything is derived on read; nothing is materialized. Payment totals
// and the monthly series honor the date range; pending/overdue figures are
// a snapshot of the ledger as it stands now — a balance does not stop
// being owed because the reporting window moved.
// -----------------------------------------
func (h *CollectionStatsHandler) Get(c *fiber.Ctx) error {
	schoolID, err := helperAuth.ResolveSchoolIDFromContext(c)
	if err != nil {
		return err
	}

	from, toExcl := statsRange(c.Query("from"), c.Query("to"), time.Now())

	var totalPaid decimal.Decimal
	if err := h.DB.Model(&paymodel.Payment{}).
		Where("payment_school_id = ? AND payment_date >= ? AND payment_date < ?", schoolID, from, toExcl).
		Select("COALESCE(SUM(payment_amount), 0)").
		Scan(&totalPaid).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	type pendingRow struct {
		Total decimal.Decimal
		Count int64
	}
	var pending pendingRow
	if err := h.DB.Model(&billmodel.StudentFee{}).
		Where("student_fee_school_id = ? AND student_fee_status IN ?",
			schoolID, []string{string(billmodel.StudentFeeStatusPending), string(billmodel.StudentFeeStatusPartial)}).
		Select("COALESCE(SUM(student_fee_amount_owed - student_fee_paid_to_date), 0) AS total, COUNT(*) AS count").
		Scan(&pending).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var overdueCount int64
	if err := h.DB.Model(&billmodel.StudentFee{}).
		Where("student_fee_school_id = ? AND student_fee_status = ?",
			schoolID, billmodel.StudentFeeStatusOverdue).
		Count(&overdueCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var monthly []dto.MonthlyCollection
	if err := h.DB.Model(&paymodel.Payment{}).
		Where("payment_school_id = ? AND payment_date >= ? AND payment_date < ?", schoolID, from, toExcl).
		Select("to_char(payment_date, 'YYYY-MM') AS month, COALESCE(SUM(payment_amount), 0) AS total").
		Group("to_char(payment_date, 'YYYY-MM')").
		Order("month ASC").
		Scan(&monthly).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if monthly == nil {
		monthly = []dto.MonthlyCollection{}
	}

	resp := dto.CollectionStatsResponse{
		From:              from.Format(isoDate),
		To:                toExcl.AddDate(0, 0, -1).Format(isoDate),
		TotalPaid:         totalPaid,
		TotalPending:      pending.Total,
		PendingCount:      pending.Count,
		OverdueCount:      overdueCount,
		CollectionRate:    dto.ComputeCollectionRate(totalPaid, pending.Total),
		MonthlyCollection: monthly,
	}
	return helper.JsonOK(c, "", resp)
}
