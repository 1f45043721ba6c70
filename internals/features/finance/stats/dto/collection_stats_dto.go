// file: internals/features/finance/stats/dto/collection_stats_dto.go
package dto

import (
	"github.com/shopspring/decimal"
)

////////////////////////////////////////////////////////////////////////////////
// COLLECTION STATS — DTO
////////////////////////////////////////////////////////////////////////////////

type MonthlyCollection struct {
	Month string          `json:"month"` // YYYY-MM
	Total decimal.Decimal `json:"total"`
}

type CollectionStatsResponse struct {
	From string `json:"from"`
	To   string `json:"to"`

	TotalPaid    decimal.Decimal `json:"total_paid"`
	TotalPending decimal.Decimal `json:"total_pending"`
	PendingCount int64           `json:"pending_count"`
	OverdueCount int64           `json:"overdue_count"`

	// percentage 0..100, two decimals
	CollectionRate decimal.Decimal `json:"collection_rate"`

	MonthlyCollection []MonthlyCollection `json:"monthly_collection"`
}

// ComputeCollectionRate = totalPaid / (totalPaid + totalPending) * 100,
// rounded to two decimals; 0 when both are 0 (no division by zero, and an
// empty school is 0% collected, not 100%).
func ComputeCollectionRate(totalPaid, totalPending decimal.Decimal) decimal.Decimal {
	denom := totalPaid.Add(totalPending)
	if denom.IsZero() {
		return decimal.Zero
	}
	return totalPaid.Div(denom).Mul(decimal.NewFromInt(100)).Round(2)
}
