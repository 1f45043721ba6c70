// file: internals/features/finance/stats/dto/collection_stats_dto_test.go
package dto

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestComputeCollectionRate(t *testing.T) {
	tests := []struct {
		name         string
		totalPaid    string
		totalPending string
		want         string
	}{
		{"nothing collected nothing owed", "0", "0", "0"},
		{"everything collected", "1000.00", "0", "100"},
		{"nothing collected", "0", "1000.00", "0"},
		{"forty percent", "400.00", "600.00", "40"},
		{"rounds to two decimals", "1", "2", "33.33"},
		{"rounds half up", "1", "7", "12.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeCollectionRate(d(tt.totalPaid), d(tt.totalPending))
			assert.True(t, got.Equal(d(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}
