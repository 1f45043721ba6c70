// file: internals/helpers/pagination_test.go
package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeOrderClause(t *testing.T) {
	allowed := map[string]string{
		"created_at": "student_fee_created_at",
		"due_date":   "student_fee_due_date",
		"amount":     "student_fee_amount_owed",
	}

	tests := []struct {
		name      string
		sortBy    string
		sortOrder string
		want      string
	}{
		{"known key desc", "due_date", "desc", "student_fee_due_date DESC"},
		{"known key asc", "amount", "asc", "student_fee_amount_owed ASC"},
		{"key is case-insensitive", "Due_Date", "asc", "student_fee_due_date ASC"},
		{"unknown key falls back to default", "password; DROP TABLE", "asc", "student_fee_created_at ASC"},
		{"empty key uses default", "", "desc", "student_fee_created_at DESC"},
		{"bogus order defaults to desc", "amount", "sideways", "student_fee_amount_owed DESC"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Params{SortBy: tt.sortBy, SortOrder: tt.sortOrder}
			got, err := p.SafeOrderClause(allowed, "created_at")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("missing default key errors", func(t *testing.T) {
		p := Params{SortBy: "nope"}
		_, err := p.SafeOrderClause(map[string]string{"a": "col_a"}, "also_nope")
		assert.Error(t, err)
	})
}

func TestParamsLimitOffset(t *testing.T) {
	p := Params{Page: 3, PerPage: 25}
	assert.Equal(t, 25, p.Limit())
	assert.Equal(t, 50, p.Offset())

	first := Params{Page: 1, PerPage: 50}
	assert.Equal(t, 0, first.Offset())
}

func TestBuildMeta(t *testing.T) {
	t.Run("middle page", func(t *testing.T) {
		meta := BuildMeta(120, Params{Page: 2, PerPage: 25})
		assert.Equal(t, int64(120), meta.Total)
		assert.Equal(t, 5, meta.TotalPages)
		assert.True(t, meta.HasPrev)
		assert.True(t, meta.HasNext)
		require.NotNil(t, meta.PrevPage)
		require.NotNil(t, meta.NextPage)
		assert.Equal(t, 1, *meta.PrevPage)
		assert.Equal(t, 3, *meta.NextPage)
	})

	t.Run("last page", func(t *testing.T) {
		meta := BuildMeta(120, Params{Page: 5, PerPage: 25})
		assert.True(t, meta.HasPrev)
		assert.False(t, meta.HasNext)
		assert.Nil(t, meta.NextPage)
	})

	t.Run("empty result", func(t *testing.T) {
		meta := BuildMeta(0, Params{Page: 1, PerPage: 25})
		assert.Equal(t, 0, meta.TotalPages)
		assert.False(t, meta.HasPrev)
		assert.False(t, meta.HasNext)
	})
}
