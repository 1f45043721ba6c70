// file: internals/features/finance/stats/controller/collection_stats_controller_test.go
package controller

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatsRange(t *testing.T) {
	now := time.Date(2025, 8, 29, 10, 0, 0, 0, time.UTC)

	t.Run("defaults to the current calendar year", func(t *testing.T) {
		from, toExcl := statsRange("", "", now)
		assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), from)
		assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), toExcl)
	})

	t.Run("explicit window, inclusive end date", func(t *testing.T) {
		from, toExcl := statsRange("2025-02-01", "2025-06-30", now)
		assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), from)
		// exclusive bound one day later, so any timestamp on the 30th
		// counts, fractional seconds included
		assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), toExcl)

		lastInstant := time.Date(2025, 6, 30, 23, 59, 59, 500_000_000, time.UTC)
		assert.True(t, lastInstant.Before(toExcl))
		assert.False(t, lastInstant.Before(from))
	})

	t.Run("garbage inputs fall back to defaults", func(t *testing.T) {
		from, toExcl := statsRange("last tuesday", "2025-13-99", now)
		assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), from)
		assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), toExcl)
	})

	t.Run("one-sided window keeps the other default", func(t *testing.T) {
		from, toExcl := statsRange("2025-03-01", "", now)
		assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), from)
		assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), toExcl)
	})
}
