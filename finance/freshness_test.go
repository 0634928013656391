package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lminimalist/promesse-finance-api/model"
)

func TestTradingReferenceDate(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{"weekday", time.Date(2024, 1, 9, 18, 0, 0, 0, time.UTC), "2024-01-09"},
		{"saturday rolls to friday", time.Date(2024, 1, 6, 12, 0, 0, 0, time.UTC), "2024-01-05"},
		{"sunday rolls to friday", time.Date(2024, 1, 7, 12, 0, 0, 0, time.UTC), "2024-01-05"},
		// 03:00 UTC Monday is still 23:00 Sunday on the exchange clock.
		{"utc monday before market midnight", time.Date(2024, 1, 8, 3, 0, 0, 0, time.UTC), "2024-01-05"},
		{"utc saturday before market midnight", time.Date(2024, 1, 6, 3, 0, 0, 0, time.UTC), "2024-01-05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TradingReferenceDate(tt.now).Format("2006-01-02"))
		})
	}
}

func TestIsStaleOnWeekend(t *testing.T) {
	// Series ends Friday 2024-01-05; Saturday must not count as a lag.
	asset := &model.Asset{
		Ticker:       "AAPL",
		PriceHistory: []model.PriceBar{bar("2024-01-05", 100, 10)},
	}

	saturday := time.Date(2024, 1, 6, 15, 0, 0, 0, time.UTC)
	assert.False(t, IsStale(asset, saturday))

	tuesday := time.Date(2024, 1, 9, 15, 0, 0, 0, time.UTC)
	assert.True(t, IsStale(asset, tuesday))
}

func TestEmptySeriesIsAlwaysStale(t *testing.T) {
	asset := &model.Asset{Ticker: "AAPL"}
	now := time.Date(2024, 1, 9, 15, 0, 0, 0, time.UTC)

	assert.True(t, IsStale(asset, now))

	start, end, ok := MissingRange(asset, now)
	require.True(t, ok)
	assert.Equal(t, FetchEpoch, start, "empty series requests full history")
	assert.Equal(t, now, end)
}

func TestMissingRangeStartsAtLastBar(t *testing.T) {
	asset := &model.Asset{
		Ticker:       "AAPL",
		PriceHistory: []model.PriceBar{bar("2024-01-04", 100, 10), bar("2024-01-05", 101, 20)},
	}
	now := time.Date(2024, 1, 9, 15, 0, 0, 0, time.UTC)

	start, end, ok := MissingRange(asset, now)
	require.True(t, ok)
	assert.Equal(t, day("2024-01-05"), start, "range overlaps the last stored bar; Merge drops the duplicate")
	assert.Equal(t, now, end)
}

func TestMissingRangeWhenFresh(t *testing.T) {
	asset := &model.Asset{
		Ticker:       "AAPL",
		PriceHistory: []model.PriceBar{bar("2024-01-05", 100, 10)},
	}
	saturday := time.Date(2024, 1, 6, 15, 0, 0, 0, time.UTC)

	_, _, ok := MissingRange(asset, saturday)
	assert.False(t, ok)
}
