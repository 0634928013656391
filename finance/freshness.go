package finance

import (
	"time"

	"github.com/lminimalist/promesse-finance-api/model"
)

// The exchange clock runs on a fixed UTC-4 offset. Not DST aware: the
// original behavior is kept because correcting it shifts observable
// staleness near DST transitions.
const marketUTCOffset = -4 * time.Hour

// FetchEpoch is the start date used when requesting full history for a
// ticker with no stored bars.
var FetchEpoch = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

// TradingReferenceDate returns the most recent calendar date the US
// market is considered open: now shifted to the exchange's local time,
// then rolled back off the weekend (Saturday to Friday, Sunday to Friday).
func TradingReferenceDate(now time.Time) time.Time {
	local := now.UTC().Add(marketUTCOffset)
	day := DayOf(local)
	switch day.Weekday() {
	case time.Saturday:
		day = day.AddDate(0, 0, -1)
	case time.Sunday:
		day = day.AddDate(0, 0, -2)
	}
	return day
}

// IsStale reports whether the stored history lags the market calendar.
// An asset with no bars is always stale.
func IsStale(asset *model.Asset, now time.Time) bool {
	last, ok := asset.LastBar()
	if !ok {
		return true
	}
	return !DayOf(last.Date).Equal(TradingReferenceDate(now))
}

// MissingRange computes the date range a fetch must cover to bring the
// history current. The start deliberately overlaps the last stored bar;
// the duplicate row is dropped by Merge, not here. ok is false when the
// asset is already fresh.
func MissingRange(asset *model.Asset, now time.Time) (start, end time.Time, ok bool) {
	if !IsStale(asset, now) {
		return time.Time{}, time.Time{}, false
	}
	last, hasLast := asset.LastBar()
	if !hasLast {
		return FetchEpoch, now, true
	}
	return DayOf(last.Date), now, true
}

// DayOf truncates a timestamp to its calendar date at midnight UTC.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
