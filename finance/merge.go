package finance

import (
	"sort"
	"time"

	"github.com/lminimalist/promesse-finance-api/customerrors"
	"github.com/lminimalist/promesse-finance-api/model"
)

// Merge appends the non-duplicate tail of incoming onto the asset's
// stored history. Incoming bars whose date already exists are silently
// dropped, which makes a re-merge of the same batch a no-op. Any
// remaining bar that would need insertion before the stored tail fails
// the whole merge with a MergeOrderError and leaves the asset untouched.
func Merge(asset *model.Asset, incoming []model.PriceBar) error {
	if len(incoming) == 0 {
		return nil
	}

	// The fetcher already sorts ascending; re-sort a copy anyway so a
	// misbehaving source cannot corrupt the stored ordering.
	bars := make([]model.PriceBar, len(incoming))
	copy(bars, incoming)
	sort.Slice(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })

	seen := make(map[string]struct{}, len(asset.PriceHistory))
	for _, b := range asset.PriceHistory {
		seen[dayKey(b.Date)] = struct{}{}
	}

	last, hasLast := asset.LastBar()
	var tail []model.PriceBar
	for _, b := range bars {
		b.Date = DayOf(b.Date)
		if _, dup := seen[dayKey(b.Date)]; dup {
			continue
		}
		if hasLast && !b.Date.After(DayOf(last.Date)) {
			return &customerrors.MergeOrderError{Ticker: asset.Ticker, Date: b.Date}
		}
		seen[dayKey(b.Date)] = struct{}{}
		tail = append(tail, b)
		last, hasLast = b, true
	}

	asset.PriceHistory = append(asset.PriceHistory, tail...)
	return nil
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
