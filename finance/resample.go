package finance

import (
	"time"

	"github.com/lminimalist/promesse-finance-api/model"
)

// Resample aggregates daily bars into weekly or monthly buckets. Bars
// must already be sorted ascending by date. OHLCV aggregation: open from
// the first bar of the bucket, close from the last, high/low extrema,
// volume summed. Empty input yields empty output. Daily (or any other
// value) passes the bars through untouched.
func Resample(bars []model.PriceBar, series model.TimeSeries) []model.ResampledBar {
	switch series {
	case model.SeriesWeekly:
		return resampleBy(bars, weekLabel)
	case model.SeriesMonthly:
		return resampleBy(bars, monthLabel)
	default:
		return bars
	}
}

func resampleBy(bars []model.PriceBar, label func(time.Time) time.Time) []model.ResampledBar {
	var out []model.ResampledBar
	for _, b := range bars {
		key := label(DayOf(b.Date))
		if n := len(out); n > 0 && out[n-1].Date.Equal(key) {
			bucket := &out[n-1]
			if b.High > bucket.High {
				bucket.High = b.High
			}
			if b.Low < bucket.Low {
				bucket.Low = b.Low
			}
			bucket.Close = b.Close
			bucket.Volume += b.Volume
			continue
		}
		out = append(out, model.ResampledBar{
			Date:   key,
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: b.Volume,
		})
	}
	return out
}

// weekLabel buckets a date into its Sunday-ending calendar week, then
// reports the bucket as the week's Monday (six days back from the end).
// The two label conventions below are intentionally different: clients
// depend on the exact dates the legacy service produced.
func weekLabel(day time.Time) time.Time {
	daysToSunday := (7 - int(day.Weekday())) % 7
	weekEnd := day.AddDate(0, 0, daysToSunday)
	return weekEnd.AddDate(0, 0, -6)
}

// monthLabel buckets a date into its calendar month, labeled by the
// month's first business day.
func monthLabel(day time.Time) time.Time {
	first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	switch first.Weekday() {
	case time.Saturday:
		return first.AddDate(0, 0, 2)
	case time.Sunday:
		return first.AddDate(0, 0, 1)
	default:
		return first
	}
}
