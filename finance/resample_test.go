package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lminimalist/promesse-finance-api/model"
)

func TestResampleMonthlyAggregatesOneMonth(t *testing.T) {
	bars := []model.PriceBar{
		{Date: day("2024-01-02"), Open: 10, High: 12, Low: 9, Close: 11, Volume: 100},
		{Date: day("2024-01-15"), Open: 11, High: 15, Low: 8, Close: 14, Volume: 200},
		{Date: day("2024-01-31"), Open: 14, High: 14, Low: 12, Close: 13, Volume: 300},
	}

	out := Resample(bars, model.SeriesMonthly)
	require.Len(t, out, 1)

	bucket := out[0]
	assert.Equal(t, "2024-01-01", bucket.Date.Format("2006-01-02"))
	assert.Equal(t, 10.0, bucket.Open, "open of the first bar")
	assert.Equal(t, 13.0, bucket.Close, "close of the last bar")
	assert.Equal(t, 15.0, bucket.High)
	assert.Equal(t, 8.0, bucket.Low)
	assert.Equal(t, int64(600), bucket.Volume)
}

func TestResampleMonthlyLabelSkipsWeekend(t *testing.T) {
	// June 2024 starts on a Saturday; the bucket is labeled by the first
	// business day, Monday the 3rd.
	bars := []model.PriceBar{
		{Date: day("2024-06-03"), Open: 10, High: 11, Low: 9, Close: 10, Volume: 50},
		{Date: day("2024-06-14"), Open: 10, High: 12, Low: 9, Close: 11, Volume: 60},
	}

	out := Resample(bars, model.SeriesMonthly)
	require.Len(t, out, 1)
	assert.Equal(t, "2024-06-03", out[0].Date.Format("2006-01-02"))
}

func TestResampleWeeklyLabelsByMonday(t *testing.T) {
	bars := []model.PriceBar{
		bar("2024-01-08", 100, 10), // Monday
		bar("2024-01-10", 101, 20), // Wednesday
		bar("2024-01-12", 102, 30), // Friday
		bar("2024-01-16", 103, 40), // next Tuesday
	}

	out := Resample(bars, model.SeriesWeekly)
	require.Len(t, out, 2)
	assert.Equal(t, "2024-01-08", out[0].Date.Format("2006-01-02"))
	assert.Equal(t, "2024-01-15", out[1].Date.Format("2006-01-02"))
	assert.Equal(t, 102.0, out[0].Close)
	assert.Equal(t, int64(60), out[0].Volume)
}

func TestResampleConservesVolume(t *testing.T) {
	bars := []model.PriceBar{
		bar("2024-01-02", 100, 11),
		bar("2024-01-31", 101, 22),
		bar("2024-02-01", 102, 33),
		bar("2024-02-29", 103, 44),
		bar("2024-03-01", 104, 55),
	}

	var total int64
	for _, b := range bars {
		total += b.Volume
	}

	for _, series := range []model.TimeSeries{model.SeriesWeekly, model.SeriesMonthly} {
		var sum int64
		for _, b := range Resample(bars, series) {
			sum += b.Volume
		}
		assert.Equal(t, total, sum, "volume must be conserved for %s", series)
	}
}

func TestResampleEmptyInput(t *testing.T) {
	assert.Empty(t, Resample(nil, model.SeriesWeekly))
	assert.Empty(t, Resample([]model.PriceBar{}, model.SeriesMonthly))
}

func TestResampleDailyPassesThrough(t *testing.T) {
	bars := []model.PriceBar{bar("2024-01-02", 100, 10)}
	assert.Equal(t, bars, Resample(bars, model.SeriesDaily))
}
