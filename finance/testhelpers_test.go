package finance

import (
	"time"

	"github.com/lminimalist/promesse-finance-api/model"
)

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func bar(date string, close float64, volume int64) model.PriceBar {
	return model.PriceBar{
		Date:   day(date),
		Open:   close - 1,
		High:   close + 2,
		Low:    close - 2,
		Close:  close,
		Volume: volume,
	}
}

func dates(bars []model.PriceBar) []string {
	out := make([]string, len(bars))
	for i, b := range bars {
		out[i] = b.Date.Format("2006-01-02")
	}
	return out
}
