package finance

import "github.com/lminimalist/promesse-finance-api/model"

// Returns derives the period-over-period fractional change of close
// prices, one point per input bar in the same order. The first point has
// no prior close and stays nil; so does any point whose prior close is
// exactly zero. Values are signed fractions, not percentages.
func Returns(bars []model.PriceBar) []model.ReturnPoint {
	points := make([]model.ReturnPoint, len(bars))
	for i, b := range bars {
		points[i].Date = b.Date
		if i == 0 {
			continue
		}
		prev := bars[i-1].Close
		if prev == 0 {
			continue
		}
		r := (b.Close - prev) / prev
		points[i].Return = &r
	}
	return points
}
