package model

type TimeSeries string

const (
	SeriesDaily   TimeSeries = "daily"
	SeriesWeekly  TimeSeries = "weekly"
	SeriesMonthly TimeSeries = "monthly"
)

// ParseTimeSeries maps a query value to a TimeSeries. The empty string
// defaults to daily; any other unknown value is rejected.
func ParseTimeSeries(value string) (TimeSeries, bool) {
	switch TimeSeries(value) {
	case "":
		return SeriesDaily, true
	case SeriesDaily, SeriesWeekly, SeriesMonthly:
		return TimeSeries(value), true
	default:
		return "", false
	}
}
