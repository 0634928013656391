package model

// BarView is a PriceBar rendered for a history payload, with the date
// flattened to YYYY-MM-DD.
type BarView struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// ReturnBarView annotates a BarView with the fractional close-over-close
// return. The first bar of a series (and any bar following a zero close)
// carries an explicit null, never zero.
type ReturnBarView struct {
	BarView
	Return *float64 `json:"return"`
}

type HistoryPayload struct {
	Type         string     `json:"type"`
	TimeSeries   TimeSeries `json:"time_series"`
	PriceHistory any        `json:"price_history"`
}

// HistoryResponse is keyed by ticker, matching the payload shape clients
// already consume.
type HistoryResponse map[string]HistoryPayload
