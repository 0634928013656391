package model

import "time"

const AssetCollectionName = "assets"

// PriceBar holds one trading day of OHLCV data. Dates are stored at
// midnight UTC with no time component.
type PriceBar struct {
	Date   time.Time `bson:"date" json:"date"`
	Open   float64   `bson:"open" json:"open"`
	High   float64   `bson:"high" json:"high"`
	Low    float64   `bson:"low" json:"low"`
	Close  float64   `bson:"close" json:"close"`
	Volume int64     `bson:"volume" json:"volume"`
}

// ResampledBar is a PriceBar aggregated over a week or month bucket.
// It is derived on read and never persisted.
type ResampledBar = PriceBar

// ReturnPoint pairs a date with the fractional close-over-close change
// against the previous bar. Return is nil when no prior close exists or
// the prior close is zero.
type ReturnPoint struct {
	Date   time.Time `json:"date"`
	Return *float64  `json:"return"`
}

// Asset is the stored price series for one ticker. PriceHistory is kept
// strictly ascending by date with no duplicate dates.
type Asset struct {
	Ticker       string     `bson:"_id" json:"ticker"`
	Category     string     `bson:"category" json:"category"`
	PriceHistory []PriceBar `bson:"price_history" json:"priceHistory"`
}

func (a *Asset) LastBar() (PriceBar, bool) {
	if len(a.PriceHistory) == 0 {
		return PriceBar{}, false
	}
	return a.PriceHistory[len(a.PriceHistory)-1], true
}
