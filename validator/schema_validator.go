package validator

import (
	"fmt"

	"github.com/Oudwins/zog"

	"github.com/lminimalist/promesse-finance-api/model"
)

var BarShape = zog.Struct(zog.Shape{
	"Open":   zog.Float64().GTE(0),
	"High":   zog.Float64().GTE(0),
	"Low":    zog.Float64().GTE(0),
	"Close":  zog.Float64().GTE(0),
	"Volume": zog.Int64().GTE(0),
}).TestFunc(LowHighTest)

// LowHighTest enforces low <= high. The other OHLC orderings are not
// checked on purpose: the upstream feed is trusted as-is.
func LowHighTest(dataPtr any, ctx zog.Ctx) bool {
	bar, ok := dataPtr.(*model.PriceBar)
	if !ok {
		return true
	}

	if bar.Low > bar.High {
		ctx.AddIssue(&zog.ZogIssue{
			Path:    "low",
			Message: "low cannot exceed high",
		})
		return false
	}
	return true
}

// ValidateBars rejects the first malformed bar in a batch. Called at the
// store boundary so a bad upstream row never reaches the database.
func ValidateBars(bars []model.PriceBar) error {
	for i := range bars {
		if bars[i].Date.IsZero() {
			return fmt.Errorf("bar %d has no date", i)
		}
		if issues := BarShape.Validate(&bars[i]); issues != nil {
			return fmt.Errorf("invalid bar dated %s: %v", bars[i].Date.Format("2006-01-02"), issues)
		}
	}
	return nil
}
