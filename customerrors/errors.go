package customerrors

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrUpstreamNotFound means the ticker does not exist at the source.
	ErrUpstreamNotFound = errors.New("asset does not exist in the market")
	// ErrUpstreamTimeout means the upstream fetch did not answer in time.
	// Safe for the caller to retry; stored state is never mutated.
	ErrUpstreamTimeout = errors.New("upstream fetch timed out")
	// ErrRangeInvalid means the requested start date is after the end date.
	ErrRangeInvalid = errors.New("start date cannot be greater than end date")
	// ErrEmptyRange means the range is valid but holds no trading data,
	// e.g. both dates fall on a weekend. Treated as a no-op, not a failure.
	ErrEmptyRange = errors.New("no trading data in the requested range")
)

// MergeOrderError signals an attempted out-of-order historical backfill:
// a fetched bar would need insertion before the stored tail rather than
// an append. Indicates a caller or upstream bug.
type MergeOrderError struct {
	Ticker string
	Date   time.Time
}

func (e *MergeOrderError) Error() string {
	return fmt.Sprintf("cannot merge bar dated %s into %s: insertion before the stored tail is unsupported",
		e.Date.Format("2006-01-02"), e.Ticker)
}
