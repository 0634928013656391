package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	localCache "github.com/lminimalist/promesse-finance-api/cache"
	"github.com/lminimalist/promesse-finance-api/customerrors"
	"github.com/lminimalist/promesse-finance-api/database"
	"github.com/lminimalist/promesse-finance-api/finance"
	"github.com/lminimalist/promesse-finance-api/model"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

type YahooClient struct {
	client *resty.Client
}

func NewYahooClient(timeout time.Duration) *YahooClient {
	client := resty.New().
		SetBaseURL("https://query1.finance.yahoo.com/v8/finance/chart").
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(1 * time.Second).
		SetHeaders(map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
			"User-Agent":   userAgent,
		})

	return &YahooClient{
		client: client,
	}
}

// FetchPriceHistory pulls daily bars for [start, end] from the chart API
// and returns them ascending by date. Failures are classified into the
// customerrors taxonomy so the caller can tell "retry me" from "give up".
func (y *YahooClient) FetchPriceHistory(ctx context.Context, ticker string, start, end time.Time) ([]model.PriceBar, error) {
	if start.After(end) {
		return nil, fmt.Errorf("%w: %s > %s", customerrors.ErrRangeInvalid,
			start.Format("2006-01-02"), end.Format("2006-01-02"))
	}

	cacheKey := "yahoo_history_" + ticker + "_" + start.Format("2006-01-02") + "_" + end.Format("2006-01-02")
	var bars []model.PriceBar
	if database.RedisHelper != nil {
		if ok, _ := database.RedisHelper.GetAsStruct(cacheKey, &bars); ok {
			return bars, nil
		}
	}
	if cached, found := localCache.YahooHistoryCache.Get(cacheKey); found {
		return cached.([]model.PriceBar), nil
	}

	// Yahoo wants both period bounds shifted forward one day to cover
	// the requested range. Quirk inherited from the upstream API.
	var chartResponse model.YahooChartResponse
	resp, err := y.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"period1":  strconv.FormatInt(start.AddDate(0, 0, 1).Unix(), 10),
			"period2":  strconv.FormatInt(end.AddDate(0, 0, 1).Unix(), 10),
			"interval": "1d",
			"events":   "history",
		}).
		SetResult(&chartResponse).
		Get("/" + ticker)

	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: %s", customerrors.ErrUpstreamTimeout, ticker)
		}
		return nil, fmt.Errorf("yahoo request failed for %s: %w", ticker, err)
	}

	if resp.StatusCode() == http.StatusNotFound || chartResponse.Chart.Error != nil {
		log.Info().Str("ticker", ticker).Msg("Yahoo does not know this ticker")
		return nil, fmt.Errorf("%w: %s", customerrors.ErrUpstreamNotFound, ticker)
	}
	if !resp.IsSuccess() || len(chartResponse.Chart.Result) == 0 {
		return nil, fmt.Errorf("yahoo request failed for %s: status %d", ticker, resp.StatusCode())
	}

	bars = toPriceBars(chartResponse.Chart.Result[0])
	if len(bars) == 0 {
		return nil, fmt.Errorf("%w: %s", customerrors.ErrEmptyRange, ticker)
	}

	localCache.YahooHistoryCache.SetDefault(cacheKey, bars)
	if database.RedisHelper != nil {
		database.RedisHelper.Set(cacheKey, bars, 1*time.Hour)
	}

	return bars, nil
}

// toPriceBars flattens the chart arrays, skipping the null rows Yahoo
// emits for non-trading days. Timestamps arrive ascending already.
func toPriceBars(result model.ChartResult) []model.PriceBar {
	if len(result.Indicators.Quote) == 0 {
		return nil
	}

	quote := result.Indicators.Quote[0]
	n := len(result.Timestamp)
	for _, arr := range [][]float64{quote.Open, quote.High, quote.Low, quote.Close} {
		if len(arr) < n {
			n = len(arr)
		}
	}
	if len(quote.Volume) < n {
		n = len(quote.Volume)
	}

	bars := make([]model.PriceBar, 0, n)
	for i := 0; i < n; i++ {
		if quote.Open[i] == 0 && quote.Volume[i] == 0 {
			continue
		}
		bars = append(bars, model.PriceBar{
			Date:   finance.DayOf(time.Unix(result.Timestamp[i], 0).UTC()),
			Open:   quote.Open[i],
			High:   quote.High[i],
			Low:    quote.Low[i],
			Close:  quote.Close[i],
			Volume: quote.Volume[i],
		})
	}
	return bars
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
