package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"github.com/lminimalist/promesse-finance-api/customerrors"
	"github.com/lminimalist/promesse-finance-api/finance"
	"github.com/lminimalist/promesse-finance-api/model"
	"github.com/lminimalist/promesse-finance-api/util"
)

// HistoryFetcher is the upstream price source. The concrete client lives
// in the client package; tests plug in canned sequences.
type HistoryFetcher interface {
	FetchPriceHistory(ctx context.Context, ticker string, start, end time.Time) ([]model.PriceBar, error)
}

// AssetStore is the durable home of price series. Put must be an atomic
// full-document write.
type AssetStore interface {
	Get(ctx context.Context, ticker string) (*model.Asset, error)
	Put(ctx context.Context, asset *model.Asset) error
}

// Outcome tells the caller what a reconciliation actually did.
type Outcome int

const (
	OutcomeUnchanged Outcome = iota
	OutcomeCreated
	OutcomeUpdated
)

// HistoryQuery selects the view of a stored series: an inclusive date
// window, an optional resampling period and optional return annotation.
type HistoryQuery struct {
	Start          time.Time
	End            time.Time
	TimeSeries     model.TimeSeries
	IncludeReturns bool
}

type AssetService interface {
	Reconcile(ctx context.Context, ticker string) (*model.Asset, Outcome, error)
	ForceCreate(ctx context.Context, ticker string) (*model.Asset, error)
	Lookup(ctx context.Context, ticker string) (*model.Asset, error)
	View(asset *model.Asset, query HistoryQuery) model.HistoryResponse
}

type AssetServiceImpl struct {
	store   AssetStore
	fetcher HistoryFetcher
	now     func() time.Time
	locks   sync.Map // ticker -> *sync.Mutex
}

func NewAssetService(store AssetStore, fetcher HistoryFetcher) AssetService {
	return &AssetServiceImpl{
		store:   store,
		fetcher: fetcher,
		now:     time.Now,
	}
}

// Reconcile ensures a series exists for the ticker and is fresh against
// the market calendar, fetching only the missing tail when it is not.
// Fetch failures never touch stored state.
func (s *AssetServiceImpl) Reconcile(ctx context.Context, ticker string) (*model.Asset, Outcome, error) {
	ticker = strings.ToUpper(ticker)

	// One in-flight refresh per ticker. A racing double-fetch would be
	// harmless anyway since Merge drops duplicate dates.
	unlock := s.lockTicker(ticker)
	defer unlock()

	asset, err := s.store.Get(ctx, ticker)
	if err != nil {
		return nil, OutcomeUnchanged, err
	}

	if asset == nil {
		created, err := s.createFromUpstream(ctx, ticker)
		if err != nil {
			return nil, OutcomeUnchanged, err
		}
		return created, OutcomeCreated, nil
	}

	now := s.now()
	start, end, stale := finance.MissingRange(asset, now)
	if !stale {
		return asset, OutcomeUnchanged, nil
	}

	bars, err := s.fetcher.FetchPriceHistory(ctx, ticker, start, end)
	if err != nil {
		// A weekend gap yields no rows upstream; that is "nothing to
		// do", not a failure.
		if errors.Is(err, customerrors.ErrEmptyRange) {
			return asset, OutcomeUnchanged, nil
		}
		return nil, OutcomeUnchanged, err
	}

	before := len(asset.PriceHistory)
	if err := finance.Merge(asset, bars); err != nil {
		log.Error().Str("ticker", ticker).Err(err).Msg("Out-of-order bars from upstream")
		return nil, OutcomeUnchanged, err
	}
	if len(asset.PriceHistory) == before {
		return asset, OutcomeUnchanged, nil
	}

	if err := s.store.Put(ctx, asset); err != nil {
		return nil, OutcomeUnchanged, err
	}

	log.Info().Str("ticker", ticker).Int("new_bars", len(asset.PriceHistory)-before).Msg("Series updated")
	return asset, OutcomeUpdated, nil
}

// ForceCreate fetches full history and overwrites whatever is stored.
func (s *AssetServiceImpl) ForceCreate(ctx context.Context, ticker string) (*model.Asset, error) {
	ticker = strings.ToUpper(ticker)

	unlock := s.lockTicker(ticker)
	defer unlock()

	return s.createFromUpstream(ctx, ticker)
}

// Lookup reads the stored series without consulting the upstream. Nil
// when the ticker has never been stored.
func (s *AssetServiceImpl) Lookup(ctx context.Context, ticker string) (*model.Asset, error) {
	return s.store.Get(ctx, strings.ToUpper(ticker))
}

func (s *AssetServiceImpl) createFromUpstream(ctx context.Context, ticker string) (*model.Asset, error) {
	bars, err := s.fetcher.FetchPriceHistory(ctx, ticker, finance.FetchEpoch, s.now())
	if err != nil {
		return nil, err
	}

	asset := &model.Asset{Ticker: ticker}
	if err := finance.Merge(asset, bars); err != nil {
		return nil, err
	}
	if err := s.store.Put(ctx, asset); err != nil {
		return nil, err
	}

	log.Info().Str("ticker", ticker).Int("bars", len(asset.PriceHistory)).Msg("Series created")
	return asset, nil
}

// View renders a stored series through the date filter, the optional
// resampler and the optional returns annotation. The stored bars are
// deep-copied first so the pipeline never mutates what Reconcile holds.
func (s *AssetServiceImpl) View(asset *model.Asset, query HistoryQuery) model.HistoryResponse {
	var bars []model.PriceBar
	if err := copier.CopyWithOption(&bars, asset.PriceHistory, copier.Option{DeepCopy: true}); err != nil {
		log.Error().Str("ticker", asset.Ticker).Err(err).Msg("Could not copy price history")
	}

	start := query.Start
	if start.IsZero() {
		start = util.EarliestDate
	}
	end := query.End
	if end.IsZero() {
		end = s.now()
	}
	bars = filterRange(bars, start, end)

	series := query.TimeSeries
	if series == "" {
		series = model.SeriesDaily
	}
	if series != model.SeriesDaily {
		bars = finance.Resample(bars, series)
	}

	payload := model.HistoryPayload{
		Type:       asset.Category,
		TimeSeries: series,
	}
	if query.IncludeReturns {
		payload.PriceHistory = annotateReturns(bars)
	} else {
		payload.PriceHistory = toBarViews(bars)
	}

	return model.HistoryResponse{asset.Ticker: payload}
}

func (s *AssetServiceImpl) lockTicker(ticker string) func() {
	mu, _ := s.locks.LoadOrStore(ticker, &sync.Mutex{})
	lock := mu.(*sync.Mutex)
	lock.Lock()
	return lock.Unlock
}

func filterRange(bars []model.PriceBar, start, end time.Time) []model.PriceBar {
	filtered := make([]model.PriceBar, 0, len(bars))
	for _, b := range bars {
		if b.Date.Before(start) || b.Date.After(end) {
			continue
		}
		filtered = append(filtered, b)
	}
	return filtered
}

func toBarViews(bars []model.PriceBar) []model.BarView {
	views := make([]model.BarView, len(bars))
	for i, b := range bars {
		views[i] = model.BarView{
			Date:   b.Date.Format(util.DateLayout),
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: b.Volume,
		}
	}
	return views
}

func annotateReturns(bars []model.PriceBar) []model.ReturnBarView {
	points := finance.Returns(bars)
	views := make([]model.ReturnBarView, len(bars))
	for i, b := range bars {
		views[i] = model.ReturnBarView{
			BarView: model.BarView{
				Date:   b.Date.Format(util.DateLayout),
				Open:   b.Open,
				High:   b.High,
				Low:    b.Low,
				Close:  b.Close,
				Volume: b.Volume,
			},
			Return: points[i].Return,
		}
	}
	return views
}
