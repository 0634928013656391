package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/lminimalist/promesse-finance-api/service"
)

// TickerLister enumerates the tickers worth keeping fresh.
type TickerLister interface {
	ListTickers(ctx context.Context) ([]string, error)
}

// Refresher re-reconciles every stored asset on a cron schedule, so the
// first request after a market close does not pay the fetch latency.
type Refresher struct {
	cron   *cron.Cron
	assets service.AssetService
	lister TickerLister
}

func NewRefresher(spec string, assets service.AssetService, lister TickerLister) (*Refresher, error) {
	r := &Refresher{
		cron:   cron.New(),
		assets: assets,
		lister: lister,
	}
	if _, err := r.cron.AddFunc(spec, r.refreshAll); err != nil {
		return nil, fmt.Errorf("register refresh task: %w", err)
	}
	return r, nil
}

func (r *Refresher) Start() {
	r.cron.Start()
	log.Info().Msg("Scheduled asset refresh enabled")
}

func (r *Refresher) Stop() {
	r.cron.Stop()
}

func (r *Refresher) refreshAll() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	tickers, err := r.lister.ListTickers(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Could not list tickers for refresh")
		return
	}

	for _, ticker := range tickers {
		_, outcome, err := r.assets.Reconcile(ctx, ticker)
		if err != nil {
			log.Warn().Str("ticker", ticker).Err(err).Msg("Scheduled refresh failed")
			continue
		}
		if outcome == service.OutcomeUpdated {
			log.Info().Str("ticker", ticker).Msg("Scheduled refresh merged new bars")
		}
	}
}
