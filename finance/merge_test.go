package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lminimalist/promesse-finance-api/customerrors"
	"github.com/lminimalist/promesse-finance-api/model"
)

func TestMergeIntoEmptySeries(t *testing.T) {
	asset := &model.Asset{Ticker: "AAPL"}
	incoming := []model.PriceBar{
		bar("2024-01-02", 100, 10),
		bar("2024-01-03", 101, 20),
		bar("2024-01-04", 102, 30),
	}

	require.NoError(t, Merge(asset, incoming))
	assert.Equal(t, []string{"2024-01-02", "2024-01-03", "2024-01-04"}, dates(asset.PriceHistory))
}

func TestMergeIsIdempotent(t *testing.T) {
	asset := &model.Asset{Ticker: "AAPL"}
	batch := []model.PriceBar{
		bar("2024-01-02", 100, 10),
		bar("2024-01-03", 101, 20),
	}

	require.NoError(t, Merge(asset, batch))
	first := append([]model.PriceBar(nil), asset.PriceHistory...)

	require.NoError(t, Merge(asset, batch))
	assert.Equal(t, first, asset.PriceHistory)
}

func TestMergeDropsOverlappingBars(t *testing.T) {
	asset := &model.Asset{
		Ticker: "AAPL",
		PriceHistory: []model.PriceBar{
			bar("2024-01-04", 100, 10),
			bar("2024-01-05", 101, 20),
		},
	}

	// The fetch for a missing range starts at the last stored date, so
	// the first incoming bar duplicates it.
	incoming := []model.PriceBar{
		bar("2024-01-05", 101, 20),
		bar("2024-01-08", 103, 40),
	}

	require.NoError(t, Merge(asset, incoming))
	assert.Equal(t, []string{"2024-01-04", "2024-01-05", "2024-01-08"}, dates(asset.PriceHistory))
}

func TestMergeRejectsBackfill(t *testing.T) {
	asset := &model.Asset{
		Ticker: "AAPL",
		PriceHistory: []model.PriceBar{
			bar("2024-01-04", 100, 10),
			bar("2024-01-08", 103, 40),
		},
	}

	// 2024-01-03 is new but earlier than the stored tail: it would need
	// insertion, which the merger does not support.
	err := Merge(asset, []model.PriceBar{bar("2024-01-03", 99, 5)})

	var mergeErr *customerrors.MergeOrderError
	require.ErrorAs(t, err, &mergeErr)
	assert.Equal(t, "AAPL", mergeErr.Ticker)
	assert.Equal(t, []string{"2024-01-04", "2024-01-08"}, dates(asset.PriceHistory), "failed merge must leave the series untouched")
}

func TestMergeResortsIncoming(t *testing.T) {
	asset := &model.Asset{
		Ticker:       "AAPL",
		PriceHistory: []model.PriceBar{bar("2024-01-04", 100, 10)},
	}

	incoming := []model.PriceBar{
		bar("2024-01-09", 104, 50),
		bar("2024-01-08", 103, 40),
	}

	require.NoError(t, Merge(asset, incoming))
	assert.Equal(t, []string{"2024-01-04", "2024-01-08", "2024-01-09"}, dates(asset.PriceHistory))
}

func TestMergeKeepsAscendingUniqueInvariant(t *testing.T) {
	asset := &model.Asset{Ticker: "AAPL"}
	batches := [][]model.PriceBar{
		{bar("2024-01-02", 100, 10), bar("2024-01-03", 101, 20)},
		{bar("2024-01-03", 101, 20), bar("2024-01-04", 102, 30), bar("2024-01-04", 102, 30)},
		{bar("2024-01-05", 103, 40)},
	}

	for _, batch := range batches {
		require.NoError(t, Merge(asset, batch))
	}

	for i := 1; i < len(asset.PriceHistory); i++ {
		assert.True(t, asset.PriceHistory[i-1].Date.Before(asset.PriceHistory[i].Date),
			"bars must stay strictly ascending, got %v", dates(asset.PriceHistory))
	}
}

func TestMergeEmptyBatchIsNoOp(t *testing.T) {
	asset := &model.Asset{
		Ticker:       "AAPL",
		PriceHistory: []model.PriceBar{bar("2024-01-04", 100, 10)},
	}

	require.NoError(t, Merge(asset, nil))
	assert.Len(t, asset.PriceHistory, 1)
}
