package controller

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lminimalist/promesse-finance-api/model"
	"github.com/lminimalist/promesse-finance-api/service"
	"github.com/lminimalist/promesse-finance-api/util"
)

type AssetController struct {
	assetService service.AssetService
}

func NewAssetController(as service.AssetService) *AssetController {
	return &AssetController{
		assetService: as,
	}
}

// RegisterRoutes sets up the asset route group.
func (ctrl *AssetController) RegisterRoutes(router *gin.RouterGroup) {
	assetGroup := router.Group("/asset")
	{
		assetGroup.GET("/:ticker", ctrl.GetAsset)
		assetGroup.GET("/:ticker/history", ctrl.GetHistory)
		assetGroup.POST("/:ticker/history", ctrl.CreateAsset)
		assetGroup.PUT("/:ticker/history", ctrl.UpsertAsset)
	}
}

// GetAsset handles create-or-refresh-or-return for one ticker.
// @Summary      Get Asset
// @Description  Returns the latest price data of an asset. Unknown tickers are fetched from the market and stored; stale series are refreshed first.
// @Tags         Assets
// @Produce      json
// @Param        ticker  path  string  true  "Ticker symbol (e.g. AAPL)"
// @Success      200  {object}  model.HistoryResponse  "Already stored (fresh or refreshed)"
// @Success      201  {object}  model.HistoryResponse  "Created from the market"
// @Failure      404  {object}  model.Response
// @Failure      504  {object}  model.Response
// @Router       /asset/{ticker} [get]
func (ctrl *AssetController) GetAsset(c *gin.Context) {
	ticker := strings.ToUpper(c.Param("ticker"))

	asset, outcome, err := ctrl.assetService.Reconcile(c.Request.Context(), ticker)
	if err != nil {
		handleServiceError(c, ticker, err)
		return
	}

	status := http.StatusOK
	if outcome == service.OutcomeCreated {
		status = http.StatusCreated
	}
	c.JSON(status, ctrl.assetService.View(asset, service.HistoryQuery{}))
}

// GetHistory serves the stored history with filters, without touching
// the upstream source.
// @Summary      Get Asset History
// @Description  Returns stored price history filtered by date range, optionally resampled (weekly/monthly) and annotated with fractional returns.
// @Tags         Assets
// @Produce      json
// @Param        ticker       path   string  true   "Ticker symbol"
// @Param        start        query  string  false  "Start date (YYYY-MM-DD)"
// @Param        end          query  string  false  "End date (YYYY-MM-DD)"
// @Param        time_series  query  string  false  "daily | weekly | monthly"
// @Param        returns      query  int     false  "Non-zero to annotate returns"
// @Success      200  {object}  model.HistoryResponse
// @Failure      400  {object}  model.Response
// @Failure      404  {object}  model.Response
// @Router       /asset/{ticker}/history [get]
func (ctrl *AssetController) GetHistory(c *gin.Context) {
	ticker := strings.ToUpper(c.Param("ticker"))

	series, ok := model.ParseTimeSeries(c.Query("time_series"))
	if !ok {
		c.JSON(http.StatusBadRequest, model.Response{
			Success: false,
			Message: "time_series must be daily, weekly or monthly",
		})
		return
	}

	asset, err := ctrl.assetService.Lookup(c.Request.Context(), ticker)
	if err != nil {
		handleServiceError(c, ticker, err)
		return
	}
	if asset == nil {
		c.JSON(http.StatusNotFound, model.Response{
			Success: false,
			Message: fmt.Sprintf("The asset (%s) does not exist in the database.", ticker),
		})
		return
	}

	query := service.HistoryQuery{
		Start:          util.ParseDateOr(c.Query("start"), util.EarliestDate),
		End:            util.ParseDateOr(c.Query("end"), time.Now()),
		TimeSeries:     series,
		IncludeReturns: truthy(c.Query("returns")),
	}
	c.JSON(http.StatusOK, ctrl.assetService.View(asset, query))
}

// CreateAsset force-creates the asset from full upstream history,
// overwriting any stored series.
// @Summary      Create Asset
// @Description  Fetches the full market history for a ticker and stores it, replacing any existing series.
// @Tags         Assets
// @Produce      json
// @Param        ticker  path  string  true  "Ticker symbol"
// @Success      201  {object}  model.HistoryResponse
// @Failure      404  {object}  model.Response
// @Failure      504  {object}  model.Response
// @Router       /asset/{ticker}/history [post]
func (ctrl *AssetController) CreateAsset(c *gin.Context) {
	ticker := strings.ToUpper(c.Param("ticker"))

	asset, err := ctrl.assetService.ForceCreate(c.Request.Context(), ticker)
	if err != nil {
		handleServiceError(c, ticker, err)
		return
	}
	c.JSON(http.StatusCreated, ctrl.assetService.View(asset, service.HistoryQuery{}))
}

// UpsertAsset creates the asset when absent, refreshes it when stale.
// @Summary      Create or Update Asset
// @Description  Creates the asset when unknown (201), merges the missing tail when stale (202), or reports that no update is needed (200).
// @Tags         Assets
// @Produce      json
// @Param        ticker  path  string  true  "Ticker symbol"
// @Success      200  {object}  model.Response         "No update needed"
// @Success      201  {object}  model.HistoryResponse  "Created"
// @Success      202  {object}  model.HistoryResponse  "Updated"
// @Failure      404  {object}  model.Response
// @Failure      504  {object}  model.Response
// @Router       /asset/{ticker}/history [put]
func (ctrl *AssetController) UpsertAsset(c *gin.Context) {
	ticker := strings.ToUpper(c.Param("ticker"))

	asset, outcome, err := ctrl.assetService.Reconcile(c.Request.Context(), ticker)
	if err != nil {
		handleServiceError(c, ticker, err)
		return
	}

	switch outcome {
	case service.OutcomeCreated:
		c.JSON(http.StatusCreated, ctrl.assetService.View(asset, service.HistoryQuery{}))
	case service.OutcomeUpdated:
		c.JSON(http.StatusAccepted, ctrl.assetService.View(asset, service.HistoryQuery{}))
	default:
		c.JSON(http.StatusOK, model.Response{
			Success: true,
			Message: fmt.Sprintf("%s does not need updates.", ticker),
		})
	}
}

// truthy implements the lenient returns flag: any non-zero integer.
func truthy(value string) bool {
	n, err := strconv.Atoi(value)
	return err == nil && n != 0
}
