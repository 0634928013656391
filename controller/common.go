package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/lminimalist/promesse-finance-api/customerrors"
	"github.com/lminimalist/promesse-finance-api/model"
)

// handleServiceError maps the failure taxonomy to HTTP statuses. Every
// user-visible failure names the ticker and the reason class.
func handleServiceError(c *gin.Context, ticker string, err error) {
	switch {
	case errors.Is(err, customerrors.ErrUpstreamNotFound):
		c.JSON(http.StatusNotFound, model.Response{
			Success: false,
			Message: fmt.Sprintf("The asset (%s) does not exist in the market yet.", ticker),
		})
	case errors.Is(err, customerrors.ErrUpstreamTimeout):
		c.JSON(http.StatusGatewayTimeout, model.Response{
			Success: false,
			Message: fmt.Sprintf("The market data source timed out for %s. Please retry.", ticker),
		})
	case errors.Is(err, customerrors.ErrRangeInvalid):
		c.JSON(http.StatusBadRequest, model.Response{
			Success: false,
			Message: fmt.Sprintf("Invalid date range for %s: %s", ticker, err.Error()),
		})
	default:
		var mergeErr *customerrors.MergeOrderError
		if errors.As(err, &mergeErr) {
			log.Error().Str("ticker", ticker).Err(err).Msg("Merge contract violation")
		} else {
			log.Error().Str("ticker", ticker).Err(err).Msg("Asset request failed")
		}
		c.JSON(http.StatusInternalServerError, model.Response{
			Success: false,
			Message: fmt.Sprintf("Something went wrong while processing %s.", ticker),
			Error:   err.Error(),
		})
	}
}
