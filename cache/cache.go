package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// YahooHistoryCache keeps recent chart-API responses so a burst of
// requests for the same ticker does not hammer the upstream.
var YahooHistoryCache = cache.New(1*time.Hour, 10*time.Minute)
