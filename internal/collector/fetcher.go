package collector

import "StockCompass/internal/model"

// Fetcher defines the interface for fetching daily market data.
type Fetcher interface {
	FetchDailyBars(symbol string, days int) ([]model.PricePoint, error)
	Name() string
}
