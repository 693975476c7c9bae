package collector

import (
	"fmt"
	"time"

	"StockCompass/internal/indicator"
	"StockCompass/internal/model"
)

// Snapshot pairs a price series with the oscillator bundle computed from
// the same fetch, so downstream consumers always see a consistent pair.
type Snapshot struct {
	Series *model.PriceSeries
	Latest model.IndicatorBundle
}

// Collector fetches market data and derives the indicator snapshot.
type Collector struct {
	Fetcher      Fetcher
	Symbol       string
	LookbackDays int
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, symbol string, lookbackDays int) *Collector {
	return &Collector{Fetcher: fetcher, Symbol: symbol, LookbackDays: lookbackDays}
}

// Collect fetches the daily series for the configured symbol and computes
// the latest oscillator bundle from it.
func (c *Collector) Collect() (*Snapshot, error) {
	series, err := c.CollectSeries(c.Symbol)
	if err != nil {
		return nil, err
	}
	return &Snapshot{
		Series: series,
		Latest: indicator.ComputeBundle(series),
	}, nil
}

// CollectSeries fetches the daily series for an arbitrary symbol.
func (c *Collector) CollectSeries(symbol string) (*model.PriceSeries, error) {
	bars, err := c.Fetcher.FetchDailyBars(symbol, c.LookbackDays)
	if err != nil {
		return nil, fmt.Errorf("fetch daily bars for %s: %w", symbol, err)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("no bars returned for %s", symbol)
	}
	return &model.PriceSeries{
		Symbol:    symbol,
		Bars:      bars,
		FetchedAt: time.Now(),
	}, nil
}

// BundleFor computes the latest oscillator bundle for an already-fetched series.
func (c *Collector) BundleFor(series *model.PriceSeries) model.IndicatorBundle {
	return indicator.ComputeBundle(series)
}

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Bars []model.PricePoint
	Err  error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(_ string, days int) ([]model.PricePoint, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Bars != nil {
		return m.Bars, nil
	}
	return GenerateBars(100.0, days), nil
}

// GenerateBars produces a synthetic drifting daily series ending today.
func GenerateBars(basePrice float64, count int) []model.PricePoint {
	bars := make([]model.PricePoint, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.PricePoint{
			Date:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
