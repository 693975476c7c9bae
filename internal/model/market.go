package model

import "time"

// PricePoint represents a single daily OHLCV observation.
type PricePoint struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PriceSeries holds raw daily price data for analysis.
// Bars are strictly increasing by date with no duplicate dates.
type PriceSeries struct {
	Symbol    string
	Bars      []PricePoint
	FetchedAt time.Time
}

// LastClose returns the most recent closing price, or 0 for an empty series.
func (s *PriceSeries) LastClose() float64 {
	if len(s.Bars) == 0 {
		return 0
	}
	return s.Bars[len(s.Bars)-1].Close
}
