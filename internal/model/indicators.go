package model

import "math"

// IndicatorBundle is the latest-row snapshot of the computed oscillators.
// Fields that could not be computed (warm-up bars) are NaN; consumers must
// treat a NaN comparison as neither oversold nor overbought.
type IndicatorBundle struct {
	RSI        float64
	MACD       float64
	MACDSignal float64
	BBHigh     float64
	BBLow      float64
	Close      float64
	MFI        float64
	OBV        float64
	StochK     float64
	StochD     float64
}

// EmptyBundle returns a bundle with every field NaN.
func EmptyBundle() IndicatorBundle {
	nan := math.NaN()
	return IndicatorBundle{
		RSI: nan, MACD: nan, MACDSignal: nan,
		BBHigh: nan, BBLow: nan, Close: nan,
		MFI: nan, OBV: nan, StochK: nan, StochD: nan,
	}
}
