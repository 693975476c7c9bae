package indicator

import (
	"math"

	talib "github.com/markcheno/go-talib"

	"StockCompass/internal/model"
)

// Oscillator periods, matching the conventional defaults the rest of the
// system assumes.
const (
	rsiPeriod    = 14
	macdFast     = 12
	macdSlow     = 26
	macdSignal   = 9
	bbPeriod     = 20
	bbStdDev     = 2.0
	mfiPeriod    = 14
	stochKPeriod = 14
	stochDPeriod = 3
)

// ComputeBundle derives the latest-row oscillator snapshot from a daily
// price series. Oscillators whose warm-up window exceeds the available
// history come back as NaN; downstream consumers treat NaN as "no signal".
func ComputeBundle(series *model.PriceSeries) model.IndicatorBundle {
	bundle := model.EmptyBundle()
	if series == nil || len(series.Bars) == 0 {
		return bundle
	}

	n := len(series.Bars)
	closes := make([]float64, n)
	highs := make([]float64, n)
	lows := make([]float64, n)
	volumes := make([]float64, n)
	for i, b := range series.Bars {
		closes[i] = b.Close
		highs[i] = b.High
		lows[i] = b.Low
		volumes[i] = b.Volume
	}

	bundle.Close = closes[n-1]

	if n > rsiPeriod {
		rsi := talib.Rsi(closes, rsiPeriod)
		bundle.RSI = rsi[n-1]
	}

	if n >= macdSlow+macdSignal {
		macd, signal, _ := talib.Macd(closes, macdFast, macdSlow, macdSignal)
		bundle.MACD = macd[n-1]
		bundle.MACDSignal = signal[n-1]
	}

	if n >= bbPeriod {
		upper, _, lower := talib.BBands(closes, bbPeriod, bbStdDev, bbStdDev, talib.SMA)
		bundle.BBHigh = upper[n-1]
		bundle.BBLow = lower[n-1]
	}

	if n > mfiPeriod {
		mfi := talib.Mfi(highs, lows, closes, volumes, mfiPeriod)
		bundle.MFI = mfi[n-1]
	}

	if n >= stochKPeriod+stochDPeriod {
		k, d := talib.Stoch(highs, lows, closes, stochKPeriod, 1, talib.SMA, stochDPeriod, talib.SMA)
		bundle.StochK = k[n-1]
		bundle.StochD = d[n-1]
	}

	obv := talib.Obv(closes, volumes)
	bundle.OBV = obv[n-1]

	return bundle
}

// HasOscillators reports whether at least one oscillator in the bundle is
// usable (non-NaN).
func HasOscillators(b model.IndicatorBundle) bool {
	for _, v := range []float64{b.RSI, b.MACD, b.BBHigh, b.MFI, b.StochK} {
		if !math.IsNaN(v) {
			return true
		}
	}
	return false
}
