package indicator

import (
	"math"
	"testing"
	"time"

	"StockCompass/internal/model"
)

func syntheticSeries(count int) *model.PriceSeries {
	bars := make([]model.PricePoint, count)
	price := 100.0
	for i := 0; i < count; i++ {
		// Deterministic wave so oscillators get both gains and losses.
		price += math.Sin(float64(i)/5) * 2
		bars[i] = model.PricePoint{
			Date:   time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
			Open:   price * 0.999,
			High:   price * 1.01,
			Low:    price * 0.99,
			Close:  price,
			Volume: 1_000_000 + float64(i)*1000,
		}
	}
	return &model.PriceSeries{Symbol: "TEST", Bars: bars}
}

func TestComputeBundle_FullHistory(t *testing.T) {
	series := syntheticSeries(300)
	b := ComputeBundle(series)

	checks := map[string]float64{
		"rsi": b.RSI, "macd": b.MACD, "macd_signal": b.MACDSignal,
		"bb_high": b.BBHigh, "bb_low": b.BBLow, "close": b.Close,
		"mfi": b.MFI, "obv": b.OBV, "stoch_k": b.StochK, "stoch_d": b.StochD,
	}
	for name, v := range checks {
		if math.IsNaN(v) {
			t.Errorf("%s should be computable from 300 bars", name)
		}
	}

	if b.Close != series.Bars[len(series.Bars)-1].Close {
		t.Errorf("close mismatch: %.2f vs %.2f", b.Close, series.Bars[len(series.Bars)-1].Close)
	}
	if b.RSI < 0 || b.RSI > 100 {
		t.Errorf("RSI out of range: %.2f", b.RSI)
	}
	if b.MFI < 0 || b.MFI > 100 {
		t.Errorf("MFI out of range: %.2f", b.MFI)
	}
	if b.BBHigh <= b.BBLow {
		t.Errorf("upper band %.2f not above lower band %.2f", b.BBHigh, b.BBLow)
	}
	if !HasOscillators(b) {
		t.Error("expected usable oscillators")
	}
}

func TestComputeBundle_WarmUp(t *testing.T) {
	b := ComputeBundle(syntheticSeries(10))

	for name, v := range map[string]float64{
		"rsi": b.RSI, "macd": b.MACD, "bb_high": b.BBHigh,
		"mfi": b.MFI, "stoch_k": b.StochK,
	} {
		if !math.IsNaN(v) {
			t.Errorf("%s should be NaN with only 10 bars, got %.2f", name, v)
		}
	}
	if math.IsNaN(b.Close) {
		t.Error("close must always be present")
	}
	if math.IsNaN(b.OBV) {
		t.Error("OBV has no warm-up window")
	}
	if HasOscillators(b) {
		t.Error("expected no usable oscillators during warm-up")
	}
}

func TestComputeBundle_EmptySeries(t *testing.T) {
	for _, series := range []*model.PriceSeries{nil, {Symbol: "TEST"}} {
		b := ComputeBundle(series)
		if !math.IsNaN(b.Close) || !math.IsNaN(b.RSI) {
			t.Errorf("empty series should yield an all-NaN bundle, got %+v", b)
		}
	}
}
