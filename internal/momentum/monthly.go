package momentum

import (
	"StockCompass/internal/model"
)

// MonthlyObservations aggregates a daily series into month-end observations.
// For each calendar month present, the last bar of that month is taken and
// its percent return computed against the previous month-end close. The
// input is never mutated.
func MonthlyObservations(series *model.PriceSeries) []model.MonthlyObservation {
	if series == nil || len(series.Bars) == 0 {
		return nil
	}

	var obs []model.MonthlyObservation
	for _, bar := range series.Bars {
		key := bar.Date.Year()*100 + int(bar.Date.Month())
		if n := len(obs); n > 0 {
			last := obs[n-1]
			lastKey := last.MonthEnd.Year()*100 + int(last.MonthEnd.Month())
			if lastKey == key {
				// Later bar within the same month replaces the earlier one.
				obs[n-1] = model.MonthlyObservation{MonthEnd: bar.Date, Close: bar.Close}
				continue
			}
		}
		obs = append(obs, model.MonthlyObservation{MonthEnd: bar.Date, Close: bar.Close})
	}

	for i := 1; i < len(obs); i++ {
		prev := obs[i-1].Close
		if prev != 0 {
			obs[i].Return = (obs[i].Close - prev) / prev * 100
			obs[i].HasReturn = true
		}
	}
	return obs
}

// trailingReturns collects the most recent `limit` defined monthly returns,
// ordered oldest to newest.
func trailingReturns(obs []model.MonthlyObservation, limit int) []float64 {
	var returns []float64
	for _, o := range obs {
		if o.HasReturn {
			returns = append(returns, o.Return)
		}
	}
	if len(returns) > limit {
		returns = returns[len(returns)-limit:]
	}
	return returns
}
