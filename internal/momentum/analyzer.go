package momentum

import (
	"StockCompass/internal/model"
)

// Scoring constants for the 12-month momentum model.
const (
	windowMonths = 12  // trailing window of monthly returns
	weightOldest = 1.0 // linear weight at the oldest month
	weightNewest = 2.5 // linear weight at the newest month
)

// Analyze computes the 12-month momentum assessment for a daily price
// series. It is a pure function of its input: deterministic, no side
// effects, and total — every failure or degenerate-data case maps to a
// result with an explanatory signal instead of an error.
func Analyze(series *model.PriceSeries) (result model.MomentumResult) {
	defer func() {
		if r := recover(); r != nil {
			result = model.MomentumResult{
				Signal:      model.SignalError,
				RecentTrend: model.TrendUnknown,
			}
		}
	}()

	obs := MonthlyObservations(series)
	if len(obs) == 0 {
		return model.MomentumResult{
			Signal:      model.SignalNoData,
			RecentTrend: model.TrendUnknown,
		}
	}

	returns := trailingReturns(obs, windowMonths)
	if len(returns) == 0 {
		// Monthly data exists but no month-over-month return could be
		// formed (single-month history). Distinct from no_data.
		return model.MomentumResult{
			Score:       50,
			Signal:      model.SignalNeutral,
			RecentTrend: model.TrendUnknown,
		}
	}

	n := len(returns)
	positiveMonths := 0
	positiveSum := 0.0
	for _, r := range returns {
		if r > 0 {
			positiveMonths++
			positiveSum += r
		}
	}

	// Linearly increasing weights emphasize recent months.
	weights := linspace(weightOldest, weightNewest, n)
	positiveWeighted, totalWeighted := 0.0, 0.0
	for i, w := range weights {
		totalWeighted += w
		if returns[i] > 0 {
			positiveWeighted += w
		}
	}
	weightedScore := positiveWeighted / totalWeighted

	avgPositiveReturn := 0.0
	if positiveMonths > 0 {
		avgPositiveReturn = positiveSum / float64(positiveMonths)
	}

	base := float64(positiveMonths) / float64(n) * 100
	weightedBoost := (weightedScore - 0.5) * 40 // roughly -20 ~ +20
	strengthBoost := avgPositiveReturn * 2
	if strengthBoost > 15 {
		strengthBoost = 15
	}
	score := clamp(base+weightedBoost+strengthBoost, 0, 100)

	return model.MomentumResult{
		Score:          score,
		Signal:         classifySignal(score),
		Strength:       avgPositiveReturn,
		RecentTrend:    classifyTrend(returns),
		PositiveMonths: positiveMonths,
		TotalMonths:    n,
	}
}

// classifySignal maps a momentum score to its signal band, top-down.
func classifySignal(score float64) model.MomentumSignal {
	switch {
	case score >= 75:
		return model.SignalVeryStrongUp
	case score >= 60:
		return model.SignalStrongUp
	case score >= 45:
		return model.SignalWeakUp
	case score >= 25:
		return model.SignalWeakDown
	default:
		return model.SignalStrongDown
	}
}

// classifyTrend inspects the most recent min(3, n) monthly returns.
func classifyTrend(returns []float64) model.RecentTrend {
	recent := len(returns)
	if recent > 3 {
		recent = 3
	}
	if recent == 0 {
		return model.TrendUnknown
	}

	positive := 0
	for _, r := range returns[len(returns)-recent:] {
		if r > 0 {
			positive++
		}
	}

	switch recent {
	case 3:
		switch {
		case positive == 3:
			return model.TrendAccelerating
		case positive == 0:
			return model.TrendDecelerating
		case positive >= 2:
			return model.TrendStableUp
		default:
			return model.TrendStableDown
		}
	case 2:
		switch positive {
		case 2:
			return model.TrendStableUp
		case 0:
			return model.TrendStableDown
		default:
			return model.TrendNeutral
		}
	default: // 1
		if positive == 1 {
			return model.TrendNeutralUp
		}
		return model.TrendNeutralDown
	}
}

// linspace returns n linearly spaced values from lo to hi inclusive.
// For n == 1 the single value is lo.
func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
