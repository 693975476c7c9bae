package momentum

import (
	"math"
	"reflect"
	"testing"
	"time"

	"StockCompass/internal/model"
)

// seriesFromMonthlyReturns builds a daily series with one bar per month: a
// base month at close 100 followed by one month per given return.
func seriesFromMonthlyReturns(returns ...float64) *model.PriceSeries {
	base := time.Date(2023, 1, 25, 0, 0, 0, 0, time.UTC)
	bars := []model.PricePoint{{Date: base, Close: 100}}
	price := 100.0
	for i, r := range returns {
		price *= 1 + r/100
		bars = append(bars, model.PricePoint{
			Date:  base.AddDate(0, i+1, 0),
			Close: price,
		})
	}
	return &model.PriceSeries{Symbol: "TEST", Bars: bars}
}

func TestAnalyze_EmptySeries(t *testing.T) {
	res := Analyze(&model.PriceSeries{Symbol: "TEST"})
	if res.Signal != model.SignalNoData {
		t.Fatalf("expected no_data, got %s", res.Signal)
	}
	if res.Score != 0 || res.RecentTrend != model.TrendUnknown {
		t.Errorf("expected zero score and unknown trend, got %.1f / %s", res.Score, res.RecentTrend)
	}
	if res.PositiveMonths != 0 || res.TotalMonths != 0 {
		t.Errorf("expected zero month counts, got %d/%d", res.PositiveMonths, res.TotalMonths)
	}
}

func TestAnalyze_NilSeries(t *testing.T) {
	res := Analyze(nil)
	if res.Signal != model.SignalNoData {
		t.Fatalf("expected no_data for nil series, got %s", res.Signal)
	}
}

func TestAnalyze_SingleMonth(t *testing.T) {
	res := Analyze(seriesFromMonthlyReturns())
	if res.Signal != model.SignalNeutral {
		t.Fatalf("expected neutral, got %s", res.Signal)
	}
	if res.Score != 50 {
		t.Errorf("expected score 50, got %.1f", res.Score)
	}
	if res.TotalMonths != 0 {
		t.Errorf("expected total_months 0, got %d", res.TotalMonths)
	}
	if res.RecentTrend != model.TrendUnknown {
		t.Errorf("expected unknown trend, got %s", res.RecentTrend)
	}
}

func TestAnalyze_AllPositiveIncreasing(t *testing.T) {
	// 12 strictly positive monthly returns, increasing in magnitude.
	returns := make([]float64, 12)
	for i := range returns {
		returns[i] = 0.5 + float64(i)*0.5
	}
	res := Analyze(seriesFromMonthlyReturns(returns...))

	if res.PositiveMonths != 12 || res.TotalMonths != 12 {
		t.Errorf("expected 12/12 positive months, got %d/%d", res.PositiveMonths, res.TotalMonths)
	}
	if res.Signal != model.SignalVeryStrongUp {
		t.Errorf("expected very_strong_up, got %s (score %.1f)", res.Signal, res.Score)
	}
	if res.RecentTrend != model.TrendAccelerating {
		t.Errorf("expected accelerating, got %s", res.RecentTrend)
	}
	if res.Strength <= 0 {
		t.Errorf("expected positive strength, got %.2f", res.Strength)
	}
}

func TestAnalyze_AllNegative(t *testing.T) {
	returns := make([]float64, 12)
	for i := range returns {
		returns[i] = -1.0 - float64(i)*0.2
	}
	res := Analyze(seriesFromMonthlyReturns(returns...))

	if res.PositiveMonths != 0 {
		t.Errorf("expected 0 positive months, got %d", res.PositiveMonths)
	}
	if res.Signal != model.SignalStrongDown {
		t.Errorf("expected strong_down, got %s (score %.1f)", res.Signal, res.Score)
	}
	if res.RecentTrend != model.TrendDecelerating {
		t.Errorf("expected decelerating, got %s", res.RecentTrend)
	}
	if res.Score != 0 {
		t.Errorf("expected score 0, got %.1f", res.Score)
	}
	if res.Strength != 0 {
		t.Errorf("expected strength 0 with no positive month, got %.2f", res.Strength)
	}
}

func TestAnalyze_WindowCapsAtTwelve(t *testing.T) {
	returns := make([]float64, 20)
	for i := range returns {
		returns[i] = 1.0
	}
	res := Analyze(seriesFromMonthlyReturns(returns...))
	if res.TotalMonths != 12 {
		t.Errorf("expected trailing window of 12, got %d", res.TotalMonths)
	}
}

func TestAnalyze_ScoreAlwaysInRange(t *testing.T) {
	cases := [][]float64{
		{5},
		{-5},
		{1, -1},
		{30, 30, 30},
		{-30, -30, -30},
		{2, -1, 3, -2, 1, 1, -4, 5, 0.5, -0.5, 2, 2},
		{50, 50, 50, 50, 50, 50, 50, 50, 50, 50, 50, 50},
	}
	for _, returns := range cases {
		res := Analyze(seriesFromMonthlyReturns(returns...))
		if res.Score < 0 || res.Score > 100 {
			t.Errorf("returns %v: score %.2f out of range", returns, res.Score)
		}
		if res.PositiveMonths > res.TotalMonths || res.TotalMonths > 12 {
			t.Errorf("returns %v: month counts %d/%d invalid", returns, res.PositiveMonths, res.TotalMonths)
		}
	}
}

func TestAnalyze_RecencyMonotonic(t *testing.T) {
	// Flipping the most recent month from negative to positive must not
	// decrease the score under a recency-weighted scheme.
	base := []float64{1, -2, 3, -1, 2, -3, 1, 2, -1, 1, 2}

	down := Analyze(seriesFromMonthlyReturns(append(append([]float64{}, base...), -1.5)...))
	up := Analyze(seriesFromMonthlyReturns(append(append([]float64{}, base...), 1.5)...))

	if up.Score < down.Score {
		t.Errorf("score decreased when last month improved: %.2f -> %.2f", down.Score, up.Score)
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	series := seriesFromMonthlyReturns(1, -2, 3, 0.5, -0.5, 2)
	first := Analyze(series)
	second := Analyze(series)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("results differ between identical calls:\n%+v\n%+v", first, second)
	}
}

func TestClassifyTrend(t *testing.T) {
	tests := []struct {
		name    string
		returns []float64
		want    model.RecentTrend
	}{
		{"three positive", []float64{1, 1, 1}, model.TrendAccelerating},
		{"three negative", []float64{-1, -1, -1}, model.TrendDecelerating},
		{"two of three positive", []float64{1, -1, 1}, model.TrendStableUp},
		{"one of three positive", []float64{-1, 1, -1}, model.TrendStableDown},
		{"zero counts as non-positive", []float64{0, 0, 0}, model.TrendDecelerating},
		{"two positive", []float64{1, 1}, model.TrendStableUp},
		{"two negative", []float64{-1, -1}, model.TrendStableDown},
		{"two mixed", []float64{1, -1}, model.TrendNeutral},
		{"one positive", []float64{1}, model.TrendNeutralUp},
		{"one negative", []float64{-1}, model.TrendNeutralDown},
		{"empty", nil, model.TrendUnknown},
	}
	for _, tt := range tests {
		if got := classifyTrend(tt.returns); got != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.name, tt.want, got)
		}
	}
}

func TestClassifySignal_Boundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  model.MomentumSignal
	}{
		{100, model.SignalVeryStrongUp},
		{75, model.SignalVeryStrongUp},
		{74.9, model.SignalStrongUp},
		{60, model.SignalStrongUp},
		{59.9, model.SignalWeakUp},
		{45, model.SignalWeakUp},
		{44.9, model.SignalWeakDown},
		{25, model.SignalWeakDown},
		{24.9, model.SignalStrongDown},
		{0, model.SignalStrongDown},
	}
	for _, tt := range tests {
		if got := classifySignal(tt.score); got != tt.want {
			t.Errorf("score %.1f: expected %s, got %s", tt.score, tt.want, got)
		}
	}
}

func TestMonthlyObservations(t *testing.T) {
	bars := []model.PricePoint{
		{Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), Close: 100},
		{Date: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), Close: 110},
		{Date: time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC), Close: 105},
		{Date: time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC), Close: 121},
		{Date: time.Date(2024, 3, 29, 0, 0, 0, 0, time.UTC), Close: 121},
	}
	obs := MonthlyObservations(&model.PriceSeries{Symbol: "TEST", Bars: bars})

	if len(obs) != 3 {
		t.Fatalf("expected 3 monthly observations, got %d", len(obs))
	}
	if obs[0].Close != 110 {
		t.Errorf("January should use the last bar of the month, got close %.1f", obs[0].Close)
	}
	if obs[0].HasReturn {
		t.Error("first month must have no return")
	}
	if !obs[1].HasReturn || math.Abs(obs[1].Return-10) > 1e-9 {
		t.Errorf("expected February return 10%%, got %.2f (defined=%v)", obs[1].Return, obs[1].HasReturn)
	}
	if !obs[2].HasReturn || obs[2].Return != 0 {
		t.Errorf("expected flat March return, got %.2f", obs[2].Return)
	}
}

func TestLinspace(t *testing.T) {
	single := linspace(1.0, 2.5, 1)
	if len(single) != 1 || single[0] != 1.0 {
		t.Errorf("n=1 should yield [1.0], got %v", single)
	}

	w := linspace(1.0, 2.5, 4)
	if w[0] != 1.0 || w[3] != 2.5 {
		t.Errorf("endpoints wrong: %v", w)
	}
	if w[1] != 1.5 || w[2] != 2.0 {
		t.Errorf("interior points wrong: %v", w)
	}
}
