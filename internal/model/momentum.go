package model

import "time"

// MomentumSignal classifies the 12-month momentum score.
type MomentumSignal string

const (
	SignalVeryStrongUp     MomentumSignal = "very_strong_up"
	SignalStrongUp         MomentumSignal = "strong_up"
	SignalWeakUp           MomentumSignal = "weak_up"
	SignalWeakDown         MomentumSignal = "weak_down"
	SignalStrongDown       MomentumSignal = "strong_down"
	SignalNeutral          MomentumSignal = "neutral"
	SignalNoData           MomentumSignal = "no_data"
	SignalInsufficientData MomentumSignal = "insufficient_data"
	SignalError            MomentumSignal = "error"

	// The analyzer never emits these two, but the decision engine accepts
	// them as weak directional signals for callers that synthesize results.
	SignalNeutralUp   MomentumSignal = "neutral_up"
	SignalNeutralDown MomentumSignal = "neutral_down"
)

// RecentTrend classifies the direction of the most recent monthly returns.
type RecentTrend string

const (
	TrendAccelerating RecentTrend = "accelerating"
	TrendDecelerating RecentTrend = "decelerating"
	TrendStableUp     RecentTrend = "stable_up"
	TrendStableDown   RecentTrend = "stable_down"
	TrendNeutral      RecentTrend = "neutral"
	TrendNeutralUp    RecentTrend = "neutral_up"
	TrendNeutralDown  RecentTrend = "neutral_down"
	TrendUnknown      RecentTrend = "unknown"
)

// MonthlyObservation is the last trading session of one calendar month and
// its percent return versus the previous month-end close. The first month in
// a series has no previous close, so HasReturn is false there.
type MonthlyObservation struct {
	MonthEnd  time.Time
	Close     float64
	Return    float64
	HasReturn bool
}

// MomentumResult is the output of the momentum analyzer. Values are
// recomputed fresh per call and never partially updated.
type MomentumResult struct {
	Score          float64 // 0~100
	Signal         MomentumSignal
	Strength       float64 // mean of positive monthly returns, 0 if none
	RecentTrend    RecentTrend
	PositiveMonths int
	TotalMonths    int
}
